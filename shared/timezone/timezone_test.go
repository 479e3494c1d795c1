package timezone_test

import (
	"testing"
	"time"

	"timevault/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	assert.False(t, now.IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "canonical iana", id: "America/New_York"},
		{name: "utc", id: "UTC"},
		{name: "iana link", id: "US/Eastern"},
		{name: "surrounding whitespace", id: "  Europe/Berlin "},
		{name: "empty", id: "", wantErr: true},
		{name: "local is rejected", id: "Local", wantErr: true},
		{name: "windows name is not a zone", id: "Eastern Standard Time", wantErr: true},
		{name: "garbage", id: "Not/AZone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := timezone.Load(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, timezone.ErrUnknownZone)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, loc)
		})
	}
}

func TestLoad_Memoized(t *testing.T) {
	first, err := timezone.Load("Asia/Tokyo")
	require.NoError(t, err)

	second, err := timezone.Load("Asia/Tokyo")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.NotEmpty(t, timezone.Format(testTime, "2006-01-02 15:04:05 MST"))
}
