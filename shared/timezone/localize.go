package timezone

import (
	"slices"
	"time"
)

// transitionWindow bounds how far apart two offset changes can be and still both be seen by Localize.
const transitionWindow = 24 * time.Hour

// WallClock strips location and offset from t, keeping only its calendar and clock fields (as UTC).
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Localize interprets the wall clock of t as local time in loc and returns the instant it names.
// Any location or offset already attached to t is ignored.
//
// A wall clock skipped by a forward transition has no instant: ok is false.
// A wall clock repeated by a backward transition has two: the later one wins, i.e. the offset in
// effect after the transition. That is standard time at the end of summer time, and it does not
// depend on how the zone data flags DST (Europe/Dublin marks winter GMT as DST).
func Localize(t time.Time, loc *time.Location) (res time.Time, ok bool) {
	naive := WallClock(t)

	var offsets []int
	for _, probe := range []time.Time{naive.Add(-transitionWindow), naive, naive.Add(transitionWindow)} {
		_, offset := probe.In(loc).Zone()
		if !slices.Contains(offsets, offset) {
			offsets = append(offsets, offset)
		}
	}

	var candidates []time.Time
	for _, offset := range offsets {
		instant := naive.Add(-time.Duration(offset) * time.Second).In(loc)
		if WallClock(instant).Equal(naive) && !slices.ContainsFunc(candidates, instant.Equal) {
			candidates = append(candidates, instant)
		}
	}

	switch len(candidates) {
	case 0:
		return res, false
	case 1:
		return candidates[0], true
	}

	return slices.MaxFunc(candidates, func(a, b time.Time) int {
		return a.Compare(b)
	}), true
}
