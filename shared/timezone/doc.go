// Package timezone is the zone database provider for the service.
//
// Load turns a canonical IANA identifier ("America/New_York", "Europe/Berlin", "UTC")
// into offset rules. The IANA database is compiled into the binary through
// time/tzdata, and every loaded *time.Location is memoized for the life of the process.
// Identifiers in other naming schemes (Windows, Rails) must be canonicalized by the
// zone domain before they reach this package.
//
// The package also keeps the application clock used for log and response metadata:
//
//	now := timezone.Now()                      // current time in APP_TIMEZONE
//	s := timezone.Format(t, time.RFC3339)      // t rendered in APP_TIMEZONE
package timezone
