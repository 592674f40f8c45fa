// Package biztime provides the service clock. All timestamps are stored and
// transported in UTC.
package biztime

import "time"

// Clock returns the current time. Use cases accept one so tests can pin "now".
type Clock func() time.Time

// NowUTC returns the current time in UTC truncated to microseconds, the
// finest precision every supported database keeps.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
