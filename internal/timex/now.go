package timex

import "time"

// Now returns the current time in UTC truncated to microseconds, the finest
// precision every storage backend keeps. Timestamps produced this way
// compare equal after a round trip through PostgreSQL, SQLite or memory.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
