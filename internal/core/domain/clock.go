package domain

import "time"

// Audit timestamps are stored in DATETIME(3) columns, so stamp them in UTC
// at millisecond precision to keep a create/load round trip field-exact.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
