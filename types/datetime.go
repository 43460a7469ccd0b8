package types

import "time"

// Nanos returns the storage representation of a timestamp. The zero time is
// the null timestamp and maps to NullLong.
func Nanos(t time.Time) int64 {
	if t.IsZero() {
		return NullLong
	}
	return t.UnixNano()
}

// NanosToTime reverses Nanos. Non null results are always in UTC so that equal
// instants compare equal.
func NanosToTime(nanos int64) time.Time {
	if nanos == NullLong {
		return time.Time{}
	}
	return time.Unix(0, nanos).UTC()
}
