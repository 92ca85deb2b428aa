package domain

import "time"

// Timestamp is an optional Unix time in seconds.
// The zero value means "no timestamp", which is distinct from TimestampOf(0).
type Timestamp struct {
	seconds int64
	valid   bool
}

// NoTimestamp is the absent timestamp.
var NoTimestamp = Timestamp{}

// TimestampOf returns a present timestamp holding the given Unix seconds.
func TimestampOf(seconds int64) Timestamp {
	return Timestamp{seconds: seconds, valid: true}
}

// Get returns the Unix seconds and whether the timestamp is present.
func (t Timestamp) Get() (int64, bool) {
	return t.seconds, t.valid
}

// IsSet reports whether the timestamp is present.
func (t Timestamp) IsSet() bool {
	return t.valid
}

// Time converts a present timestamp to a local time.Time.
// It returns the zero time for an absent timestamp.
func (t Timestamp) Time() time.Time {
	if !t.valid {
		return time.Time{}
	}
	return time.Unix(t.seconds, 0).Local()
}
