package service

import "time"

// Timestamp distinguishes a client-stamped optimistic value from the
// server-assigned one. An Add returns pending timestamps for immediate
// use; the next read supersedes them with confirmed values.
type Timestamp struct {
	Time      time.Time
	Confirmed bool
}

// Pending stamps a local optimistic timestamp.
func Pending(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// Confirmed wraps a server-assigned timestamp.
func Confirmed(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC(), Confirmed: true}
}
