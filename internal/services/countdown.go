package services

import (
	"fmt"
	"time"
)

// Remaining is a countdown decomposed into whole days, hours, minutes and
// seconds. It is recomputed from the clock on every use, never stored.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Countdown returns the time left until deliverAt, clamped at zero so it
// never goes negative once the capsule is due.
func Countdown(now, deliverAt time.Time) Remaining {
	secs := int(deliverAt.Sub(now) / time.Second)
	if secs < 0 {
		secs = 0
	}
	return Remaining{
		Days:    secs / 86400,
		Hours:   secs % 86400 / 3600,
		Minutes: secs % 3600 / 60,
		Seconds: secs % 60,
	}
}

// String renders the countdown the way the product always has: "3d 04:05:06".
func (r Remaining) String() string {
	return fmt.Sprintf("%dd %02d:%02d:%02d", r.Days, r.Hours, r.Minutes, r.Seconds)
}

// IsZero reports whether the countdown has run out.
func (r Remaining) IsZero() bool {
	return r.Days == 0 && r.Hours == 0 && r.Minutes == 0 && r.Seconds == 0
}
