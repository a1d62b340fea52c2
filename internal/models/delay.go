package models

import "time"

// DelaySpec is the user-facing delivery delay, entered as separate
// years/days/hours/minutes parts. A year counts as 365 days; the simple
// approximation is part of the product's established behavior.
type DelaySpec struct {
	Years   int
	Days    int
	Hours   int
	Minutes int
}

// Duration converts the delay to a concrete duration. Negative components
// count as zero.
func (d DelaySpec) Duration() time.Duration {
	clamp := func(v int) time.Duration {
		if v < 0 {
			return 0
		}
		return time.Duration(v)
	}

	day := 24 * time.Hour
	return clamp(d.Years)*365*day +
		clamp(d.Days)*day +
		clamp(d.Hours)*time.Hour +
		clamp(d.Minutes)*time.Minute
}
