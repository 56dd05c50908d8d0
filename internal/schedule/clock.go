package schedule

import "time"

// Clock supplies the current local time to the resolution endpoints, so
// tests can pin the evaluation instant ("pretend it is Sunday 23:59").
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
