package anim

import "time"

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Duration
}

// SystemClock measures elapsed monotonic time since it was created.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}
