package helpers

import "time"

// SystemClock reads wall-clock time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns T. Handy in tests and fixture loaders.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
