package application

import "time"

// Clock abstraction so services stay testable
type Clock interface {
	Now() time.Time
}

// SystemClock default implementation, wraps time.Now()
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
