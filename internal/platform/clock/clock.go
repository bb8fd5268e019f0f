package clock

import "time"

// Clock abstracts "now" so session durations and timeframe windows stay
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
