package testsession

import "time"

// Clock abstracts wall-clock reads so tests can drive the timer without real
// delays. The manager's ticker calls Tick once per elapsed second; the engine
// itself never sleeps.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock is the production clock.
var SystemClock Clock = realClock{}
