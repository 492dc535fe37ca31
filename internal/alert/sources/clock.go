package sources

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is the package time source, swappable in tests.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source used for synthesized ids and default
// timestamps. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

func clockNow() time.Time { return clock.Now() }
