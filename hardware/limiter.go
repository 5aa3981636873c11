package hardware

import (
	"time"

	"github.com/jetsetilly/testds/hardware/spec"
)

// limiter paces frame rendering to the console's refresh rate
type limiter struct {
	tick *time.Ticker
}

func newLimiter() *limiter {
	hz := float64(spec.RefreshHz)
	d := time.Duration(float64(time.Second) / hz)
	return &limiter{
		tick: time.NewTicker(d),
	}
}

func (l *limiter) Wait() {
	<-l.tick.C
}

func (l *limiter) stop() {
	l.tick.Stop()
}
