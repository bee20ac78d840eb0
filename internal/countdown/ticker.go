package countdown

import "time"

// Ticker recomputes the remaining time once per interval while the promo
// window is open. The channel closes, and the underlying time.Ticker is
// released, as soon as the window expires or the context is cancelled, so an
// abandoned countdown never leaks its tick loop.
type Ticker struct {
	End      time.Time
	Clock    Clock
	Interval time.Duration // defaults to one second
}

func (t *Ticker) clock() Clock {
	if t.Clock != nil {
		return t.Clock
	}
	return RealClock()
}

func (t *Ticker) interval() time.Duration {
	if t.Interval > 0 {
		return t.Interval
	}
	return time.Second
}

// Start emits the current Remaining immediately and then once per interval.
// The final value delivered before the channel closes is the expired zero
// value, matching a display that freezes at zero.
func (t *Ticker) Start(done <-chan struct{}) <-chan Remaining {
	out := make(chan Remaining, 1)

	go func() {
		defer close(out)
		tick := time.NewTicker(t.interval())
		defer tick.Stop()

		for {
			r := Until(t.End, t.clock().Now())
			select {
			case out <- r:
			case <-done:
				return
			}
			if r.Expired {
				return
			}
			select {
			case <-tick.C:
			case <-done:
				return
			}
		}
	}()

	return out
}
