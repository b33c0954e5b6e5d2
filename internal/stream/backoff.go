package stream

import (
	"math/rand"
	"time"
)

// DefaultReconnectDelay is the pause between a closed connection and the
// next attempt.
const DefaultReconnectDelay = 1500 * time.Millisecond

// Backoff computes reconnect delays. With MaxDelay unset the delay is
// constant; otherwise it doubles per failed attempt up to MaxDelay.
// Retries never stop either way.
type Backoff struct {
	Delay    time.Duration
	MaxDelay time.Duration
	// Jitter picks a random delay in [d/2, d].
	Jitter bool
}

// Next returns the delay before retry number attempt (0-based, reset after
// every successful connection).
func (b Backoff) Next(attempt int) time.Duration {
	d := b.Delay
	if d <= 0 {
		d = DefaultReconnectDelay
	}

	if b.MaxDelay > d {
		for i := 0; i < attempt && d < b.MaxDelay; i++ {
			d *= 2
		}
		d = min(d, b.MaxDelay)
	}

	if b.Jitter && d > 1 {
		half := d / 2
		d = half + time.Duration(rand.Int63n(int64(d-half+1)))
	}
	return d
}
