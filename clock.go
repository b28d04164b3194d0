package sfload

import "time"

// Clock provides the elapsed-time measurement and busy-wait delays the
// configuration protocol needs. The default implementation is the real
// time package; tests substitute a simulated clock so the 5ms/100ms
// protocol waits run instantly.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }
