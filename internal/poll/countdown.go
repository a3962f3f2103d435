package poll

import (
	"fmt"
	"time"
)

// DefaultInterval is the time between automatic refreshes.
const DefaultInterval = 300 * time.Second

// Countdown counts whole seconds down to the next refresh. It is a value
// type driven by a one-second tick from the UI loop.
type Countdown struct {
	interval  int
	remaining int
	running   bool
}

// NewCountdown creates a stopped countdown loaded with the full interval.
func NewCountdown(interval time.Duration) Countdown {
	secs := int(interval / time.Second)
	if secs <= 0 {
		secs = int(DefaultInterval / time.Second)
	}
	return Countdown{interval: secs, remaining: secs}
}

// Tick advances the countdown by one second when running and reports whether
// a refresh is now due. Reaching zero does not reload the interval; that is
// Reset's job once the refresh completes.
func (c *Countdown) Tick() bool {
	if !c.running {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining <= 0
}

// Reset reloads the full interval without changing the running state.
func (c *Countdown) Reset() {
	c.remaining = c.interval
}

// Start resumes ticking.
func (c *Countdown) Start() { c.running = true }

// Stop pauses ticking.
func (c *Countdown) Stop() { c.running = false }

// Running reports whether ticks count down.
func (c Countdown) Running() bool { return c.running }

// Remaining returns the seconds left.
func (c Countdown) Remaining() int { return c.remaining }

// Interval returns the full interval.
func (c Countdown) Interval() time.Duration {
	return time.Duration(c.interval) * time.Second
}

// String formats the remaining time as m:ss.
func (c Countdown) String() string {
	return FormatSeconds(c.remaining)
}

// FormatSeconds renders a number of seconds as m:ss.
func FormatSeconds(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
