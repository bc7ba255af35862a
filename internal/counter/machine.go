package counter

import (
	"strconv"
	"time"
)

// Option configures a Counter
type Option func(*Counter)

// WithDuration overrides DefaultDuration
func WithDuration(d time.Duration) Option {
	return func(c *Counter) {
		c.duration = d
	}
}

// Immediate starts the animation on construction instead of waiting for
// the first Visible call
func Immediate() Option {
	return func(c *Counter) {
		c.immediate = true
	}
}

// WithReducedMotion skips the animation and shows the target as soon as
// the counter is triggered
func WithReducedMotion(reduced bool) Option {
	return func(c *Counter) {
		c.reducedMotion = reduced
	}
}

// WithFormat sets how Display renders the current value
func WithFormat(format func(int) string) Option {
	return func(c *Counter) {
		c.format = format
	}
}

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) Option {
	return func(c *Counter) {
		c.now = now
	}
}

// Counter is a one-shot animated number. It moves from Idle to Animating
// when triggered, and from Animating to Done when the animation completes
// or Stop is called. It never goes back to Animating.
//
// A Counter is driven from a single goroutine (a UI loop) and is not safe
// for concurrent use.
type Counter struct {
	target        int
	duration      time.Duration
	immediate     bool
	reducedMotion bool
	format        func(int) string
	now           func() time.Time

	state State
	start time.Time
	value int
}

// New creates a counter for target
func New(target int, opts ...Option) *Counter {
	c := &Counter{
		target:   target,
		duration: DefaultDuration(target),
		format:   strconv.Itoa,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if target == 0 {
		c.state = Done
		return c
	}
	if c.immediate {
		c.trigger()
	}
	return c
}

// Visible reports that the counter came into view. Only the first call on
// an idle counter starts the animation; it returns whether it did.
func (c *Counter) Visible() bool {
	if c.state != Idle {
		return false
	}
	c.trigger()
	return true
}

func (c *Counter) trigger() {
	if c.reducedMotion || c.duration <= 0 {
		c.value = c.target
		c.state = Done
		return
	}
	c.start = c.now()
	c.value = 0
	c.state = Animating
}

// Tick advances the animation to the current time and returns the value to
// display
func (c *Counter) Tick() int {
	if c.state != Animating {
		return c.value
	}

	elapsed := c.now().Sub(c.start)
	c.value = Value(c.target, elapsed, c.duration)
	if elapsed >= c.duration {
		c.value = c.target
		c.state = Done
	}
	return c.value
}

// Stop ends the animation where it is, for a counter that is torn down
// before it finishes
func (c *Counter) Stop() {
	c.state = Done
}

// Running reports whether more frames are needed
func (c *Counter) Running() bool {
	return c.state == Animating
}

// State returns the lifecycle stage
func (c *Counter) State() State {
	return c.state
}

// Value returns the last computed value
func (c *Counter) Value() int {
	return c.value
}

// Target returns the final value
func (c *Counter) Target() int {
	return c.target
}

// Duration returns the animation length
func (c *Counter) Duration() time.Duration {
	return c.duration
}

// Display returns the current value formatted for display
func (c *Counter) Display() string {
	return c.format(c.value)
}
