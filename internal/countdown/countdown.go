package countdown

import "fmt"

// Step is the amount removed from the remaining duration on every tick.
const Step int64 = 1000

const (
	msPerHour   int64 = 60 * 60 * 1000
	msPerMinute int64 = 60 * 1000
	msPerSecond int64 = 1000
)

// State is the countdown state machine position.
type State int

const (
	StateRunning State = iota
	StateReached
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateReached:
		return "reached"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Countdown is a non-negative remaining duration in milliseconds.
// The zero value is a reached countdown.
type Countdown struct {
	remaining int64
}

// New returns a countdown with ms remaining. Negative values clamp to 0.
func New(ms int64) Countdown {
	if ms < 0 {
		ms = 0
	}
	return Countdown{remaining: ms}
}

// Tick returns the countdown one Step later, floored at zero.
// A reached countdown stays reached.
func (c Countdown) Tick() Countdown {
	if c.remaining > Step {
		return Countdown{remaining: c.remaining - Step}
	}
	return Countdown{}
}

// Remaining returns the remaining milliseconds.
func (c Countdown) Remaining() int64 { return c.remaining }

// Reached reports whether the remaining duration is zero.
func (c Countdown) Reached() bool { return c.remaining == 0 }

// State returns StateReached once the remaining duration is zero.
func (c Countdown) State() State {
	if c.Reached() {
		return StateReached
	}
	return StateRunning
}

// Fields splits the remaining duration for display.
func (c Countdown) Fields() Fields {
	return Fields{
		Hours:   c.remaining / msPerHour,
		Minutes: (c.remaining % msPerHour) / msPerMinute,
		Seconds: (c.remaining % msPerMinute) / msPerSecond,
	}
}

// Fields are the displayed hours, minutes and seconds of a countdown.
type Fields struct {
	Hours   int64
	Minutes int64
	Seconds int64
}

// String renders the fields as zero-padded HH:MM:SS.
func (f Fields) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", f.Hours, f.Minutes, f.Seconds)
}
