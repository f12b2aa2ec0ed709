// Package countdown resolves same-day time targets and runs one-second
// countdowns toward them.
//
// A Countdown is an immutable value: Tick returns the next value. A Runner
// owns one Countdown together with the recurring action that ticks it, and
// that action lives exactly between Start and Stop.
//
// Targets never roll over to tomorrow. Once a target time has passed the
// remaining duration is zero and the countdown is REACHED for the rest of
// the day.
package countdown
