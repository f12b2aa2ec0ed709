// Package poster holds the interaction state of the challenge poster:
// revealable example cards, the share text, clipboard copy with its
// transient acknowledgement, and the done toggle.
package poster

import (
	"fmt"
	"strings"

	"dsaposter/internal/config"
)

// Button and status labels.
const (
	LabelReveal   = "Reveal Output"
	LabelHide     = "Hide Output"
	LabelShare    = "Share Challenge"
	LabelCopied   = "Copied!"
	LabelMarkDone = "Mark as Done"
	LabelDone     = "✅ Marked Done"
	LabelReached  = "Started / Closed"
)

// RevealState is whether an example's output is shown.
type RevealState struct {
	Revealed bool
}

// ToggleReveal flips the reveal state.
func ToggleReveal(s RevealState) RevealState {
	return RevealState{Revealed: !s.Revealed}
}

// Card is one example case with its own reveal state.
type Card struct {
	Case   config.ExampleCase
	Reveal RevealState
}

// Cards builds hidden cards for the configured examples.
func Cards(examples []config.ExampleCase) []Card {
	cards := make([]Card, len(examples))
	for i, ex := range examples {
		cards[i] = Card{Case: ex}
	}
	return cards
}

// Toggle flips this card's reveal state.
func (c *Card) Toggle() {
	c.Reveal = ToggleReveal(c.Reveal)
}

// ButtonLabel is the label of the card's reveal button.
func (c Card) ButtonLabel() string {
	if c.Reveal.Revealed {
		return LabelHide
	}
	return LabelReveal
}

// InputText renders the input as "[a, b, c]".
func (c Card) InputText() string {
	parts := make([]string, len(c.Case.Input))
	for i, v := range c.Case.Input {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// OutputText renders the output pair as "min max".
func (c Card) OutputText() string {
	return fmt.Sprintf("%d %d", c.Case.Output.Min, c.Case.Output.Max)
}

// DoneState is the "mark as done" toggle.
type DoneState struct {
	Done bool
}

// ToggleDone flips the done state.
func ToggleDone(s DoneState) DoneState {
	return DoneState{Done: !s.Done}
}

// ButtonLabel is the label of the done button.
func (s DoneState) ButtonLabel() string {
	if s.Done {
		return LabelDone
	}
	return LabelMarkDone
}
