package poster

import (
	"errors"
	"testing"

	"dsaposter/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleReveal_DoubleToggleRestores(t *testing.T) {
	for _, start := range []bool{false, true} {
		s := RevealState{Revealed: start}
		assert.Equal(t, !start, ToggleReveal(s).Revealed)
		assert.Equal(t, s, ToggleReveal(ToggleReveal(s)))
	}
}

func TestCards_IndependentRevealState(t *testing.T) {
	cards := Cards(config.DefaultPoster().Examples)
	require.Len(t, cards, 3)
	for _, c := range cards {
		assert.False(t, c.Reveal.Revealed)
		assert.Equal(t, LabelReveal, c.ButtonLabel())
	}

	cards[1].Toggle()
	assert.False(t, cards[0].Reveal.Revealed)
	assert.True(t, cards[1].Reveal.Revealed)
	assert.False(t, cards[2].Reveal.Revealed)
	assert.Equal(t, LabelHide, cards[1].ButtonLabel())
}

func TestCard_Text(t *testing.T) {
	c := Card{Case: config.ExampleCase{
		Input:  []int{3, 2, 1, 56, 10000, 167},
		Output: config.Pair{Min: 1, Max: 10000},
	}}
	assert.Equal(t, "[3, 2, 1, 56, 10000, 167]", c.InputText())
	assert.Equal(t, "1 10000", c.OutputText())

	single := Card{Case: config.ExampleCase{Input: []int{56789}, Output: config.Pair{Min: 56789, Max: 56789}}}
	assert.Equal(t, "[56789]", single.InputText())
	assert.Equal(t, "56789 56789", single.OutputText())

	assert.Equal(t, "[]", Card{}.InputText())
}

func TestToggleDone(t *testing.T) {
	var s DoneState
	assert.Equal(t, LabelMarkDone, s.ButtonLabel())
	s = ToggleDone(s)
	assert.Equal(t, LabelDone, s.ButtonLabel())
	assert.Equal(t, DoneState{}, ToggleDone(s))
}

func TestComposeShareText(t *testing.T) {
	got := ComposeShareText(config.DefaultPoster())
	want := "🚀 Day 2 – DSA Challenge\nProblem: Min and Max in Array\nDeadline: Today 6:00 PM\nJoin explainer at 8:00 PM!"
	assert.Equal(t, want, got)
}

func TestComposeShareText_PureFunctionOfConfig(t *testing.T) {
	p := config.DefaultPoster()
	p.Day = 7
	p.ProblemTitle = "Two Sum"
	p.Deadline = config.TimeOfDay{Hour: 9, Minute: 5}
	p.Explainer = config.TimeOfDay{Hour: 0, Minute: 30}

	first := ComposeShareText(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComposeShareText(p))
	}
	assert.Contains(t, first, "Day 7")
	assert.Contains(t, first, "Deadline: Today 9:05 AM")
	assert.Contains(t, first, "Join explainer at 12:30 AM!")
}

func TestCopier(t *testing.T) {
	var got string
	ok := NewCopierWith(func(s string) error { got = s; return nil }).Copy("hello")
	assert.True(t, ok)
	assert.Equal(t, "hello", got)

	calls := 0
	failing := NewCopierWith(func(string) error { calls++; return errors.New("no clipboard") })
	assert.NotPanics(t, func() { ok = failing.Copy("hello") })
	assert.False(t, ok)
	assert.Equal(t, 1, calls, "failures are not retried")

	var nilCopier *Copier
	assert.False(t, nilCopier.Copy("x"))
}

func TestAck_RevertOnlyCurrentGeneration(t *testing.T) {
	var a Ack
	assert.Equal(t, LabelShare, a.ButtonLabel())

	first := a.Mark()
	assert.True(t, a.Copied())
	assert.Equal(t, LabelCopied, a.ButtonLabel())

	second := a.Mark()
	a.Revert(first)
	assert.True(t, a.Copied(), "stale revert must not clear a newer ack")

	a.Revert(second)
	assert.False(t, a.Copied())
	assert.Equal(t, LabelShare, a.ButtonLabel())
}

func TestCountdownLabels(t *testing.T) {
	p := config.DefaultPoster()
	assert.Equal(t, "⏳ Deadline – Today 6:00 PM", DeadlineLabel(p))
	assert.Equal(t, "📖 Explanation – Today 8:00 PM", ExplainerLabel(p))
}
