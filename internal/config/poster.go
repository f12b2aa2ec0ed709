package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TimeOfDay is an hour and minute denoting a recurring daily instant.
type TimeOfDay struct {
	Hour   int `yaml:"hour"`
	Minute int `yaml:"minute"`
}

// Valid reports whether the hour and minute are in range.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// Label renders the time on a 12-hour clock, e.g. "6:00 PM".
func (t TimeOfDay) Label() string {
	suffix := "AM"
	if t.Hour >= 12 {
		suffix = "PM"
	}
	h := t.Hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute, suffix)
}

// Pair is the expected (min, max) output of an example.
// It is written as a two element sequence: [min, max].
type Pair struct {
	Min int
	Max int
}

// MarshalYAML implements yaml.Marshaler.
func (p Pair) MarshalYAML() (interface{}, error) {
	return []int{p.Min, p.Max}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pair) UnmarshalYAML(node *yaml.Node) error {
	var vals []int
	if err := node.Decode(&vals); err != nil {
		return fmt.Errorf("output must be a [min, max] sequence: %w", err)
	}
	if len(vals) != 2 {
		return fmt.Errorf("output must have exactly 2 values, got %d", len(vals))
	}
	p.Min, p.Max = vals[0], vals[1]
	return nil
}

// ExampleCase is a worked input/output pair shown on the poster.
type ExampleCase struct {
	Input  []int `yaml:"input"`
	Output Pair  `yaml:"output"`
}

// PosterConfig is the display and parameter bundle for one day's poster.
type PosterConfig struct {
	Day          int           `yaml:"day"`
	Title        string        `yaml:"title"`
	ProblemTitle string        `yaml:"problem_title"`
	TaskLines    []string      `yaml:"task_lines"`
	Examples     []ExampleCase `yaml:"examples"`
	Deadline     TimeOfDay     `yaml:"deadline"`
	Explainer    TimeOfDay     `yaml:"explainer"`
	Quote        string        `yaml:"quote"`
}

// DefaultPoster returns the Day 2 "Min and Max in Array" poster.
func DefaultPoster() PosterConfig {
	return PosterConfig{
		Day:          2,
		Title:        "DSA Challenge",
		ProblemTitle: "Min and Max in Array",
		TaskLines: []string{
			"Given an array arr, find the minimum and maximum elements.",
			"Return them as a Pair:",
			"First → Minimum",
			"Second → Maximum",
		},
		Examples: []ExampleCase{
			{Input: []int{3, 2, 1, 56, 10000, 167}, Output: Pair{Min: 1, Max: 10000}},
			{Input: []int{1, 345, 234, 21, 56789}, Output: Pair{Min: 1, Max: 56789}},
			{Input: []int{56789}, Output: Pair{Min: 56789, Max: 56789}},
		},
		Deadline:  TimeOfDay{Hour: 18, Minute: 0},
		Explainer: TimeOfDay{Hour: 20, Minute: 0},
		Quote:     "Consistency is the key — one problem a day takes you a step closer to mastery.",
	}
}
