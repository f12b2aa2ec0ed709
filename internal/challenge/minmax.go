// Package challenge solves the poster's problem so configured examples can
// be checked before they are published.
package challenge

import (
	"errors"
	"fmt"

	"dsaposter/internal/config"
)

// ErrEmptyInput is returned for an example without input values.
var ErrEmptyInput = errors.New("empty input")

// MinMax returns the minimum and maximum of input in a single pass.
func MinMax(input []int) (config.Pair, error) {
	if len(input) == 0 {
		return config.Pair{}, ErrEmptyInput
	}
	p := config.Pair{Min: input[0], Max: input[0]}
	for _, v := range input[1:] {
		if v < p.Min {
			p.Min = v
		}
		if v > p.Max {
			p.Max = v
		}
	}
	return p, nil
}

// Mismatch describes an example whose configured output is wrong.
type Mismatch struct {
	Index int // 1-based, as shown on the poster
	Want  config.Pair
	Got   config.Pair
	Err   error
}

func (m Mismatch) String() string {
	if m.Err != nil {
		return fmt.Sprintf("example %d: %v", m.Index, m.Err)
	}
	return fmt.Sprintf("example %d: configured output (%d, %d), expected (%d, %d)",
		m.Index, m.Got.Min, m.Got.Max, m.Want.Min, m.Want.Max)
}

// Verify recomputes every example and returns the ones that disagree.
func Verify(examples []config.ExampleCase) []Mismatch {
	var out []Mismatch
	for i, ex := range examples {
		want, err := MinMax(ex.Input)
		if err != nil {
			out = append(out, Mismatch{Index: i + 1, Got: ex.Output, Err: err})
			continue
		}
		if want != ex.Output {
			out = append(out, Mismatch{Index: i + 1, Want: want, Got: ex.Output})
		}
	}
	return out
}
