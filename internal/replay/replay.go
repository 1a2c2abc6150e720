// Package replay encodes recorded input sequences as compact text, so a
// full game session can be stored in a log line and replayed bit-for-bit
// against the same seed.
//
// The format is a run-length encoding over four glyphs: '↑' for key-up,
// '↓' for key-down, 'r' for enter and '.' for any other key. A decimal
// prefix repeats the following glyph, so "5r" means five enter presses
// and "↑↑3.r" means up, up, three other keys and an enter.
package replay

import (
	"fmt"
	"strings"

	"github.com/mmheroes/mmheroes-go/internal/game"
)

const (
	glyphUp    = '↑'
	glyphDown  = '↓'
	glyphEnter = 'r'
	glyphOther = '.'
)

// Parse decodes a recording into the input sequence it represents.
func Parse(s string) ([]game.Input, error) {
	var inputs []game.Input
	count := 0
	hasCount := false
	for i, r := range s {
		if r >= '0' && r <= '9' {
			count = count*10 + int(r-'0')
			hasCount = true
			continue
		}
		var input game.Input
		switch r {
		case glyphUp:
			input = game.KeyUp
		case glyphDown:
			input = game.KeyDown
		case glyphEnter:
			input = game.Enter
		case glyphOther:
			input = game.Other
		default:
			return nil, fmt.Errorf("replay: unexpected character %q at offset %d", r, i)
		}
		n := 1
		if hasCount {
			if count == 0 {
				return nil, fmt.Errorf("replay: zero repeat count at offset %d", i)
			}
			n = count
		}
		for j := 0; j < n; j++ {
			inputs = append(inputs, input)
		}
		count = 0
		hasCount = false
	}
	if hasCount {
		return nil, fmt.Errorf("replay: trailing repeat count %d", count)
	}
	return inputs, nil
}

// Recorder accumulates inputs and renders them in the recording format,
// collapsing runs of the same input into a counted glyph.
type Recorder struct {
	inputs []game.Input
}

// Record appends one input. Only the four replayable inputs are
// accepted; recording EOF is a programmer error.
func (r *Recorder) Record(input game.Input) {
	if input == game.EOF {
		panic("replay: cannot record EOF")
	}
	r.inputs = append(r.inputs, input)
}

// Len returns the number of recorded inputs.
func (r *Recorder) Len() int { return len(r.inputs) }

// String renders the recording.
func (r *Recorder) String() string {
	var sb strings.Builder
	i := 0
	for i < len(r.inputs) {
		j := i
		for j < len(r.inputs) && r.inputs[j] == r.inputs[i] {
			j++
		}
		if run := j - i; run > 1 {
			fmt.Fprintf(&sb, "%d", run)
		}
		sb.WriteRune(glyph(r.inputs[i]))
		i = j
	}
	return sb.String()
}

func glyph(input game.Input) rune {
	switch input {
	case game.KeyUp:
		return glyphUp
	case game.KeyDown:
		return glyphDown
	case game.Enter:
		return glyphEnter
	case game.Other:
		return glyphOther
	default:
		panic(fmt.Sprintf("replay: input %v has no glyph", input))
	}
}
