package replay

import (
	"testing"

	"github.com/mmheroes/mmheroes-go/internal/game"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want []game.Input
	}{
		{"", nil},
		{"r", []game.Input{game.Enter}},
		{"↑↓r.", []game.Input{game.KeyUp, game.KeyDown, game.Enter, game.Other}},
		{"3r", []game.Input{game.Enter, game.Enter, game.Enter}},
		{"2↓r", []game.Input{game.KeyDown, game.KeyDown, game.Enter}},
		{"12.", repeat(game.Other, 12)},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", c.in, err)
			continue
		}
		if len(got) != len(c.want) {
			t.Errorf("Parse(%q): got %d inputs, want %d", c.in, len(got), len(c.want))
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("Parse(%q)[%d]: got %v, want %v", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"x", "3", "r5", "0r", "2↑3"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected an error", in)
		}
	}
}

func TestRecorderCollapsesRuns(t *testing.T) {
	var r Recorder
	for _, in := range []game.Input{
		game.Enter, game.Enter, game.Enter,
		game.KeyDown,
		game.Other, game.Other,
		game.KeyUp,
	} {
		r.Record(in)
	}
	if got, want := r.String(), "3r↓2.↑"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	seqs := [][]game.Input{
		{game.Enter},
		{game.KeyDown, game.KeyDown, game.Enter, game.Other, game.KeyUp},
		repeat(game.Enter, 40),
	}
	for _, seq := range seqs {
		var r Recorder
		for _, in := range seq {
			r.Record(in)
		}
		decoded, err := Parse(r.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", r.String(), err)
		}
		if len(decoded) != len(seq) {
			t.Fatalf("round trip of %q: got %d inputs, want %d", r.String(), len(decoded), len(seq))
		}
		for i := range seq {
			if decoded[i] != seq[i] {
				t.Fatalf("round trip of %q diverges at %d", r.String(), i)
			}
		}
	}
}

func TestRecordEOFPanics(t *testing.T) {
	var r Recorder
	defer func() {
		if recover() == nil {
			t.Fatal("recording EOF did not panic")
		}
	}()
	r.Record(game.EOF)
}

func repeat(in game.Input, n int) []game.Input {
	out := make([]game.Input, n)
	for i := range out {
		out[i] = in
	}
	return out
}
