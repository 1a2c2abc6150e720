package render

import "testing"

func TestRoundTrip(t *testing.T) {
	var b CommandBuffer
	b.ClearScreen()
	b.SetColor(White, Black)
	b.MoveCursor(3, 10)
	b.Write("Добро пожаловать!")
	b.Sleep(500)
	b.Flush()

	it := NewIterator(b.Bytes())
	var got []Command
	for {
		cmd, ok, err := it.Next()
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, cmd)
	}

	if len(got) != 6 {
		t.Fatalf("decoded %d commands, expected 6", len(got))
	}
	if got[0].Kind != KindClearScreen {
		t.Errorf("command 0 = %v, expected clear", got[0].Kind)
	}
	if got[1].Kind != KindSetColor || got[1].Fg != White || got[1].Bg != Black {
		t.Errorf("command 1 = %+v", got[1])
	}
	if got[2].Kind != KindMoveCursor || got[2].Line != 3 || got[2].Column != 10 {
		t.Errorf("command 2 = %+v", got[2])
	}
	if got[3].Kind != KindWrite || got[3].Text != "Добро пожаловать!" {
		t.Errorf("command 3 = %+v", got[3])
	}
	if got[4].Kind != KindSleep || got[4].Milliseconds != 500 {
		t.Errorf("command 4 = %+v", got[4])
	}
	if got[5].Kind != KindFlush {
		t.Errorf("command 5 = %v, expected flush", got[5].Kind)
	}
}

func TestTruncatedStream(t *testing.T) {
	var b CommandBuffer
	b.Write("hello")
	// Cut the payload short.
	truncated := b.Bytes()[:4]

	it := NewIterator(truncated)
	if _, _, err := it.Next(); err == nil {
		t.Error("truncated stream should yield an error")
	}
}

func TestUnknownTag(t *testing.T) {
	it := NewIterator([]byte{'Z'})
	if _, _, err := it.Next(); err == nil {
		t.Error("unknown tag should yield an error")
	}
}

func TestInvalidUTF8Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Write of invalid UTF-8 should panic")
		}
	}()
	var b CommandBuffer
	b.Write(string([]byte{0xFF, 0xFE}))
}

func TestColorPacking(t *testing.T) {
	for fg := Color(0); fg < 16; fg++ {
		for bg := Color(0); bg < 16; bg++ {
			gotFg, gotBg := Unpack(Pack(fg, bg))
			if gotFg != fg || gotBg != bg {
				t.Fatalf("Pack/Unpack(%d, %d) = (%d, %d)", fg, bg, gotFg, gotBg)
			}
		}
	}
}

func TestCanvasApplyStream(t *testing.T) {
	var b CommandBuffer
	b.ClearScreen()
	b.MoveCursor(1, 2)
	b.SetColor(Yellow, Black)
	b.Write("Hi")
	b.Flush()

	c := NewCanvas(10, 4)
	if err := c.ApplyStream(b.Bytes()); err != nil {
		t.Fatalf("ApplyStream error: %v", err)
	}

	if got := c.Get(2, 1); got.Rune != 'H' || got.Fg != Yellow {
		t.Errorf("cell (2,1) = %+v", got)
	}
	if got := c.Get(3, 1); got.Rune != 'i' {
		t.Errorf("cell (3,1) = %+v", got)
	}
}

func TestCanvasNewlineAdvancesLine(t *testing.T) {
	c := NewCanvas(10, 4)
	c.Apply(Command{Kind: KindWrite, Text: "ab\ncd"})
	if c.Row(0)[:2] != "ab" {
		t.Errorf("row 0 = %q", c.Row(0))
	}
	if c.Row(1)[:2] != "cd" {
		t.Errorf("row 1 = %q", c.Row(1))
	}
}

func TestCanvasResizePreservesContent(t *testing.T) {
	c := NewCanvas(10, 4)
	c.Apply(Command{Kind: KindWrite, Text: "keep"})
	c.Resize(20, 8)
	if c.Row(0)[:4] != "keep" {
		t.Errorf("row 0 after resize = %q", c.Row(0))
	}
}

func TestCanvasClippingIsSilent(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Apply(Command{Kind: KindMoveCursor, Line: 1, Column: 2})
	c.Apply(Command{Kind: KindWrite, Text: "overflowing"})
	if c.Row(1)[2:4] != "ov" {
		t.Errorf("row 1 = %q", c.Row(1))
	}
}
