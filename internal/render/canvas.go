package render

import "strings"

// Cell is one character cell with its color pair.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Canvas is a 2D cell buffer the terminal layer replays the command
// stream onto. It decouples the game output from the terminal: the core
// emits commands, the canvas accumulates them, and the platform turns the
// resulting grid into styled terminal output.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell

	curLine int
	curCol  int
	fg      Color
	bg      Color
}

// NewCanvas creates a canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height, fg: Gray, bg: Black}
	c.allocate()
	c.Clear()
	return c
}

func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in characters.
func (c *Canvas) Height() int { return c.height }

// Resize changes the canvas dimensions, preserving content where possible.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	oldCells := c.cells
	oldW, oldH := c.width, c.height

	c.width = width
	c.height = height
	c.allocate()
	c.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(c.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the canvas with spaces and resets the cursor.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' ', Fg: c.fg, Bg: c.bg}
		}
	}
	c.curLine = 0
	c.curCol = 0
}

// Get returns the cell at the given position. Out-of-bounds positions
// yield a blank cell.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// Apply replays one decoded command onto the canvas. ClearScreen, Write,
// MoveCursor and SetColor affect the grid; Flush and Sleep are pacing
// hints for the terminal and are ignored here.
func (c *Canvas) Apply(cmd Command) {
	switch cmd.Kind {
	case KindClearScreen:
		c.Clear()
	case KindMoveCursor:
		c.curLine = cmd.Line
		c.curCol = cmd.Column
	case KindSetColor:
		c.fg = cmd.Fg
		c.bg = cmd.Bg
	case KindWrite:
		c.write(cmd.Text)
	case KindFlush, KindSleep:
	}
}

// ApplyStream decodes and replays an entire encoded stream.
func (c *Canvas) ApplyStream(buf []byte) error {
	it := NewIterator(buf)
	for {
		cmd, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		c.Apply(cmd)
	}
}

func (c *Canvas) write(text string) {
	for _, r := range text {
		if r == '\n' {
			c.curLine++
			c.curCol = 0
			continue
		}
		if c.curCol >= 0 && c.curCol < c.width && c.curLine >= 0 && c.curLine < c.height {
			c.cells[c.curLine][c.curCol] = Cell{Rune: r, Fg: c.fg, Bg: c.bg}
		}
		c.curCol++
	}
}

// Row returns the text of one row, without colors.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for x := 0; x < c.width; x++ {
		sb.WriteRune(c.cells[y][x].Rune)
	}
	return sb.String()
}

// String converts the canvas to a plain string, rows joined by newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(c.Row(y))
	}
	return sb.String()
}
