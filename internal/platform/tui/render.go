package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmheroes/mmheroes-go/internal/render"
)

// ansiColors maps the DOS palette to the standard 16 ANSI colors.
var ansiColors = map[render.Color]lipgloss.Color{
	render.Black:         lipgloss.Color("0"),
	render.Blue:          lipgloss.Color("4"),
	render.Green:         lipgloss.Color("2"),
	render.Cyan:          lipgloss.Color("6"),
	render.Red:           lipgloss.Color("1"),
	render.Magenta:       lipgloss.Color("5"),
	render.Brown:         lipgloss.Color("3"),
	render.Gray:          lipgloss.Color("7"),
	render.DarkGray:      lipgloss.Color("8"),
	render.BrightBlue:    lipgloss.Color("12"),
	render.BrightGreen:   lipgloss.Color("10"),
	render.BrightCyan:    lipgloss.Color("14"),
	render.BrightRed:     lipgloss.Color("9"),
	render.BrightMagenta: lipgloss.Color("13"),
	render.Yellow:        lipgloss.Color("11"),
	render.White:         lipgloss.Color("15"),
}

// RenderCanvas converts a canvas to a styled string for display. Adjacent
// cells with the same color pair are grouped to minimize escape sequences.
func RenderCanvas(c *render.Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := 0; y < c.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < c.Width() {
			cell := c.Get(x, y)
			fg, bg := cell.Fg, cell.Bg

			var run strings.Builder
			for x < c.Width() {
				cell = c.Get(x, y)
				if cell.Fg != fg || cell.Bg != bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style := lipgloss.NewStyle().Foreground(ansiColors[fg])
			if bg != render.Black {
				style = style.Background(ansiColors[bg])
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
