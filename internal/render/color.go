package render

// Color identifies one of the sixteen text-mode colors used by the
// rendering commands. The low nibble matches the classic DOS palette the
// original game was written for.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	Gray
	DarkGray
	BrightBlue
	BrightGreen
	BrightCyan
	BrightRed
	BrightMagenta
	Yellow
	White
)

// Pack combines a foreground and background color into the single byte
// carried by a SetColor command.
func Pack(fg, bg Color) byte {
	return byte(fg)<<4 | byte(bg)&0x0F
}

// Unpack splits a packed color byte.
func Unpack(b byte) (fg, bg Color) {
	return Color(b >> 4), Color(b & 0x0F)
}
