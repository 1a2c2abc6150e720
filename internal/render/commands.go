// Package render defines the compact rendering-command stream the game
// core emits and the cell canvas the terminal layer replays it onto.
//
// Each command is a byte-tagged record. The stream is append-only: the
// core's responsibility ends at writing commands into a CommandBuffer;
// decoding and actual drawing happen in the platform layer.
package render

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Command tags. Multi-byte payload integers are native-endian.
const (
	tagClearScreen = 'C'
	tagFlush       = 'F'
	tagWrite       = 'W' // u16 length, then UTF-8 bytes
	tagMoveCursor  = 'M' // line (u8), column (u8)
	tagSetColor    = 'S' // one byte: (fg<<4) | (bg & 0x0F)
	tagSleep       = 's' // i32 milliseconds
)

// MaxWriteLen bounds the payload of a single Write command.
const MaxWriteLen = 65535

// CommandKind discriminates decoded commands.
type CommandKind int

const (
	KindClearScreen CommandKind = iota
	KindFlush
	KindWrite
	KindMoveCursor
	KindSetColor
	KindSleep
)

// Command is one decoded rendering command.
type Command struct {
	Kind CommandKind

	Text         string // Write
	Line, Column int    // MoveCursor
	Fg, Bg       Color  // SetColor
	Milliseconds int32  // Sleep
}

// CommandBuffer accumulates encoded rendering commands.
// The zero value is an empty buffer ready for use.
type CommandBuffer struct {
	buf []byte
}

// Bytes returns the encoded stream. The slice aliases the buffer.
func (b *CommandBuffer) Bytes() []byte { return b.buf }

// Len returns the encoded length in bytes.
func (b *CommandBuffer) Len() int { return len(b.buf) }

// Reset discards all accumulated commands.
func (b *CommandBuffer) Reset() { b.buf = b.buf[:0] }

// ClearScreen appends a clear-screen command.
func (b *CommandBuffer) ClearScreen() {
	b.buf = append(b.buf, tagClearScreen)
}

// Flush appends a flush command, asking the terminal layer to present
// everything drawn so far.
func (b *CommandBuffer) Flush() {
	b.buf = append(b.buf, tagFlush)
}

// Write appends a text command. The text must be valid UTF-8 and at most
// MaxWriteLen bytes; violating either is a programmer error.
func (b *CommandBuffer) Write(text string) {
	if len(text) > MaxWriteLen {
		panic(fmt.Sprintf("render: write of %d bytes exceeds %d", len(text), MaxWriteLen))
	}
	if !utf8.ValidString(text) {
		panic("render: write payload is not valid UTF-8")
	}
	b.buf = append(b.buf, tagWrite)
	b.buf = binary.NativeEndian.AppendUint16(b.buf, uint16(len(text)))
	b.buf = append(b.buf, text...)
}

// Writef appends a formatted text command.
func (b *CommandBuffer) Writef(format string, args ...any) {
	b.Write(fmt.Sprintf(format, args...))
}

// MoveCursor appends a cursor-positioning command.
func (b *CommandBuffer) MoveCursor(line, column int) {
	b.buf = append(b.buf, tagMoveCursor, byte(line), byte(column))
}

// SetColor appends a color command.
func (b *CommandBuffer) SetColor(fg, bg Color) {
	b.buf = append(b.buf, tagSetColor, Pack(fg, bg))
}

// Sleep appends a pacing hint for the terminal layer. It is not a
// scheduling directive: the logic core never waits on it.
func (b *CommandBuffer) Sleep(ms int32) {
	b.buf = append(b.buf, tagSleep)
	b.buf = binary.NativeEndian.AppendUint32(b.buf, uint32(ms))
}

// Iterator decodes a command stream back into structured records.
type Iterator struct {
	buf []byte
	pos int
}

// NewIterator creates an iterator over an encoded stream.
func NewIterator(buf []byte) *Iterator {
	return &Iterator{buf: buf}
}

// Next decodes the next command. It returns false when the stream is
// exhausted, and an error when the stream is truncated or carries an
// unknown tag.
func (it *Iterator) Next() (Command, bool, error) {
	if it.pos >= len(it.buf) {
		return Command{}, false, nil
	}
	tag := it.buf[it.pos]
	it.pos++
	switch tag {
	case tagClearScreen:
		return Command{Kind: KindClearScreen}, true, nil
	case tagFlush:
		return Command{Kind: KindFlush}, true, nil
	case tagWrite:
		if it.pos+2 > len(it.buf) {
			return Command{}, false, fmt.Errorf("render: truncated write header at offset %d", it.pos)
		}
		n := int(binary.NativeEndian.Uint16(it.buf[it.pos:]))
		it.pos += 2
		if it.pos+n > len(it.buf) {
			return Command{}, false, fmt.Errorf("render: truncated write payload at offset %d", it.pos)
		}
		text := string(it.buf[it.pos : it.pos+n])
		it.pos += n
		if !utf8.ValidString(text) {
			return Command{}, false, fmt.Errorf("render: write payload is not valid UTF-8")
		}
		return Command{Kind: KindWrite, Text: text}, true, nil
	case tagMoveCursor:
		if it.pos+2 > len(it.buf) {
			return Command{}, false, fmt.Errorf("render: truncated move at offset %d", it.pos)
		}
		c := Command{Kind: KindMoveCursor, Line: int(it.buf[it.pos]), Column: int(it.buf[it.pos+1])}
		it.pos += 2
		return c, true, nil
	case tagSetColor:
		if it.pos >= len(it.buf) {
			return Command{}, false, fmt.Errorf("render: truncated color at offset %d", it.pos)
		}
		fg, bg := Unpack(it.buf[it.pos])
		it.pos++
		return Command{Kind: KindSetColor, Fg: fg, Bg: bg}, true, nil
	case tagSleep:
		if it.pos+4 > len(it.buf) {
			return Command{}, false, fmt.Errorf("render: truncated sleep at offset %d", it.pos)
		}
		ms := int32(binary.NativeEndian.Uint32(it.buf[it.pos:]))
		it.pos += 4
		return Command{Kind: KindSleep, Milliseconds: ms}, true, nil
	default:
		return Command{}, false, fmt.Errorf("render: unknown command tag %q at offset %d", tag, it.pos-1)
	}
}
