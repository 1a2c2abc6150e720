// Package scores persists the hall of fame. The modern storage is
// SQLite; the legacy codec reads and writes the 175-byte MMHEROES.DAT
// format of the DOS original, so old score files survive the port.
package scores

import (
	"encoding/binary"
	"fmt"

	"github.com/mmheroes/mmheroes-go/internal/game"
)

// The legacy file holds exactly five fixed-size records:
//
//	u8      name length (0..=32)
//	[32]u8  name, CP-866, zero-padded
//	i16 LE  score
const (
	// NumEntries is the size of the hall of fame.
	NumEntries = 5

	maxNameLen = 32
	entrySize  = 1 + maxNameLen + 2

	// LegacyFileSize is the exact length of a valid legacy score file.
	LegacyFileSize = NumEntries * entrySize
)

// DecodeLegacy parses a legacy score file into the hall-of-fame list.
func DecodeLegacy(data []byte) ([]game.HighScore, error) {
	if len(data) != LegacyFileSize {
		return nil, fmt.Errorf("scores: legacy file is %d bytes, want %d", len(data), LegacyFileSize)
	}
	entries := make([]game.HighScore, 0, NumEntries)
	for i := 0; i < NumEntries; i++ {
		rec := data[i*entrySize : (i+1)*entrySize]
		nameLen := int(rec[0])
		if nameLen > maxNameLen {
			return nil, fmt.Errorf("scores: entry %d has name length %d, max %d", i, nameLen, maxNameLen)
		}
		entries = append(entries, game.HighScore{
			Name:  decodeCP866(rec[1 : 1+nameLen]),
			Score: int16(binary.LittleEndian.Uint16(rec[1+maxNameLen:])),
		})
	}
	return entries, nil
}

// EncodeLegacy renders the hall of fame in the legacy format. Longer
// lists are truncated to NumEntries, shorter ones padded with empty
// records; names are truncated to the 32-byte field.
func EncodeLegacy(entries []game.HighScore) []byte {
	out := make([]byte, LegacyFileSize)
	for i := 0; i < NumEntries && i < len(entries); i++ {
		rec := out[i*entrySize : (i+1)*entrySize]
		name := encodeCP866(entries[i].Name)
		if len(name) > maxNameLen {
			name = name[:maxNameLen]
		}
		rec[0] = byte(len(name))
		copy(rec[1:], name)
		binary.LittleEndian.PutUint16(rec[1+maxNameLen:], uint16(entries[i].Score))
	}
	return out
}

// Insert places a new result into the hall of fame, keeping the list
// sorted by score descending and capped at NumEntries. It returns the
// new list and the position of the inserted entry, or -1 when the score
// did not make the cut.
func Insert(entries []game.HighScore, entry game.HighScore) ([]game.HighScore, int) {
	pos := len(entries)
	for i, e := range entries {
		if entry.Score > e.Score {
			pos = i
			break
		}
	}
	if pos >= NumEntries {
		return entries, -1
	}
	entries = append(entries, game.HighScore{})
	copy(entries[pos+1:], entries[pos:])
	entries[pos] = entry
	if len(entries) > NumEntries {
		entries = entries[:NumEntries]
	}
	return entries, pos
}
