package scores

// CP-866 transcoding for the legacy score file. The DOS original stored
// player names in code page 866; only the Cyrillic block and ASCII are
// mapped, which covers every name the old game could produce.

// cp866High maps bytes 0x80..0xFF to runes. Unassigned box-drawing and
// shade cells decode to the replacement character.
var cp866High = [128]rune{}

func init() {
	for i := range cp866High {
		cp866High[i] = '�'
	}
	// 0x80..0xAF: А..Я, а..п
	for i, r := 0, 'А'; r <= 'п'; i, r = i+1, r+1 {
		cp866High[i] = r
	}
	// 0xE0..0xEF: р..я
	for i, r := 0xE0-0x80, 'р'; r <= 'я'; i, r = i+1, r+1 {
		cp866High[i] = r
	}
	cp866High[0xF0-0x80] = 'Ё'
	cp866High[0xF1-0x80] = 'ё'
}

// decodeCP866 converts a CP-866 byte slice to a string.
func decodeCP866(b []byte) string {
	runes := make([]rune, 0, len(b))
	for _, c := range b {
		if c < 0x80 {
			runes = append(runes, rune(c))
			continue
		}
		runes = append(runes, cp866High[c-0x80])
	}
	return string(runes)
}

// encodeCP866 converts a string to CP-866 bytes. Unmappable runes become
// '?', matching how the DOS original handled foreign input.
func encodeCP866(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r < 0x80:
			out = append(out, byte(r))
		case r >= 'А' && r <= 'п':
			out = append(out, byte(0x80+r-'А'))
		case r >= 'р' && r <= 'я':
			out = append(out, byte(0xE0+r-'р'))
		case r == 'Ё':
			out = append(out, 0xF0)
		case r == 'ё':
			out = append(out, 0xF1)
		default:
			out = append(out, '?')
		}
	}
	return out
}
