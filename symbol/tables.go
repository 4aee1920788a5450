package symbol

// Character tables from ISO/IEC 24778:2008. CTRL_XY entries are
// table-change commands: X names the target table (U/L/M/D/P/B), Y is S
// for shift or L for latch. Tables are fixed-size arrays indexed by the
// raw symbol value, so a lookup is a single bounds check.

var upperTable = [32]string{
	"CTRL_PS", " ", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P",
	"Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z", "CTRL_LL", "CTRL_ML", "CTRL_DL", "CTRL_BS",
}

var lowerTable = [32]string{
	"CTRL_PS", " ", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p",
	"q", "r", "s", "t", "u", "v", "w", "x", "y", "z", "CTRL_US", "CTRL_ML", "CTRL_DL", "CTRL_BS",
}

var mixedTable = [32]string{
	"CTRL_PS", " ", "\x01", "\x02", "\x03", "\x04", "\x05", "\x06", "\x07", "\b", "\t", "\n",
	"\x0b", "\f", "\r", "\x1b", "\x1c", "\x1d", "\x1e", "\x1f", "@", "\\", "^", "_",
	"`", "|", "~", "\x7f", "CTRL_LL", "CTRL_UL", "CTRL_PL", "CTRL_BS",
}

var punctTable = [32]string{
	"FLG(n)", "\r", "\r\n", ". ", ", ", ": ", "!", "\"", "#", "$", "%", "&", "'", "(", ")",
	"*", "+", ",", "-", ".", "/", ":", ";", "<", "=", ">", "?", "[", "]", "{", "}", "CTRL_UL",
}

var digitTable = [16]string{
	"CTRL_PS", " ", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ",", ".", "CTRL_UL", "CTRL_US",
}

// symbolWidth returns the bit width of one symbol in the given mode.
func symbolWidth(m Mode) int {
	if m == Digit {
		return 4
	}
	return 5
}

// tableEntry returns the table string for a mode and raw value, or "" for
// an out-of-range value. Aztec tables are dense, so the empty case is
// purely defensive.
func tableEntry(m Mode, code int) string {
	if code < 0 {
		return ""
	}
	switch m {
	case Upper:
		if code < len(upperTable) {
			return upperTable[code]
		}
	case Lower:
		if code < len(lowerTable) {
			return lowerTable[code]
		}
	case Mixed:
		if code < len(mixedTable) {
			return mixedTable[code]
		}
	case Punct:
		if code < len(punctTable) {
			return punctTable[code]
		}
	case Digit:
		if code < len(digitTable) {
			return digitTable[code]
		}
	}
	return ""
}

// ctrlTarget maps a CTRL_XY table initial to its Mode.
func ctrlTarget(initial byte) Mode {
	switch initial {
	case 'L':
		return Lower
	case 'M':
		return Mixed
	case 'P':
		return Punct
	case 'D':
		return Digit
	case 'B':
		return Binary
	default:
		return Upper
	}
}
