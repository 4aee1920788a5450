// Package symbol decodes Aztec codeword streams with the five-mode
// character state machine, emitting one record per decoded unit with exact
// bit provenance: every record carries the half-open [StartBit, EndBit)
// range it consumed in the data bit stream.
package symbol

// Mode identifies one of the five character tables, plus the transient
// binary state entered by a binary shift.
type Mode int

const (
	Upper Mode = iota
	Lower
	Mixed
	Punct
	Digit
	Binary
)

// String returns the conventional table name.
func (m Mode) String() string {
	switch m {
	case Upper:
		return "UPPER"
	case Lower:
		return "LOWER"
	case Mixed:
		return "MIXED"
	case Punct:
		return "PUNCT"
	case Digit:
		return "DIGIT"
	case Binary:
		return "BINARY"
	default:
		return "UNKNOWN"
	}
}

// Span carries the fields common to every decoded record: the 0-based
// sequence index, the raw value read, the bit width of that value, and the
// absolute [StartBit, EndBit) range consumed in the data bit stream
// (post-padding-strip; ECC records continue past the data boundary).
type Span struct {
	Index    int
	Value    int
	Width    int
	StartBit int
	EndBit   int
}

// Symbol is one record of the decoded stream. The concrete type is one of
// Character, Shift, Latch, BinaryShift, BinaryByte, Flag, or ECC; the
// interface is sealed so a type switch over those seven is exhaustive.
type Symbol interface {
	Span() Span
	sealed()
}

// Character is a literal decoded by a table lookup. Text holds one or two
// bytes (punctuation pairs like ". " decode as a unit); TextPos is the
// 0-based position of Text in the assembled output string. Undecodable
// marks the defensive placeholder emitted for a table miss.
type Character struct {
	Info        Span
	Mode        Mode
	Text        string
	TextPos     int
	Undecodable bool
}

// Shift applies To for exactly the next symbol, then reverts to From.
type Shift struct {
	Info     Span
	From, To Mode
}

// Latch changes the persistent mode from From to To.
type Latch struct {
	Info     Span
	From, To Mode
}

// BinaryShift is the control sequence starting a binary run: the shift
// code plus its 5-bit length field and, for long runs, the extra 11-bit
// field. Length is the number of bytes that follow.
type BinaryShift struct {
	Info   Span
	Length int
}

// BinaryByte is one raw byte of a binary run, decoded to Text under the
// character set designated by the most recent ECI (default ISO-8859-1).
type BinaryByte struct {
	Info    Span
	Byte    byte
	Text    string
	TextPos int
}

// Flag is an FLG(n) control code. N is the 3-bit flag value: 0 is the FNC1
// function marker, 1..6 designate an ECI read from that many 4-bit digits,
// and 7 is reserved. ECI is -1 unless 1 <= N <= 6 and the digits were
// well-formed.
type Flag struct {
	Info Span
	N    int
	ECI  int
}

// ECC is an opaque error-correction codeword beyond the data boundary. It
// carries no character interpretation.
type ECC struct {
	Info Span
}

func (s Character) Span() Span   { return s.Info }
func (s Shift) Span() Span       { return s.Info }
func (s Latch) Span() Span       { return s.Info }
func (s BinaryShift) Span() Span { return s.Info }
func (s BinaryByte) Span() Span  { return s.Info }
func (s Flag) Span() Span        { return s.Info }
func (s ECC) Span() Span         { return s.Info }

func (Character) sealed()   {}
func (Shift) sealed()       {}
func (Latch) sealed()       {}
func (BinaryShift) sealed() {}
func (BinaryByte) sealed()  {}
func (Flag) sealed()        {}
func (ECC) sealed()         {}
