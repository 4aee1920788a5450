package symbol

import (
	"strings"

	"github.com/barcodelab/aztecscope/charset"
)

// Result is a fully decoded codeword stream: the ordered record list plus
// the assembled text. Character and BinaryByte records point into Text via
// their TextPos fields.
type Result struct {
	Symbols []Symbol
	Text    string
}

// DecodeCodewords runs the character state machine over the data portion
// of a codeword stream and appends one opaque ECC record per remaining
// codeword. codewordBits is the per-codeword width and dataCodewords the
// count of leading data codewords; both come from the structural geometry.
//
// Decoding never fails: a value with no table entry becomes an
// Undecodable character and a malformed FLG(n) is recorded with ECI -1.
// Bit positions are relative to the padding-stripped data bit stream, so
// ECC spans continue past the data boundary at their natural offsets.
func DecodeCodewords(codewords []int, codewordBits, dataCodewords int) *Result {
	if dataCodewords > len(codewords) {
		dataCodewords = len(codewords)
	}
	bits := flattenBits(codewords[:dataCodewords], codewordBits)

	d := decoder{bits: bits}
	d.run()

	for j := dataCodewords; j < len(codewords); j++ {
		d.emit(ECC{Info: Span{
			Index:    len(d.symbols),
			Value:    codewords[j],
			Width:    codewordBits,
			StartBit: j * codewordBits,
			EndBit:   j*codewordBits + codewordBits,
		}})
	}

	return &Result{Symbols: d.symbols, Text: d.text.String()}
}

type decoder struct {
	bits    []bool
	pos     int
	symbols []Symbol
	text    strings.Builder
	eci     *charset.Encoding
}

func (d *decoder) emit(s Symbol) {
	d.symbols = append(d.symbols, s)
}

// read consumes n bits MSB first. Reads past the end of the stream are
// zero-padded, matching reference decoders that treat a truncated trailing
// field as zero bits.
func (d *decoder) read(n int) int {
	v := 0
	for i := 0; i < n; i++ {
		v <<= 1
		if d.pos < len(d.bits) && d.bits[d.pos] {
			v |= 1
		}
		d.pos++
	}
	if d.pos > len(d.bits) {
		d.pos = len(d.bits)
	}
	return v
}

// span builds the common record fields for a value read at start.
func (d *decoder) span(start, value, width int) Span {
	end := start + width
	if end > len(d.bits) {
		end = len(d.bits)
	}
	return Span{
		Index:    len(d.symbols),
		Value:    value,
		Width:    width,
		StartBit: start,
		EndBit:   end,
	}
}

func (d *decoder) run() {
	latch := Upper
	shift := Upper

	for {
		width := symbolWidth(shift)
		if len(d.bits)-d.pos < width {
			return
		}
		start := d.pos
		code := d.read(width)
		entry := tableEntry(shift, code)

		switch {
		case entry == "":
			d.emit(Character{
				Info:        d.span(start, code, width),
				Mode:        shift,
				Text:        "?",
				TextPos:     d.text.Len(),
				Undecodable: true,
			})
			d.text.WriteString("?")
			shift = latch

		case entry == "FLG(n)":
			d.readFlag(start, code, width, shift)
			shift = latch

		case strings.HasPrefix(entry, "CTRL_"):
			target := ctrlTarget(entry[5])
			info := d.span(start, code, width)
			if target == Binary {
				d.readBinaryRun(info)
				shift = latch
				break
			}
			if entry[6] == 'L' {
				d.emit(Latch{Info: info, From: shift, To: target})
				latch = target
				shift = target
			} else {
				d.emit(Shift{Info: info, From: shift, To: target})
				shift = target
			}

		default:
			d.emit(Character{
				Info:    d.span(start, code, width),
				Mode:    shift,
				Text:    entry,
				TextPos: d.text.Len(),
			})
			d.text.WriteString(entry)
			shift = latch
		}
	}
}

// readFlag handles FLG(n): a 3-bit flag count, then for 1 <= n <= 6 that
// many 4-bit digits forming a decimal ECI designator. n = 0 is the FNC1
// marker and n = 7 is reserved; both are recorded without text. A digit
// outside the DIGIT-table range for '0'..'9' invalidates the designator,
// but all n digit fields are still consumed so the stream stays in sync
// with the designator format and the record's span matches the bits read.
func (d *decoder) readFlag(start, code, width int, mode Mode) {
	n := d.read(3)
	eci := -1
	if n >= 1 && n <= 6 {
		eci = 0
		for i := 0; i < n; i++ {
			digit := d.read(4)
			if digit < 2 || digit > 11 {
				eci = -1
			}
			if eci >= 0 {
				eci = eci*10 + (digit - 2)
			}
		}
	}

	total := width + 3
	if n >= 1 && n <= 6 {
		total += 4 * n
	}
	d.emit(Flag{Info: d.span(start, code, total), N: n, ECI: eci})

	if eci >= 0 {
		if enc, ok := charset.ByValue(eci); ok {
			d.eci = enc
		}
	}
}

// readBinaryRun handles CTRL_BS: a 5-bit length, or for runs longer than
// 31 bytes a zero length followed by an 11-bit length biased by 31, then
// the raw bytes. Each byte becomes its own record, decoded under the
// current ECI character set.
func (d *decoder) readBinaryRun(ctrl Span) {
	length := d.read(5)
	fieldBits := ctrl.Width + 5
	if length == 0 {
		length = d.read(11) + 31
		fieldBits += 11
	}
	d.emit(BinaryShift{Info: d.span(ctrl.StartBit, ctrl.Value, fieldBits), Length: length})

	for i := 0; i < length && d.pos < len(d.bits); i++ {
		start := d.pos
		b := byte(d.read(8))
		text := d.eci.DecodeByte(b)
		d.emit(BinaryByte{
			Info:    d.span(start, int(b), 8),
			Byte:    b,
			Text:    text,
			TextPos: d.text.Len(),
		})
		d.text.WriteString(text)
	}
}

// flattenBits expands codewords into their bit stream, MSB first.
func flattenBits(codewords []int, codewordBits int) []bool {
	bits := make([]bool, 0, len(codewords)*codewordBits)
	for _, w := range codewords {
		for j := codewordBits - 1; j >= 0; j-- {
			bits = append(bits, (w>>uint(j))&1 == 1)
		}
	}
	return bits
}
