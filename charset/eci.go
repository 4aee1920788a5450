// Package charset maps Aztec ECI designators (Extended Channel
// Interpretation values signalled by FLG(n)) to character encodings and
// decodes binary-run bytes under them.
package charset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Encoding is one ECI-designated character set. A nil enc means the bytes
// map directly to Unicode code points (ISO-8859-1 / default behavior).
type Encoding struct {
	ECI  int
	Name string
	enc  encoding.Encoding
}

var byValue = map[int]*Encoding{}

func register(eci int, name string, enc encoding.Encoding) *Encoding {
	e := &Encoding{ECI: eci, Name: name, enc: enc}
	byValue[eci] = e
	return e
}

// Default is the encoding in effect before any FLG(n) designator:
// ISO-8859-1, where each byte is its Unicode code point.
var Default = register(3, "ISO-8859-1", nil)

func init() {
	register(0, "CP437", charmap.CodePage437)
	register(1, "ISO-8859-1", nil)
	register(2, "CP437", charmap.CodePage437)
	register(4, "ISO-8859-2", charmap.ISO8859_2)
	register(5, "ISO-8859-3", charmap.ISO8859_3)
	register(6, "ISO-8859-4", charmap.ISO8859_4)
	register(7, "ISO-8859-5", charmap.ISO8859_5)
	register(9, "ISO-8859-7", charmap.ISO8859_7)
	register(10, "ISO-8859-8", charmap.ISO8859_8)
	register(11, "ISO-8859-9", charmap.ISO8859_9)
	register(13, "ISO-8859-11", charmap.Windows874)
	register(15, "ISO-8859-13", charmap.ISO8859_13)
	register(17, "ISO-8859-15", charmap.ISO8859_15)
	register(18, "ISO-8859-16", charmap.ISO8859_16)
	register(20, "Shift_JIS", japanese.ShiftJIS)
	register(21, "windows-1250", charmap.Windows1250)
	register(22, "windows-1251", charmap.Windows1251)
	register(23, "windows-1252", charmap.Windows1252)
	register(24, "windows-1256", charmap.Windows1256)
	register(26, "UTF-8", encoding.Nop)
	register(27, "US-ASCII", nil)
	register(28, "Big5", traditionalchinese.Big5)
	register(29, "GB18030", simplifiedchinese.GB18030)
	register(30, "EUC-KR", korean.EUCKR)
	register(170, "US-ASCII", nil)
}

// ByValue returns the encoding for an ECI value. Unknown values report
// false; callers fall back to Default rather than failing the decode.
func ByValue(eci int) (*Encoding, bool) {
	e, ok := byValue[eci]
	return e, ok
}

// DecodeByte converts a single binary-run byte to text under this
// encoding. Bytes the encoding cannot decode in isolation (multi-byte
// sets) fall back to the direct code-point mapping so provenance stays
// one record per byte.
func (e *Encoding) DecodeByte(b byte) string {
	if e == nil || e.enc == nil {
		return string(rune(b))
	}
	if e.enc == encoding.Nop {
		return string([]byte{b})
	}
	out, err := e.enc.NewDecoder().Bytes([]byte{b})
	if err != nil || len(out) == 0 {
		return string(rune(b))
	}
	return string(out)
}
