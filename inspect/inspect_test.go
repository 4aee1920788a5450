package inspect

import (
	"image"
	"image/color"
	"testing"

	"github.com/barcodelab/aztecscope"
	"github.com/barcodelab/aztecscope/grid"
	"github.com/barcodelab/aztecscope/layout"
	"github.com/barcodelab/aztecscope/symbol"
)

// buildCompactAB places a compact 1-layer symbol carrying "AB" (upper-table
// codes 2 and 3, packed with two filler bits into codewords 4 and 12). The
// ECC codewords are arbitrary nonzero values, not real Reed-Solomon words.
func buildCompactAB(t *testing.T) (*grid.Grid, []int) {
	t.Helper()

	cw := []int{4, 12}
	for j := 2; j < 17; j++ {
		cw = append(cw, (j*7)%64)
	}

	g := grid.New(15)
	c := 7
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			if cheb(dx, dy)%2 == 0 {
				g.Set(c+dx, c+dy)
			}
		}
	}
	g.Set(c-5, c-5)
	g.Set(c-4, c-5)
	g.Set(c-5, c-4)
	g.Set(c+5, c-5)

	// Mode message: layers-1 = 0, data codewords-1 = 1, zero check bits.
	modeBits := make([]bool, 28)
	modeBits[7] = true
	for i, co := range layout.ModeCoords(15, true) {
		if modeBits[i] {
			g.Set(co.X, co.Y)
		}
	}

	stream := []bool{true, true} // padding filler
	for _, w := range cw {
		for j := 5; j >= 0; j-- {
			stream = append(stream, (w>>uint(j))&1 == 1)
		}
	}
	for i, co := range layout.DataCoords(1, true) {
		if stream[i] {
			g.Set(co.X, co.Y)
		}
	}
	return g, cw
}

func cheb(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func TestInspectGrid(t *testing.T) {
	g, cw := buildCompactAB(t)

	res, err := InspectGrid(g)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	if res.Text != "AB" {
		t.Fatalf("text = %q, want %q", res.Text, "AB")
	}
	if !res.Geometry.Compact || res.Geometry.Layers != 1 || res.Geometry.DataCodewords != 2 {
		t.Fatalf("geometry = %+v", res.Geometry)
	}
	if len(res.Codewords) != len(cw) {
		t.Fatalf("%d codewords, want %d", len(res.Codewords), len(cw))
	}
	for i := range cw {
		if res.Codewords[i] != cw[i] {
			t.Errorf("codeword %d = %d, want %d", i, res.Codewords[i], cw[i])
		}
	}
	// 2 characters + 15 ecc records.
	if len(res.Symbols) != 17 {
		t.Errorf("%d symbols, want 17", len(res.Symbols))
	}
}

func TestFindSymbolAtBit(t *testing.T) {
	g, _ := buildCompactAB(t)
	res, err := InspectGrid(g)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	s, ok := res.FindSymbolAtBit(7)
	if !ok {
		t.Fatal("bit 7 not covered")
	}
	ch, isChar := s.(symbol.Character)
	if !isChar || ch.Text != "B" {
		t.Fatalf("bit 7 belongs to %+v, want character B", s)
	}
	if ch.Info.StartBit != 5 || ch.Info.EndBit != 10 {
		t.Errorf("character B span = %+v, want [5,10)", ch.Info)
	}

	// Bits 10 and 11 are codeword filler after the last character; no
	// record covers them.
	if _, ok := res.FindSymbolAtBit(11); ok {
		t.Error("filler bit 11 reported covered")
	}

	s, ok = res.FindSymbolAtBit(12)
	if !ok {
		t.Fatal("first ecc bit not covered")
	}
	if _, isECC := s.(symbol.ECC); !isECC {
		t.Errorf("bit 12 belongs to %T, want ECC", s)
	}

	if _, ok := res.FindSymbolAtBit(-1); ok {
		t.Error("negative bit reported covered")
	}
	if _, ok := res.FindSymbolAtBit(100000); ok {
		t.Error("out-of-range bit reported covered")
	}
}

func TestModulesForBitRange(t *testing.T) {
	g, _ := buildCompactAB(t)
	res, err := InspectGrid(g)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	coords := res.ModulesForBitRange(0, 5)
	if len(coords) != 5 {
		t.Fatalf("%d coords for character A, want 5", len(coords))
	}
	for i, co := range coords {
		m := res.Modules[co.Y][co.X]
		if m.CodewordIndex != i/6 || m.BitOffset != i%6 {
			t.Errorf("coord %d maps to module %+v", i, m)
		}
	}

	if got := res.ModulesForBitRange(-10, 3); len(got) != 3 {
		t.Errorf("clamped range start gave %d coords, want 3", len(got))
	}
	if got := res.ModulesForBitRange(100, 100000); len(got) != len(res.DataBits)-100 {
		t.Errorf("clamped range end gave %d coords", len(got))
	}
	if got := res.ModulesForBitRange(5, 5); got != nil {
		t.Error("empty range returned coords")
	}
}

func TestInspectImage(t *testing.T) {
	g, _ := buildCompactAB(t)

	const modPx = 8
	size := 15 * modPx
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := uint8(255)
			if g.Get(x/modPx, y/modPx) {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}

	fs := float64(size)
	corners := [4]aztecscope.Point{{X: 0, Y: 0}, {X: fs, Y: 0}, {X: fs, Y: fs}, {X: 0, Y: fs}}
	res, err := Inspect(img, corners, &aztecscope.Options{Dimension: 15})
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if res.Text != "AB" {
		t.Errorf("text = %q, want %q", res.Text, "AB")
	}
	if res.Threshold == 0 {
		t.Error("threshold not recorded")
	}
	if !res.Grid.Equals(g) {
		t.Error("sampled grid differs from source")
	}
}
