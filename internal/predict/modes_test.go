package predict

import (
	"math/rand"
	"testing"

	"github.com/dretechlabs/vp8predict/internal/sample"
)

func newBlockView(s int) sample.View {
	g := sample.NewGrid(s, s)
	return g.View()
}

// V_PRED on a 4x4 block copies the above row into every output row,
// regardless of whether the left neighbour is present.
func TestVerticalPredCopiesAboveRow(t *testing.T) {
	p := Predictors{
		S:          4,
		AboveRow:   []uint8{10, 20, 30, 40},
		LeftColumn: synthetic129[:4],
		AboveLeft:  127,
	}
	dst := newBlockView(4)
	WriteMBMode(ModeV, p, dst)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := []uint8{10, 20, 30, 40}[c]
			if got := dst.At(c, r); got != want {
				t.Fatalf("(%d,%d) = %d, want %d", c, r, got, want)
			}
		}
	}
}

// H_PRED on a 4x4 block copies the left column into every output column,
// regardless of whether the above neighbour is present.
func TestHorizontalPredCopiesLeftColumn(t *testing.T) {
	p := Predictors{
		S:          4,
		AboveRow:   synthetic127[:4],
		LeftColumn: []uint8{50, 60, 70, 80},
		AboveLeft:  127,
	}
	dst := newBlockView(4)
	WriteMBMode(ModeH, p, dst)
	for r := 0; r < 4; r++ {
		want := []uint8{50, 60, 70, 80}[r]
		for c := 0; c < 4; c++ {
			if got := dst.At(c, r); got != want {
				t.Fatalf("(%d,%d) = %d, want %d", c, r, got, want)
			}
		}
	}
}

// DC prediction on a 16x16 block with both neighbours present averages
// all 32 border samples; a flat border of 128 must yield 128 everywhere.
func TestDC16WithBothNeighboursAveragesToFlatValue(t *testing.T) {
	above := make([]uint8, 16)
	left := make([]uint8, 16)
	for i := range above {
		above[i] = 128
		left[i] = 128
	}
	p := Predictors{S: 16, AboveRow: above, LeftColumn: left, AbovePresent: true, LeftPresent: true}
	dst := newBlockView(16)
	WriteMBMode(ModeDC, p, dst)
	for r := 0; r < 16; r++ {
		for c := 0; c < 16; c++ {
			if got := dst.At(c, r); got != 128 {
				t.Fatalf("(%d,%d) = %d, want 128", c, r, got)
			}
		}
	}
}

// TM predicts each sample as above + left - above_left, clamped to uint8.
func TestTrueMotionCombinesAboveLeftAndAboveLeftCorner(t *testing.T) {
	p := Predictors{
		S:          4,
		AboveLeft:  100,
		AboveRow:   []uint8{110, 120, 130, 140},
		LeftColumn: []uint8{105, 115, 125, 135},
	}
	dst := newBlockView(4)
	WriteMBMode(ModeTM, p, dst)
	if got := dst.At(2, 1); got != 145 {
		t.Fatalf("cell(2,1) = %d, want 145", got)
	}
}

// B_LD_PRED averages the above and above-right rows diagonally, one tap
// ahead of the pixel it predicts.
func TestLeftDownPredAveragesAboveAndAboveRight(t *testing.T) {
	p := Predictors{S: 4, AboveRow: []uint8{10, 20, 30, 40}}
	p.UseRow = true
	p.AboveRightRow = []uint8{50, 60, 70, 80}
	dst := newBlockView(4)
	WriteBMode(ModeB_LD, p, dst)
	if got := dst.At(0, 0); got != 20 {
		t.Fatalf("cell(0,0) = %d, want 20", got)
	}
	if got := dst.At(3, 3); got != 78 {
		t.Fatalf("cell(3,3) = %d, want 78", got)
	}
}

// Every mode/size combination, with either neighbour present or absent,
// produces output without panicking; uint8 storage guarantees range.
func TestAllModesProduceValidOutputAcrossNeighbourCombinations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randSlice := func(n int) []uint8 {
		out := make([]uint8, n)
		for i := range out {
			out[i] = uint8(rng.Intn(256))
		}
		return out
	}

	for _, s := range []int{8, 16} {
		for _, mode := range []MBMode{ModeDC, ModeV, ModeH, ModeTM} {
			for _, above := range []bool{true, false} {
				for _, left := range []bool{true, false} {
					p := Predictors{
						S:            s,
						AboveRow:     randSlice(s),
						LeftColumn:   randSlice(s),
						AboveLeft:    uint8(rng.Intn(256)),
						AbovePresent: above,
						LeftPresent:  left,
					}
					dst := newBlockView(s)
					WriteMBMode(mode, p, dst)
					for r := 0; r < s; r++ {
						for c := 0; c < s; c++ {
							_ = dst.At(c, r) // uint8 is always in [0,255]; the check is that this doesn't panic.
						}
					}
				}
			}
		}
	}

	for _, mode := range []BMode{ModeB_DC, ModeB_TM, ModeB_VE, ModeB_HE, ModeB_LD, ModeB_RD, ModeB_VR, ModeB_VL, ModeB_HD, ModeB_HU} {
		p := Predictors{
			S:             4,
			AboveRow:      randSlice(4),
			LeftColumn:    randSlice(4),
			AboveLeft:     uint8(rng.Intn(256)),
			AboveRightRow: randSlice(4),
			UseRow:        true,
		}
		dst := newBlockView(4)
		WriteBMode(mode, p, dst)
	}
}

// B_DC_PRED at the top-left of the frame (both neighbours absent) yields
// 128 everywhere via the synthetic-border formula.
func TestBDCPredAtFrameTopLeftIs128(t *testing.T) {
	p := Build(Context{}, 4)
	dst := newBlockView(4)
	WriteBMode(ModeB_DC, p, dst)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if got := dst.At(c, r); got != 128 {
				t.Fatalf("(%d,%d) = %d, want 128", c, r, got)
			}
		}
	}
}

// TM reproduces a flat neighbourhood exactly: above == left == above_left
// == k implies every output sample is k.
func TestTrueMotionOnFlatNeighbourhoodIsFlat(t *testing.T) {
	for _, k := range []uint8{0, 1, 127, 200, 255} {
		p := Predictors{
			S:          8,
			AboveRow:   repeat(k, 8),
			LeftColumn: repeat(k, 8),
			AboveLeft:  k,
		}
		dst := newBlockView(8)
		WriteMBMode(ModeTM, p, dst)
		for r := 0; r < 8; r++ {
			for c := 0; c < 8; c++ {
				if got := dst.At(c, r); got != k {
					t.Fatalf("k=%d: (%d,%d) = %d, want %d", k, c, r, got, k)
				}
			}
		}
	}
}

func repeat(v uint8, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestBuildDCDefaultsAtFrameTopLeftGiveFlat128(t *testing.T) {
	// The synthetic 127 above and 129 left average to 128 for the
	// both-present DC formula used unconditionally by B_DC_PRED.
	p := Build(Context{}, 4)
	if p.AbovePresent || p.LeftPresent {
		t.Fatalf("expected both neighbours absent")
	}
	sum := sumSlice(p.AboveRow) + sumSlice(p.LeftColumn)
	if got := (sum + 4) >> 3; got != 128 {
		t.Fatalf("DC formula with synthetic borders = %d, want 128", got)
	}
}
