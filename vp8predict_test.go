package vp8predict

import (
	"math/rand"
	"testing"
)

func TestNewRasterRejectsOddDimensions(t *testing.T) {
	if _, err := NewRaster(15, 16); err == nil {
		t.Fatal("expected error for odd width")
	}
	if _, err := NewRaster(16, 15); err == nil {
		t.Fatal("expected error for odd height")
	}
}

func TestNewRasterPreservesDisplaySize(t *testing.T) {
	r, err := NewRaster(18, 20)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	if r.DisplayWidth() != 18 || r.DisplayHeight() != 20 {
		t.Fatalf("display size = %dx%d, want 18x20", r.DisplayWidth(), r.DisplayHeight())
	}
	if r.MacroblocksWide() != 2 || r.MacroblocksHigh() != 2 {
		t.Fatalf("macroblock dims = %dx%d, want 2x2", r.MacroblocksWide(), r.MacroblocksHigh())
	}
}

// End-to-end: assembling a macroblock and intra-predicting its whole-Y
// block with V_PRED against a top-of-frame (all-neighbour-absent) location
// gives the synthetic-127 flat output.
func TestMacroblockIntraPredictTopLeftVPredIsFlat127(t *testing.T) {
	r, err := NewRaster(32, 32)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer r.Release()

	mb := r.Macroblock(0, 0)
	y := mb.Y()
	y.IntraPredict(ModeV)
	for row := 0; row < y.Size(); row++ {
		for col := 0; col < y.Size(); col++ {
			if got := y.At(col, row); got != 127 {
				t.Fatalf("(%d,%d) = %d, want 127", col, row, got)
			}
		}
	}
}

// End-to-end: SafeInterPredict with mv=(0,0) reproduces the reference
// rectangle through the public façade.
func TestMacroblockSafeInterPredictZeroMVCopiesReference(t *testing.T) {
	ref, err := NewRaster(32, 32)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer ref.Release()

	rng := rand.New(rand.NewSource(5))
	for row := 0; row < ref.inner.Y.Height(); row++ {
		for col := 0; col < ref.inner.Y.Width(); col++ {
			ref.inner.Y.Set(col, row, uint8(rng.Intn(256)))
		}
	}

	dst, err := NewRaster(32, 32)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer dst.Release()

	mb := dst.Macroblock(1, 0)
	y := mb.Y()
	y.SafeInterPredict(MotionVector{}, ref, 1, 0)

	for row := 0; row < y.Size(); row++ {
		for col := 0; col < y.Size(); col++ {
			want := ref.inner.Y.At(16+col, row)
			if got := y.At(col, row); got != want {
				t.Fatalf("(%d,%d) = %d, want %d", col, row, got, want)
			}
		}
	}
}

func TestMacroblockChromaSubBlockSizes(t *testing.T) {
	r, err := NewRaster(32, 32)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer r.Release()

	mb := r.Macroblock(0, 0)
	if got := mb.U().Size(); got != 8 {
		t.Fatalf("U.Size() = %d, want 8", got)
	}
	if got := mb.USubBlock(1, 1).Size(); got != 4 {
		t.Fatalf("USubBlock.Size() = %d, want 4", got)
	}
	if got := mb.YSubBlock(3, 0).Size(); got != 4 {
		t.Fatalf("YSubBlock.Size() = %d, want 4", got)
	}
}
