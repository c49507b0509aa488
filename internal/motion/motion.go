// Package motion implements inter prediction: resampling a reference Sample
// Grid at a fractional motion vector via a separable 6-tap sub-pel filter,
// with edge extension at frame boundaries.
//
// The filter table and separable two-pass structure follow RFC 6386
// §14.4's sub-pel filter. Resolving every sample access through a single
// clamp-to-edge accessor, rather than building a padded copy of the
// reference up front, avoids negative/out-of-range slice indices without
// duplicating the filter loop for the edge and interior cases.
package motion

import (
	"fmt"

	"github.com/dretechlabs/vp8predict/internal/sample"
)

// MotionVector is a pair of signed integers in eighth-pel units: x>>3 and
// y>>3 are the integer-pel offsets, x&7 and y&7 are the sub-pel phases
// (0..7).
type MotionVector struct {
	X, Y int
}

// String renders a MotionVector as its integer-pel offset plus sub-pel
// phases, so test failures show "mv(+2,-1 phase 3,0)" rather than a bare
// struct dump of raw eighth-pel units.
func (mv MotionVector) String() string {
	dx, dy := mv.IntegerOffset()
	px, py := mv.Phases()
	return fmt.Sprintf("mv(%+d,%+d phase %d,%d)", dx, dy, px, py)
}

// IntegerOffset returns the motion vector's whole-pixel displacement.
func (mv MotionVector) IntegerOffset() (dx, dy int) {
	return mv.X >> 3, mv.Y >> 3
}

// Phases returns the motion vector's sub-pel phases in [0, 8).
func (mv MotionVector) Phases() (px, py int) {
	return mv.X & 7, mv.Y & 7
}

// sixTapFilters is the table of 8 six-tap filters indexed by a 3-bit phase,
// normative per the prediction design / RFC 6386 §14.4.
var sixTapFilters = [8][6]int16{
	{0, 0, 128, 0, 0, 0},
	{0, -6, 123, 12, -1, 0},
	{2, -11, 108, 36, -8, 1},
	{0, -9, 93, 50, -6, 0},
	{3, -16, 77, 77, -16, 3},
	{0, -6, 50, 93, -9, 0},
	{1, -8, 36, 108, -11, 2},
	{0, -1, 12, 123, -6, 0},
}

// applyFilter folds six taps against six samples with the normative
// +64 >> 7 rounding.
func applyFilter(taps [6]int16, s [6]int) uint8 {
	sum := 0
	for i, t := range taps {
		sum += s[i] * int(t)
	}
	return sample.Clip255((sum + 64) >> 7)
}

// edgeExtendedAt reads ref at (col, row), clamping each coordinate
// independently to the grid's valid range.
func edgeExtendedAt(ref *sample.Grid, col, row int) uint8 {
	if col < 0 {
		col = 0
	} else if col >= ref.Width() {
		col = ref.Width() - 1
	}
	if row < 0 {
		row = 0
	} else if row >= ref.Height() {
		row = ref.Height() - 1
	}
	return ref.At(col, row)
}

// needsEdgeExtension reports whether the 6-tap window around the S x S
// block at (srcCol, srcRow) would read outside ref.
func needsEdgeExtension(ref *sample.Grid, srcCol, srcRow, s int) bool {
	return srcCol-2 < 0 || srcCol+s+3 > ref.Width() ||
		srcRow-2 < 0 || srcRow+s+3 > ref.Height()
}

// SafeInterPredict writes the S x S block at dst by resampling ref at the
// fractional position implied by mv, anchored at block (blockCol, blockRow)
// in S-sized units. Edge extension is applied whenever the 6-tap window
// would read outside ref; this is a normal case, not an error.
func SafeInterPredict(dst sample.View, mv MotionVector, ref *sample.Grid, blockCol, blockRow, s int) {
	dx, dy := mv.IntegerOffset()
	mx, my := mv.Phases()

	srcCol := blockCol*s + dx
	srcRow := blockRow*s + dy

	at := sampleAt(ref, srcCol, srcRow, s)

	if mx == 0 && my == 0 {
		for r := 0; r < s; r++ {
			for c := 0; c < s; c++ {
				dst.Set(c, r, at(c, r))
			}
		}
		return
	}

	// Horizontal pass: filter over rows -2..s+2 (s+5 rows), producing an
	// intermediate (s+5) x s buffer. Values may exceed uint8 range
	// momentarily in the true 6-tap implementation, but VP8's reference
	// filter clamps to 8 bits after each pass, so the
	// intermediate buffer is also uint8.
	hTaps := sixTapFilters[mx]
	var horiz [21][16]uint8 // max S+5=21 rows, max S=16 cols
	for r := -2; r < s+3; r++ {
		for c := 0; c < s; c++ {
			var taps [6]int
			for k := 0; k < 6; k++ {
				taps[k] = int(at(c-2+k, r))
			}
			horiz[r+2][c] = applyFilter(hTaps, taps)
		}
	}

	if my == 0 {
		for r := 0; r < s; r++ {
			for c := 0; c < s; c++ {
				dst.Set(c, r, horiz[r+2][c])
			}
		}
		return
	}

	// Vertical pass over the intermediate buffer.
	vTaps := sixTapFilters[my]
	for r := 0; r < s; r++ {
		for c := 0; c < s; c++ {
			var taps [6]int
			for k := 0; k < 6; k++ {
				taps[k] = int(horiz[r+k][c])
			}
			dst.Set(c, r, applyFilter(vTaps, taps))
		}
	}
}

// sampleAt returns an accessor for ref samples relative to the block's
// origin (srcCol, srcRow), choosing the edge-extended path only when the
// 6-tap window would read outside ref. The two paths
// share identical arithmetic; only sample acquisition differs.
func sampleAt(ref *sample.Grid, srcCol, srcRow, s int) func(c, r int) uint8 {
	if needsEdgeExtension(ref, srcCol, srcRow, s) {
		return func(c, r int) uint8 {
			return edgeExtendedAt(ref, srcCol+c, srcRow+r)
		}
	}
	return func(c, r int) uint8 {
		return ref.At(srcCol+c, srcRow+r)
	}
}
