// Package predict implements the Neighbour Predictors bundle and the intra
// prediction modes: given a block's Context (references to its
// reconstructed above/left/above-left/above-right neighbours), it builds a
// Predictors bundle and writes predicted samples for a requested mode.
package predict

import "github.com/dretechlabs/vp8predict/internal/sample"

// synthetic127/129 are the VP8-specified default edge values used when a
// neighbour is outside the frame. One instance per orientation suffices for
// the whole process, so these are read-only package singletons
// rather than allocated per block.
var (
	synthetic127 = [sample.MBSize]uint8{127, 127, 127, 127, 127, 127, 127, 127, 127, 127, 127, 127, 127, 127, 127, 127}
	synthetic129 = [sample.MBSize]uint8{129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129}
)

// Context describes a block's four neighbour slots. A nil field means that
// neighbour is absent (outside the frame, or not yet reconstructed).
type Context struct {
	Above      *sample.View
	Left       *sample.View
	AboveLeft  *sample.View
	AboveRight *sample.View
}

// Predictors is the per-block bundle of neighbour samples used by the intra
// prediction writers. It is built once from a Context and an edge size S and
// is immutable thereafter, except for the macroblock-assembly fix-up on
// AboveRightRow/AboveRightBR/UseRow.
type Predictors struct {
	S int

	AboveRow   []uint8 // length S
	LeftColumn []uint8 // length S
	AboveLeft  uint8

	// AbovePresent/LeftPresent record whether the real neighbour existed,
	// even though AboveRow/LeftColumn already carry the synthetic default
	// when it didn't. DC prediction for mb_mode needs to tell "real
	// neighbour" apart from "synthetic border"; the 4x4
	// B_DC_PRED variant deliberately ignores these two fields.
	AbovePresent bool
	LeftPresent  bool

	// AboveRightRow is valid when UseRow; otherwise AboveRightBR is the
	// substitute bottom-right pixel used for every above-right sample.
	AboveRightRow []uint8 // length S
	AboveRightBR  uint8
	UseRow        bool
}

// Build constructs the Predictors for a block of edge size s from ctx.
func Build(ctx Context, s int) Predictors {
	p := Predictors{S: s}

	if ctx.Above != nil {
		p.AboveRow = readRow(*ctx.Above, s-1, s)
		p.AbovePresent = true
	} else {
		p.AboveRow = synthetic127[:s]
	}

	if ctx.Left != nil {
		p.LeftColumn = readColumn(*ctx.Left, s-1, s)
		p.LeftPresent = true
	} else {
		p.LeftColumn = synthetic129[:s]
	}

	switch {
	case ctx.AboveLeft != nil:
		p.AboveLeft = ctx.AboveLeft.At(s-1, s-1)
	case ctx.Above != nil:
		p.AboveLeft = 129
	default:
		p.AboveLeft = 127
	}

	switch {
	case ctx.AboveRight != nil:
		p.UseRow = true
		p.AboveRightRow = readRow(*ctx.AboveRight, s-1, s)
	case ctx.Above != nil:
		p.UseRow = false
		p.AboveRightBR = ctx.Above.At(s-1, s-1)
	default:
		p.UseRow = false
		p.AboveRightBR = 127
	}

	return p
}

// readRow snapshots columns 0..n-1 of row r of v into a freshly
// allocated slice. Neighbours are fully reconstructed by the time a block's
// Predictors are built, so the snapshot never goes stale.
func readRow(v sample.View, r, n int) []uint8 {
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		out[i] = v.At(i, r)
	}
	return out
}

// readColumn snapshots column c of v into a freshly allocated slice.
func readColumn(v sample.View, c, n int) []uint8 {
	out := make([]uint8, n)
	for j := 0; j < n; j++ {
		out[j] = v.At(c, j)
	}
	return out
}

// Above returns the above-row/above-left/above-right projection for column
// c in [-1, 2S). c == -1 yields the above-left corner; 0 <= c < S indexes
// the above row; S <= c < 2S indexes the above-right region (row-indexed
// when UseRow, otherwise the constant bottom-right substitute).
func (p Predictors) Above(c int) uint8 {
	switch {
	case c == -1:
		return p.AboveLeft
	case c >= 0 && c < p.S:
		return p.AboveRow[c]
	default:
		idx := c - p.S
		if p.UseRow {
			return p.AboveRightRow[idx]
		}
		return p.AboveRightBR
	}
}

// Left returns the left-column/above-left projection for row r in [-1, S).
func (p Predictors) Left(r int) uint8 {
	if r == -1 {
		return p.AboveLeft
	}
	return p.LeftColumn[r]
}

// East linearises the L-shaped neighbour sequence used by the 4x4 diagonal
// modes: n in [0, 2S] walks left(3), left(2), ..., left(-1), above(0), ...,
// above(2S-5). The constants 3/4/5 are normative per the prediction design and apply
// to the 4x4-only diagonal modes (S == 4).
func (p Predictors) East(n int) uint8 {
	if n <= 4 {
		return p.Left(3 - n)
	}
	return p.Above(n - 5)
}
