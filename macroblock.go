package vp8predict

import (
	"github.com/dretechlabs/vp8predict/internal/mbassembly"
	"github.com/dretechlabs/vp8predict/internal/motion"
	"github.com/dretechlabs/vp8predict/internal/predict"
	"github.com/dretechlabs/vp8predict/internal/sample"
)

// Macroblock is the composite view assembled at one raster-scan position:
// the 16x16 Y block, 8x8 U/V blocks, and the Y 4x4 / U,V 2x2 sub-block
// grids, each carrying its own Predictors.
type Macroblock struct {
	inner *mbassembly.Macroblock
}

// Plane identifies which of a Raster's three planes a Block was sourced
// from, needed by SafeInterPredict since a 4x4 sub-block's size alone
// doesn't say whether it's luma or chroma.
type Plane int

const (
	PlaneY Plane = iota
	PlaneU
	PlaneV
)

// Block is one predictable unit: a sample view plus the neighbour
// Predictors built for it.
type Block struct {
	inner mbassembly.Block
	plane Plane
}

func wrap(b mbassembly.Block, plane Plane) *Block { return &Block{inner: b, plane: plane} }

// Y, U, V return the whole-macroblock luma and chroma blocks.
func (mb *Macroblock) Y() *Block { return wrap(mb.inner.Y, PlaneY) }
func (mb *Macroblock) U() *Block { return wrap(mb.inner.U, PlaneU) }
func (mb *Macroblock) V() *Block { return wrap(mb.inner.V, PlaneV) }

// YSubBlock returns the 4x4 luma sub-block at (col, row) in [0,4)x[0,4)
// within this macroblock.
func (mb *Macroblock) YSubBlock(col, row int) *Block { return wrap(mb.inner.Y4[row][col], PlaneY) }

// USubBlock and VSubBlock return the 4x4 chroma sub-blocks at (col, row) in
// [0,2)x[0,2) within this macroblock.
func (mb *Macroblock) USubBlock(col, row int) *Block { return wrap(mb.inner.U2[row][col], PlaneU) }
func (mb *Macroblock) VSubBlock(col, row int) *Block { return wrap(mb.inner.V2[row][col], PlaneV) }

// Size reports the block's edge length (4, 8, or 16).
func (b *Block) Size() int { return b.inner.S }

// At reads the predicted (or, before any prediction call, reconstructed
// residual-less) sample at (col, row) within the block.
func (b *Block) At(col, row int) uint8 { return b.inner.View.At(col, row) }

// Set writes a raw sample at (col, row) within the block, bypassing
// prediction. Used to seed a Raster with test or reference content before
// prediction runs.
func (b *Block) Set(col, row int, v uint8) { b.inner.View.Set(col, row, v) }

// IntraPredict writes this block's samples using mode, the mb_mode writer
// for 8x8/16x16 blocks.
func (b *Block) IntraPredict(mode MBMode) {
	predict.WriteMBMode(mode, b.inner.Predictors, b.inner.View)
}

// IntraPredictSubBlock is the 4x4-only analogue of IntraPredict, for the
// ten b_mode diagonal/edge predictors that only exist at that size.
func (b *Block) IntraPredictSubBlock(mode BMode) {
	predict.WriteBMode(mode, b.inner.Predictors, b.inner.View)
}

// SafeInterPredict writes this block's samples by resampling the matching
// plane of ref at the fractional position implied by mv, anchored at
// (blockCol, blockRow) in this block's own S x S units, with edge
// extension at ref's boundaries.
func (b *Block) SafeInterPredict(mv MotionVector, ref *Raster, blockCol, blockRow int) {
	motion.SafeInterPredict(b.inner.View, mv, b.refPlane(ref), blockCol, blockRow, b.inner.S)
}

func (b *Block) refPlane(ref *Raster) *sample.Grid {
	switch b.plane {
	case PlaneU:
		return ref.inner.U
	case PlaneV:
		return ref.inner.V
	default:
		return ref.inner.Y
	}
}
