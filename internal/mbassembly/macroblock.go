// Package mbassembly composes per-macroblock Block Views, Neighbour
// Predictors, and installs the right-edge fix-up.
package mbassembly

import (
	"github.com/dretechlabs/vp8predict/internal/predict"
	"github.com/dretechlabs/vp8predict/internal/sample"
)

// Block bundles one block's view, the Context it was built from, and its
// Predictors. S is the block's edge size (4, 8, or 16).
type Block struct {
	S          int
	View       sample.View
	Context    predict.Context
	Predictors predict.Predictors
}

// Macroblock composes the 16x16 Y, 8x8 U/V views, and the Y 4x4 / U,V 2x2
// sub-block grids for one macroblock location in a Raster.
type Macroblock struct {
	Col, Row int

	Y  Block
	U  Block
	V  Block
	Y4 [4][4]Block // [row][col], 4x4 luma sub-blocks
	U2 [2][2]Block // [row][col], 4x4 chroma sub-blocks
	V2 [2][2]Block
}

// raster is the minimal surface mbassembly needs from a Raster. It is
// satisfied by sample.Raster; defining it here (instead of importing the
// concrete type's method set requirement into the signature) keeps this
// package's dependency on sample narrow and explicit.
type raster interface {
	YMacroblock(col, row int) sample.View
	YSubBlock(col, row int) sample.View
	UMacroblock(col, row int) sample.View
	VMacroblock(col, row int) sample.View
	USubBlock(col, row int) sample.View
	VSubBlock(col, row int) sample.View
	MacroblocksWide() int
	MacroblocksHigh() int
}

// New assembles the Macroblock at (col, row) in r, including the column-3
// above-right fix-up for the luma 4x4 sub-block grid.
func New(r raster, col, row int) *Macroblock {
	mb := &Macroblock{Col: col, Row: row}

	mb.Y = buildBlock(16, r.YMacroblock(col, row), mbYContext(r, col, row))
	mb.U = buildBlock(8, r.UMacroblock(col, row), mbChromaContext(r, col, row, r.UMacroblock))
	mb.V = buildBlock(8, r.VMacroblock(col, row), mbChromaContext(r, col, row, r.VMacroblock))

	// Y sub-block grid: 4 cols + 0..3, 4 rows + 0..3, in the frame's W/4 x
	// H/4 luma sub-block grid.
	baseCol, baseRow := 4*col, 4*row
	for sr := 0; sr < 4; sr++ {
		for sc := 0; sc < 4; sc++ {
			ctx := ySubBlockContext(r, baseCol, baseRow, sc, sr)
			mb.Y4[sr][sc] = buildBlock(4, r.YSubBlock(baseCol+sc, baseRow+sr), ctx)
		}
	}

	// Right-edge fix-up: sub-blocks (3, 1..3) share (3, 0)'s above-right
	// region, because their true above-right neighbours aren't decoded yet
	// during raster-scan decode of this macroblock.
	topRight := mb.Y4[0][3].Predictors
	for sr := 1; sr <= 3; sr++ {
		mb.Y4[sr][3].Predictors.UseRow = topRight.UseRow
		mb.Y4[sr][3].Predictors.AboveRightRow = topRight.AboveRightRow
		mb.Y4[sr][3].Predictors.AboveRightBR = topRight.AboveRightBR
	}

	ubCol, ubRow := 2*col, 2*row
	for sr := 0; sr < 2; sr++ {
		for sc := 0; sc < 2; sc++ {
			mb.U2[sr][sc] = buildBlock(4, r.USubBlock(ubCol+sc, ubRow+sr), chromaSubBlockContext(r, ubCol, ubRow, sc, sr, r.USubBlock))
			mb.V2[sr][sc] = buildBlock(4, r.VSubBlock(ubCol+sc, ubRow+sr), chromaSubBlockContext(r, ubCol, ubRow, sc, sr, r.VSubBlock))
		}
	}

	return mb
}

func buildBlock(s int, v sample.View, ctx predict.Context) Block {
	return Block{S: s, View: v, Context: ctx, Predictors: predict.Build(ctx, s)}
}

func viewPtr(v sample.View) *sample.View { return &v }

// mbYContext builds the Context for a whole 16x16 luma macroblock: above,
// left, above-left, and above-right are the neighbouring macroblocks' Y
// views (when present).
func mbYContext(r raster, col, row int) predict.Context {
	var ctx predict.Context
	if row > 0 {
		v := r.YMacroblock(col, row-1)
		ctx.Above = viewPtr(v)
		if col+1 < r.MacroblocksWide() {
			ar := r.YMacroblock(col+1, row-1)
			ctx.AboveRight = viewPtr(ar)
		}
	}
	if col > 0 {
		v := r.YMacroblock(col-1, row)
		ctx.Left = viewPtr(v)
	}
	if row > 0 && col > 0 {
		v := r.YMacroblock(col-1, row-1)
		ctx.AboveLeft = viewPtr(v)
	}
	return ctx
}

// mbChromaContext is the 8x8 analogue of mbYContext, parameterized by which
// plane accessor (U or V) to use.
func mbChromaContext(r raster, col, row int, plane func(col, row int) sample.View) predict.Context {
	var ctx predict.Context
	if row > 0 {
		v := plane(col, row-1)
		ctx.Above = viewPtr(v)
		if col+1 < r.MacroblocksWide() {
			ar := plane(col+1, row-1)
			ctx.AboveRight = viewPtr(ar)
		}
	}
	if col > 0 {
		v := plane(col-1, row)
		ctx.Left = viewPtr(v)
	}
	if row > 0 && col > 0 {
		v := plane(col-1, row-1)
		ctx.AboveLeft = viewPtr(v)
	}
	return ctx
}

// ySubBlockContext builds the Context for luma sub-block (baseCol+sc,
// baseRow+sr) within the frame's 4x4 sub-block grid. Sub-blocks at the
// macroblock's top/left edge (sr==0 / sc==0) look outside the macroblock
// into the already-reconstructed neighbour macroblock or the frame border;
// interior sub-blocks look at the previously-decoded sub-block within the
// same macroblock, per the left-to-right, top-to-bottom raster-scan order.
func ySubBlockContext(r raster, baseCol, baseRow, sc, sr int) predict.Context {
	var ctx predict.Context
	col, row := baseCol+sc, baseRow+sr

	if row > 0 {
		v := r.YSubBlock(col, row-1)
		ctx.Above = viewPtr(v)
	}
	if col > 0 {
		v := r.YSubBlock(col-1, row)
		ctx.Left = viewPtr(v)
	}
	if row > 0 && col > 0 {
		v := r.YSubBlock(col-1, row-1)
		ctx.AboveLeft = viewPtr(v)
	}

	// Above-right: for sc < 3 within the same macroblock row sr==0, or
	// generally whenever (col+1, row-1) is already reconstructed. At the
	// macroblock's right edge (sc==3) the true above-right neighbour
	// belongs to a macroblock that is not yet decoded except for sr==0
	// (whose above-right is the macroblock diagonally above-right); that
	// case, and the column-3 fix-up for sr in {1,2,3}, is handled by the
	// caller (mbassembly.New).
	if row > 0 {
		arCol, arRow := col+1, row-1
		if arCol < 4*r.MacroblocksWide() && aboveRightAvailable(sc, sr) {
			v := r.YSubBlock(arCol, arRow)
			ctx.AboveRight = viewPtr(v)
		}
	}
	return ctx
}

// aboveRightAvailable reports whether sub-block (baseCol+sc, *+sr)'s true
// above-right neighbour has already been reconstructed under raster-scan,
// left-to-right top-to-bottom decode of 4x4 sub-blocks within a macroblock.
// Sub-blocks in sc==3, sr>0 never have it available from
// within this macroblock (their above-right would belong to the
// not-yet-decoded macroblock to the right); the caller installs the fix-up
// for those afterward. Frame-right-edge availability (is arCol even inside
// the sub-block grid) is checked separately by the caller.
func aboveRightAvailable(sc, sr int) bool {
	if sr == 0 {
		return true
	}
	return sc != 3
}

// chromaSubBlockContext is the 4x4 analogue of ySubBlockContext for the U/V
// 2x2 sub-block grids (the right-edge fix-up applies to luma sub-blocks
// only).
func chromaSubBlockContext(r raster, baseCol, baseRow, sc, sr int, plane func(col, row int) sample.View) predict.Context {
	var ctx predict.Context
	col, row := baseCol+sc, baseRow+sr

	if row > 0 {
		v := plane(col, row-1)
		ctx.Above = viewPtr(v)
	}
	if col > 0 {
		v := plane(col-1, row)
		ctx.Left = viewPtr(v)
	}
	if row > 0 && col > 0 {
		v := plane(col-1, row-1)
		ctx.AboveLeft = viewPtr(v)
	}
	if row > 0 && col+1 < 2*r.MacroblocksWide() {
		v := plane(col+1, row-1)
		ctx.AboveRight = viewPtr(v)
	}
	return ctx
}
