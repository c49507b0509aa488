package sample

import "github.com/dretechlabs/vp8predict/internal/pool"

// MBSize is the edge length in luma pixels of a macroblock.
const MBSize = 16

// Raster bundles the three planes (Y full resolution, U and V at half
// resolution on each axis) that make up one decoded frame, plus pre-tiled
// logical views over each plane.
type Raster struct {
	DisplayWidth  int
	DisplayHeight int

	Y, U, V *Grid

	// mbW, mbH are the frame's dimensions in whole macroblocks.
	mbW, mbH int

	// Pre-tiled logical views, built once at construction.
	yMacroblocks [][]View // [row][col], 16x16
	ySubBlocks   [][]View // [row][col], 4x4, W/4 x H/4
	uMacroblocks [][]View // [row][col], 16x16 region of the chroma plane... see NewRaster doc
	uSubBlocks   [][]View // [row][col], 4x4 chroma sub-blocks, W/8 x H/8
	vMacroblocks [][]View
	vSubBlocks   [][]View
}

// NewRaster allocates a Raster sized for displayWidth x displayHeight,
// rounding each plane up to a whole number of macroblocks (16-pixel
// multiples for Y, 8 for U/V). DisplayWidth/DisplayHeight are preserved
// verbatim even though internal storage is larger.
//
// The "U/V macroblock" tiling is the 16x16-pixel luma-grid-aligned tiling
// of the chroma planes: each luma macroblock maps
// to one 8x8 region of U and of V. yMacroblocks therefore has the same
// (row, col) shape as uMacroblocks/vMacroblocks; only the tile size differs
// (16x16 for Y, 8x8 for U/V).
func NewRaster(displayWidth, displayHeight int) (*Raster, error) {
	if displayWidth%2 != 0 || displayHeight%2 != 0 {
		return nil, ErrUnsupportedDimensions
	}

	mbW := (displayWidth + MBSize - 1) / MBSize
	mbH := (displayHeight + MBSize - 1) / MBSize

	yW, yH := mbW*MBSize, mbH*MBSize
	cW, cH := mbW*MBSize/2, mbH*MBSize/2

	r := &Raster{
		DisplayWidth:  displayWidth,
		DisplayHeight: displayHeight,
		Y:             newPooledGrid(yW, yH),
		U:             newPooledGrid(cW, cH),
		V:             newPooledGrid(cW, cH),
		mbW:           mbW,
		mbH:           mbH,
	}
	r.buildTiledViews()
	return r, nil
}

// newPooledGrid allocates a Grid whose backing storage comes from the shared
// byte pool, matching the pooled-decoder-buffer pattern (see
// internal/pool) applied to the per-frame Raster lifecycle.
func newPooledGrid(w, h int) *Grid {
	return &Grid{data: pool.Get(w * h), width: w, height: h, stride: w}
}

// Release returns the Raster's backing storage to the shared pool. The
// caller must not use the Raster, or any View/Predictors derived from it,
// after calling Release.
func (r *Raster) Release() {
	pool.Put(r.Y.data)
	pool.Put(r.U.data)
	pool.Put(r.V.data)
}

func (r *Raster) buildTiledViews() {
	r.yMacroblocks = tile(r.Y, r.mbW, r.mbH, MBSize)
	r.ySubBlocks = tile(r.Y, r.Y.width/4, r.Y.height/4, 4)
	r.uMacroblocks = tile(r.U, r.mbW, r.mbH, MBSize/2)
	r.uSubBlocks = tile(r.U, r.U.width/4, r.U.height/4, 4)
	r.vMacroblocks = tile(r.V, r.mbW, r.mbH, MBSize/2)
	r.vSubBlocks = tile(r.V, r.V.width/4, r.V.height/4, 4)
}

// tile builds a cols x rows grid of s x s Views over g.
func tile(g *Grid, cols, rows, s int) [][]View {
	out := make([][]View, rows)
	for row := 0; row < rows; row++ {
		out[row] = make([]View, cols)
		for col := 0; col < cols; col++ {
			out[row][col] = g.SubView(col*s, row*s, s, s)
		}
	}
	return out
}

// YMacroblock returns the 16x16 luma view for macroblock (col, row).
func (r *Raster) YMacroblock(col, row int) View { return r.yMacroblocks[row][col] }

// YSubBlock returns the 4x4 luma view at sub-block (col, row), in the frame's
// W/4 x H/4 sub-block grid.
func (r *Raster) YSubBlock(col, row int) View { return r.ySubBlocks[row][col] }

// UMacroblock returns the 8x8 U-plane view for macroblock (col, row).
func (r *Raster) UMacroblock(col, row int) View { return r.uMacroblocks[row][col] }

// VMacroblock returns the 8x8 V-plane view for macroblock (col, row).
func (r *Raster) VMacroblock(col, row int) View { return r.vMacroblocks[row][col] }

// USubBlock returns the 4x4 U-plane view at sub-block (col, row), in the
// plane's W/8 x H/8 sub-block grid.
func (r *Raster) USubBlock(col, row int) View { return r.uSubBlocks[row][col] }

// VSubBlock returns the 4x4 V-plane view at sub-block (col, row).
func (r *Raster) VSubBlock(col, row int) View { return r.vSubBlocks[row][col] }

// MacroblocksWide and MacroblocksHigh report the frame's size in whole
// macroblocks (rounded up from the display dimensions).
func (r *Raster) MacroblocksWide() int { return r.mbW }
func (r *Raster) MacroblocksHigh() int { return r.mbH }
