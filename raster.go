// Package vp8predict is the public façade over the VP8-compatible pixel
// prediction core: allocate a Raster, assemble the Macroblock at each
// raster-scan position, and drive intra or inter prediction for each
// contained block.
package vp8predict

import (
	"github.com/dretechlabs/vp8predict/internal/mbassembly"
	"github.com/dretechlabs/vp8predict/internal/motion"
	"github.com/dretechlabs/vp8predict/internal/predict"
	"github.com/dretechlabs/vp8predict/internal/sample"
)

// ErrUnsupportedDimensions is returned by NewRaster when either dimension is
// odd.
var ErrUnsupportedDimensions = sample.ErrUnsupportedDimensions

// MotionVector re-exports internal/motion's eighth-pel motion vector type
// at the package boundary so callers never import internal packages.
type MotionVector = motion.MotionVector

// MBMode and BMode enumerate the intra prediction modes for whole
// macroblock-sized blocks and 4x4 luma sub-blocks respectively.
type MBMode = predict.MBMode
type BMode = predict.BMode

const (
	ModeDC = predict.ModeDC
	ModeV  = predict.ModeV
	ModeH  = predict.ModeH
	ModeTM = predict.ModeTM
)

const (
	ModeB_DC = predict.ModeB_DC
	ModeB_TM = predict.ModeB_TM
	ModeB_VE = predict.ModeB_VE
	ModeB_HE = predict.ModeB_HE
	ModeB_LD = predict.ModeB_LD
	ModeB_RD = predict.ModeB_RD
	ModeB_VR = predict.ModeB_VR
	ModeB_VL = predict.ModeB_VL
	ModeB_HD = predict.ModeB_HD
	ModeB_HU = predict.ModeB_HU
)

// Raster bundles one decoded frame's Y/U/V planes and exposes macroblock
// assembly and per-block prediction.
type Raster struct {
	inner *sample.Raster
}

// NewRaster allocates a Raster sized for displayWidth x displayHeight,
// rounding internal storage up to whole macroblocks.
func NewRaster(displayWidth, displayHeight int) (*Raster, error) {
	r, err := sample.NewRaster(displayWidth, displayHeight)
	if err != nil {
		return nil, err
	}
	return &Raster{inner: r}, nil
}

// Release returns the Raster's backing storage to the shared pool. The
// Raster, and any Macroblock or Block derived from it, must not be used
// again afterward.
func (r *Raster) Release() { r.inner.Release() }

// DisplayWidth and DisplayHeight report the dimensions passed to NewRaster,
// independent of the macroblock-rounded internal storage size.
func (r *Raster) DisplayWidth() int  { return r.inner.DisplayWidth }
func (r *Raster) DisplayHeight() int { return r.inner.DisplayHeight }

// MacroblocksWide and MacroblocksHigh report the frame's size in whole
// macroblocks.
func (r *Raster) MacroblocksWide() int { return r.inner.MacroblocksWide() }
func (r *Raster) MacroblocksHigh() int { return r.inner.MacroblocksHigh() }

// Macroblock assembles the Macroblock composite view at (col, row),
// including the right-edge above-right-region fix-up.
func (r *Raster) Macroblock(col, row int) *Macroblock {
	return &Macroblock{inner: mbassembly.New(r.inner, col, row)}
}
