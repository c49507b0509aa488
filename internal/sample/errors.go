package sample

import "errors"

// ErrUnsupportedDimensions is returned by NewRaster when either the display
// width or height is odd.
var ErrUnsupportedDimensions = errors.New("vp8predict: display dimensions must be even")
