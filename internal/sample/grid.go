// Package sample implements the Sample Grid and Block View layer: a mutable
// 2D buffer of 8-bit samples plus non-owning rectangular views into it.
//
// Grid owns its backing storage; View never does. A View's stride always
// equals its parent Grid's full row stride, even when the view is narrower
// than the grid — pointer arithmetic in the inter predictor relies on
// stride >= width.
package sample

// Grid is a mutable 2D buffer of unsigned 8-bit samples with a fixed width
// and height and an internal stride >= width.
type Grid struct {
	data   []uint8
	width  int
	height int
	stride int
}

// NewGrid allocates a Grid of the given width and height. The stride equals
// the width; Grid never pads rows beyond what the caller asked for.
func NewGrid(width, height int) *Grid {
	return &Grid{
		data:   make([]uint8, width*height),
		width:  width,
		height: height,
		stride: width,
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Stride() int { return g.stride }

// At returns the sample at (col, row).
func (g *Grid) At(col, row int) uint8 {
	return g.data[row*g.stride+col]
}

// Set writes the sample at (col, row).
func (g *Grid) Set(col, row int, v uint8) {
	g.data[row*g.stride+col] = v
}

// Fill sets every sample in the grid to v.
func (g *Grid) Fill(v uint8) {
	View{data: g.data, offset: 0, width: g.width, height: g.height, stride: g.stride}.Fill(v)
}

// View returns a View over the whole grid.
func (g *Grid) View() View {
	return View{data: g.data, offset: 0, width: g.width, height: g.height, stride: g.stride}
}

// Row returns a 1xW view of row r.
func (g *Grid) Row(r int) View {
	return g.View().Row(r)
}

// Column returns an Hx1 view of column c.
func (g *Grid) Column(c int) View {
	return g.View().Column(c)
}

// SubView returns a w x h view anchored at (x, y).
func (g *Grid) SubView(x, y, w, h int) View {
	return g.View().SubView(x, y, w, h)
}

// View is a non-owning rectangular window into a Grid's storage. Views share
// the underlying array with their parent Grid and with each other.
type View struct {
	data   []uint8
	offset int
	width  int
	height int
	stride int
}

func (v View) Width() int  { return v.width }
func (v View) Height() int { return v.height }
func (v View) Stride() int { return v.stride }

// At returns the sample at (col, row), local to this view.
func (v View) At(col, row int) uint8 {
	return v.data[v.offset+row*v.stride+col]
}

// Set writes the sample at (col, row), local to this view.
func (v View) Set(col, row int, val uint8) {
	v.data[v.offset+row*v.stride+col] = val
}

// Fill sets every sample in the view to val.
func (v View) Fill(val uint8) {
	for j := 0; j < v.height; j++ {
		rowOff := v.offset + j*v.stride
		row := v.data[rowOff : rowOff+v.width]
		for i := range row {
			row[i] = val
		}
	}
}

// ForAllIJ applies f to every cell, passing its (col, row) local to the view
// and read/write access to that single sample.
func (v View) ForAllIJ(f func(col, row int, get func() uint8, set func(uint8))) {
	for j := 0; j < v.height; j++ {
		for i := 0; i < v.width; i++ {
			col, row := i, j
			f(col, row,
				func() uint8 { return v.At(col, row) },
				func(val uint8) { v.Set(col, row, val) },
			)
		}
	}
}

// Row returns the 1xW sub-view at local row r.
func (v View) Row(r int) View {
	return View{data: v.data, offset: v.offset + r*v.stride, width: v.width, height: 1, stride: v.stride}
}

// Column returns the Hx1 sub-view at local column c.
func (v View) Column(c int) View {
	return View{data: v.data, offset: v.offset + c, width: 1, height: v.height, stride: v.stride}
}

// SubView returns the w x h sub-view anchored at local (x, y).
func (v View) SubView(x, y, w, h int) View {
	return View{data: v.data, offset: v.offset + y*v.stride + x, width: w, height: h, stride: v.stride}
}

// Sum is the set of signed integer types wide enough to accumulate a 1-D
// view of 8-bit samples (up to 16*255 = 4080 for the widest row/column).
type Sum interface {
	~int | ~int32 | ~int64
}

// SumView accumulates every sample of a 1-D (row or column) view into T.
func SumView[T Sum](v View) T {
	var total T
	if v.height == 1 {
		row := v.data[v.offset : v.offset+v.width]
		for _, s := range row {
			total += T(s)
		}
		return total
	}
	for j := 0; j < v.height; j++ {
		total += T(v.data[v.offset+j*v.stride])
	}
	return total
}
