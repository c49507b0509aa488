package predict

import (
	"github.com/dretechlabs/vp8predict/internal/sample"
	"github.com/dretechlabs/vp8predict/internal/vperr"
)

// MBMode is the intra prediction mode for 16x16 luma and 8x8 chroma blocks.
type MBMode int

const (
	ModeDC MBMode = iota
	ModeV
	ModeH
	ModeTM
)

// BMode is the intra prediction mode for 4x4 luma sub-blocks.
type BMode int

const (
	ModeB_DC BMode = iota
	ModeB_TM
	ModeB_VE
	ModeB_HE
	ModeB_LD
	ModeB_RD
	ModeB_VR
	ModeB_VL
	ModeB_HD
	ModeB_HU
)

// avg3 returns (a + 2*b + c + 2) >> 2.
func avg3(a, b, c uint8) uint8 {
	return uint8((int(a) + 2*int(b) + int(c) + 2) >> 2)
}

// avg2 returns (a + b + 1) >> 1.
func avg2(a, b uint8) uint8 {
	return uint8((int(a) + int(b) + 1) >> 1)
}

func log2Size(s int) int {
	switch s {
	case 4:
		return 2
	case 8:
		return 3
	case 16:
		return 4
	default:
		vperr.Assert(false, "unsupported block size %d", s)
		return 0
	}
}

func sumSlice(s []uint8) int {
	total := 0
	for _, v := range s {
		total += int(v)
	}
	return total
}

// WriteMBMode writes an S x S block into dst for the given mb_mode. S is 8 or
// 16 for mb_mode blocks; S == 4 is also accepted, and DC asserts S in
// {4, 8, 16}.
func WriteMBMode(mode MBMode, p Predictors, dst sample.View) {
	switch mode {
	case ModeDC:
		writeDC(p, dst)
	case ModeV:
		writeVertical(p, dst)
	case ModeH:
		writeHorizontal(p, dst)
	case ModeTM:
		writeTrueMotion(p, dst)
	default:
		vperr.Assert(false, "invalid mb_mode %d", mode)
	}
}

// writeDC implements the mb_mode / 8x8-chroma DC rule, which varies its
// divisor and which neighbour sum it uses based on which neighbour is
// actually present (not merely the synthetic-filled Predictors fields).
func writeDC(p Predictors, dst sample.View) {
	l2 := log2Size(p.S)
	var v uint8
	switch {
	case p.AbovePresent && p.LeftPresent:
		sum := sumSlice(p.AboveRow) + sumSlice(p.LeftColumn)
		v = uint8((sum + (1 << l2)) >> (l2 + 1))
	case p.AbovePresent:
		sum := sumSlice(p.AboveRow)
		v = uint8((sum + (1 << (l2 - 1))) >> l2)
	case p.LeftPresent:
		sum := sumSlice(p.LeftColumn)
		v = uint8((sum + (1 << (l2 - 1))) >> l2)
	default:
		v = 128
	}
	dst.Fill(v)
}

func writeVertical(p Predictors, dst sample.View) {
	for c := 0; c < p.S; c++ {
		val := p.AboveRow[c]
		for r := 0; r < p.S; r++ {
			dst.Set(c, r, val)
		}
	}
}

func writeHorizontal(p Predictors, dst sample.View) {
	for r := 0; r < p.S; r++ {
		val := p.LeftColumn[r]
		for c := 0; c < p.S; c++ {
			dst.Set(c, r, val)
		}
	}
}

func writeTrueMotion(p Predictors, dst sample.View) {
	tl := int(p.AboveLeft)
	for r := 0; r < p.S; r++ {
		base := int(p.LeftColumn[r]) - tl
		for c := 0; c < p.S; c++ {
			dst.Set(c, r, sample.Clip255(base+int(p.AboveRow[c])))
		}
	}
}

// WriteBMode writes a 4x4 block into dst for the given b_mode. p must have
// S == 4.
func WriteBMode(mode BMode, p Predictors, dst sample.View) {
	vperr.Assert(p.S == 4, "WriteBMode requires S=4, got %d", p.S)
	switch mode {
	case ModeB_DC:
		writeDC4(p, dst)
	case ModeB_TM:
		writeTrueMotion(p, dst)
	case ModeB_VE:
		writeVE4(p, dst)
	case ModeB_HE:
		writeHE4(p, dst)
	case ModeB_LD:
		writeLD4(p, dst)
	case ModeB_RD:
		writeRD4(p, dst)
	case ModeB_VR:
		writeVR4(p, dst)
	case ModeB_VL:
		writeVL4(p, dst)
	case ModeB_HD:
		writeHD4(p, dst)
	case ModeB_HU:
		writeHU4(p, dst)
	default:
		vperr.Assert(false, "invalid b_mode %d", mode)
	}
}

// writeDC4 implements B_DC_PRED: unconditionally the both-present formula,
// relying on the synthetic 127/129 borders already baked into
// AboveRow/LeftColumn when a neighbour is absent.
func writeDC4(p Predictors, dst sample.View) {
	sum := sumSlice(p.AboveRow) + sumSlice(p.LeftColumn)
	v := uint8((sum + 4) >> 3)
	dst.Fill(v)
}

func writeVE4(p Predictors, dst sample.View) {
	vals := [4]uint8{
		avg3(p.Above(-1), p.Above(0), p.Above(1)),
		avg3(p.Above(0), p.Above(1), p.Above(2)),
		avg3(p.Above(1), p.Above(2), p.Above(3)),
		avg3(p.Above(2), p.Above(3), p.Above(4)),
	}
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			dst.Set(c, r, vals[c])
		}
	}
}

func writeHE4(p Predictors, dst sample.View) {
	vals := [4]uint8{
		avg3(p.Left(-1), p.Left(0), p.Left(1)),
		avg3(p.Left(0), p.Left(1), p.Left(2)),
		avg3(p.Left(1), p.Left(2), p.Left(3)),
		avg3(p.Left(2), p.Left(3), p.Left(3)), // left(4) is not defined; repeat left(3)
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			dst.Set(c, r, vals[r])
		}
	}
}

func writeRD4(p Predictors, dst sample.View) {
	v0 := avg3(p.East(0), p.East(1), p.East(2))
	v1 := avg3(p.East(1), p.East(2), p.East(3))
	v2 := avg3(p.East(2), p.East(3), p.East(4))
	v3 := avg3(p.East(3), p.East(4), p.East(5))
	v4 := avg3(p.East(4), p.East(5), p.East(6))
	v5 := avg3(p.East(5), p.East(6), p.East(7))
	v6 := avg3(p.East(6), p.East(7), p.East(8))

	dst.Set(0, 3, v0)
	dst.Set(1, 3, v1)
	dst.Set(0, 2, v1)
	dst.Set(2, 3, v2)
	dst.Set(1, 2, v2)
	dst.Set(0, 1, v2)
	dst.Set(3, 3, v3)
	dst.Set(2, 2, v3)
	dst.Set(1, 1, v3)
	dst.Set(0, 0, v3)
	dst.Set(3, 2, v4)
	dst.Set(2, 1, v4)
	dst.Set(1, 0, v4)
	dst.Set(3, 1, v5)
	dst.Set(2, 0, v5)
	dst.Set(3, 0, v6)
}

func writeVR4(p Predictors, dst sample.View) {
	a1 := avg3(p.East(1), p.East(2), p.East(3))
	a2 := avg3(p.East(2), p.East(3), p.East(4))
	a3 := avg3(p.East(3), p.East(4), p.East(5))
	b4 := avg2(p.East(4), p.East(5))
	a4 := avg3(p.East(4), p.East(5), p.East(6))
	b5 := avg2(p.East(5), p.East(6))
	a5 := avg3(p.East(5), p.East(6), p.East(7))
	b6 := avg2(p.East(6), p.East(7))
	a6 := avg3(p.East(6), p.East(7), p.East(8))
	b7 := avg2(p.East(7), p.East(8))

	dst.Set(0, 3, a1)
	dst.Set(0, 2, a2)
	dst.Set(1, 3, a3)
	dst.Set(0, 1, a3)
	dst.Set(1, 2, b4)
	dst.Set(0, 0, b4)
	dst.Set(2, 3, a4)
	dst.Set(1, 1, a4)
	dst.Set(2, 2, b5)
	dst.Set(1, 0, b5)
	dst.Set(3, 3, a5)
	dst.Set(2, 1, a5)
	dst.Set(3, 2, b6)
	dst.Set(2, 0, b6)
	dst.Set(3, 1, a6)
	dst.Set(3, 0, b7)
}

func writeLD4(p Predictors, dst sample.View) {
	a, b, c, d := p.Above(0), p.Above(1), p.Above(2), p.Above(3)
	e, f, g, h := p.Above(4), p.Above(5), p.Above(6), p.Above(7)

	dst.Set(0, 0, avg3(a, b, c))
	dst.Set(1, 0, avg3(b, c, d))
	dst.Set(0, 1, avg3(b, c, d))
	dst.Set(2, 0, avg3(c, d, e))
	dst.Set(1, 1, avg3(c, d, e))
	dst.Set(0, 2, avg3(c, d, e))
	dst.Set(3, 0, avg3(d, e, f))
	dst.Set(2, 1, avg3(d, e, f))
	dst.Set(1, 2, avg3(d, e, f))
	dst.Set(0, 3, avg3(d, e, f))
	dst.Set(3, 1, avg3(e, f, g))
	dst.Set(2, 2, avg3(e, f, g))
	dst.Set(1, 3, avg3(e, f, g))
	dst.Set(3, 2, avg3(f, g, h))
	dst.Set(2, 3, avg3(f, g, h))
	dst.Set(3, 3, avg3(g, h, h)) // above(7+1) does not exist; repeat above(7)
}

func writeVL4(p Predictors, dst sample.View) {
	a, b, c, d := p.Above(0), p.Above(1), p.Above(2), p.Above(3)
	e, f, g, h := p.Above(4), p.Above(5), p.Above(6), p.Above(7)

	dst.Set(0, 0, avg2(a, b))
	dst.Set(1, 0, avg2(b, c))
	dst.Set(0, 2, avg2(b, c))
	dst.Set(2, 0, avg2(c, d))
	dst.Set(1, 2, avg2(c, d))
	dst.Set(3, 0, avg2(d, e))
	dst.Set(2, 2, avg2(d, e))

	dst.Set(0, 1, avg3(a, b, c))
	dst.Set(1, 1, avg3(b, c, d))
	dst.Set(0, 3, avg3(b, c, d))
	dst.Set(2, 1, avg3(c, d, e))
	dst.Set(1, 3, avg3(c, d, e))
	dst.Set(3, 1, avg3(d, e, f))
	dst.Set(2, 3, avg3(d, e, f))
	dst.Set(3, 2, avg3(e, f, g))
	dst.Set(3, 3, avg3(f, g, h))
}

func writeHD4(p Predictors, dst sample.View) {
	b0 := avg2(p.East(0), p.East(1))
	a0 := avg3(p.East(0), p.East(1), p.East(2))
	b1 := avg2(p.East(1), p.East(2))
	a1 := avg3(p.East(1), p.East(2), p.East(3))
	b2 := avg2(p.East(2), p.East(3))
	a2 := avg3(p.East(2), p.East(3), p.East(4))
	b3 := avg2(p.East(3), p.East(4))
	a3 := avg3(p.East(3), p.East(4), p.East(5))
	a4 := avg3(p.East(4), p.East(5), p.East(6))
	a5 := avg3(p.East(5), p.East(6), p.East(7))

	dst.Set(0, 3, b0)
	dst.Set(1, 3, a0)
	dst.Set(0, 2, b1)
	dst.Set(2, 3, b1)
	dst.Set(1, 2, a1)
	dst.Set(3, 3, a1)
	dst.Set(2, 2, b2)
	dst.Set(0, 1, b2)
	dst.Set(3, 2, a2)
	dst.Set(1, 1, a2)
	dst.Set(2, 1, b3)
	dst.Set(0, 0, b3)
	dst.Set(3, 1, a3)
	dst.Set(1, 0, a3)
	dst.Set(2, 0, a4)
	dst.Set(3, 0, a5)
}

func writeHU4(p Predictors, dst sample.View) {
	l0, l1, l2, l3 := p.Left(0), p.Left(1), p.Left(2), p.Left(3)

	dst.Set(0, 0, avg2(l0, l1))
	dst.Set(1, 0, avg3(l0, l1, l2))
	dst.Set(2, 0, avg2(l1, l2))
	dst.Set(3, 0, avg3(l1, l2, l3))

	dst.Set(0, 1, dst.At(2, 0))
	dst.Set(1, 1, dst.At(3, 0))
	dst.Set(2, 1, avg2(l2, l3))
	dst.Set(3, 1, avg3(l2, l3, l3)) // left(4) is not defined; repeat left(3)

	dst.Set(0, 2, dst.At(2, 1))
	dst.Set(1, 2, dst.At(3, 1))
	dst.Set(2, 2, l3)
	dst.Set(3, 2, l3)

	dst.Set(0, 3, l3)
	dst.Set(1, 3, l3)
	dst.Set(2, 3, l3)
	dst.Set(3, 3, l3)
}
