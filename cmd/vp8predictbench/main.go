// Command vp8predictbench exercises the vp8predict core against a
// synthetic raster and reports how long intra and inter prediction take
// across every macroblock.
//
// Usage:
//
//	vp8predictbench -width 640 -height 480 -iterations 50
package main

import (
	"flag"
	"log"
	"time"

	"github.com/dretechlabs/vp8predict"
)

func main() {
	width := flag.Int("width", 640, "display width in pixels (must be even)")
	height := flag.Int("height", 480, "display height in pixels (must be even)")
	iterations := flag.Int("iterations", 50, "number of full-frame passes to run")
	flag.Parse()

	if err := run(*width, *height, *iterations); err != nil {
		log.Fatalf("vp8predictbench: %v", err)
	}
}

func run(width, height, iterations int) error {
	r, err := vp8predict.NewRaster(width, height)
	if err != nil {
		return err
	}
	defer r.Release()

	fillRamp(r)

	ref, err := vp8predict.NewRaster(width, height)
	if err != nil {
		return err
	}
	defer ref.Release()
	fillRamp(ref)

	log.Printf("raster %dx%d (%d x %d macroblocks), %d iterations",
		r.DisplayWidth(), r.DisplayHeight(), r.MacroblocksWide(), r.MacroblocksHigh(), iterations)

	start := time.Now()
	var intraSamples, interSamples int64
	for i := 0; i < iterations; i++ {
		intraSamples += runIntraPass(r)
		interSamples += runInterPass(r, ref)
	}
	elapsed := time.Since(start)

	log.Printf("intra samples: %d, inter samples: %d, elapsed: %v", intraSamples, interSamples, elapsed)
	log.Printf("throughput: %.1f Msamples/s", float64(intraSamples+interSamples)/elapsed.Seconds()/1e6)
	return nil
}

// runIntraPass predicts every macroblock's Y block with DC_PRED, its U block
// with V_PRED and its V block with H_PRED, and every 4x4 luma sub-block with
// B_LD_PRED.
func runIntraPass(r *vp8predict.Raster) int64 {
	var total int64
	for row := 0; row < r.MacroblocksHigh(); row++ {
		for col := 0; col < r.MacroblocksWide(); col++ {
			mb := r.Macroblock(col, row)

			y := mb.Y()
			y.IntraPredict(vp8predict.ModeDC)
			total += int64(y.Size() * y.Size())

			u, v := mb.U(), mb.V()
			u.IntraPredict(vp8predict.ModeV)
			v.IntraPredict(vp8predict.ModeH)
			total += int64(u.Size()*u.Size() + v.Size()*v.Size())

			for sr := 0; sr < 4; sr++ {
				for sc := 0; sc < 4; sc++ {
					sub := mb.YSubBlock(sc, sr)
					sub.IntraPredictSubBlock(vp8predict.ModeB_LD)
					total += int64(sub.Size() * sub.Size())
				}
			}
		}
	}
	return total
}

// runInterPass predicts every macroblock's Y block against ref with a
// small fractional motion vector, exercising the sub-pel filter path.
func runInterPass(r *vp8predict.Raster, ref *vp8predict.Raster) int64 {
	var total int64
	mv := vp8predict.MotionVector{X: 5, Y: 3}
	for row := 0; row < r.MacroblocksHigh(); row++ {
		for col := 0; col < r.MacroblocksWide(); col++ {
			mb := r.Macroblock(col, row)
			y := mb.Y()
			y.SafeInterPredict(mv, ref, col, row)
			total += int64(y.Size() * y.Size())
		}
	}
	return total
}

// fillRamp writes a deterministic diagonal ramp pattern into r's luma
// plane, and horizontal/vertical ramps into its U/V planes, so intra/inter
// prediction has non-trivial input without requiring a bitstream decoder.
func fillRamp(r *vp8predict.Raster) {
	for row := 0; row < r.MacroblocksHigh(); row++ {
		for col := 0; col < r.MacroblocksWide(); col++ {
			mb := r.Macroblock(col, row)
			y, u, v := mb.Y(), mb.U(), mb.V()
			for pr := 0; pr < y.Size(); pr++ {
				for pc := 0; pc < y.Size(); pc++ {
					y.Set(pc, pr, uint8((col*16+pc+row*16+pr)&0xff))
				}
			}
			for pr := 0; pr < u.Size(); pr++ {
				for pc := 0; pc < u.Size(); pc++ {
					u.Set(pc, pr, uint8((col*8+pc)&0xff))
					v.Set(pc, pr, uint8((row*8+pr)&0xff))
				}
			}
		}
	}
}
