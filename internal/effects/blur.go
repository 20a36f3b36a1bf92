package effects

import (
	"fmt"
	"math/rand/v2"

	"github.com/ironsheep/pixelfx-mcp/internal/logging"
	"github.com/ironsheep/pixelfx-mcp/internal/raster"
)

// RandomSource supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// processSource draws from the math/rand/v2 top-level generator.
type processSource struct{}

func (processSource) IntN(n int) int { return rand.IntN(n) }

// NewSeededSource returns a deterministic RandomSource for seed.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Displacement classifies where a blur partner landed relative to the image.
type Displacement int

const (
	DisplaceSwap        Displacement = iota // partner inside the image
	DisplaceLeft                            // x < 0, y inside
	DisplaceTop                             // y < 0, x inside
	DisplaceRight                           // x >= width, y inside
	DisplaceBottom                          // y >= height, x inside
	DisplaceRightTop                        // x >= width, y < 0
	DisplaceRightBottom                     // x >= width, y >= height
	DisplaceLeftTop                         // x < 0, y < 0
	DisplaceLeftBottom                      // x < 0, y >= height

	numDisplacements
)

var displacementNames = [numDisplacements]string{
	"swap", "left", "top", "right", "bottom",
	"right-top", "right-bottom", "left-top", "left-bottom",
}

func (d Displacement) String() string {
	if d < 0 || d >= numDisplacements {
		return fmt.Sprintf("Displacement(%d)", int(d))
	}
	return displacementNames[d]
}

// Classify reports which blur rule applies to partner (i, j) in a
// width×height image.
func Classify(i, j, width, height int) Displacement {
	inX := i >= 0 && i < width
	inY := j >= 0 && j < height

	switch {
	case inX && inY:
		return DisplaceSwap
	case i < 0 && inY:
		return DisplaceLeft
	case inX && j < 0:
		return DisplaceTop
	case i >= width && inY:
		return DisplaceRight
	case inX && j >= height:
		return DisplaceBottom
	case i >= width && j < 0:
		return DisplaceRightTop
	case i >= width:
		return DisplaceRightBottom
	case j < 0:
		return DisplaceLeftTop
	default:
		return DisplaceLeftBottom
	}
}

// BlurStats counts how often each displacement rule fired during a blur.
type BlurStats struct {
	Counts [numDisplacements]int
}

// Count returns how many pixels were handled by rule d.
func (s BlurStats) Count(d Displacement) int {
	if d < 0 || d >= numDisplacements {
		return 0
	}
	return s.Counts[d]
}

// Total returns the number of pixels visited.
func (s BlurStats) Total() int {
	n := 0
	for _, c := range s.Counts {
		n += c
	}
	return n
}

// Blur applies the displacement blur to src. See BlurWithStats.
func Blur(src *raster.Buffer, offset int, rnd RandomSource) (*raster.Buffer, error) {
	target, _, err := BlurWithStats(src, offset, rnd)
	return target, err
}

// BlurWithStats exchanges every pixel of src with a random partner at most
// offset/2 pixels away on each axis and reports which rules fired.
//
// For each pixel (ii, jj), scanned column by column, two draws v1 and v2 in
// [0, offset) place the partner at (ii+v1-offset/2, jj+v2-offset/2). An
// in-bounds partner is exchanged both ways in the target. A partner outside
// the image is handled by the rule Classify selects:
//
//	left:    target(ii,jj) = src(ii+1, j)
//	top:     target(ii,jj) = src(i, jj+1)
//	right:   target(ii,jj) = src(ii-1, jj), target(ii-1,jj) = src(ii, jj)
//	bottom:  target(ii,jj) = src(ii, jj-1), target(ii,jj-1) = src(ii, jj)
//	corners: target(ii,jj) = src(ii, jj)
//
// A neighbor step that would leave a one-pixel-wide or one-pixel-tall image
// stays on the current pixel instead.
//
// An offset of zero returns an unmodified copy. A negative offset returns an
// error wrapping ErrInvalidArgument. A nil rnd uses the process generator.
func BlurWithStats(src *raster.Buffer, offset int, rnd RandomSource) (*raster.Buffer, BlurStats, error) {
	var stats BlurStats
	if offset < 0 {
		return nil, stats, fmt.Errorf("%w: blur offset %d", raster.ErrInvalidArgument, offset)
	}
	if offset == 0 {
		return src.Clone(), stats, nil
	}
	if rnd == nil {
		rnd = processSource{}
	}

	width, height := src.Width(), src.Height()
	half := offset / 2
	target := raster.NewLike(src)

	for ii := 0; ii < width; ii++ {
		for jj := 0; jj < height; jj++ {
			v1 := rnd.IntN(offset)
			v2 := rnd.IntN(offset)
			i := ii + v1 - half
			j := jj + v2 - half

			d := Classify(i, j, width, height)
			stats.Counts[d]++

			switch d {
			case DisplaceSwap:
				target.Put(ii, jj, src.At(i, j))
				target.Put(i, j, src.At(ii, jj))
			case DisplaceLeft:
				target.Put(ii, jj, src.At(step(ii, 1, width), j))
			case DisplaceTop:
				target.Put(ii, jj, src.At(i, step(jj, 1, height)))
			case DisplaceRight:
				n := step(ii, -1, width)
				target.Put(ii, jj, src.At(n, jj))
				target.Put(n, jj, src.At(ii, jj))
			case DisplaceBottom:
				n := step(jj, -1, height)
				target.Put(ii, jj, src.At(ii, n))
				target.Put(ii, n, src.At(ii, jj))
			default:
				target.Put(ii, jj, src.At(ii, jj))
			}
		}
	}

	logging.Logger().Debug("blur complete",
		"width", width, "height", height, "offset", offset,
		"swaps", stats.Count(DisplaceSwap), "edge_fallbacks", stats.Total()-stats.Count(DisplaceSwap))
	return target, stats, nil
}

// step moves v by delta along an axis of length n, staying on v when the
// move would leave the axis.
func step(v, delta, n int) int {
	if w := v + delta; w >= 0 && w < n {
		return w
	}
	return v
}
