package detection

import (
	"math"

	"github.com/ironsheep/pixelfx-mcp/internal/logging"
	"github.com/ironsheep/pixelfx-mcp/internal/raster"
)

// EdgeThreshold is the gradient score above which a pixel is an edge.
const EdgeThreshold = 100000

var (
	edgeColor   = raster.RGB{R: 0, G: 0, B: 0}
	normalColor = raster.RGB{R: 255, G: 255, B: 255}
)

// packedValue feeds the whole 0xRRGGBB integer into the convolution instead
// of a per-channel intensity. Blue differences therefore weigh 1, green 256
// and red 65536, which is what EdgeThreshold is calibrated against.
func packedValue(c raster.RGB) int64 {
	return int64(c.Packed())
}

// Gradient returns the Sobel X and Y responses at (x, y) computed over
// packed pixel values. All eight neighbors of (x, y) must lie inside src.
func Gradient(src *raster.Buffer, x, y int) (gx, gy int64) {
	return raster.SobelX.Apply(src, x, y, packedValue), raster.SobelY.Apply(src, x, y, packedValue)
}

// IsEdge reports whether a gradient pair scores above EdgeThreshold. The
// score is |gx| + gy², mixing a linear and a squared term.
func IsEdge(gx, gy int64) bool {
	score := math.Sqrt(float64(gx*gx)) + math.Ceil(float64(gy*gy))
	return score > EdgeThreshold
}

// DetectEdges binarizes src into black edges on a white field.
//
// Pixels with 1 <= x < width-2 and 1 <= y < height-2 are classified with
// Gradient and IsEdge: edges are painted black, everything else white. The
// first row and column and the last two rows and columns are never written
// and stay black. Images narrower or shorter than four pixels therefore come
// back entirely black.
func DetectEdges(src *raster.Buffer) *raster.Buffer {
	w, h := src.Width(), src.Height()
	target := raster.NewLike(src)

	edges := 0
	for y := 1; y < h-2; y++ {
		for x := 1; x < w-2; x++ {
			gx, gy := Gradient(src, x, y)
			if IsEdge(gx, gy) {
				target.Put(x, y, edgeColor)
				edges++
			} else {
				target.Put(x, y, normalColor)
			}
		}
	}

	logging.Logger().Debug("edge detection complete", "width", w, "height", h, "edge_pixels", edges)
	return target
}
