// Package geometry implements nearest-neighbor geometric resampling:
// scaling, rotation and swirl.
//
// Every operation works by inverse mapping. For each destination pixel it
// computes the source coordinate that supplies its value. When that
// coordinate falls outside the source, each operation applies its own
// fallback:
//   - Scale: never happens
//   - Rotate: the destination pixel stays black
//   - Swirl: the destination pixel copies the source pixel at the same position
package geometry

import (
	"fmt"
	"math"

	"github.com/ironsheep/pixelfx-mcp/internal/logging"
	"github.com/ironsheep/pixelfx-mcp/internal/raster"
)

// Scale resizes src to width×height using nearest-neighbor sampling.
//
// Destination (x, y) copies source (x*srcWidth/width, y*srcHeight/height),
// computed in integer arithmetic.
//
// Returns an error wrapping ErrInvalidDimension if width or height is not
// positive.
func Scale(src *raster.Buffer, width, height int) (*raster.Buffer, error) {
	target, err := raster.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}

	sw, sh := src.Width(), src.Height()
	for y := 0; y < height; y++ {
		sy := y * sh / height
		for x := 0; x < width; x++ {
			target.Put(x, y, src.At(x*sw/width, sy))
		}
	}

	logging.Logger().Debug("scale complete", "from", fmt.Sprintf("%dx%d", sw, sh), "to", fmt.Sprintf("%dx%d", width, height))
	return target, nil
}

// Rotate resamples src through a rotation of angle degrees. The output has
// the same dimensions as src.
//
// With midX = (w-1)/2, midY = (h-1)/2 and rad the angle in radians, the
// destination (x, y) reads source (sx, sy):
//
//	sx = round((x-midY)*sin(rad) + (y-midY)*cos(rad) + midY)
//	sy = round((x-midX)*cos(rad) - (y-midY)*sin(rad) + midX)
//
// The center terms are mixed between the axes, so Rotate(src, 0) is the
// transpose of a square image rather than the identity, and non-square
// images lose the pixels that map outside. Destinations whose source is
// outside src stay black.
func Rotate(src *raster.Buffer, angle float64) *raster.Buffer {
	w, h := src.Width(), src.Height()
	target := raster.NewLike(src)

	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	midX := float64(w-1) * 0.5
	midY := float64(h-1) * 0.5

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			fx, fy := float64(x), float64(y)
			sx := int(math.Round((fx-midY)*sin + (fy-midY)*cos + midY))
			sy := int(math.Round((fx-midX)*cos - (fy-midY)*sin + midX))
			if src.In(sx, sy) {
				target.Put(x, y, src.At(sx, sy))
			}
		}
	}
	return target
}

// Swirl twists src around its center. Each pixel at distance r from the
// center is sampled from the point rotated by strength*r radians, so the
// twist grows with distance.
//
// With center (i0, j0) = ((w-1)/2, (h-1)/2), destination (i, j) reads
//
//	ii = round(i0 + r*cos(theta + strength*r))
//	jj = round(j0 + r*sin(theta + strength*r))
//
// where r and theta are the polar coordinates of (i-i0, j-j0). When (ii, jj)
// is outside src the destination keeps the source pixel at (i, j).
func Swirl(src *raster.Buffer, strength float64) *raster.Buffer {
	w, h := src.Width(), src.Height()
	target := raster.NewLike(src)

	i0 := float64(w-1) * 0.5
	j0 := float64(h-1) * 0.5

	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			di := float64(i) - i0
			dj := float64(j) - j0
			theta := math.Atan2(dj, di)
			r := math.Sqrt(di*di + dj*dj)

			ii := int(math.Round(i0 + r*math.Cos(theta+strength*r)))
			jj := int(math.Round(j0 + r*math.Sin(theta+strength*r)))
			if src.In(ii, jj) {
				target.Put(i, j, src.At(ii, jj))
			} else {
				target.Put(i, j, src.At(i, j))
			}
		}
	}
	return target
}
