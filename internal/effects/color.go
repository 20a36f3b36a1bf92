package effects

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixelfx-mcp/internal/raster"
)

// Luma returns the BT.601 gray level of c, rounded and clamped to 0-255.
func Luma(c raster.RGB) uint8 {
	v := math.Round(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
	return uint8(clamp(int(v), 0, 255))
}

// Grayscale returns a copy of src with every pixel replaced by its gray level.
func Grayscale(src *raster.Buffer) *raster.Buffer {
	return mapPixels(src, func(c raster.RGB) raster.RGB {
		g := Luma(c)
		return raster.RGB{R: g, G: g, B: g}
	})
}

// InvertColor returns the photographic negative of src.
func InvertColor(src *raster.Buffer) *raster.Buffer {
	return mapPixels(src, func(c raster.RGB) raster.RGB {
		return raster.RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
	})
}

// AdjustBrightness adds amount to every channel of every pixel, clamping
// the result to 0-255. Negative amounts darken the image.
func AdjustBrightness(src *raster.Buffer, amount int) *raster.Buffer {
	return mapPixels(src, func(c raster.RGB) raster.RGB {
		return raster.RGB{
			R: uint8(clamp(int(c.R)+amount, 0, 255)),
			G: uint8(clamp(int(c.G)+amount, 0, 255)),
			B: uint8(clamp(int(c.B)+amount, 0, 255)),
		}
	})
}

// Tolerance holds the half-widths of the three channel-difference bands
// used by PreserveColor.
type Tolerance struct {
	RG int `json:"rg"` // band around R-G
	GB int `json:"gb"` // band around G-B
	BR int `json:"br"` // band around B-R
}

// PreserveColor keeps the pixels of src that resemble ref and converts all
// others to grayscale.
//
// A pixel resembles ref when each of its channel differences lies strictly
// inside the band centered on the matching difference of ref:
//
//	ref(R-G) - tol.RG < R-G < ref(R-G) + tol.RG
//	ref(G-B) - tol.GB < G-B < ref(G-B) + tol.GB
//	ref(B-R) - tol.BR < B-R < ref(B-R) + tol.BR
//
// Matching pixels are marked in mask. Any pixel whose mask flag is set,
// whether by this call or an earlier one, keeps its original color.
//
// Returns an error wrapping ErrInvalidArgument if mask is nil or a tolerance
// is negative, or ErrDimensionMismatch if mask and src differ in size. The
// mask is not touched when an error is returned.
func PreserveColor(src *raster.Buffer, mask *raster.Mask, ref raster.RGB, tol Tolerance) (*raster.Buffer, error) {
	if mask == nil {
		return nil, fmt.Errorf("%w: nil mask", raster.ErrInvalidArgument)
	}
	if tol.RG < 0 || tol.GB < 0 || tol.BR < 0 {
		return nil, fmt.Errorf("%w: negative tolerance %+v", raster.ErrInvalidArgument, tol)
	}
	if !mask.Matches(src) {
		return nil, fmt.Errorf("%w: mask %dx%d, image %dx%d", raster.ErrDimensionMismatch,
			mask.Width(), mask.Height(), src.Width(), src.Height())
	}

	rg, gb, br := channelDiffs(ref)
	target := raster.NewLike(src)
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			c := src.At(x, y)
			dRG, dGB, dBR := channelDiffs(c)
			if within(dRG, rg, tol.RG) && within(dGB, gb, tol.GB) && within(dBR, br, tol.BR) {
				mask.Mark(x, y)
			}

			if mask.Marked(x, y) {
				target.Put(x, y, c)
			} else {
				g := Luma(c)
				target.Put(x, y, raster.RGB{R: g, G: g, B: g})
			}
		}
	}
	return target, nil
}

// ParseColor parses a reference color written as "#RRGGBB" or "#RGB".
func ParseColor(s string) (raster.RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return raster.RGB{}, fmt.Errorf("%w: color %q: %v", raster.ErrInvalidArgument, s, err)
	}
	r, g, b := c.RGB255()
	return raster.RGB{R: r, G: g, B: b}, nil
}

func channelDiffs(c raster.RGB) (rg, gb, br int) {
	r, g, b := int(c.R), int(c.G), int(c.B)
	return r - g, g - b, b - r
}

func within(v, center, tol int) bool {
	return v > center-tol && v < center+tol
}

func mapPixels(src *raster.Buffer, fn func(raster.RGB) raster.RGB) *raster.Buffer {
	target := raster.NewLike(src)
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			target.Put(x, y, fn(src.At(x, y)))
		}
	}
	return target
}

// clamp constrains val to the range [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
