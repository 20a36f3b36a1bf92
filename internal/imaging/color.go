package imaging

import (
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixelfx-mcp/internal/raster"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in several representations.
//
// Hex is accepted as-is by effects.ParseColor, so a sampled color can be fed
// straight back as the reference color of a preserve-color pass.
type ColorResult struct {
	Hex string     `json:"hex"` // Hex format "#RRGGBB"
	RGB raster.RGB `json:"rgb"` // RGB components
	HSL HSLColor   `json:"hsl"` // HSL representation
}

// SampleColor returns the color of buf at (x, y).
//
// Returns an error wrapping raster.ErrOutOfBounds if the coordinate is
// outside the buffer.
func SampleColor(buf *raster.Buffer, x, y int) (*ColorResult, error) {
	c, err := buf.Get(x, y)
	if err != nil {
		return nil, fmt.Errorf("failed to sample color: %w", err)
	}
	return newColorResult(c), nil
}

func newColorResult(c raster.RGB) *ColorResult {
	return &ColorResult{
		Hex: c.Hex(),
		RGB: c,
		HSL: rgbToHSL(c),
	}
}

// Point represents a 2D point
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// ColorFrequency represents a color and its occurrence frequency.
type ColorFrequency struct {
	Hex        string     `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64    `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        raster.RGB `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the most frequent colors, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most common colors in buf, or in
// region when it is non-nil.
//
// Colors are quantized by clearing the low four bits of each channel before
// counting, so colors within 16 units per channel are grouped together.
// Ties are broken by hex value to keep the output stable.
func DominantColors(buf *raster.Buffer, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: color count %d", raster.ErrInvalidArgument, count)
	}

	x1, y1, x2, y2 := 0, 0, buf.Width(), buf.Height()
	if region != nil {
		if region.X1 < 0 || region.Y1 < 0 || region.X2 > buf.Width() || region.Y2 > buf.Height() {
			return nil, fmt.Errorf("%w: region (%d,%d)-(%d,%d) outside %dx%d", raster.ErrOutOfBounds,
				region.X1, region.Y1, region.X2, region.Y2, buf.Width(), buf.Height())
		}
		if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
			return nil, fmt.Errorf("%w: empty region", raster.ErrInvalidArgument)
		}
		x1, y1, x2, y2 = region.X1, region.Y1, region.X2, region.Y2
	}

	counts := make(map[raster.RGB]int)
	total := 0
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			c := buf.At(x, y)
			counts[raster.RGB{R: c.R &^ 0x0F, G: c.G &^ 0x0F, B: c.B &^ 0x0F}]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(n) / float64(total) * 100,
			RGB:        c,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return &DominantColorsResult{Colors: colors}, nil
}

// rgbToHSL converts an 8-bit color to rounded HSL degrees and percentages.
func rgbToHSL(c raster.RGB) HSLColor {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsl()

	return HSLColor{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
