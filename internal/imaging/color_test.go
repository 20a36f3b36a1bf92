package imaging

import (
	"errors"
	"testing"

	"github.com/ironsheep/pixelfx-mcp/internal/raster"
)

func TestSampleColor(t *testing.T) {
	buf, _ := raster.New(100, 100)
	buf.Fill(raster.RGB{R: 255, G: 128, B: 64})

	result, err := SampleColor(buf, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB != (raster.RGB{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %v, want (255,128,64)", result.RGB)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   raster.RGB
		wantHex string
		wantHSL HSLColor
	}{
		{"pure red", raster.RGB{R: 255, G: 0, B: 0}, "#FF0000", HSLColor{0, 100, 50}},
		{"pure green", raster.RGB{R: 0, G: 255, B: 0}, "#00FF00", HSLColor{120, 100, 50}},
		{"pure blue", raster.RGB{R: 0, G: 0, B: 255}, "#0000FF", HSLColor{240, 100, 50}},
		{"white", raster.RGB{R: 255, G: 255, B: 255}, "#FFFFFF", HSLColor{0, 0, 100}},
		{"black", raster.RGB{R: 0, G: 0, B: 0}, "#000000", HSLColor{0, 0, 0}},
		{"gray", raster.RGB{R: 128, G: 128, B: 128}, "#808080", HSLColor{0, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, _ := raster.New(3, 3)
			buf.Fill(tt.color)

			result, err := SampleColor(buf, 1, 1)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL != tt.wantHSL {
				t.Errorf("HSL: got %+v, want %+v", result.HSL, tt.wantHSL)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	buf, _ := raster.New(10, 10)

	coords := [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}}
	for _, c := range coords {
		if _, err := SampleColor(buf, c[0], c[1]); !errors.Is(err, raster.ErrOutOfBounds) {
			t.Errorf("SampleColor(%d,%d): got %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
}

func TestDominantColors(t *testing.T) {
	buf := createPatternBuffer(t, 10, 10)

	result, err := DominantColors(buf, 10, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 4 {
		t.Fatalf("color count: got %d, want 4", len(result.Colors))
	}

	total := 0.0
	for _, c := range result.Colors {
		total += c.Percentage
		if c.Percentage != 25 {
			t.Errorf("%s percentage: got %.1f, want 25", c.Hex, c.Percentage)
		}
	}
	if total != 100 {
		t.Errorf("percentages sum: got %.1f, want 100", total)
	}
	// Equal shares are ordered by hex
	if result.Colors[0].Hex != "#0000F0" {
		t.Errorf("first color: got %s, want #0000F0", result.Colors[0].Hex)
	}
}

func TestDominantColors_CountAndRegion(t *testing.T) {
	buf := createPatternBuffer(t, 10, 10)

	result, err := DominantColors(buf, 1, &Region{X1: 0, Y1: 0, X2: 5, Y2: 5})
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 {
		t.Fatalf("color count: got %d, want 1", len(result.Colors))
	}
	if c := result.Colors[0]; c.Hex != "#F00000" || c.Percentage != 100 {
		t.Errorf("region color: got %s at %.1f%%, want #F00000 at 100%%", c.Hex, c.Percentage)
	}
}

func TestDominantColors_Errors(t *testing.T) {
	buf := createPatternBuffer(t, 10, 10)

	if _, err := DominantColors(buf, 0, nil); !errors.Is(err, raster.ErrInvalidArgument) {
		t.Errorf("count 0: got %v, want ErrInvalidArgument", err)
	}
	if _, err := DominantColors(buf, 3, &Region{X1: 0, Y1: 0, X2: 11, Y2: 5}); !errors.Is(err, raster.ErrOutOfBounds) {
		t.Errorf("oversized region: got %v, want ErrOutOfBounds", err)
	}
	if _, err := DominantColors(buf, 3, &Region{X1: 5, Y1: 0, X2: 5, Y2: 5}); !errors.Is(err, raster.ErrInvalidArgument) {
		t.Errorf("empty region: got %v, want ErrInvalidArgument", err)
	}
}
