package imaging

import (
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/pixelfx-mcp/internal/raster"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternBuffer creates a buffer with different colors in each quadrant
func createPatternBuffer(t *testing.T, width, height int) *raster.Buffer {
	t.Helper()
	buf, err := raster.New(width, height)
	if err != nil {
		t.Fatalf("raster.New failed: %v", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c raster.RGB
			switch {
			case x < width/2 && y < height/2:
				c = raster.RGB{R: 255, G: 0, B: 0} // Red top-left
			case x >= width/2 && y < height/2:
				c = raster.RGB{R: 0, G: 255, B: 0} // Green top-right
			case x < width/2:
				c = raster.RGB{R: 0, G: 0, B: 255} // Blue bottom-left
			default:
				c = raster.RGB{R: 255, G: 255, B: 255} // White bottom-right
			}
			buf.Put(x, y, c)
		}
	}
	return buf
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 2, color.RGBA{10, 20, 30, 255})

	buf, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if buf.Width() != 4 || buf.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", buf.Width(), buf.Height())
	}
	if c := buf.At(1, 2); c != (raster.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("pixel (1,2): got %v, want (10,20,30)", c)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 10, 10))
	base.Set(5, 6, color.RGBA{200, 100, 50, 255})
	sub := base.SubImage(image.Rect(4, 4, 8, 8))

	buf, err := FromImage(sub)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if buf.Width() != 4 || buf.Height() != 4 {
		t.Fatalf("dimensions: got %dx%d, want 4x4", buf.Width(), buf.Height())
	}
	if c := buf.At(1, 2); c != (raster.RGB{R: 200, G: 100, B: 50}) {
		t.Errorf("pixel (1,2): got %v, want (200,100,50)", c)
	}
}

func TestFromImage_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 77})

	buf, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if c := buf.At(0, 0); c != (raster.RGB{R: 77, G: 77, B: 77}) {
		t.Errorf("gray pixel: got %v, want (77,77,77)", c)
	}
}

func TestFromImage_Empty(t *testing.T) {
	_, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 5)))
	if !errors.Is(err, raster.ErrInvalidDimension) {
		t.Errorf("got %v, want ErrInvalidDimension", err)
	}
}

func TestToImage_RoundTrip(t *testing.T) {
	src := createPatternBuffer(t, 6, 4)
	img := ToImage(src)

	if img.Bounds() != image.Rect(0, 0, 6, 4) {
		t.Fatalf("bounds: got %v", img.Bounds())
	}
	if a := img.NRGBAAt(5, 3).A; a != 255 {
		t.Errorf("alpha: got %d, want 255", a)
	}

	back, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if !back.Equal(src) {
		t.Error("ToImage/FromImage did not round trip")
	}
}

func TestEncode(t *testing.T) {
	src := createPatternBuffer(t, 20, 10)

	result, err := Encode(src)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if result.Width != 20 || result.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(strings.NewReader(string(decoded)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	back, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if !back.Equal(src) {
		t.Error("encoded PNG does not match the buffer")
	}
}

func TestSave(t *testing.T) {
	src := createPatternBuffer(t, 8, 8)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := Save(src, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	back, err := NewImageCache().LoadBuffer(path)
	if err != nil {
		t.Fatalf("LoadBuffer failed: %v", err)
	}
	if !back.Equal(src) {
		t.Error("saved PNG does not match the buffer")
	}
}

func TestSave_UnknownExtension(t *testing.T) {
	src := createPatternBuffer(t, 2, 2)
	if err := Save(src, filepath.Join(t.TempDir(), "out.xyz")); err == nil {
		t.Error("Save should fail for an unsupported extension")
	}
}
