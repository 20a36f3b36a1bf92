package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixelfx-mcp/internal/raster"
)

// FromImage converts any image.Image into a raster buffer. The image is
// normalized to non-premultiplied RGBA first and its alpha is discarded.
//
// Returns an error wrapping raster.ErrInvalidDimension for empty images.
func FromImage(img image.Image) (*raster.Buffer, error) {
	nrgba := imaging.Clone(img)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()

	buf, err := raster.New(w, h)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < w; x++ {
			buf.Put(x, y, raster.RGB{R: row[x*4], G: row[x*4+1], B: row[x*4+2]})
		}
	}
	return buf, nil
}

// ToImage converts a buffer into an opaque *image.NRGBA anchored at (0,0).
func ToImage(buf *raster.Buffer) *image.NRGBA {
	w, h := buf.Width(), buf.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			c := buf.At(x, y)
			row[x*4] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = 0xFF
		}
	}
	return img
}

// EncodedImage contains a buffer encoded as base64 PNG.
type EncodedImage struct {
	// Width of the image in pixels.
	Width int `json:"width"`

	// Height of the image in pixels.
	Height int `json:"height"`

	// ImageBase64 is the PNG file contents, base64 encoded.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// Encode renders buf as a base64 PNG.
func Encode(buf *raster.Buffer) (*EncodedImage, error) {
	var out bytes.Buffer
	if err := imgio.PNGEncoder()(&out, ToImage(buf)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       buf.Width(),
		Height:      buf.Height(),
		ImageBase64: base64.StdEncoding.EncodeToString(out.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes buf to path. The format is chosen from the file extension.
func Save(buf *raster.Buffer, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	if err := imaging.Save(ToImage(buf), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
