package raster

import (
	"fmt"
	"image"
)

// RGB represents a color with 8-bit red, green and blue channels.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Packed returns the color as a single integer 0xRRGGBB.
func (c RGB) Packed() int32 {
	return int32(c.R)<<16 | int32(c.G)<<8 | int32(c.B)
}

// Hex returns the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Unpack converts a packed 0xRRGGBB value back to RGB. Bits above the low
// 24 (such as an alpha byte) are ignored.
func Unpack(v int32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Buffer is a width×height grid of RGB pixels stored row-major.
//
// The zero value is not usable; create buffers with New. A Buffer handed
// out by a transform is owned by the caller and is never written to again
// by this module.
type Buffer struct {
	width  int
	height int
	pix    []RGB
}

// MaxPixels is the largest width×height a Buffer or Mask may hold.
const MaxPixels = 1 << 28

// checkDimensions rejects non-positive sizes and sizes whose pixel count
// exceeds MaxPixels. The division keeps width*height from overflowing.
func checkDimensions(what string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %s%dx%d", ErrInvalidDimension, what, width, height)
	}
	if width > MaxPixels/height {
		return fmt.Errorf("%w: %s%dx%d exceeds %d pixels", ErrInvalidDimension, what, width, height, MaxPixels)
	}
	return nil
}

// New allocates a black width×height buffer.
//
// Returns an error wrapping ErrInvalidDimension if either dimension is not
// positive or the pixel count exceeds MaxPixels.
func New(width, height int) (*Buffer, error) {
	if err := checkDimensions("", width, height); err != nil {
		return nil, err
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}, nil
}

// NewLike allocates a black buffer with the same dimensions as b.
func NewLike(b *Buffer) *Buffer {
	return &Buffer{
		width:  b.width,
		height: b.height,
		pix:    make([]RGB, len(b.pix)),
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Bounds returns the buffer extent as an image rectangle anchored at (0,0).
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the pixel at (x, y).
func (b *Buffer) Get(x, y int) (RGB, error) {
	if !b.In(x, y) {
		return RGB{}, b.boundsError(x, y)
	}
	return b.pix[y*b.width+x], nil
}

// Set stores c at (x, y).
func (b *Buffer) Set(x, y int, c RGB) error {
	if !b.In(x, y) {
		return b.boundsError(x, y)
	}
	b.pix[y*b.width+x] = c
	return nil
}

// At returns the pixel at (x, y) and panics if the coordinate is outside
// the buffer. Transforms use it once their coordinates are known valid.
func (b *Buffer) At(x, y int) RGB {
	if !b.In(x, y) {
		panic(b.boundsError(x, y))
	}
	return b.pix[y*b.width+x]
}

// Put stores c at (x, y) and panics if the coordinate is outside the buffer.
func (b *Buffer) Put(x, y int, c RGB) {
	if !b.In(x, y) {
		panic(b.boundsError(x, y))
	}
	b.pix[y*b.width+x] = c
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	pix := make([]RGB, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// Equal reports whether b and o have the same dimensions and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c RGB) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

func (b *Buffer) boundsError(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
}
