package raster

import "fmt"

// Mask is a width×height grid of flags marking preserved pixels.
//
// Masks are supplied by the caller and updated in place by
// effects.PreserveColor. Updates only ever turn a flag on, so a pixel that
// was marked by an earlier call stays marked.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// NewMask allocates a cleared width×height mask. The size limits of New
// apply.
func NewMask(width, height int) (*Mask, error) {
	if err := checkDimensions("mask ", width, height); err != nil {
		return nil, err
	}
	return &Mask{width: width, height: height, bits: make([]bool, width*height)}, nil
}

// NewMaskFor allocates a cleared mask sized to b.
func NewMaskFor(b *Buffer) *Mask {
	return &Mask{width: b.width, height: b.height, bits: make([]bool, len(b.pix))}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Matches reports whether m has the same dimensions as b.
func (m *Mask) Matches(b *Buffer) bool {
	return m.width == b.width && m.height == b.height
}

// Get returns the flag at (x, y).
func (m *Mask) Get(x, y int) (bool, error) {
	if !m.in(x, y) {
		return false, fmt.Errorf("%w: mask (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
	}
	return m.bits[y*m.width+x], nil
}

// Set stores v at (x, y). Unlike Mark it can clear a flag.
func (m *Mask) Set(x, y int, v bool) error {
	if !m.in(x, y) {
		return fmt.Errorf("%w: mask (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
	}
	m.bits[y*m.width+x] = v
	return nil
}

// Mark turns the flag at (x, y) on and reports whether it was already set.
// It panics if the coordinate is outside the mask.
func (m *Mask) Mark(x, y int) (already bool) {
	if !m.in(x, y) {
		panic(fmt.Errorf("%w: mask (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, m.width, m.height))
	}
	i := y*m.width + x
	already = m.bits[i]
	m.bits[i] = true
	return already
}

// Marked returns the flag at (x, y) and panics outside the mask.
func (m *Mask) Marked(x, y int) bool {
	if !m.in(x, y) {
		panic(fmt.Errorf("%w: mask (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, m.width, m.height))
	}
	return m.bits[y*m.width+x]
}

// Count returns the number of flags that are set.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.bits {
		if v {
			n++
		}
	}
	return n
}

func (m *Mask) in(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}
