package raster

// Kernel is a 3x3 matrix of integer weights indexed [row][column].
type Kernel [3][3]int

// Sobel gradient kernels.
var (
	SobelX = Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	SobelY = Kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// Apply convolves k against the 3x3 neighborhood centered on (x, y), using
// value to turn each pixel into a number. The caller guarantees that every
// neighbor is inside b.
func (k Kernel) Apply(b *Buffer, x, y int, value func(RGB) int64) int64 {
	var sum int64
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			w := k[ky+1][kx+1]
			if w == 0 {
				continue
			}
			sum += int64(w) * value(b.At(x+kx, y+ky))
		}
	}
	return sum
}
