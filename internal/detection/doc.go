// Package detection implements the packed-value Sobel edge detector.
//
// The detector convolves the 3×3 Sobel kernels over each pixel's packed
// 0xRRGGBB integer rather than a luminance channel, so a step in red counts
// 65536 times as much as the same step in blue. The result is a binary
// image: black edges on a white field.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// # Limitations
//
// The threshold is tuned for the packed encoding. Edges that differ only in
// blue need a much larger step to register than edges in red or green, and
// the score squares the vertical response while taking the horizontal one
// linearly, so horizontal edges trigger far more readily than vertical ones.
//
// Gradients and scores are computed in 64-bit arithmetic, so every step up
// to a full red one scores as an edge. Implementations that square the
// responses in 32-bit integers wrap around instead: a full green step gives
// gx = 261120, whose square overflows to a negative value, takes a NaN root
// and leaves the pixel white. Output here differs from such implementations
// wherever a red or green step is strong enough to overflow.
package detection
