// Package effects provides per-pixel color transforms and the stochastic
// displacement blur.
//
// # Color Transforms
//
// Grayscale, InvertColor and AdjustBrightness are pure functions of each
// pixel. PreserveColor keeps pixels whose hue relationship matches a
// reference color and turns the rest gray. It also records every matching
// pixel in a caller-owned raster.Mask. The mask is only ever set to true,
// so pixels preserved by an earlier call stay preserved.
//
// Grayscale uses the ITU-R BT.601 weights:
//
//	gray = round(0.299*R + 0.587*G + 0.114*B)
//
// # Displacement Blur
//
// Blur exchanges each pixel with a random partner inside an offset window.
// The scan is column-major and each in-bounds exchange writes both ends, so
// later exchanges may overwrite earlier ones. Partners that fall outside the
// image are handled by one of eight edge rules; Classify exposes that
// decision on its own.
//
// Randomness comes from a RandomSource. Pass a seeded *rand.Rand from
// math/rand/v2 to get reproducible output.
package effects
