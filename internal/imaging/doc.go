// Package imaging connects raster buffers to image files and the standard
// image types.
//
// The transform packages only understand raster.Buffer. This package is the
// codec on either side of them: it decodes files into buffers, converts
// between image.Image and raster.Buffer, and encodes results back to PNG or
// to disk.
//
// # Supported Formats
//
// Decoding goes through disintegration/imaging with EXIF auto-orientation
// and accepts PNG, JPEG, GIF, BMP, TIFF and WebP. Saving picks the encoder
// from the file extension (PNG, JPEG, GIF, BMP, TIFF).
//
// # Color Handling
//
// Buffers carry 8-bit RGB only. Source images are normalized to
// non-premultiplied RGBA and the alpha channel is dropped; images produced
// from buffers are fully opaque.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Cached buffers are shared between
// callers and must be treated as read-only, which every transform in this
// module already does.
//
// # Error Handling
//
// File and codec errors are wrapped with a "failed to ..." prefix. Coordinate
// errors from SampleColor wrap raster.ErrOutOfBounds.
package imaging
