// Package server implements the MCP (Model Context Protocol) server that
// exposes the pixel transforms as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_unload: Drop a cached image and its mask
//
// Color Sampling:
//   - image_sample_color: Get color at pixel
//   - image_dominant_colors: Extract color palette
//
// Color Transforms:
//   - image_grayscale, image_invert, image_brightness
//   - image_preserve_color: Keep one hue family, gray the rest
//   - image_mask_reset: Forget accumulated preserve-color matches
//
// Blur and Geometry:
//   - image_blur: Stochastic displacement blur
//   - image_scale, image_rotate, image_swirl
//
// Detection:
//   - image_edge_detect: Packed-value Sobel edges
//
// Every transform returns the result as a base64 PNG and writes it to
// output_path as well when one is given. Source images are never modified.
//
// # State
//
// Decoded images are cached by path for the lifetime of the process. Each
// path also owns a preserve-color mask, so successive image_preserve_color
// calls on one image keep every color matched so far until the mask is
// reset or the image unloaded.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.WithVersion(version))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
