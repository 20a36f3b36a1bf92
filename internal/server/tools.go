package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func outputPathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Optional path to also write the result to. The format follows the extension (.png, .jpg, .gif, .bmp, .tiff)",
	}
}

// transformSchema builds the schema shared by the transform tools: path,
// output_path and any extra properties.
func transformSchema(extra map[string]interface{}, required ...string) map[string]interface{} {
	props := map[string]interface{}{
		"path":        pathProperty(),
		"output_path": outputPathProperty(),
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   append([]string{"path"}, required...),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_unload",
			Description: "Drop an image from the cache and discard its preserve-color mask. Use after the file changes on disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Color Sampling
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate. The hex value can be passed as the color of image_preserve_color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors in the image or a region, quantized to 16 levels per channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     defaultDominantCount,
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region; x2 and y2 are exclusive",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x1", "y1", "x2", "y2"},
					},
				},
				"required": []string{"path"},
			},
		},

		// Color Transforms
		{
			Name:        "image_grayscale",
			Description: "Convert the image to grayscale using luma weights 0.299 R + 0.587 G + 0.114 B.",
			InputSchema: transformSchema(nil),
		},
		{
			Name:        "image_invert",
			Description: "Invert every channel of the image (255 - value).",
			InputSchema: transformSchema(nil),
		},
		{
			Name:        "image_brightness",
			Description: "Add a signed amount to every channel, clamping to 0-255.",
			InputSchema: transformSchema(map[string]interface{}{
				"amount": map[string]interface{}{
					"type":        "integer",
					"description": "Amount added to each channel; negative darkens",
				},
			}, "amount"),
		},
		{
			Name: "image_preserve_color",
			Description: "Keep pixels whose channel differences (R-G, G-B, B-R) fall strictly within the tolerance bands around a reference color and turn the rest gray. " +
				"Matches accumulate in a per-image mask across calls until reset.",
			InputSchema: transformSchema(map[string]interface{}{
				"color": map[string]interface{}{
					"type":        "string",
					"description": "Reference color as #RRGGBB or #RGB. Mutually exclusive with sample",
				},
				"sample": map[string]interface{}{
					"type":        "object",
					"description": "Pixel whose color is used as the reference. Mutually exclusive with color",
					"properties": map[string]interface{}{
						"x": map[string]interface{}{"type": "integer"},
						"y": map[string]interface{}{"type": "integer"},
					},
					"required": []string{"x", "y"},
				},
				"tolerance": map[string]interface{}{
					"type":        "object",
					"description": "Band half-widths per channel difference. Each omitted band defaults to 20; a band of 0 never matches",
					"properties": map[string]interface{}{
						"rg": map[string]interface{}{"type": "integer"},
						"gb": map[string]interface{}{"type": "integer"},
						"br": map[string]interface{}{"type": "integer"},
					},
				},
				"reset_mask": map[string]interface{}{
					"type":        "boolean",
					"description": "Discard earlier matches before applying",
					"default":     false,
				},
			}),
		},
		{
			Name:        "image_mask_reset",
			Description: "Discard the accumulated preserve-color mask of an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Blur
		{
			Name:        "image_blur",
			Description: "Scatter pixels by exchanging each one with a random partner up to offset/2 pixels away. Larger offsets give a stronger frosted-glass effect.",
			InputSchema: transformSchema(map[string]interface{}{
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "Displacement range; 0 leaves the image unchanged. Default 5",
					"default":     defaultBlurOffset,
					"minimum":     0,
				},
			}),
		},

		// Geometry
		{
			Name:        "image_scale",
			Description: "Resample the image to a new size with nearest-neighbor sampling.",
			InputSchema: transformSchema(map[string]interface{}{
				"width": map[string]interface{}{
					"type":        "integer",
					"description": "Target width in pixels",
					"minimum":     1,
				},
				"height": map[string]interface{}{
					"type":        "integer",
					"description": "Target height in pixels",
					"minimum":     1,
				},
			}, "width", "height"),
		},
		{
			Name:        "image_rotate",
			Description: "Resample the image through a mixed-axis rotation mapping by an angle in degrees. " +
				"This is not a rigid rotation about the center: at 0 degrees a square image is transposed and at 90 it is flipped vertically. " +
				"Pixels sampled from outside the image are black.",
			InputSchema: transformSchema(map[string]interface{}{
				"angle": map[string]interface{}{
					"type":        "number",
					"description": "Rotation angle in degrees",
				},
			}, "angle"),
		},
		{
			Name:        "image_swirl",
			Description: "Twist the image around its center; the twist grows with distance from the center.",
			InputSchema: transformSchema(map[string]interface{}{
				"strength": map[string]interface{}{
					"type":        "number",
					"description": "Twist in radians per pixel of radius; 0 leaves the image unchanged",
				},
			}, "strength"),
		},

		// Detection
		{
			Name:        "image_edge_detect",
			Description: "Sobel edge detection on packed RGB values. Edges are black on white. Only pixels with 1 <= x < width-2 and 1 <= y < height-2 are tested; the rest stay black.",
			InputSchema: transformSchema(nil),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
