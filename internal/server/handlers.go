package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/pixelfx-mcp/internal/detection"
	"github.com/ironsheep/pixelfx-mcp/internal/effects"
	"github.com/ironsheep/pixelfx-mcp/internal/geometry"
	"github.com/ironsheep/pixelfx-mcp/internal/imaging"
	"github.com/ironsheep/pixelfx-mcp/internal/logging"
	"github.com/ironsheep/pixelfx-mcp/internal/raster"
)

// Defaults applied when optional tool arguments are omitted.
const (
	defaultDominantCount = 5
	defaultBlurOffset    = 5
	defaultTolerance     = 20
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_blur").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// TransformResult is returned by every tool that produces a new image.
type TransformResult struct {
	imaging.EncodedImage

	// OutputPath is set when the result was also written to disk.
	OutputPath string `json:"output_path,omitempty"`
}

// PreserveColorResult extends TransformResult with mask statistics.
type PreserveColorResult struct {
	TransformResult

	// Reference is the color the bands were centered on.
	Reference string `json:"reference"`

	// Preserved is the number of pixels that kept their color, counting
	// pixels matched by earlier calls on the same image.
	Preserved int `json:"preserved"`

	// NewlyMatched is the number of pixels this call added to the mask.
	NewlyMatched int `json:"newly_matched"`
}

// BlurResult extends TransformResult with per-rule exchange counts.
type BlurResult struct {
	TransformResult
	Displacements map[string]int `json:"displacements"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := callSafely(func() (interface{}, error) {
		return s.executeTool(params.Name, params.Arguments)
	})
	if err != nil {
		logging.Logger().Warn("tool failed", "tool", params.Name, "err", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// callSafely runs fn and converts a panic into an error so one bad tool
// call cannot take down the server.
func callSafely(fn func() (interface{}, error)) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger().Error("tool panicked", "panic", r)
			result, err = nil, fmt.Errorf("internal error: %v", r)
		}
	}()
	return fn()
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each transform handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the source buffer from the cache
//  4. Runs the transform on it, leaving the cached buffer untouched
//  5. Encodes the result and saves it when output_path is given
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_unload":
		return s.handleImageUnload(args)

	// Color Sampling
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	// Color Transforms
	case "image_grayscale":
		return s.handleImageGrayscale(args)
	case "image_invert":
		return s.handleImageInvert(args)
	case "image_brightness":
		return s.handleImageBrightness(args)
	case "image_preserve_color":
		return s.handleImagePreserveColor(args)
	case "image_mask_reset":
		return s.handleImageMaskReset(args)

	// Blur
	case "image_blur":
		return s.handleImageBlur(args)

	// Geometry
	case "image_scale":
		return s.handleImageScale(args)
	case "image_rotate":
		return s.handleImageRotate(args)
	case "image_swirl":
		return s.handleImageSwirl(args)

	// Detection
	case "image_edge_detect":
		return s.handleImageEdgeDetect(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// finish encodes out and writes it to outputPath when one is given.
func finish(out *raster.Buffer, outputPath string) (*TransformResult, error) {
	enc, err := imaging.Encode(out)
	if err != nil {
		return nil, err
	}
	if outputPath != "" {
		if err := imaging.Save(out, outputPath); err != nil {
			return nil, err
		}
	}
	return &TransformResult{EncodedImage: *enc, OutputPath: outputPath}, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

func (s *Server) handleImageUnload(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Path)
	hadMask := s.resetMask(a.Path)
	return map[string]interface{}{"path": a.Path, "mask_discarded": hadMask}, nil
}

// === Color Sampling Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(buf, a.X, a.Y)
}

type imageDominantColorsArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Region *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = defaultDominantCount
	}
	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(buf, a.Count, a.Region)
}

// === Color Transform Handlers ===

type transformArgs struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a transformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	return finish(effects.Grayscale(buf), a.OutputPath)
}

func (s *Server) handleImageInvert(args json.RawMessage) (interface{}, error) {
	var a transformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	return finish(effects.InvertColor(buf), a.OutputPath)
}

type imageBrightnessArgs struct {
	transformArgs
	Amount int `json:"amount"`
}

func (s *Server) handleImageBrightness(args json.RawMessage) (interface{}, error) {
	var a imageBrightnessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	return finish(effects.AdjustBrightness(buf, a.Amount), a.OutputPath)
}

type imagePreserveColorArgs struct {
	transformArgs
	Color     string            `json:"color"`
	Sample    *imaging.Point    `json:"sample,omitempty"`
	Tolerance effects.Tolerance `json:"tolerance"`
	ResetMask bool              `json:"reset_mask"`
}

func (s *Server) handleImagePreserveColor(args json.RawMessage) (interface{}, error) {
	// Each band left out of the arguments keeps its default
	a := imagePreserveColorArgs{
		Tolerance: effects.Tolerance{RG: defaultTolerance, GB: defaultTolerance, BR: defaultTolerance},
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}

	var ref raster.RGB
	switch {
	case a.Color != "" && a.Sample != nil:
		return nil, fmt.Errorf("%w: give either color or sample, not both", raster.ErrInvalidArgument)
	case a.Color != "":
		if ref, err = effects.ParseColor(a.Color); err != nil {
			return nil, err
		}
	case a.Sample != nil:
		c, err := imaging.SampleColor(buf, a.Sample.X, a.Sample.Y)
		if err != nil {
			return nil, err
		}
		ref = c.RGB
	default:
		return nil, fmt.Errorf("%w: a reference color or sample point is required", raster.ErrInvalidArgument)
	}

	if a.ResetMask {
		s.resetMask(a.Path)
	}

	s.masksMu.Lock()
	mask := s.maskFor(a.Path, buf)
	before := mask.Count()
	out, err := effects.PreserveColor(buf, mask, ref, a.Tolerance)
	after := mask.Count()
	s.masksMu.Unlock()
	if err != nil {
		return nil, err
	}

	res, err := finish(out, a.OutputPath)
	if err != nil {
		return nil, err
	}
	return &PreserveColorResult{
		TransformResult: *res,
		Reference:       ref.Hex(),
		Preserved:       after,
		NewlyMatched:    after - before,
	}, nil
}

func (s *Server) handleImageMaskReset(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return map[string]interface{}{"path": a.Path, "mask_discarded": s.resetMask(a.Path)}, nil
}

// === Blur Handler ===

type imageBlurArgs struct {
	transformArgs
	Offset *int `json:"offset,omitempty"`
}

func (s *Server) handleImageBlur(args json.RawMessage) (interface{}, error) {
	var a imageBlurArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	offset := defaultBlurOffset
	if a.Offset != nil {
		offset = *a.Offset
	}

	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	out, stats, err := effects.BlurWithStats(buf, offset, s.rnd)
	if err != nil {
		return nil, err
	}

	res, err := finish(out, a.OutputPath)
	if err != nil {
		return nil, err
	}
	displacements := make(map[string]int)
	for d := effects.DisplaceSwap; d <= effects.DisplaceLeftBottom; d++ {
		if n := stats.Count(d); n > 0 {
			displacements[d.String()] = n
		}
	}
	return &BlurResult{TransformResult: *res, Displacements: displacements}, nil
}

// === Geometry Handlers ===

type imageScaleArgs struct {
	transformArgs
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageScale(args json.RawMessage) (interface{}, error) {
	var a imageScaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := geometry.Scale(buf, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return finish(out, a.OutputPath)
}

type imageRotateArgs struct {
	transformArgs
	Angle float64 `json:"angle"`
}

func (s *Server) handleImageRotate(args json.RawMessage) (interface{}, error) {
	var a imageRotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	return finish(geometry.Rotate(buf, a.Angle), a.OutputPath)
}

type imageSwirlArgs struct {
	transformArgs
	Strength float64 `json:"strength"`
}

func (s *Server) handleImageSwirl(args json.RawMessage) (interface{}, error) {
	var a imageSwirlArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	return finish(geometry.Swirl(buf, a.Strength), a.OutputPath)
}

// === Detection Handler ===

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a transformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	return finish(detection.DetectEdges(buf), a.OutputPath)
}
