package server

import (
	"strings"
	"testing"
)

var expectedTools = []string{
	"image_load",
	"image_dimensions",
	"image_unload",
	"image_sample_color",
	"image_dominant_colors",
	"image_grayscale",
	"image_invert",
	"image_brightness",
	"image_preserve_color",
	"image_mask_reset",
	"image_blur",
	"image_scale",
	"image_rotate",
	"image_swirl",
	"image_edge_detect",
}

func toolMap() map[string]Tool {
	m := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		m[tool.Name] = tool
	}
	return m
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()
	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	m := toolMap()
	for _, name := range expectedTools {
		if _, ok := m[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Dispatchable(t *testing.T) {
	s := New()
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			_, err := s.executeTool(tool.Name, []byte(`{"path":"/nonexistent/image.png"}`))
			if err != nil && err.Error() == "unknown tool: "+tool.Name {
				t.Error("tool is listed but not dispatched")
			}
		})
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok || props == nil {
				t.Fatal("InputSchema properties missing")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			// Every tool works on a file
			if len(required) == 0 || required[0] != "path" {
				t.Errorf("required: got %v, want path first", required)
			}
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %s has no property", r)
				}
			}
		})
	}
}

func TestToolDefinitions_OutputPath(t *testing.T) {
	transforms := []string{
		"image_grayscale", "image_invert", "image_brightness", "image_preserve_color",
		"image_blur", "image_scale", "image_rotate", "image_swirl", "image_edge_detect",
	}

	m := toolMap()
	for _, name := range transforms {
		props := m[name].InputSchema["properties"].(map[string]interface{})
		if _, ok := props["output_path"]; !ok {
			t.Errorf("%s: missing output_path property", name)
		}
	}
}

func TestToolDefinitions_RequiredParams(t *testing.T) {
	tests := map[string][]string{
		"image_sample_color": {"path", "x", "y"},
		"image_brightness":   {"path", "amount"},
		"image_scale":        {"path", "width", "height"},
		"image_rotate":       {"path", "angle"},
		"image_swirl":        {"path", "strength"},
		"image_blur":         {"path"},
	}

	m := toolMap()
	for name, want := range tests {
		got := m[name].InputSchema["required"].([]string)
		if len(got) != len(want) {
			t.Errorf("%s required: got %v, want %v", name, got, want)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s required: got %v, want %v", name, got, want)
				break
			}
		}
	}
}

func TestToolDefinitions_OptionalDefaults(t *testing.T) {
	toolDefaults := map[string]map[string]interface{}{
		"image_dominant_colors": {"count": defaultDominantCount},
		"image_blur":            {"offset": defaultBlurOffset},
		"image_preserve_color":  {"reset_mask": false},
	}

	m := toolMap()
	for toolName, expectedDefaults := range toolDefaults {
		props := m[toolName].InputSchema["properties"].(map[string]interface{})
		for paramName, want := range expectedDefaults {
			param, ok := props[paramName].(map[string]interface{})
			if !ok {
				t.Errorf("%s.%s: parameter not found", toolName, paramName)
				continue
			}
			if got := param["default"]; got != want {
				t.Errorf("%s.%s: default got %v, want %v", toolName, paramName, got, want)
			}
		}
	}
}

func TestToolDefinitions_RotateDescription(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name != "image_rotate" {
			continue
		}
		if strings.Contains(tool.Description, "about its center") {
			t.Errorf("image_rotate claims a rigid rotation: %q", tool.Description)
		}
		if !strings.Contains(tool.Description, "transposed") {
			t.Errorf("image_rotate should describe the 0 degree transpose: %q", tool.Description)
		}
		return
	}
	t.Fatal("image_rotate not defined")
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1})

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(toolsList) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expectedTools))
	}
}
