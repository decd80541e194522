package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/dotgrid/pattern-tools/internal/detect"
	"github.com/dotgrid/pattern-tools/internal/gridio"
	"github.com/dotgrid/pattern-tools/internal/imaging"
	"github.com/dotgrid/pattern-tools/internal/pattern"
	"github.com/dotgrid/pattern-tools/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "grid_load", "pattern_find").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
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

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
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

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Grid Operations
	case "grid_load":
		return s.handleGridLoad(args)
	case "grid_transforms":
		return s.handleGridTransforms(args)
	case "pattern_find":
		return s.handlePatternFind(args)

	// Page Operations
	case "page_info":
		return s.handlePageInfo(args)
	case "dots_detect":
		return s.handleDotsDetect(args)
	case "grid_minify":
		return s.handleGridMinify(args)
	case "sample_generate":
		return s.handleSampleGenerate(args)

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

// === Grid Operation Handlers ===

// gridResult is the JSON shape of a loaded or derived grid: dimensions plus
// the space-separated glyph rows.
type gridResult struct {
	Height int      `json:"height"`
	Width  int      `json:"width"`
	Rows   []string `json:"rows"`
}

func makeGridResult(g pattern.Grid) gridResult {
	return gridResult{
		Height: g.Height(),
		Width:  g.Width(),
		Rows:   g.GlyphRows(),
	}
}

type gridLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleGridLoad(args json.RawMessage) (interface{}, error) {
	var a gridLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := gridio.LoadGrid(a.Path)
	if err != nil {
		return nil, err
	}
	return makeGridResult(g), nil
}

type transformResult struct {
	Transform string `json:"transform"`
	gridResult
}

func (s *Server) handleGridTransforms(args json.RawMessage) (interface{}, error) {
	var a gridLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := gridio.LoadGrid(a.Path)
	if err != nil {
		return nil, err
	}

	results := make([]transformResult, pattern.NumTransforms)
	for i, t := range pattern.AllTransforms(g) {
		results[i] = transformResult{
			Transform:  pattern.Transform(i).String(),
			gridResult: makeGridResult(t),
		}
	}
	return map[string]interface{}{"transforms": results}, nil
}

type patternFindArgs struct {
	CandidatePath string `json:"candidate_path"`
	PatternPath   string `json:"pattern_path"`
}

type patternFindResult struct {
	Found     bool     `json:"found"`
	Row       int      `json:"row,omitempty"`
	Col       int      `json:"col,omitempty"`
	Transform string   `json:"transform,omitempty"`
	Pattern   []string `json:"pattern,omitempty"`
}

func (s *Server) handlePatternFind(args json.RawMessage) (interface{}, error) {
	var a patternFindArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	candidate, err := gridio.LoadGrid(a.CandidatePath)
	if err != nil {
		return nil, err
	}
	reference, err := gridio.LoadGrid(a.PatternPath)
	if err != nil {
		return nil, err
	}

	res, err := pattern.FindPattern(candidate, reference)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return patternFindResult{Found: false}, nil
	}
	return patternFindResult{
		Found:     true,
		Row:       res.Row,
		Col:       res.Col,
		Transform: res.Transform.String(),
		Pattern:   res.Pattern.GlyphRows(),
	}, nil
}

// === Page Operation Handlers ===

func (s *Server) handlePageInfo(args json.RawMessage) (interface{}, error) {
	var a gridLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadPageInfo(s.cache, a.Path)
}

type dotsDetectArgs struct {
	Path      string `json:"path"`
	Threshold *int   `json:"threshold"`
	MinArea   *int   `json:"min_area"`
	Overlay   bool   `json:"overlay"`
}

func (a dotsDetectArgs) options() detect.Options {
	opts := detect.DefaultOptions()
	if a.Threshold != nil {
		opts.Threshold = uint8(*a.Threshold)
	}
	if a.MinArea != nil {
		opts.MinArea = *a.MinArea
	}
	return opts
}

type dotsDetectResult struct {
	Count   int          `json:"count"`
	Dots    []detect.Dot `json:"dots"`
	Overlay string       `json:"overlay_png_base64,omitempty"`
}

func (s *Server) handleDotsDetect(args json.RawMessage) (interface{}, error) {
	var a dotsDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	dots, err := detect.Dots(img, a.options())
	if err != nil {
		return nil, err
	}

	result := dotsDetectResult{Count: len(dots), Dots: dots}
	if a.Overlay {
		encoded, err := imaging.EncodePNGBase64(render.Overlay(img, dots))
		if err != nil {
			return nil, err
		}
		result.Overlay = encoded
	}
	return result, nil
}

type gridMinifyArgs struct {
	Path      string `json:"path"`
	Threshold *int   `json:"threshold"`
	MinArea   *int   `json:"min_area"`
	Output    string `json:"output"`
}

type gridMinifyResult struct {
	gridResult
	DotCount int    `json:"dot_count"`
	SavedTo  string `json:"saved_to,omitempty"`
}

func (s *Server) handleGridMinify(args json.RawMessage) (interface{}, error) {
	var a gridMinifyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	da := dotsDetectArgs{Threshold: a.Threshold, MinArea: a.MinArea}
	grid, dots, err := detect.GridFromImage(img, da.options())
	if err != nil {
		return nil, err
	}

	result := gridMinifyResult{
		gridResult: makeGridResult(grid),
		DotCount:   len(dots),
	}
	if a.Output != "" {
		if err := gridio.SaveGrid(a.Output, grid); err != nil {
			return nil, err
		}
		result.SavedTo = a.Output
	}
	return result, nil
}

type sampleGenerateArgs struct {
	GridPath  string  `json:"grid_path"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Spacing   *int    `json:"spacing"`
	DotRadius *int    `json:"dot_radius"`
	Jitter    float64 `json:"jitter"`
	Seed      int64   `json:"seed"`
	Output    string  `json:"output"`
}

type sampleGenerateResult struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Output string `json:"output"`
}

func (s *Server) handleSampleGenerate(args json.RawMessage) (interface{}, error) {
	var a sampleGenerateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Output == "" {
		return nil, fmt.Errorf("output path is required")
	}

	opts := render.DefaultSampleOptions()
	if a.Spacing != nil {
		opts.Spacing = *a.Spacing
	}
	if a.DotRadius != nil {
		opts.DotRadius = *a.DotRadius
	}
	opts.Jitter = a.Jitter
	opts.Seed = a.Seed

	var page *image.RGBA
	if a.GridPath != "" {
		grid, err := gridio.LoadGrid(a.GridPath)
		if err != nil {
			return nil, err
		}
		page = render.Sample(grid, opts)
	} else {
		if a.Width <= 0 || a.Height <= 0 {
			return nil, fmt.Errorf("width and height are required without grid_path")
		}
		page = render.Lattice(a.Width, a.Height, opts)
	}

	if err := render.SavePNG(a.Output, page); err != nil {
		return nil, err
	}
	bounds := page.Bounds()
	return sampleGenerateResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Output: a.Output,
	}, nil
}
