package server

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotgrid/pattern-tools/internal/gridio"
	"github.com/dotgrid/pattern-tools/internal/pattern"
	"github.com/dotgrid/pattern-tools/internal/render"
)

func testGrid(t *testing.T) pattern.Grid {
	t.Helper()
	u, d, l, r := pattern.Up, pattern.Down, pattern.Left, pattern.Right
	return pattern.MustGrid([][]pattern.Symbol{
		{u, d, l},
		{r, u, d},
	})
}

func saveTestGrid(t *testing.T, g pattern.Grid) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.json")
	if err := gridio.SaveGrid(path, g); err != nil {
		t.Fatalf("SaveGrid failed: %v", err)
	}
	return path
}

func callTool(t *testing.T, s *Server, name string, args interface{}) *MCPResponse {
	t.Helper()
	argJSON, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshaling args: %v", err)
	}
	params, err := json.Marshal(ToolCallParams{Name: name, Arguments: argJSON})
	if err != nil {
		t.Fatalf("marshaling params: %v", err)
	}
	return s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  params,
	})
}

// toolText extracts the text payload from a successful tools/call response.
func toolText(t *testing.T, resp *MCPResponse) string {
	t.Helper()
	if resp.Error != nil {
		t.Fatalf("tool call failed: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) == 0 {
		t.Fatalf("unexpected content shape: %v", result["content"])
	}
	text, ok := content[0]["text"].(string)
	if !ok {
		t.Fatalf("content[0].text missing: %v", content[0])
	}
	return text
}

func TestHandleInitialize(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})
	if resp.Error != nil {
		t.Fatalf("initialize failed: %+v", resp.Error)
	}
	result := resp.Result.(map[string]interface{})
	info := result["serverInfo"].(map[string]interface{})
	if info["name"] != "dotgrid-pattern-mcp" {
		t.Errorf("unexpected server name: %v", info["name"])
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 2, Method: "tools/list"})
	if resp.Error != nil {
		t.Fatalf("tools/list failed: %+v", resp.Error)
	}
	result := resp.Result.(map[string]interface{})
	tools := result["tools"].([]Tool)

	want := map[string]bool{
		"grid_load":       false,
		"grid_transforms": false,
		"pattern_find":    false,
		"page_info":       false,
		"dots_detect":     false,
		"grid_minify":     false,
		"sample_generate": false,
	}
	for _, tool := range tools {
		if _, ok := want[tool.Name]; ok {
			want[tool.Name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("tool %s missing from tools/list", name)
		}
	}
}

func TestHandlePing(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 3, Method: "ping"})
	if resp.Error != nil {
		t.Errorf("ping failed: %+v", resp.Error)
	}
}

func TestHandleUnknownMethod(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 4, Method: "bogus"})
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Errorf("expected method-not-found error, got %+v", resp.Error)
	}
}

func TestHandleNotificationInitialized(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"})
	if resp != nil {
		t.Errorf("notification should not produce a response, got %+v", resp)
	}
}

func TestGridLoadTool(t *testing.T) {
	s := New()
	path := saveTestGrid(t, testGrid(t))

	text := toolText(t, callTool(t, s, "grid_load", map[string]string{"path": path}))
	var result struct {
		Height int      `json:"height"`
		Width  int      `json:"width"`
		Rows   []string `json:"rows"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if result.Height != 2 || result.Width != 3 || len(result.Rows) != 2 {
		t.Errorf("unexpected grid result: %+v", result)
	}
}

func TestGridLoadTool_MissingFile(t *testing.T) {
	s := New()
	resp := callTool(t, s, "grid_load", map[string]string{"path": "/nonexistent.json"})
	if resp.Error == nil || resp.Error.Code != -32000 {
		t.Errorf("expected tool execution error, got %+v", resp.Error)
	}
}

func TestGridTransformsTool(t *testing.T) {
	s := New()
	path := saveTestGrid(t, testGrid(t))

	text := toolText(t, callTool(t, s, "grid_transforms", map[string]string{"path": path}))
	var result struct {
		Transforms []struct {
			Transform string   `json:"transform"`
			Height    int      `json:"height"`
			Width     int      `json:"width"`
			Rows      []string `json:"rows"`
		} `json:"transforms"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if len(result.Transforms) != pattern.NumTransforms {
		t.Fatalf("got %d transforms, want %d", len(result.Transforms), pattern.NumTransforms)
	}
	if result.Transforms[0].Transform != "Identity" || result.Transforms[0].Height != 2 {
		t.Errorf("unexpected first transform: %+v", result.Transforms[0])
	}
	if result.Transforms[1].Transform != "Rotate90" || result.Transforms[1].Height != 3 {
		t.Errorf("unexpected second transform: %+v", result.Transforms[1])
	}
}

func TestPatternFindTool(t *testing.T) {
	s := New()
	ref := testGrid(t)

	// Candidate: reference rotated 90 degrees, embedded in a Right-filled 7x7.
	rows := make([][]pattern.Symbol, 7)
	for r := range rows {
		rows[r] = make([]pattern.Symbol, 7)
		for c := range rows[r] {
			rows[r][c] = pattern.Right
		}
	}
	rotated := pattern.Rotate90.Apply(ref)
	for r := 0; r < rotated.Height(); r++ {
		for c := 0; c < rotated.Width(); c++ {
			rows[2+r][3+c] = rotated.At(r, c)
		}
	}

	dir := t.TempDir()
	candidatePath := filepath.Join(dir, "candidate.json")
	patternPath := filepath.Join(dir, "pattern.json")
	if err := gridio.SaveGrid(candidatePath, pattern.MustGrid(rows)); err != nil {
		t.Fatalf("SaveGrid failed: %v", err)
	}
	if err := gridio.SaveGrid(patternPath, ref); err != nil {
		t.Fatalf("SaveGrid failed: %v", err)
	}

	text := toolText(t, callTool(t, s, "pattern_find", map[string]string{
		"candidate_path": candidatePath,
		"pattern_path":   patternPath,
	}))
	var result struct {
		Found     bool   `json:"found"`
		Row       int    `json:"row"`
		Col       int    `json:"col"`
		Transform string `json:"transform"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if !result.Found || result.Row != 2 || result.Col != 3 || result.Transform != "Rotate90" {
		t.Errorf("unexpected match result: %+v", result)
	}
}

func TestSampleGenerateAndDetectTools(t *testing.T) {
	s := New()
	dir := t.TempDir()

	// Expand the grid so each logical cell covers a 3x3 block of dots.
	logical := testGrid(t)
	rows := make([][]pattern.Symbol, logical.Height()*3)
	for r := range rows {
		rows[r] = make([]pattern.Symbol, logical.Width()*3)
		for c := range rows[r] {
			rows[r][c] = logical.At(r/3, c/3)
		}
	}
	gridPath := filepath.Join(dir, "grid.json")
	if err := gridio.SaveGrid(gridPath, pattern.MustGrid(rows)); err != nil {
		t.Fatalf("SaveGrid failed: %v", err)
	}

	pagePath := filepath.Join(dir, "page.png")
	text := toolText(t, callTool(t, s, "sample_generate", map[string]interface{}{
		"grid_path": gridPath,
		"output":    pagePath,
	}))
	if !strings.Contains(text, fmt.Sprintf("%q", pagePath)) {
		t.Errorf("sample_generate result missing output path: %s", text)
	}

	text = toolText(t, callTool(t, s, "dots_detect", map[string]interface{}{
		"path": pagePath,
	}))
	var detected struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal([]byte(text), &detected); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if want := logical.Height() * logical.Width() * 9; detected.Count != want {
		t.Errorf("dots_detect count = %d, want %d", detected.Count, want)
	}

	outPath := filepath.Join(dir, "extracted.json")
	text = toolText(t, callTool(t, s, "grid_minify", map[string]interface{}{
		"path":   pagePath,
		"output": outPath,
	}))
	var minified struct {
		Height  int    `json:"height"`
		Width   int    `json:"width"`
		SavedTo string `json:"saved_to"`
	}
	if err := json.Unmarshal([]byte(text), &minified); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if minified.Height != logical.Height() || minified.Width != logical.Width() {
		t.Errorf("minified dimensions %dx%d, want %dx%d",
			minified.Height, minified.Width, logical.Height(), logical.Width())
	}

	extracted, err := gridio.LoadGrid(outPath)
	if err != nil {
		t.Fatalf("loading saved grid: %v", err)
	}
	if !extracted.Equal(logical) {
		t.Errorf("saved grid does not match:\ngot %v\nwant %v", extracted, logical)
	}
}

func TestSampleGenerateTool_Lattice(t *testing.T) {
	s := New()
	pagePath := filepath.Join(t.TempDir(), "lattice.png")

	text := toolText(t, callTool(t, s, "sample_generate", map[string]interface{}{
		"width":  120,
		"height": 100,
		"output": pagePath,
	}))
	var result struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if result.Width != 120 || result.Height != 100 {
		t.Errorf("unexpected page size: %+v", result)
	}
}

func TestSampleGenerateTool_MissingArgs(t *testing.T) {
	s := New()
	resp := callTool(t, s, "sample_generate", map[string]interface{}{})
	if resp.Error == nil {
		t.Error("expected error for missing output path")
	}
}

func TestPageInfoTool(t *testing.T) {
	s := New()
	pagePath := filepath.Join(t.TempDir(), "page.png")
	if err := render.SavePNG(pagePath, render.Lattice(60, 40, render.DefaultSampleOptions())); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	text := toolText(t, callTool(t, s, "page_info", map[string]string{"path": pagePath}))
	var info struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Format string `json:"format"`
	}
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if info.Width != 60 || info.Height != 40 || info.Format != "png" {
		t.Errorf("unexpected page info: %+v", info)
	}
}

func TestUnknownTool(t *testing.T) {
	s := New()
	resp := callTool(t, s, "bogus_tool", map[string]string{})
	if resp.Error == nil || resp.Error.Code != -32000 {
		t.Errorf("expected tool execution error, got %+v", resp.Error)
	}
}
