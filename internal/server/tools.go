package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Grid Operations
		{
			Name:        "grid_load",
			Description: "Load a persisted symbol grid (JSON array of arrow glyphs) and return its dimensions and glyph rows.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the grid JSON file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "grid_transforms",
			Description: "Return all 8 dihedral transforms of a grid (identity, three rotations, and the four mirrored variants) in canonical order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the grid JSON file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "pattern_find",
			Description: "Search a candidate grid for a reference pattern under all 8 dihedral transforms. Returns the first match in canonical order (transform, then row, then column), or found=false.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"candidate_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the candidate grid JSON file",
					},
					"pattern_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the reference pattern JSON file",
					},
				},
				"required": []string{"candidate_path", "pattern_path"},
			},
		},

		// Page Operations
		{
			Name:        "page_info",
			Description: "Load a scanned page image and return its dimensions, format and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the page image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "dots_detect",
			Description: "Detect dots on a scanned page image: binarize, find connected components, and classify each dot's direction from its marker color. Optionally returns an annotated overlay as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the page image file",
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Binarization threshold 0-255 (default 127)",
						"default":     127,
					},
					"min_area": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum dot area in pixels (default 5)",
						"default":     5,
					},
					"overlay": map[string]interface{}{
						"type":        "boolean",
						"description": "Whether to return an annotated overlay image",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "grid_minify",
			Description: "Extract the logical symbol grid from a scanned page image: detect dots, assemble the intersection grid, and collapse 3x3 blocks by majority vote. Optionally saves the grid as JSON.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the page image file",
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Binarization threshold 0-255 (default 127)",
						"default":     127,
					},
					"min_area": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum dot area in pixels (default 5)",
						"default":     5,
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to save the extracted grid as JSON",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "sample_generate",
			Description: "Generate a synthetic dot-paper page. With grid_path set, renders one marker-colored dot per grid cell; otherwise renders a plain black lattice of the given size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"grid_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to a grid JSON file to render",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Page width in pixels (plain lattice only)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Page height in pixels (plain lattice only)",
					},
					"spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Lattice pitch in pixels (default 20)",
						"default":     20,
					},
					"dot_radius": map[string]interface{}{
						"type":        "integer",
						"description": "Dot radius in pixels (default 2)",
						"default":     2,
					},
					"jitter": map[string]interface{}{
						"type":        "number",
						"description": "Random displacement as a fraction of spacing (default 0)",
						"default":     0,
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Seed for reproducible jitter",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Path to write the generated page image",
					},
				},
				"required": []string{"output"},
			},
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
