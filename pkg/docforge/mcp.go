package docforge

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

// RegisterMCP registers the generation tools on an MCP server.
func (e *Engine) RegisterMCP(srv *mcp.Server) {
	e.registerGenerateTool(srv)
	e.registerPresentationTool(srv)
	e.registerFormatsTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func toolResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		var res mcp.CallToolResult
		res.SetError(err)
		return &res, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	var res mcp.CallToolResult
	res.SetError(err)
	return &res, nil
}

// --- generate_file ---

type generateReq struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
	Format   string `json:"format,omitempty"`
}

func (e *Engine) registerGenerateTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name: "generate_file",
		Description: "Generate documents (PDF, DOCX), spreadsheets (XLSX, CSV), " +
			"and data files (JSON, YAML, XML). For documents, provide Markdown content. " +
			"For data and spreadsheets, provide a JSON string representing the data.",
		InputSchema: inputSchema(map[string]any{
			"content": map[string]any{
				"type": "string",
				"description": "The file content. Markdown for pdf/docx; a JSON string " +
					"(list of objects or object) for data formats.",
			},
			"filename": map[string]any{
				"type":        "string",
				"description": "Output filename, e.g. 'report.pdf' or 'data.xlsx'.",
			},
			"format": map[string]any{
				"type":        "string",
				"enum":        SupportedFormats(),
				"description": "Target format. Inferred from the filename extension when omitted.",
			},
		}, []string{"content", "filename"}),
	}

	srv.AddTool(tool, func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r generateReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return toolError(err)
		}
		res := e.Generate(r.Content, r.Filename, r.Format)
		if res.Failed() {
			return toolError(errors.New(res.Error))
		}
		return toolResult(res)
	})
}

// --- create_presentation ---

type presentationReq struct {
	Filename string             `json:"filename"`
	Slides   []models.SlideSpec `json:"slides"`
}

func (e *Engine) registerPresentationTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name: "create_presentation",
		Description: "Create a PowerPoint presentation with rich text, charts, tables, " +
			"and shapes. Use the dedicated charts/tables/shapes parameters, not text content.",
		InputSchema: inputSchema(map[string]any{
			"filename": map[string]any{
				"type":        "string",
				"description": "Output filename, must end with .pptx.",
			},
			"slides": map[string]any{
				"type":        "array",
				"description": "Slides to add, in order.",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"title"},
					"properties": map[string]any{
						"title":            map[string]any{"type": "string"},
						"layout":           map[string]any{"type": "string", "description": "title_slide, title_and_content, two_content, comparison, title_only, blank, or picture_with_caption."},
						"content":          map[string]any{"type": "string", "description": "Body text. Supports **bold**, *italic*, __underline__."},
						"font_name":        map[string]any{"type": "string"},
						"font_size":        map[string]any{"type": "integer"},
						"font_color":       map[string]any{"type": "string"},
						"background_color": map[string]any{"type": "string"},
						"charts":           map[string]any{"type": "array"},
						"tables":           map[string]any{"type": "array"},
						"shapes":           map[string]any{"type": "array"},
					},
				},
			},
		}, []string{"filename", "slides"}),
	}

	srv.AddTool(tool, func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r presentationReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return toolError(err)
		}
		res := e.CreatePresentation(r.Filename, r.Slides)
		if res.Failed() {
			return toolError(errors.New(res.Error))
		}
		return toolResult(res)
	})
}

// --- formats ---

func (e *Engine) registerFormatsTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "docforge_formats",
		Description: "List all formats generate_file supports.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	srv.AddTool(tool, func(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolResult(map[string]any{"formats": SupportedFormats()})
	})
}
