package docforge

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var testMCPImpl = &mcp.Implementation{Name: "docforge-test", Version: "0.1.0"}

func mcpSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	engine := New(Options{Workspace: t.TempDir()})
	srv := mcp.NewServer(testMCPImpl, nil)
	engine.RegisterMCP(srv)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()

	client := mcp.NewClient(testMCPImpl, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func mcpCallTool(t *testing.T, session *mcp.ClientSession, name string, args any) string {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if result.IsError {
		t.Fatalf("CallTool(%s) tool error: %v", name, result.Content)
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s): expected TextContent", name)
	}
	return tc.Text
}

// --- docforge_formats ---

func TestMCP_Formats(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "docforge_formats", map[string]any{})

	var resp struct {
		Formats []string `json:"formats"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	expected := map[string]bool{
		"pdf": true, "docx": true, "json": true, "yaml": true,
		"xml": true, "csv": true, "xlsx": true,
	}
	for _, f := range resp.Formats {
		if !expected[f] {
			t.Errorf("unexpected format: %q", f)
		}
		delete(expected, f)
	}
	for f := range expected {
		t.Errorf("missing format: %q", f)
	}
}

// --- generate_file ---

func TestMCP_GenerateFile(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "generate_file", map[string]any{
		"content":  `{"name": "Ann"}`,
		"filename": "data.json",
	})

	var res struct {
		Output string `json:"output"`
		Path   string `json:"path"`
	}
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(res.Output, "JSON file generated successfully") {
		t.Errorf("Output = %q", res.Output)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Errorf("Output file missing: %v", err)
	}
}

func TestMCP_GenerateFile_Error(t *testing.T) {
	session := mcpSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "generate_file",
		Arguments: map[string]any{
			"content":  "whatever",
			"filename": "file.unsupported",
		},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for unsupported format")
	}
}

// --- create_presentation ---

func TestMCP_CreatePresentation(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "create_presentation", map[string]any{
		"filename": "deck.pptx",
		"slides": []map[string]any{
			{"title": "Welcome", "layout": "title_slide"},
			{
				"title":   "Numbers",
				"content": "see chart",
				"charts": []map[string]any{
					{"type": "pie", "title": "Share", "data": map[string]any{"A": 1, "B": 2}},
				},
			},
		},
	})

	var res struct {
		Output string `json:"output"`
		Path   string `json:"path"`
	}
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(res.Output, "Presentation successfully created at ") {
		t.Errorf("Output = %q", res.Output)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Errorf("Presentation file missing: %v", err)
	}
}

func TestMCP_CreatePresentation_BadFilename(t *testing.T) {
	session := mcpSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "create_presentation",
		Arguments: map[string]any{
			"filename": "deck.key",
			"slides":   []map[string]any{{"title": "T"}},
		},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for non-pptx filename")
	}
}
