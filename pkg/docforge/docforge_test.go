package docforge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(Options{Workspace: t.TempDir()})
}

func TestGenerateDataFormats(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		filename string
		content  string
		message  string
	}{
		{"data.json", `{"a": 1}`, "JSON file generated successfully"},
		{"data.yaml", `{"a": 1}`, "YAML file generated successfully"},
		{"data.xml", `{"a": 1}`, "XML file generated successfully"},
		{"data.csv", `[{"a": 1}]`, "CSV file generated successfully"},
		{"data.xlsx", `[{"a": 1}]`, "XLSX file generated successfully"},
	}

	for _, tt := range tests {
		res := engine.Generate(tt.content, tt.filename, "")
		if res.Failed() {
			t.Errorf("Generate(%s) failed: %s", tt.filename, res.Error)
			continue
		}
		if !strings.HasPrefix(res.Output, tt.message) {
			t.Errorf("Generate(%s) output = %q, expected prefix %q", tt.filename, res.Output, tt.message)
		}
		if _, err := os.Stat(res.Path); err != nil {
			t.Errorf("Generate(%s): output file missing: %v", tt.filename, err)
		}
	}
}

func TestGenerateFlowFormats(t *testing.T) {
	engine := newTestEngine(t)
	content := "# Title\n\nSome **bold** text.\n"

	pdf := engine.Generate(content, "doc.pdf", "")
	if pdf.Failed() {
		t.Fatalf("Generate pdf failed: %s", pdf.Error)
	}
	if !strings.HasPrefix(pdf.Output, "PDF document generated successfully") {
		t.Errorf("PDF output = %q", pdf.Output)
	}
	data, err := os.ReadFile(pdf.Path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("PDF file has wrong magic")
	}

	docx := engine.Generate(content, "doc.docx", "")
	if docx.Failed() {
		t.Fatalf("Generate docx failed: %s", docx.Error)
	}
	if !strings.HasPrefix(docx.Output, "DOCX document generated successfully") {
		t.Errorf("DOCX output = %q", docx.Output)
	}
}

func TestGenerateExplicitFormatWins(t *testing.T) {
	engine := newTestEngine(t)

	// Explicit token overrides the extension.
	res := engine.Generate(`{"a": 1}`, "data.txt", "json")
	if res.Failed() {
		t.Fatalf("Generate failed: %s", res.Error)
	}
	if !strings.Contains(res.Output, "JSON file generated successfully") {
		t.Errorf("Output = %q", res.Output)
	}
}

func TestGenerateYmlAlias(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.Generate(`{"a": 1}`, "report.yml", "")
	if res.Failed() {
		t.Fatalf("Generate failed: %s", res.Error)
	}
	if !strings.Contains(res.Output, "YAML file generated successfully") {
		t.Errorf("Output = %q", res.Output)
	}
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	engine := newTestEngine(t)

	for _, tt := range []struct {
		filename string
		format   string
	}{
		{"file.txt", ""},
		{"noextension", ""},
		{"file.json", "exe"},
		{"deck.pptx", ""}, // pptx goes through CreatePresentation
	} {
		res := engine.Generate("content", tt.filename, tt.format)
		if !res.Failed() {
			t.Errorf("Generate(%q, %q): expected failure, got %q", tt.filename, tt.format, res.Output)
		}
	}
}

func TestGenerateMalformedDataContent(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.Generate("not json", "data.json", "")
	if !res.Failed() {
		t.Fatal("Expected failure for malformed JSON content")
	}
	if !strings.HasPrefix(res.Error, "Failed to generate file") {
		t.Errorf("Error = %q", res.Error)
	}

	// Nothing may be written on failure.
	entries, err := os.ReadDir(engine.opts.Workspace)
	if err == nil && len(entries) != 0 {
		t.Errorf("Workspace not empty after failure: %v", entries)
	}
}

func TestGeneratePathTraversalRejected(t *testing.T) {
	engine := newTestEngine(t)

	for _, filename := range []string{"../escape.json", "/abs/path.json"} {
		res := engine.Generate(`{"a": 1}`, filename, "")
		if !res.Failed() {
			t.Errorf("Generate(%q): expected failure", filename)
		}
	}
}

func TestGenerateSubdirectory(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.Generate(`{"a": 1}`, "reports/2026/data.json", "")
	if res.Failed() {
		t.Fatalf("Generate failed: %s", res.Error)
	}
	want := filepath.Join(engine.opts.Workspace, "reports", "2026", "data.json")
	if res.Path != want {
		t.Errorf("Path = %q, expected %q", res.Path, want)
	}
}

func TestCreatePresentation(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.CreatePresentation("deck.pptx", []models.SlideSpec{
		{Title: "Intro", Layout: "title_slide"},
		{Title: "Body", Content: "point one\npoint two"},
	})
	if res.Failed() {
		t.Fatalf("CreatePresentation failed: %s", res.Error)
	}
	if !strings.HasPrefix(res.Output, "Presentation successfully created at ") {
		t.Errorf("Output = %q", res.Output)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Errorf("Presentation file missing: %v", err)
	}
}

func TestCreatePresentationRequiresPptxSuffix(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.CreatePresentation("deck.pdf", nil)
	if !res.Failed() {
		t.Fatal("Expected failure for wrong extension")
	}
	if res.Error != "Filename must end with .pptx" {
		t.Errorf("Error = %q", res.Error)
	}
}

func TestCreatePresentationUnknownLayoutSucceeds(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.CreatePresentation("deck.pptx", []models.SlideSpec{
		{Title: "T", Layout: "no_such_layout"},
	})
	if res.Failed() {
		t.Fatalf("Unknown layout must fall back, got failure: %s", res.Error)
	}
}

func TestCreatePresentationInvalidChartFails(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.CreatePresentation("deck.pptx", []models.SlideSpec{
		{Title: "T", Charts: []models.ChartSpec{{
			Kind: "bar",
			Data: models.ChartData{
				{Label: "A", Value: 1},
				{Label: "B", Values: []float64{2, 3}, IsSequence: true},
			},
		}}},
	})
	if !res.Failed() {
		t.Fatal("Expected failure for inconsistent chart data")
	}
	if !strings.HasPrefix(res.Error, "Failed to create presentation") {
		t.Errorf("Error = %q", res.Error)
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 7 {
		t.Fatalf("Expected 7 formats, got %d: %v", len(formats), formats)
	}
	for _, f := range formats {
		if f == "pptx" {
			t.Error("pptx is not a Generate format")
		}
	}
}

func TestNewDefaultsWorkspace(t *testing.T) {
	engine := New(Options{})
	if engine.opts.Workspace != "workspace" {
		t.Errorf("Workspace = %q, expected default", engine.opts.Workspace)
	}
}
