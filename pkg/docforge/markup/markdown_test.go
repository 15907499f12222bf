package markup

import "testing"

func TestParseDocumentBlocks(t *testing.T) {
	content := `# Report

First line
second line

> quoted text

- alpha
- beta

| Name | Age |
|------|-----|
| Ann  | 30  |

` + "```\ncode line\n```"

	blocks := ParseDocument(content)
	if len(blocks) != 6 {
		t.Fatalf("Expected 6 blocks, got %d", len(blocks))
	}

	if blocks[0].Kind != BlockHeading || blocks[0].Level != 1 {
		t.Errorf("Block 0: expected level-1 heading, got %+v", blocks[0])
	}
	if got := SpanText(blocks[0].Spans); got != "Report" {
		t.Errorf("Heading text = %q, expected %q", got, "Report")
	}

	// Consecutive plain lines merge into one paragraph.
	if blocks[1].Kind != BlockParagraph {
		t.Errorf("Block 1: expected paragraph, got %v", blocks[1].Kind)
	}
	if got := SpanText(blocks[1].Spans); got != "First line second line" {
		t.Errorf("Paragraph text = %q", got)
	}

	if blocks[2].Kind != BlockQuote {
		t.Errorf("Block 2: expected quote, got %v", blocks[2].Kind)
	}
	if got := SpanText(blocks[2].Spans); got != "quoted text" {
		t.Errorf("Quote text = %q", got)
	}

	if blocks[3].Kind != BlockList || len(blocks[3].Items) != 2 {
		t.Fatalf("Block 3: expected 2-item list, got %+v", blocks[3])
	}
	if got := SpanText(blocks[3].Items[1]); got != "beta" {
		t.Errorf("List item 1 = %q", got)
	}

	if blocks[4].Kind != BlockTable {
		t.Fatalf("Block 4: expected table, got %v", blocks[4].Kind)
	}
	// Separator row is dropped.
	if len(blocks[4].Rows) != 2 {
		t.Fatalf("Expected 2 table rows, got %d", len(blocks[4].Rows))
	}
	if blocks[4].Rows[1][0] != "Ann" || blocks[4].Rows[1][1] != "30" {
		t.Errorf("Table row 1 = %v", blocks[4].Rows[1])
	}

	if blocks[5].Kind != BlockCode || blocks[5].Text != "code line" {
		t.Errorf("Block 5: expected code block %q, got %+v", "code line", blocks[5])
	}
}

func TestParseDocumentCodeFence(t *testing.T) {
	blocks := ParseDocument("```\nfunc main() {}\n\tindented\n```\nafter")
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Kind != BlockCode {
		t.Fatalf("Expected code block, got %v", blocks[0].Kind)
	}
	// Code keeps raw indentation and line breaks.
	if blocks[0].Text != "func main() {}\n\tindented" {
		t.Errorf("Code text = %q", blocks[0].Text)
	}
	if blocks[1].Kind != BlockParagraph {
		t.Errorf("Expected trailing paragraph, got %v", blocks[1].Kind)
	}
}

func TestParseSpans(t *testing.T) {
	spans := ParseSpans("run `go test` with **flags**")
	if len(spans) != 4 {
		t.Fatalf("Expected 4 spans, got %d", len(spans))
	}
	if spans[0].Run.Text != "run " || spans[0].Code {
		t.Errorf("Span 0 = %+v", spans[0])
	}
	if spans[1].Run.Text != "go test" || !spans[1].Code {
		t.Errorf("Span 1 = %+v", spans[1])
	}
	if spans[2].Run.Text != " with " {
		t.Errorf("Span 2 = %+v", spans[2])
	}
	if spans[3].Run.Text != "flags" || !spans[3].Run.Bold {
		t.Errorf("Span 3 = %+v", spans[3])
	}
}

func TestHeadingLevelParsing(t *testing.T) {
	tests := []struct {
		line     string
		expected int
	}{
		{"# one", 1},
		{"###### six", 6},
		{"####### seven", 0},
		{"#nospace", 0},
		{"plain", 0},
		{"#", 0},
	}

	for _, tt := range tests {
		if got := headingLevel(tt.line); got != tt.expected {
			t.Errorf("headingLevel(%q) = %d, expected %d", tt.line, got, tt.expected)
		}
	}
}

func TestIsTableSeparator(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"|---|---|", true},
		{"| :--- | ---: |", true},
		{"| a | b |", false},
		{"||", false},
	}

	for _, tt := range tests {
		if got := isTableSeparator(tt.line); got != tt.expected {
			t.Errorf("isTableSeparator(%q) = %v, expected %v", tt.line, got, tt.expected)
		}
	}
}
