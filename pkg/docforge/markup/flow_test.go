package markup

import "testing"

func TestClassifyLines(t *testing.T) {
	content := "# Title\n\n## Section\n### Sub\n- item1\n* item2\nplain paragraph\n"

	lines := ClassifyLines(content)

	expected := []Line{
		{Kind: LineHeading1, Text: "Title"},
		{Kind: LineHeading2, Text: "Section"},
		{Kind: LineHeading3, Text: "Sub"},
		{Kind: LineBullet, Text: "item1"},
		{Kind: LineBullet, Text: "item2"},
		{Kind: LineParagraph, Text: "plain paragraph"},
	}

	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d", len(expected), len(lines))
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Errorf("Line %d = %+v, expected %+v", i, line, expected[i])
		}
	}
}

func TestClassifyLinesBlankOnly(t *testing.T) {
	if lines := ClassifyLines("\n\n   \n"); len(lines) != 0 {
		t.Errorf("Expected no lines for blank content, got %d", len(lines))
	}
}

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		line     Line
		expected int
	}{
		{Line{Kind: LineHeading1}, 1},
		{Line{Kind: LineHeading2}, 2},
		{Line{Kind: LineHeading3}, 3},
		{Line{Kind: LineParagraph}, 0},
		{Line{Kind: LineBullet}, 0},
	}

	for _, tt := range tests {
		if got := tt.line.HeadingLevel(); got != tt.expected {
			t.Errorf("HeadingLevel(%v) = %d, expected %d", tt.line.Kind, got, tt.expected)
		}
	}
}
