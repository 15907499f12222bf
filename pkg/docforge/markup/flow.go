package markup

import "strings"

// LineKind classifies one line of flow-document markup.
type LineKind int

const (
	LineParagraph LineKind = iota
	LineHeading1
	LineHeading2
	LineHeading3
	LineBullet
)

// Line is one classified line of flow-document content, prefix stripped.
type Line struct {
	Kind LineKind
	Text string
}

// HeadingLevel returns the heading level 1-3, or 0 for non-headings.
func (l Line) HeadingLevel() int {
	switch l.Kind {
	case LineHeading1:
		return 1
	case LineHeading2:
		return 2
	case LineHeading3:
		return 3
	}
	return 0
}

// ClassifyLines performs the four-way line classification used by the
// word-processor flow builder: headings at levels 1-3, bulleted list
// items, and plain paragraphs. Blank lines are skipped. No nesting.
func ClassifyLines(content string) []Line {
	var lines []Line
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "# "):
			lines = append(lines, Line{Kind: LineHeading1, Text: line[2:]})
		case strings.HasPrefix(line, "## "):
			lines = append(lines, Line{Kind: LineHeading2, Text: line[3:]})
		case strings.HasPrefix(line, "### "):
			lines = append(lines, Line{Kind: LineHeading3, Text: line[4:]})
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			lines = append(lines, Line{Kind: LineBullet, Text: line[2:]})
		default:
			lines = append(lines, Line{Kind: LineParagraph, Text: line})
		}
	}
	return lines
}
