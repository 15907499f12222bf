package markup

import (
	"strings"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

// BlockKind classifies one block of a parsed Markdown document.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockList
	BlockTable
)

// Span is one inline segment of a block: a styled run, optionally a
// code span rendered in monospace.
type Span struct {
	Run  models.RichTextRun
	Code bool
}

// Block is one structural unit of a parsed Markdown document.
type Block struct {
	Kind  BlockKind
	Level int        // heading level 1-6 for BlockHeading
	Spans []Span     // inline content for paragraph/heading/quote
	Items [][]Span   // list items for BlockList
	Rows  [][]string // cell rows for BlockTable, header first
	Text  string     // raw text for BlockCode
}

// ParseDocument expands Markdown-like content into a linear block tree:
// headings, paragraphs, fenced code blocks, block quotes, bullet lists,
// and pipe tables. Consecutive plain lines merge into one paragraph.
func ParseDocument(content string) []Block {
	lines := strings.Split(content, "\n")
	var blocks []Block
	var para []string

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		text := strings.Join(para, " ")
		blocks = append(blocks, Block{Kind: BlockParagraph, Spans: ParseSpans(text)})
		para = nil
	}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " \t")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flushPara()

		case strings.HasPrefix(trimmed, "```"):
			flushPara()
			var code []string
			for i++; i < len(lines); i++ {
				if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
					break
				}
				code = append(code, lines[i])
			}
			blocks = append(blocks, Block{Kind: BlockCode, Text: strings.Join(code, "\n")})

		case headingLevel(trimmed) > 0:
			flushPara()
			level := headingLevel(trimmed)
			text := strings.TrimSpace(trimmed[level:])
			blocks = append(blocks, Block{Kind: BlockHeading, Level: level, Spans: ParseSpans(text)})

		case strings.HasPrefix(trimmed, "> "):
			flushPara()
			var quote []string
			for ; i < len(lines); i++ {
				t := strings.TrimSpace(lines[i])
				if !strings.HasPrefix(t, "> ") {
					i--
					break
				}
				quote = append(quote, t[2:])
			}
			blocks = append(blocks, Block{Kind: BlockQuote, Spans: ParseSpans(strings.Join(quote, " "))})

		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			flushPara()
			var items [][]Span
			for ; i < len(lines); i++ {
				t := strings.TrimSpace(lines[i])
				if !strings.HasPrefix(t, "- ") && !strings.HasPrefix(t, "* ") {
					i--
					break
				}
				items = append(items, ParseSpans(t[2:]))
			}
			blocks = append(blocks, Block{Kind: BlockList, Items: items})

		case strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|"):
			flushPara()
			var rows [][]string
			for ; i < len(lines); i++ {
				t := strings.TrimSpace(lines[i])
				if !strings.HasPrefix(t, "|") || !strings.HasSuffix(t, "|") {
					i--
					break
				}
				if isTableSeparator(t) {
					continue
				}
				rows = append(rows, splitTableRow(t))
			}
			blocks = append(blocks, Block{Kind: BlockTable, Rows: rows})

		default:
			para = append(para, trimmed)
		}
	}
	flushPara()

	return blocks
}

// ParseSpans splits text into inline spans, extracting `code` spans first
// and running the rich-text parser over everything in between.
func ParseSpans(text string) []Span {
	var spans []Span
	for {
		start := strings.IndexByte(text, '`')
		if start < 0 {
			break
		}
		end := strings.IndexByte(text[start+1:], '`')
		if end < 0 {
			break
		}
		for _, run := range ParseInline(text[:start]) {
			spans = append(spans, Span{Run: run})
		}
		spans = append(spans, Span{
			Run:  models.RichTextRun{Text: text[start+1 : start+1+end]},
			Code: true,
		})
		text = text[start+end+2:]
	}
	for _, run := range ParseInline(text) {
		spans = append(spans, Span{Run: run})
	}
	return spans
}

// SpanText reassembles spans into unstyled text.
func SpanText(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Run.Text)
	}
	return sb.String()
}

// headingLevel counts leading # characters (1-6) followed by a space.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

// isTableSeparator reports whether the row is a |---|---| divider.
func isTableSeparator(line string) bool {
	inner := strings.Trim(line, "|")
	for _, cell := range strings.Split(inner, "|") {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return false
		}
		for _, ch := range cell {
			if ch != '-' && ch != ':' {
				return false
			}
		}
	}
	return true
}

// splitTableRow splits a |a|b| row into trimmed cells.
func splitTableRow(line string) []string {
	inner := strings.TrimSuffix(strings.TrimPrefix(line, "|"), "|")
	parts := strings.Split(inner, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
