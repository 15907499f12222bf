package builder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/hiroo3/docforge-go/pkg/docforge/markup"
)

// A4 page geometry in points, origin at the upper left.
const (
	pdfPageWidth  = 595.0
	pdfPageHeight = 842.0
	pdfMargin     = 50.0
)

// pdfStyle is the fixed stylesheet applied to the block tree: font
// family and size per heading level, code and quote styling.
type pdfStyle struct {
	font  string
	size  float64
	color string
	bg    string
}

var (
	pdfBodyStyle  = pdfStyle{font: "Helvetica", size: 12, color: "#000000"}
	pdfCodeStyle  = pdfStyle{font: "Courier", size: 10, color: "#000000", bg: "#f4f4f4"}
	pdfQuoteStyle = pdfStyle{font: "Helvetica-Oblique", size: 12, color: "#666666"}

	pdfHeadingStyles = map[int]pdfStyle{
		1: {font: "Helvetica-Bold", size: 24, color: "#333333"},
		2: {font: "Helvetica-Bold", size: 18, color: "#444444"},
		3: {font: "Helvetica-Bold", size: 14, color: "#555555"},
	}
)

func headingStyle(level int) pdfStyle {
	if s, ok := pdfHeadingStyles[level]; ok {
		return s
	}
	return pdfStyle{font: "Helvetica-Bold", size: 12, color: "#555555"}
}

// BuildPDF expands flow-document content through the full Markdown block
// transform (headings, emphasis, code spans, block quotes, tables),
// applies the fixed stylesheet, and encodes a fixed-layout document via
// pdfcpu's declarative create primitives.
func BuildPDF(content string) ([]byte, error) {
	blocks := markup.ParseDocument(content)

	layout := newPDFLayout()
	for _, block := range blocks {
		layout.addBlock(block)
	}

	desc := map[string]any{
		"paper":  "A4",
		"origin": "upperLeft",
		"pages":  layout.pages,
	}
	descJSON, err := json.Marshal(desc)
	if err != nil {
		return nil, NewRenderError("pdf", "describe", err)
	}

	data, err := createPDF(descJSON)
	if err != nil {
		return nil, NewRenderError("pdf", "encode", err)
	}
	return data, nil
}

// createPDF feeds one create-JSON descriptor through pdfcpu. Some
// descriptor faults panic inside the primitives instead of returning an
// error; those are recovered here so callers always get an error value.
func createPDF(desc []byte) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("create: %v", r)
		}
	}()

	var buf bytes.Buffer
	conf := model.NewDefaultConfiguration()
	if err := api.Create(nil, bytes.NewReader(desc), &buf, conf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfLayout walks blocks down the page, starting a new page when the
// cursor passes the bottom margin.
type pdfLayout struct {
	pages   map[string]any
	pageNr  int
	content map[string]any
	y       float64
}

func newPDFLayout() *pdfLayout {
	l := &pdfLayout{pages: map[string]any{}}
	l.newPage()
	return l
}

func (l *pdfLayout) newPage() {
	l.pageNr++
	l.content = map[string]any{}
	l.pages[strconv.Itoa(l.pageNr)] = map[string]any{"content": l.content}
	l.y = pdfMargin
}

// ensure reserves height on the current page, breaking to a new page
// when it does not fit.
func (l *pdfLayout) ensure(height float64) {
	if l.y+height > pdfPageHeight-pdfMargin && l.y > pdfMargin {
		l.newPage()
	}
}

func (l *pdfLayout) addText(box map[string]any) {
	boxes, _ := l.content["text"].([]map[string]any)
	l.content["text"] = append(boxes, box)
}

func (l *pdfLayout) addBlock(block markup.Block) {
	switch block.Kind {
	case markup.BlockHeading:
		style := headingStyle(block.Level)
		l.emitText(markup.SpanText(block.Spans), style, 0)
		l.y += style.size * 0.5

	case markup.BlockParagraph:
		l.emitText(markup.SpanText(block.Spans), paragraphStyle(block.Spans), 0)
		l.y += 6

	case markup.BlockCode:
		for _, line := range strings.Split(block.Text, "\n") {
			l.emitText(line, pdfCodeStyle, 14)
		}
		l.y += 8

	case markup.BlockQuote:
		l.emitText(markup.SpanText(block.Spans), pdfQuoteStyle, 14)
		l.y += 6

	case markup.BlockList:
		for _, item := range block.Items {
			l.emitText("• "+markup.SpanText(item), pdfBodyStyle, 10)
		}
		l.y += 6

	case markup.BlockTable:
		l.emitTable(block.Rows)
	}
}

// emitText places one styled text box, wrapped to the content width, at
// the cursor, indented by indent points.
func (l *pdfLayout) emitText(text string, style pdfStyle, indent float64) {
	width := pdfPageWidth - 2*pdfMargin - indent
	lines := wrapText(text, width, style.size)
	lineHeight := style.size * 1.5
	height := float64(len(lines)) * lineHeight
	l.ensure(height)

	// Position and anchor are mutually exclusive in the create schema;
	// pos alone places the box relative to the upper-left origin.
	box := map[string]any{
		"value":     strings.Join(lines, "\n"),
		"pos":       []float64{pdfMargin + indent, l.y},
		"width":     width,
		"font":      map[string]any{"name": style.font, "size": int(style.size), "col": style.color},
		"alignment": "left",
	}
	if style.bg != "" {
		box["bgCol"] = style.bg
	}
	l.addText(box)
	l.y += height
}

// emitTable places one bordered table at the cursor.
func (l *pdfLayout) emitTable(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}

	const lineHeight = 20.0
	height := float64(len(rows)) * lineHeight
	l.ensure(height)

	values := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		padded := make([]string, cols)
		copy(padded, row)
		values = append(values, padded)
	}
	header := make([]string, cols)
	copy(header, rows[0])

	// The table primitive indexes colAnchors per column unconditionally,
	// so it must be supplied for every column.
	colAnchors := make([]string, cols)
	for i := range colAnchors {
		colAnchors[i] = "Left"
	}

	table := map[string]any{
		"pos":        []float64{pdfMargin, l.y},
		"width":      pdfPageWidth - 2*pdfMargin,
		"rows":       len(values),
		"cols":       cols,
		"colAnchors": colAnchors,
		"lheight":    int(lineHeight),
		"values":     values,
		"font":       map[string]any{"name": pdfBodyStyle.font, "size": 10},
		"header": map[string]any{
			"values":     header,
			"colAnchors": colAnchors,
			"bgCol":      "#f2f2f2",
			"font":       map[string]any{"name": "Helvetica-Bold", "size": 10},
		},
	}

	tables, _ := l.content["table"].([]map[string]any)
	l.content["table"] = append(tables, table)
	l.y += height + lineHeight + 10
}

// paragraphStyle picks the block font: a paragraph consisting entirely
// of bold or entirely of italic runs keeps that weight; mixed content
// renders in the body font with delimiters stripped.
func paragraphStyle(spans []markup.Span) pdfStyle {
	allBold, allItalic := len(spans) > 0, len(spans) > 0
	for _, s := range spans {
		if s.Code {
			return pdfCodeStyle
		}
		if !s.Run.Bold {
			allBold = false
		}
		if !s.Run.Italic {
			allItalic = false
		}
	}
	style := pdfBodyStyle
	if allBold {
		style.font = "Helvetica-Bold"
	} else if allItalic {
		style.font = "Helvetica-Oblique"
	}
	return style
}

// wrapText estimates line wrapping at roughly 0.5em average glyph width.
func wrapText(text string, width, size float64) []string {
	maxChars := int(width / (size * 0.5))
	if maxChars < 8 {
		maxChars = 8
	}

	var lines []string
	for _, src := range strings.Split(text, "\n") {
		words := strings.Fields(src)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) > maxChars {
				lines = append(lines, line)
				line = word
				continue
			}
			line += " " + word
		}
		lines = append(lines, line)
	}
	return lines
}
