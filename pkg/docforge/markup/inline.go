// Package markup converts inline and line-oriented text markup into
// structured runs and blocks consumed by the document builders.
package markup

import (
	"regexp"
	"strings"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

// inlinePattern matches one fully-delimited styled span: **bold**,
// *italic*, or __underline__. First-match-wins, non-nested. Unterminated
// delimiters never match and stay literal.
var inlinePattern = regexp.MustCompile(`\*\*.*?\*\*|\*.*?\*|__.*?__`)

// ParseInline splits text into styled runs on bold, italic, and underline
// delimiters. Everything outside a delimited span becomes a plain run, in
// original order: concatenating all runs' text reproduces the input with
// delimiters removed.
func ParseInline(text string) []models.RichTextRun {
	var runs []models.RichTextRun
	last := 0

	for _, loc := range inlinePattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			runs = append(runs, models.RichTextRun{Text: text[last:loc[0]]})
		}
		runs = append(runs, classifyToken(text[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(text) {
		runs = append(runs, models.RichTextRun{Text: text[last:]})
	}

	return runs
}

// classifyToken turns one matched delimiter span into a styled run.
func classifyToken(token string) models.RichTextRun {
	switch {
	case strings.HasPrefix(token, "**") && strings.HasSuffix(token, "**"):
		return models.RichTextRun{Text: token[2 : len(token)-2], Bold: true}
	case strings.HasPrefix(token, "__") && strings.HasSuffix(token, "__"):
		return models.RichTextRun{Text: token[2 : len(token)-2], Underline: true}
	case strings.HasPrefix(token, "*") && strings.HasSuffix(token, "*"):
		return models.RichTextRun{Text: token[1 : len(token)-1], Italic: true}
	}
	return models.RichTextRun{Text: token}
}

// PlainText reassembles runs into unstyled text.
func PlainText(runs []models.RichTextRun) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
