package models

// RichTextRun is one styled span of inline text. Runs are ephemeral:
// they are built and consumed within a single block-rendering call.
type RichTextRun struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
}
