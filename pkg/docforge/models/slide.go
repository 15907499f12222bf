package models

import "strings"

// Layout identifies a slide layout template.
type Layout string

const (
	LayoutTitleSlide         Layout = "title_slide"
	LayoutTitleAndContent    Layout = "title_and_content"
	LayoutTwoContent         Layout = "two_content"
	LayoutComparison         Layout = "comparison"
	LayoutTitleOnly          Layout = "title_only"
	LayoutBlank              Layout = "blank"
	LayoutPictureWithCaption Layout = "picture_with_caption"
)

// ParseLayout maps a layout name to a Layout.
// Unknown or empty names fall back to LayoutTitleAndContent.
func ParseLayout(name string) Layout {
	switch Layout(strings.ToLower(name)) {
	case LayoutTitleSlide, LayoutTitleAndContent, LayoutTwoContent,
		LayoutComparison, LayoutTitleOnly, LayoutBlank, LayoutPictureWithCaption:
		return Layout(strings.ToLower(name))
	}
	return LayoutTitleAndContent
}

// SlideSpec describes a single slide in a presentation request.
// JSON field names mirror the agent tool schema.
type SlideSpec struct {
	// Title is the slide title text.
	Title string `json:"title"`
	// Layout is the layout name (e.g. "title_and_content").
	// Unknown names fall back to title_and_content.
	Layout string `json:"layout,omitempty"`
	// Content is the body text. Supports **bold**, *italic*, __underline__
	// inline markup; two leading spaces demote a line one indent level.
	Content string `json:"content,omitempty"`
	// FontName is the body font name (default "Arial").
	FontName string `json:"font_name,omitempty"`
	// FontSize is the body font size in points (default 18).
	FontSize int `json:"font_size,omitempty"`
	// FontColor is a 6-hex-digit body font color; invalid values are ignored.
	FontColor string `json:"font_color,omitempty"`
	// BackgroundColor is a 6-hex-digit slide background color; invalid
	// values are ignored.
	BackgroundColor string `json:"background_color,omitempty"`
	// Charts are rendered after body text.
	Charts []ChartSpec `json:"charts,omitempty"`
	// Tables are rendered after charts.
	Tables []TableSpec `json:"tables,omitempty"`
	// Shapes are rendered after tables.
	Shapes []ShapeSpec `json:"shapes,omitempty"`
}

// TableSpec describes a table placed on a slide.
// Only the top-left Rows×Cols intersection of Data is rendered: declared
// cells beyond the supplied data stay blank, supplied data beyond the
// declared dimensions is discarded.
type TableSpec struct {
	Rows int        `json:"rows"`
	Cols int        `json:"cols"`
	Data [][]string `json:"data,omitempty"`
}

// ShapeKind identifies a decorative vector shape.
type ShapeKind string

const (
	ShapeRectangle ShapeKind = "rectangle"
	ShapeCircle    ShapeKind = "circle"
	ShapeArrow     ShapeKind = "arrow"
	ShapeTriangle  ShapeKind = "triangle"
)

// ParseShapeKind maps a shape type name to a ShapeKind.
// Unknown names fall back to ShapeRectangle.
func ParseShapeKind(name string) ShapeKind {
	switch ShapeKind(strings.ToLower(name)) {
	case ShapeRectangle, ShapeCircle, ShapeArrow, ShapeTriangle:
		return ShapeKind(strings.ToLower(name))
	}
	return ShapeRectangle
}

// ShapeSpec describes a decorative shape placed on a slide.
type ShapeSpec struct {
	// Kind is the shape type name ("rectangle", "circle", "arrow", "triangle").
	Kind string `json:"type,omitempty"`
	// Text is optional text rendered inside the shape.
	Text string `json:"text,omitempty"`
	// Color is a 6-hex-digit fill color; invalid values are ignored.
	Color string `json:"color,omitempty"`
}
