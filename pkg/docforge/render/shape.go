package render

import (
	"regexp"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

// PresetGeometryMap maps shape kinds to OOXML preset geometry names.
var PresetGeometryMap = map[models.ShapeKind]string{
	models.ShapeRectangle: "rect",
	models.ShapeCircle:    "ellipse",
	models.ShapeArrow:     "rightArrow",
	models.ShapeTriangle:  "triangle",
}

// hexColorPattern matches a strict 6-hex-digit color string.
var hexColorPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// ValidHexColor reports whether s is a strict 6-hex-digit color.
// Invalid colors are ignored by the builders, never an error.
func ValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// Shape is a placed shape ready for emission: preset geometry, optional
// text, and an optional validated fill color.
type Shape struct {
	Geometry string
	Text     string
	Fill     string // 6-hex-digit color, empty when absent or invalid
}

// PlaceShape resolves a ShapeSpec into a placed shape. Unknown kinds fall
// back to rectangles; colors failing the 6-hex-digit check are dropped.
func PlaceShape(spec models.ShapeSpec) Shape {
	shape := Shape{
		Geometry: PresetGeometryMap[models.ParseShapeKind(spec.Kind)],
		Text:     spec.Text,
	}
	if ValidHexColor(spec.Color) {
		shape.Fill = spec.Color
	}
	return shape
}
