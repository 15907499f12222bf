package builder

import (
	"fmt"
	"strings"

	"github.com/hiroo3/docforge-go/pkg/docforge/render"
)

// addShape places the slot-th decorative shape of the slide in the
// bottom-right region, stacked down by slot so shapes never overlap.
func (s *slideBuilder) addShape(slot int, shape render.Shape) {
	x := inches(7)
	y := inches(5) + int64(slot)*inches(1.2)
	width := inches(2)
	height := inches(1)

	var fill string
	if shape.Fill != "" {
		fill = `<a:solidFill><a:srgbClr val="` + strings.ToUpper(shape.Fill) + `"/></a:solidFill>`
	}

	var body string
	if shape.Text != "" {
		body = `<p:txBody><a:bodyPr anchor="ctr"/><a:lstStyle/><a:p>` +
			`<a:pPr algn="ctr"/><a:r><a:rPr lang="en-US" dirty="0"/><a:t>` +
			escXML(shape.Text) + `</a:t></a:r></a:p></p:txBody>`
	}

	fmt.Fprintf(&s.elements,
		`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Shape"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`+
			`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
			`<a:prstGeom prst="%s"><a:avLst/></a:prstGeom>%s</p:spPr>%s</p:sp>`,
		s.id(), x, y, width, height, shape.Geometry, fill, body)
}
