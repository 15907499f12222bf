package builder

import (
	"fmt"
	"strings"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
	"github.com/hiroo3/docforge-go/pkg/docforge/render"
)

// addTable places the slot-th table of the slide as a graphic frame in
// the bottom-left region, stacked by slot.
func (s *slideBuilder) addTable(slot int, spec models.TableSpec) {
	grid := render.TableGrid(spec)

	rowHeight := inches(0.4)
	x := inches(0.5)
	y := inches(2) + int64(slot)*inches(0.4)*int64(spec.Rows+1)
	width := inches(4)
	height := rowHeight * int64(spec.Rows)
	colWidth := width / int64(spec.Cols)

	var tbl strings.Builder
	tbl.WriteString(`<a:tbl><a:tblPr firstRow="1" bandRow="1"/>`)
	tbl.WriteString(`<a:tblGrid>`)
	for c := 0; c < spec.Cols; c++ {
		fmt.Fprintf(&tbl, `<a:gridCol w="%d"/>`, colWidth)
	}
	tbl.WriteString(`</a:tblGrid>`)
	for _, row := range grid {
		fmt.Fprintf(&tbl, `<a:tr h="%d">`, rowHeight)
		for _, cell := range row {
			tbl.WriteString(`<a:tc><a:txBody><a:bodyPr/><a:lstStyle/><a:p>`)
			if cell != "" {
				tbl.WriteString(`<a:r><a:rPr lang="en-US" sz="1200" dirty="0"/><a:t>` +
					escXML(cell) + `</a:t></a:r>`)
			}
			tbl.WriteString(`</a:p></a:txBody><a:tcPr/></a:tc>`)
		}
		tbl.WriteString(`</a:tr>`)
	}
	tbl.WriteString(`</a:tbl>`)

	fmt.Fprintf(&s.elements,
		`<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="Table"/>`+
			`<p:cNvGraphicFramePr><a:graphicFrameLocks noGrp="1"/></p:cNvGraphicFramePr>`+
			`<p:nvPr/></p:nvGraphicFramePr>`+
			`<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`+
			`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table">`+
			`%s</a:graphicData></a:graphic></p:graphicFrame>`,
		s.id(), x, y, width, height, tbl.String())
}
