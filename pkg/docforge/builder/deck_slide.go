package builder

import (
	"fmt"
	"strings"

	"github.com/hiroo3/docforge-go/pkg/docforge/markup"
	"github.com/hiroo3/docforge-go/pkg/docforge/models"
	"github.com/hiroo3/docforge-go/pkg/docforge/render"
)

// Fixed element regions, non-overlapping: body text on top, charts in
// the right half, tables bottom left, shapes bottom right.
var (
	titleOff = [2]int64{457200, 274638}
	titleExt = [2]int64{8229600, 1143000}
	bodyOff  = [2]int64{457200, 1600200}
	bodyExt  = [2]int64{8229600, 4525963}
)

// slideBuilder renders one slide's spTree elements.
type slideBuilder struct {
	spec     models.SlideSpec
	elements strings.Builder
	nextID   int
	chartIDs []int
}

func (s *slideBuilder) id() int {
	id := s.nextID
	s.nextID++
	return id
}

// render assembles the slide part XML.
func (s *slideBuilder) render() string {
	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<p:sld xmlns:a="` + nsDrawingMain +
		`" xmlns:r="` + nsOfficeRel + `" xmlns:p="` + nsPresentation + `">`)
	sb.WriteString(`<p:cSld>`)

	if render.ValidHexColor(s.spec.BackgroundColor) {
		sb.WriteString(`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="` +
			strings.ToUpper(s.spec.BackgroundColor) + `"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`)
	}

	sb.WriteString(`<p:spTree>`)
	sb.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	sb.WriteString(`<p:grpSpPr/>`)
	sb.WriteString(s.elements.String())
	sb.WriteString(`</p:spTree></p:cSld>`)
	sb.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	sb.WriteString(`</p:sld>`)
	return sb.String()
}

// addTitle emits the title placeholder with the slide title text.
func (s *slideBuilder) addTitle() {
	fmt.Fprintf(&s.elements,
		`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Title"/>`+
			`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>`+
			`<p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>`+
			`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm></p:spPr>`+
			`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" dirty="0"/>`+
			`<a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`,
		s.id(), titleOff[0], titleOff[1], titleExt[0], titleExt[1], escXML(s.spec.Title))
}

// addBody populates the body placeholder line by line through the
// rich-text parser. Two-space-leading lines demote one indent level;
// deeper indentation is not distinguished.
func (s *slideBuilder) addBody() {
	if s.spec.Content == "" {
		return
	}

	fontName := s.spec.FontName
	if fontName == "" {
		fontName = "Arial"
	}
	fontSize := s.spec.FontSize
	if fontSize <= 0 {
		fontSize = 18
	}
	fontColor := ""
	if render.ValidHexColor(s.spec.FontColor) {
		fontColor = strings.ToUpper(s.spec.FontColor)
	}

	var body strings.Builder
	for _, line := range strings.Split(s.spec.Content, "\n") {
		level := 0
		if strings.HasPrefix(line, "  ") {
			level = 1
		}
		body.WriteString(`<a:p>`)
		if level > 0 {
			body.WriteString(`<a:pPr lvl="1"/>`)
		}
		for _, run := range markup.ParseInline(strings.TrimSpace(line)) {
			if run.Text == "" {
				continue
			}
			body.WriteString(runXML(run, fontName, fontSize, fontColor))
		}
		body.WriteString(`</a:p>`)
	}

	fmt.Fprintf(&s.elements,
		`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Content"/>`+
			`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>`+
			`<p:nvPr><p:ph idx="1"/></p:nvPr></p:nvSpPr>`+
			`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm></p:spPr>`+
			`<p:txBody><a:bodyPr/><a:lstStyle/>%s</p:txBody></p:sp>`,
		s.id(), bodyOff[0], bodyOff[1], bodyExt[0], bodyExt[1], body.String())
}

// runXML renders one styled run with the slide's font properties.
func runXML(run models.RichTextRun, fontName string, fontSize int, fontColor string) string {
	var attrs strings.Builder
	fmt.Fprintf(&attrs, ` sz="%d"`, fontSize*100)
	if run.Bold {
		attrs.WriteString(` b="1"`)
	}
	if run.Italic {
		attrs.WriteString(` i="1"`)
	}
	if run.Underline {
		attrs.WriteString(` u="sng"`)
	}

	var props strings.Builder
	if fontColor != "" {
		props.WriteString(`<a:solidFill><a:srgbClr val="` + fontColor + `"/></a:solidFill>`)
	}
	props.WriteString(`<a:latin typeface="` + escXML(fontName) + `"/>`)

	return fmt.Sprintf(`<a:r><a:rPr lang="en-US"%s dirty="0">%s</a:rPr><a:t>%s</a:t></a:r>`,
		attrs.String(), props.String(), escXML(run.Text))
}

// addChartFrame embeds the slot-th chart of this slide, referencing the
// chart part through the slide relationship rId slot+2.
func (s *slideBuilder) addChartFrame(slot, chartNr int) {
	x := inches(5)
	y := inches(2) + int64(slot)*inches(3.2)
	fmt.Fprintf(&s.elements,
		`<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="Chart %d"/>`+
			`<p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr>`+
			`<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`+
			`<a:graphic><a:graphicData uri="%s">`+
			`<c:chart xmlns:c="%s" xmlns:r="%s" r:id="rId%d"/>`+
			`</a:graphicData></a:graphic></p:graphicFrame>`,
		s.id(), chartNr, x, y, inches(4.5), inches(3),
		nsChart, nsChart, nsOfficeRel, slot+2)
}
