package builder

import (
	"fmt"
	"strings"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
	"github.com/hiroo3/docforge-go/pkg/docforge/render"
)

// layoutIndex maps layout names to slots in the layout catalog.
var layoutIndex = map[models.Layout]int{
	models.LayoutTitleSlide:         0,
	models.LayoutTitleAndContent:    1,
	models.LayoutTwoContent:         3,
	models.LayoutComparison:         4,
	models.LayoutTitleOnly:          5,
	models.LayoutBlank:              6,
	models.LayoutPictureWithCaption: 8,
}

// fallbackLayout is the catalog slot used for unknown layout names and
// for indices beyond the available template count.
const fallbackLayout = 1

// BuildDeck renders slides into a presentation package, one slide per
// SlideSpec in input order.
func BuildDeck(slides []models.SlideSpec) ([]byte, error) {
	deck := &deckWriter{}

	for i, spec := range slides {
		if err := deck.addSlide(spec); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
	}

	return deck.assemble()
}

// deckSlide is one rendered slide plus its chart parts.
type deckSlide struct {
	xml      string
	layout   int      // catalog slot, for the layout relationship
	chartIDs []int    // global chart part numbers, in rId order
}

// deckWriter accumulates rendered slides and chart parts.
type deckWriter struct {
	slides     []deckSlide
	charts     []string // chart part XML, chart N at index N-1
	chartCount int
}

// addSlide renders one SlideSpec. Chart data shape violations and
// degenerate tables fail the build; bad colors and out-of-range layout
// indices follow the silent-fallback rules. Body content on a layout
// without a body placeholder is dropped, not relocated.
func (d *deckWriter) addSlide(spec models.SlideSpec) error {
	layout, ok := layoutIndex[models.ParseLayout(spec.Layout)]
	if !ok || layout >= layoutCount {
		layout = fallbackLayout
	}

	s := &slideBuilder{spec: spec, nextID: 2}

	s.addTitle()
	if layoutHasBody(layout) {
		s.addBody()
	}

	for _, chartSpec := range spec.Charts {
		chart, err := render.NormalizeChart(chartSpec)
		if err != nil {
			return err
		}
		d.chartCount++
		d.charts = append(d.charts, chartSpaceXML(chart))
		s.addChartFrame(len(s.chartIDs), d.chartCount)
		s.chartIDs = append(s.chartIDs, d.chartCount)
	}

	for i, tableSpec := range spec.Tables {
		if tableSpec.Rows <= 0 || tableSpec.Cols <= 0 {
			return NewRenderError("pptx", "table",
				fmt.Errorf("degenerate table: %dx%d", tableSpec.Rows, tableSpec.Cols))
		}
		s.addTable(i, tableSpec)
	}

	for i, shapeSpec := range spec.Shapes {
		s.addShape(i, render.PlaceShape(shapeSpec))
	}

	d.slides = append(d.slides, deckSlide{
		xml:      s.render(),
		layout:   layout,
		chartIDs: s.chartIDs,
	})
	return nil
}

// assemble writes the full presentation package.
func (d *deckWriter) assemble() ([]byte, error) {
	w := newPkgWriter()

	w.part("[Content_Types].xml", deckContentTypes(len(d.slides), len(d.charts)))
	w.part("_rels/.rels", relationships([][3]string{
		{"rId1", nsOfficeRel + "/officeDocument", "ppt/presentation.xml"},
	}))

	w.part("ppt/presentation.xml", presentationXML(len(d.slides)))
	presRels := [][3]string{
		{"rId1", nsOfficeRel + "/slideMaster", "slideMasters/slideMaster1.xml"},
	}
	for i := range d.slides {
		presRels = append(presRels, [3]string{
			fmt.Sprintf("rId%d", i+2),
			nsOfficeRel + "/slide",
			fmt.Sprintf("slides/slide%d.xml", i+1),
		})
	}
	w.part("ppt/_rels/presentation.xml.rels", relationships(presRels))

	w.part("ppt/slideMasters/slideMaster1.xml", slideMasterXML())
	masterRels := make([][3]string, 0, layoutCount+1)
	for i := 0; i < layoutCount; i++ {
		masterRels = append(masterRels, [3]string{
			fmt.Sprintf("rId%d", i+1),
			nsOfficeRel + "/slideLayout",
			fmt.Sprintf("../slideLayouts/slideLayout%d.xml", i+1),
		})
	}
	masterRels = append(masterRels, [3]string{
		fmt.Sprintf("rId%d", layoutCount+1),
		nsOfficeRel + "/theme",
		"../theme/theme1.xml",
	})
	w.part("ppt/slideMasters/_rels/slideMaster1.xml.rels", relationships(masterRels))

	for i := 0; i < layoutCount; i++ {
		w.part(fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", i+1), slideLayoutXML(i))
		w.part(fmt.Sprintf("ppt/slideLayouts/_rels/slideLayout%d.xml.rels", i+1),
			relationships([][3]string{
				{"rId1", nsOfficeRel + "/slideMaster", "../slideMasters/slideMaster1.xml"},
			}))
	}

	w.part("ppt/theme/theme1.xml", themeXML)

	for i, slide := range d.slides {
		w.part(fmt.Sprintf("ppt/slides/slide%d.xml", i+1), slide.xml)
		rels := [][3]string{
			{"rId1", nsOfficeRel + "/slideLayout",
				fmt.Sprintf("../slideLayouts/slideLayout%d.xml", slide.layout+1)},
		}
		for j, chartNr := range slide.chartIDs {
			rels = append(rels, [3]string{
				fmt.Sprintf("rId%d", j+2),
				nsOfficeRel + "/chart",
				fmt.Sprintf("../charts/chart%d.xml", chartNr),
			})
		}
		w.part(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), relationships(rels))
	}

	for i, chart := range d.charts {
		w.part(fmt.Sprintf("ppt/charts/chart%d.xml", i+1), chart)
	}

	data, err := w.bytes()
	if err != nil {
		return nil, NewRenderError("pptx", "package", err)
	}
	return data, nil
}

// presentationXML renders ppt/presentation.xml with a 10x7.5in slide size.
func presentationXML(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<p:presentation xmlns:a="` + nsDrawingMain +
		`" xmlns:r="` + nsOfficeRel + `" xmlns:p="` + nsPresentation + `">`)
	sb.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	sb.WriteString(`<p:sldIdLst>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&sb, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2)
	}
	sb.WriteString(`</p:sldIdLst>`)
	sb.WriteString(`<p:sldSz cx="9144000" cy="6858000"/>`)
	sb.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	sb.WriteString(`</p:presentation>`)
	return sb.String()
}
