package builder

import (
	"fmt"
	"strings"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
	"github.com/hiroo3/docforge-go/pkg/docforge/render"
)

// chartSpaceXML renders one chart part from a normalized chart. Category
// and value data are embedded as literals, so no workbook part is needed.
func chartSpaceXML(chart *render.Chart) string {
	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<c:chartSpace xmlns:c="` + nsChart +
		`" xmlns:a="` + nsDrawingMain + `" xmlns:r="` + nsOfficeRel + `">`)
	sb.WriteString(`<c:chart>`)

	if chart.Title != "" {
		sb.WriteString(`<c:title><c:tx><c:rich><a:bodyPr/><a:lstStyle/>` +
			`<a:p><a:r><a:t>` + escXML(chart.Title) + `</a:t></a:r></a:p>` +
			`</c:rich></c:tx><c:overlay val="0"/></c:title>`)
		sb.WriteString(`<c:autoTitleDeleted val="0"/>`)
	}

	sb.WriteString(`<c:plotArea><c:layout/>`)

	switch chart.Kind {
	case models.ChartPie:
		sb.WriteString(`<c:pieChart><c:varyColors val="1"/>`)
		writeSeries(&sb, chart, false)
		sb.WriteString(`<c:firstSliceAng val="0"/></c:pieChart>`)

	case models.ChartLine:
		sb.WriteString(`<c:lineChart><c:grouping val="standard"/><c:varyColors val="0"/>`)
		writeSeries(&sb, chart, true)
		sb.WriteString(`<c:marker val="1"/>`)
		sb.WriteString(`<c:axId val="111111111"/><c:axId val="222222222"/>`)
		sb.WriteString(`</c:lineChart>`)
		writeAxes(&sb)

	default: // bar
		sb.WriteString(`<c:barChart><c:barDir val="col"/><c:grouping val="clustered"/><c:varyColors val="0"/>`)
		writeSeries(&sb, chart, false)
		sb.WriteString(`<c:axId val="111111111"/><c:axId val="222222222"/>`)
		sb.WriteString(`</c:barChart>`)
		writeAxes(&sb)
	}

	sb.WriteString(`</c:plotArea>`)
	sb.WriteString(`<c:plotVisOnly val="1"/><c:dispBlanksAs val="gap"/>`)
	sb.WriteString(`</c:chart></c:chartSpace>`)
	return sb.String()
}

// writeSeries emits one c:ser per normalized series with literal data.
func writeSeries(sb *strings.Builder, chart *render.Chart, markers bool) {
	for i, series := range chart.Series {
		fmt.Fprintf(sb, `<c:ser><c:idx val="%d"/><c:order val="%d"/>`, i, i)
		sb.WriteString(`<c:tx><c:v>` + escXML(series.Name) + `</c:v></c:tx>`)
		if markers {
			sb.WriteString(`<c:marker><c:symbol val="circle"/></c:marker>`)
		}

		fmt.Fprintf(sb, `<c:cat><c:strLit><c:ptCount val="%d"/>`, len(chart.Categories))
		for j, cat := range chart.Categories {
			fmt.Fprintf(sb, `<c:pt idx="%d"><c:v>%s</c:v></c:pt>`, j, escXML(cat))
		}
		sb.WriteString(`</c:strLit></c:cat>`)

		fmt.Fprintf(sb, `<c:val><c:numLit><c:formatCode>General</c:formatCode><c:ptCount val="%d"/>`,
			len(series.Values))
		for j, val := range series.Values {
			fmt.Fprintf(sb, `<c:pt idx="%d"><c:v>%v</c:v></c:pt>`, j, val)
		}
		sb.WriteString(`</c:numLit></c:val>`)

		sb.WriteString(`</c:ser>`)
	}
}

// writeAxes emits the category/value axis pair referenced by bar and
// line plots.
func writeAxes(sb *strings.Builder) {
	sb.WriteString(`<c:catAx><c:axId val="111111111"/>` +
		`<c:scaling><c:orientation val="minMax"/></c:scaling>` +
		`<c:delete val="0"/><c:axPos val="b"/>` +
		`<c:crossAx val="222222222"/></c:catAx>`)
	sb.WriteString(`<c:valAx><c:axId val="222222222"/>` +
		`<c:scaling><c:orientation val="minMax"/></c:scaling>` +
		`<c:delete val="0"/><c:axPos val="l"/>` +
		`<c:crossAx val="111111111"/></c:valAx>`)
}
