package builder

import (
	"fmt"
	"strings"

	"github.com/hiroo3/docforge-go/pkg/docforge/markup"
)

// BuildDocx renders flow-document content into a Word package. Content
// goes through the four-way line classification only: headings at levels
// 1-3, bulleted list items, and plain paragraphs, in input order.
func BuildDocx(content string) ([]byte, error) {
	lines := markup.ClassifyLines(content)

	w := newPkgWriter()
	w.part("[Content_Types].xml", docxContentTypes)
	w.part("_rels/.rels", relationships([][3]string{
		{"rId1", nsOfficeRel + "/officeDocument", "word/document.xml"},
	}))
	w.part("word/_rels/document.xml.rels", relationships([][3]string{
		{"rId1", nsOfficeRel + "/styles", "styles.xml"},
		{"rId2", nsOfficeRel + "/numbering", "numbering.xml"},
	}))
	w.part("word/styles.xml", docxStyles)
	w.part("word/numbering.xml", docxNumbering)
	w.part("word/document.xml", docxDocument(lines))

	data, err := w.bytes()
	if err != nil {
		return nil, NewRenderError("docx", "package", err)
	}
	return data, nil
}

// docxDocument renders word/document.xml from classified lines.
func docxDocument(lines []markup.Line) string {
	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<w:document xmlns:w="` + nsWordMain + `"><w:body>`)

	for _, line := range lines {
		switch {
		case line.HeadingLevel() > 0:
			fmt.Fprintf(&sb,
				`<w:p><w:pPr><w:pStyle w:val="Heading%d"/></w:pPr>%s</w:p>`,
				line.HeadingLevel(), docxRun(line.Text))
		case line.Kind == markup.LineBullet:
			sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="ListParagraph"/>` +
				`<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr>`)
			sb.WriteString(docxRun(line.Text))
			sb.WriteString(`</w:p>`)
		default:
			sb.WriteString(`<w:p>` + docxRun(line.Text) + `</w:p>`)
		}
	}

	sb.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr>`)
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func docxRun(text string) string {
	return `<w:r><w:t xml:space="preserve">` + escXML(text) + `</w:t></w:r>`
}

const docxContentTypes = xmlDecl +
	`<Types xmlns="` + nsContentTypes + `">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`</Types>`

// docxStyles defines Normal, Heading1-3, and ListParagraph. Heading sizes
// are half-points (24pt, 18pt, 14pt).
const docxStyles = xmlDecl +
	`<w:styles xmlns:w="` + nsWordMain + `">` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">` +
	`<w:name w:val="Normal"/>` +
	`<w:rPr><w:rFonts w:ascii="Helvetica" w:hAnsi="Helvetica"/><w:sz w:val="24"/></w:rPr>` +
	`</w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1">` +
	`<w:name w:val="heading 1"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="0"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="48"/><w:color w:val="333333"/></w:rPr>` +
	`</w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2">` +
	`<w:name w:val="heading 2"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:spacing w:before="200" w:after="100"/><w:outlineLvl w:val="1"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="36"/><w:color w:val="444444"/></w:rPr>` +
	`</w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading3">` +
	`<w:name w:val="heading 3"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:spacing w:before="160" w:after="80"/><w:outlineLvl w:val="2"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="28"/><w:color w:val="555555"/></w:rPr>` +
	`</w:style>` +
	`<w:style w:type="paragraph" w:styleId="ListParagraph">` +
	`<w:name w:val="List Paragraph"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:ind w:left="720"/></w:pPr>` +
	`</w:style>` +
	`</w:styles>`

// docxNumbering defines one bullet list definition (numId 1).
const docxNumbering = xmlDecl +
	`<w:numbering xmlns:w="` + nsWordMain + `">` +
	`<w:abstractNum w:abstractNumId="0">` +
	`<w:lvl w:ilvl="0">` +
	`<w:numFmt w:val="bullet"/><w:lvlText w:val="&#8226;"/>` +
	`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr>` +
	`<w:rPr><w:rFonts w:ascii="Symbol" w:hAnsi="Symbol"/></w:rPr>` +
	`</w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`
