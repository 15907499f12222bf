// Package builder renders the content model into document file formats:
// flow documents (docx, pdf) and slide decks (pptx). The OOXML targets
// are written as zip packages of XML parts.
package builder

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// XML namespaces used in OOXML packages.
const (
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsOfficeRel     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDrawingMain   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsChart         = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	nsPresentation  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsWordMain      = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

const xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// EMU (English Metric Units) conversions: 914400 EMU per inch.
const emuPerInch = 914400

// inches converts inches to EMU.
func inches(in float64) int64 {
	return int64(in * emuPerInch)
}

// pkgWriter assembles an OOXML zip package part by part.
type pkgWriter struct {
	buf bytes.Buffer
	zw  *zip.Writer
	err error
}

func newPkgWriter() *pkgWriter {
	w := &pkgWriter{}
	w.zw = zip.NewWriter(&w.buf)
	return w
}

// part adds one named part to the package. Errors stick: later calls
// become no-ops after the first failure.
func (w *pkgWriter) part(name, content string) {
	if w.err != nil {
		return
	}
	f, err := w.zw.Create(name)
	if err != nil {
		w.err = fmt.Errorf("create part %s: %w", name, err)
		return
	}
	if _, err := f.Write([]byte(content)); err != nil {
		w.err = fmt.Errorf("write part %s: %w", name, err)
	}
}

// bytes finalizes the package and returns its content.
func (w *pkgWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if err := w.zw.Close(); err != nil {
		return nil, fmt.Errorf("close package: %w", err)
	}
	return w.buf.Bytes(), nil
}

// escXML escapes text content for embedding in an XML part.
func escXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

// relationships renders a .rels part from (id, type, target) triples.
func relationships(rels [][3]string) string {
	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<Relationships xmlns="` + nsRelationships + `">`)
	for _, rel := range rels {
		fmt.Fprintf(&sb, `<Relationship Id=%q Type=%q Target=%q/>`, rel[0], rel[1], rel[2])
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}
