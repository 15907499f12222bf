// Package models defines the content model for document generation requests.
package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a target output format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPptx Format = "pptx"
)

// ParseFormat parses an explicit format token.
// The token "yml" is treated as yaml.
func ParseFormat(token string) (Format, error) {
	switch strings.ToLower(token) {
	case "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDocx, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	case "pptx":
		return FormatPptx, nil
	default:
		return "", fmt.Errorf("unknown format token: %q", token)
	}
}

// FormatFromFilename infers the format from a filename extension.
func FormatFromFilename(filename string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "", fmt.Errorf("filename %q has no extension", filename)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", fmt.Errorf("could not infer supported format from filename %q", filename)
	}
	return f, nil
}

// DataFormats lists the tabular/data-interchange formats.
func DataFormats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatXML, FormatCSV, FormatXLSX}
}

// IsDataFormat reports whether f is a tabular/data-interchange format.
func (f Format) IsDataFormat() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatXML, FormatCSV, FormatXLSX:
		return true
	}
	return false
}

// IsFlowFormat reports whether f is a flow-document format.
func (f Format) IsFlowFormat() bool {
	return f == FormatPDF || f == FormatDocx
}
