package encode

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

// xmlEncoder encodes a list as a homogeneous row set (one element per
// row) or an object as a flat <root> with one child element per key.
// Nested values are stringified, not expanded.
type xmlEncoder struct{}

func (xmlEncoder) Format() models.Format { return models.FormatXML }

func (xmlEncoder) Encode(v Value) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(xml.Header)

	switch t := v.(type) {
	case Array:
		sb.WriteString("<data>\n")
		for _, el := range t {
			writeXMLRow(&sb, el)
		}
		sb.WriteString("</data>\n")
	case Object:
		sb.WriteString("<root>\n")
		for _, f := range t {
			writeXMLElement(&sb, "  ", f.Key, f.Value)
		}
		sb.WriteString("</root>\n")
	default:
		return nil, fmt.Errorf("data must be a list or object for XML generation: %w", ErrInvalidContentShape)
	}

	return []byte(sb.String()), nil
}

// writeXMLRow emits one <row> element; object rows get one child per key,
// anything else becomes the row's text content.
func writeXMLRow(sb *strings.Builder, v Value) {
	obj, ok := v.(Object)
	if !ok {
		sb.WriteString("  <row>")
		xmlEscape(sb, stringify(v))
		sb.WriteString("</row>\n")
		return
	}
	sb.WriteString("  <row>\n")
	for _, f := range obj {
		writeXMLElement(sb, "    ", f.Key, f.Value)
	}
	sb.WriteString("  </row>\n")
}

// writeXMLElement emits one <key>value</key> element with the value
// flattened to text.
func writeXMLElement(sb *strings.Builder, indent, key string, v Value) {
	sb.WriteString(indent)
	sb.WriteByte('<')
	sb.WriteString(key)
	sb.WriteByte('>')
	xmlEscape(sb, stringify(v))
	sb.WriteString("</")
	sb.WriteString(key)
	sb.WriteString(">\n")
}

func xmlEscape(sb *strings.Builder, s string) {
	// strings.Builder writes never fail.
	_ = xml.EscapeText(sb, []byte(s))
}
