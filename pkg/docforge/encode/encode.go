// Package encode serializes parsed JSON data into tabular and
// data-interchange formats. Each format implements Encoder; the engine
// selects one by format tag instead of branching per format.
package encode

import (
	"errors"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

// ErrInvalidContentShape indicates the payload does not parse as valid
// structured data, or has the wrong shape for the target format.
var ErrInvalidContentShape = errors.New("invalid content shape")

// Encoder serializes a parsed data value into one output format.
type Encoder interface {
	// Format is the tag this encoder serves.
	Format() models.Format
	// Encode serializes v, failing with ErrInvalidContentShape when v has
	// the wrong shape for the format.
	Encode(v Value) ([]byte, error)
}

var encoders = map[models.Format]Encoder{
	models.FormatJSON: jsonEncoder{},
	models.FormatYAML: yamlEncoder{},
	models.FormatXML:  xmlEncoder{},
	models.FormatCSV:  csvEncoder{},
	models.FormatXLSX: xlsxEncoder{},
}

// For returns the encoder for a data format.
func For(f models.Format) (Encoder, bool) {
	enc, ok := encoders[f]
	return enc, ok
}

// EncodeData parses raw content as structured JSON data and serializes it
// for the given format. Parsing is a hard precondition: content that is
// not well-formed JSON fails with ErrInvalidContentShape.
func EncodeData(content string, format models.Format) ([]byte, error) {
	enc, ok := For(format)
	if !ok {
		return nil, errors.New("no encoder for format " + string(format))
	}
	v, err := ParseContent(content)
	if err != nil {
		return nil, errors.Join(ErrInvalidContentShape, err)
	}
	return enc.Encode(v)
}
