package encode

import (
	"bytes"
	"encoding/json"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

// jsonEncoder pretty-prints the parsed value with 2-space indentation,
// preserving object key order.
type jsonEncoder struct{}

func (jsonEncoder) Format() models.Format { return models.FormatJSON }

func (jsonEncoder) Encode(v Value) ([]byte, error) {
	compact, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
