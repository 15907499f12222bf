package encode

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

// csvEncoder requires a list of objects. The column set is the union of
// keys across rows in first-seen order; missing cells are empty.
type csvEncoder struct{}

func (csvEncoder) Format() models.Format { return models.FormatCSV }

func (csvEncoder) Encode(v Value) ([]byte, error) {
	rows, ok := objectRows(v)
	if !ok {
		return nil, fmt.Errorf("data must be a list of objects for CSV generation: %w", ErrInvalidContentShape)
	}

	keys := columnKeys(rows)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(keys); err != nil {
		return nil, err
	}
	record := make([]string, len(keys))
	for _, row := range rows {
		for i, key := range keys {
			record[i] = ""
			if val, ok := row.Get(key); ok {
				record[i] = stringify(val)
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
