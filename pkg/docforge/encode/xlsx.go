package encode

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

// xlsxEncoder writes a single-sheet workbook. Accepted shapes: a list of
// objects (header row from the key union, one row per object) or an
// object of lists (one column per key, aligned by position).
type xlsxEncoder struct{}

func (xlsxEncoder) Format() models.Format { return models.FormatXLSX }

func (xlsxEncoder) Encode(v Value) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	switch t := v.(type) {
	case Array:
		rows, ok := objectRows(v)
		if !ok {
			return nil, fmt.Errorf("data must be a list of objects or object of lists for Excel generation: %w", ErrInvalidContentShape)
		}
		keys := columnKeys(rows)
		if err := writeHeaderRow(f, sheet, keys); err != nil {
			return nil, err
		}
		for r, row := range rows {
			for c, key := range keys {
				val, ok := row.Get(key)
				if !ok {
					continue
				}
				if err := setCell(f, sheet, c+1, r+2, val); err != nil {
					return nil, err
				}
			}
		}

	case Object:
		keys := make([]string, 0, len(t))
		cols := make([]Array, 0, len(t))
		for _, field := range t {
			col, ok := field.Value.(Array)
			if !ok {
				return nil, fmt.Errorf("data must be a list of objects or object of lists for Excel generation: %w", ErrInvalidContentShape)
			}
			keys = append(keys, field.Key)
			cols = append(cols, col)
		}
		if err := writeHeaderRow(f, sheet, keys); err != nil {
			return nil, err
		}
		for c, col := range cols {
			for r, val := range col {
				if err := setCell(f, sheet, c+1, r+2, val); err != nil {
					return nil, err
				}
			}
		}

	default:
		return nil, fmt.Errorf("data must be a list of objects or object of lists for Excel generation: %w", ErrInvalidContentShape)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeaderRow(f *excelize.File, sheet string, keys []string) error {
	for c, key := range keys {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, key); err != nil {
			return err
		}
	}
	return nil
}

// setCell writes one value, keeping numeric types numeric in the sheet.
func setCell(f *excelize.File, sheet string, col, row int, v Value) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, cellValue(v))
}

func cellValue(v Value) interface{} {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if fl, err := t.Float64(); err == nil {
			return fl
		}
		return t.String()
	case string:
		return t
	case bool:
		return t
	case nil:
		return ""
	default:
		return stringify(v)
	}
}
