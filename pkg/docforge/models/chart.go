package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ChartKind identifies a chart type.
type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
	ChartPie  ChartKind = "pie"
)

// ParseChartKind maps a chart type name to a ChartKind.
// Unknown names fall back to ChartBar.
func ParseChartKind(name string) ChartKind {
	switch ChartKind(strings.ToLower(name)) {
	case ChartBar, ChartLine, ChartPie:
		return ChartKind(strings.ToLower(name))
	}
	return ChartBar
}

// ChartDatum is one category entry of a chart's data mapping.
// Exactly one of Value (scalar form) or Values (sequence form) is active;
// IsSequence records which.
type ChartDatum struct {
	Label      string
	Value      float64
	Values     []float64
	IsSequence bool
}

// ChartData is an ordered mapping from category label to either a single
// numeric value or a sequence of numeric values. JSON object key order is
// preserved on decode.
type ChartData []ChartDatum

// UnmarshalJSON decodes a JSON object while preserving key order, which
// encoding/json's map decoding would lose.
func (d *ChartData) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("chart data must be a JSON object, got %v", tok)
	}

	var out ChartData
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		label := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		datum := ChartDatum{Label: label}
		trimmed := strings.TrimSpace(string(raw))
		if strings.HasPrefix(trimmed, "[") {
			if err := json.Unmarshal(raw, &datum.Values); err != nil {
				return fmt.Errorf("chart category %q: %w", label, err)
			}
			datum.IsSequence = true
		} else {
			if err := json.Unmarshal(raw, &datum.Value); err != nil {
				return fmt.Errorf("chart category %q: %w", label, err)
			}
		}
		out = append(out, datum)
	}

	*d = out
	return nil
}

// MarshalJSON encodes the data back into a JSON object in stored order.
func (d ChartData) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, datum := range d {
		if i > 0 {
			sb.WriteByte(',')
		}
		key, err := json.Marshal(datum.Label)
		if err != nil {
			return nil, err
		}
		sb.Write(key)
		sb.WriteByte(':')
		var val []byte
		if datum.IsSequence {
			val, err = json.Marshal(datum.Values)
		} else {
			val, err = json.Marshal(datum.Value)
		}
		if err != nil {
			return nil, err
		}
		sb.Write(val)
	}
	sb.WriteByte('}')
	return []byte(sb.String()), nil
}

// ChartSpec describes a chart placed on a slide.
type ChartSpec struct {
	// Kind is the chart type name ("bar", "line", "pie").
	Kind string `json:"type,omitempty"`
	// Title is the chart title, also the pie series name.
	Title string `json:"title,omitempty"`
	// Data maps category labels to scalar values or value sequences.
	// All entries must share one shape (all scalar, or all sequences of
	// equal length).
	Data ChartData `json:"data,omitempty"`
	// SeriesNames names the series of bar/line charts, by position.
	SeriesNames []string `json:"series_names,omitempty"`
}
