// Package render normalizes chart, table, and shape specs into the
// uniform representations the builders emit.
package render

import (
	"errors"
	"fmt"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

// ErrInvalidChartShape indicates inconsistent per-category data shapes:
// scalar and sequence values mixed, or sequences of unequal length.
var ErrInvalidChartShape = errors.New("inconsistent chart data shape")

// Series is one named sequence of values plotted against the category axis.
type Series struct {
	Name   string
	Values []float64
}

// Chart is a normalized chart: ordered categories plus one or more series.
type Chart struct {
	Kind       models.ChartKind
	Title      string
	Categories []string
	Series     []Series
}

// NormalizeChart converts a ChartSpec's heterogeneous category→value(s)
// mapping into ordered categories and labeled series.
//
// Pie charts collapse to exactly one series named by the title (default
// "Series"), one value per category; sequence values contribute their
// first element. Bar and line charts emit one series per value position,
// named from SeriesNames with "Series {i+1}" synthesized past its end.
//
// Data shape is validated, not truncated: mixing scalars with sequences,
// or sequences of differing length, fails with ErrInvalidChartShape.
func NormalizeChart(spec models.ChartSpec) (*Chart, error) {
	kind := models.ParseChartKind(spec.Kind)

	chart := &Chart{Kind: kind, Title: spec.Title}
	if len(spec.Data) == 0 {
		return chart, nil
	}

	isSeq := spec.Data[0].IsSequence
	seqLen := len(spec.Data[0].Values)
	for _, datum := range spec.Data {
		chart.Categories = append(chart.Categories, datum.Label)
		if datum.IsSequence != isSeq {
			return nil, fmt.Errorf("category %q: %w", datum.Label, ErrInvalidChartShape)
		}
		if isSeq && len(datum.Values) != seqLen {
			return nil, fmt.Errorf("category %q has %d values, want %d: %w",
				datum.Label, len(datum.Values), seqLen, ErrInvalidChartShape)
		}
	}
	if isSeq && seqLen == 0 {
		return nil, fmt.Errorf("empty value sequences: %w", ErrInvalidChartShape)
	}

	if kind == models.ChartPie {
		name := spec.Title
		if name == "" {
			name = "Series"
		}
		values := make([]float64, 0, len(spec.Data))
		for _, datum := range spec.Data {
			if datum.IsSequence {
				values = append(values, datum.Values[0])
			} else {
				values = append(values, datum.Value)
			}
		}
		chart.Series = []Series{{Name: name, Values: values}}
		return chart, nil
	}

	if !isSeq {
		name := "Series 1"
		if len(spec.SeriesNames) > 0 {
			name = spec.SeriesNames[0]
		}
		values := make([]float64, 0, len(spec.Data))
		for _, datum := range spec.Data {
			values = append(values, datum.Value)
		}
		chart.Series = []Series{{Name: name, Values: values}}
		return chart, nil
	}

	for i := 0; i < seqLen; i++ {
		name := fmt.Sprintf("Series %d", i+1)
		if i < len(spec.SeriesNames) {
			name = spec.SeriesNames[i]
		}
		values := make([]float64, 0, len(spec.Data))
		for _, datum := range spec.Data {
			values = append(values, datum.Values[i])
		}
		chart.Series = append(chart.Series, Series{Name: name, Values: values})
	}
	return chart, nil
}
