package render

import (
	"reflect"
	"testing"

	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

func TestTableGrid(t *testing.T) {
	tests := []struct {
		name     string
		spec     models.TableSpec
		expected [][]string
	}{
		{
			"pad ragged data",
			models.TableSpec{Rows: 2, Cols: 3, Data: [][]string{{"a", "b"}}},
			[][]string{{"a", "b", ""}, {"", "", ""}},
		},
		{
			"clip excess data",
			models.TableSpec{Rows: 1, Cols: 1, Data: [][]string{{"a", "b"}, {"c"}}},
			[][]string{{"a"}},
		},
		{
			"exact fit",
			models.TableSpec{Rows: 2, Cols: 2, Data: [][]string{{"a", "b"}, {"c", "d"}}},
			[][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			"no data",
			models.TableSpec{Rows: 1, Cols: 2},
			[][]string{{"", ""}},
		},
	}

	for _, tt := range tests {
		if got := TableGrid(tt.spec); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%s: TableGrid = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestTableGridDegenerate(t *testing.T) {
	for _, spec := range []models.TableSpec{
		{Rows: 0, Cols: 3},
		{Rows: 3, Cols: 0},
		{Rows: -1, Cols: -1},
	} {
		if got := TableGrid(spec); got != nil {
			t.Errorf("TableGrid(%+v) = %v, expected nil", spec, got)
		}
	}
}
