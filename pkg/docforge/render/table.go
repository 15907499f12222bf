package render

import "github.com/hiroo3/docforge-go/pkg/docforge/models"

// TableGrid projects a TableSpec's data onto a grid sized exactly
// Rows×Cols. Cells beyond the supplied data render as empty strings;
// supplied data beyond the declared dimensions is discarded. Ragged
// input never fails.
func TableGrid(spec models.TableSpec) [][]string {
	if spec.Rows <= 0 || spec.Cols <= 0 {
		return nil
	}

	grid := make([][]string, spec.Rows)
	for r := 0; r < spec.Rows; r++ {
		grid[r] = make([]string, spec.Cols)
		if r >= len(spec.Data) {
			continue
		}
		for c := 0; c < spec.Cols && c < len(spec.Data[r]); c++ {
			grid[r][c] = spec.Data[r][c]
		}
	}
	return grid
}
