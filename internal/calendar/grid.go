// Package calendar lays out month grids for presentation. It carries no
// scoring logic.
package calendar

import "time"

// MonthGrid returns the days of a month as Monday-first rows of 7 cells.
// Cells before the 1st and after the last day hold the sentinel 0.
func MonthGrid(year int, month time.Month) [][]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	offset := int(first.Weekday()) - 1
	if first.Weekday() == time.Sunday {
		offset = 6
	}

	cells := make([]int, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, 0)
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, d)
	}
	for len(cells)%7 != 0 {
		cells = append(cells, 0)
	}

	grid := make([][]int, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		grid = append(grid, cells[i:i+7])
	}
	return grid
}
