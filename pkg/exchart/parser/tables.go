package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// usedRange is the bounding box of non-empty cells (0-based, inclusive).
type usedRange struct {
	minRow, maxRow int
	minCol, maxCol int
}

// String renders the range in A1 notation.
func (r usedRange) String() string {
	startCell, _ := excelize.CoordinatesToCellName(r.minCol+1, r.minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(r.maxCol+1, r.maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findUsedRange finds the bounding box of non-empty cells.
// It returns false when the grid holds no data at all.
func findUsedRange(grid [][]cell) (usedRange, bool) {
	r := usedRange{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range grid {
		for colIdx, c := range row {
			if c.empty() {
				continue
			}
			if r.minRow < 0 || rowIdx < r.minRow {
				r.minRow = rowIdx
			}
			if r.maxRow < 0 || rowIdx > r.maxRow {
				r.maxRow = rowIdx
			}
			if r.minCol < 0 || colIdx < r.minCol {
				r.minCol = colIdx
			}
			if r.maxCol < 0 || colIdx > r.maxCol {
				r.maxCol = colIdx
			}
		}
	}

	return r, r.minRow >= 0
}

// cellAt returns the cell at (row, col) or an empty cell when out of bounds.
func cellAt(grid [][]cell, row, col int) cell {
	if row < 0 || row >= len(grid) {
		return cell{}
	}
	if col < 0 || col >= len(grid[row]) {
		return cell{}
	}
	return grid[row][col]
}
