package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cell is a single non-empty sheet cell.
type cell struct {
	// value is the typed raw value (string, int64, float64 or bool).
	value any
	// text is the formatted display text, used for header names.
	text string
}

func (c cell) empty() bool {
	return c.value == nil
}

// readWorksheetGrid reads every row of an xlsx sheet into a cell grid.
// Row and column indexes in the grid are 0-based sheet coordinates.
func readWorksheetGrid(f *excelize.File, sheetName string) ([][]cell, error) {
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	formatted, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make([][]cell, len(raw))
	for rowIdx, row := range raw {
		cells := make([]cell, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}

			text := cellValue
			if rowIdx < len(formatted) && colIdx < len(formatted[rowIdx]) && formatted[rowIdx][colIdx] != "" {
				text = formatted[rowIdx][colIdx]
			}
			cells[colIdx] = cell{
				value: typedValue(cellType, cellValue),
				text:  text,
			}
		}
		grid[rowIdx] = cells
	}

	return grid, nil
}

// typedValue converts a raw cell string using the cell's declared type.
// Numbers and dates keep their raw serial value.
func typedValue(cellType excelize.CellType, s string) any {
	switch cellType {
	case excelize.CellTypeBool:
		return s == "1" || strings.EqualFold(s, "true")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return s
	default:
		return parseValue(s)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
