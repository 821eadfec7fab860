package parser

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
)

// readLegacyGrid reads the first sheet of a BIFF (.xls) workbook into a cell grid.
// Cell types are not exposed by the BIFF reader, so values are inferred from text.
func readLegacyGrid(data []byte) (grid [][]cell, err error) {
	// The BIFF reader panics on some truncated streams.
	defer func() {
		if r := recover(); r != nil {
			grid = nil
			err = fmt.Errorf("%w: %v", ErrUnrecognizedContainer, r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoSheet
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoSheet
	}

	for rowIdx := 0; rowIdx <= int(sheet.MaxRow); rowIdx++ {
		row := legacyRow(sheet, rowIdx)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		cells := make([]cell, row.LastCol())
		for colIdx := row.FirstCol(); colIdx < row.LastCol(); colIdx++ {
			text := row.Col(colIdx)
			if text == "" {
				continue
			}
			cells[colIdx] = cell{value: parseValue(text), text: text}
		}
		grid = append(grid, cells)
	}

	return grid, nil
}

// legacyRow returns row i, or nil when the sheet has no record for it.
// WorkSheet.Row dereferences missing rows, so the panic is caught here.
func legacyRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}
