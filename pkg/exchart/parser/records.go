package parser

import (
	"fmt"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// emptyHeader names header cells that hold no text.
const emptyHeader = "__EMPTY"

// recordsFromGrid converts a cell grid into row records.
// The first row of the used range supplies field names; rows below it
// become records holding only their non-empty cells. Rows without any
// non-empty cell are skipped.
func recordsFromGrid(grid [][]cell) []models.Record {
	rows := []models.Record{}

	rng, ok := findUsedRange(grid)
	if !ok {
		return rows
	}

	header := headerNames(grid, rng)
	for rowIdx := rng.minRow + 1; rowIdx <= rng.maxRow; rowIdx++ {
		rec := models.NewRecord()
		for colIdx := rng.minCol; colIdx <= rng.maxCol; colIdx++ {
			c := cellAt(grid, rowIdx, colIdx)
			if c.empty() {
				continue
			}
			rec.Set(header[colIdx-rng.minCol], c.value)
		}
		if rec.Len() > 0 {
			rows = append(rows, rec)
		}
	}

	return rows
}

// headerNames builds unique field names from the header row.
// Blank cells become __EMPTY; repeats get _1, _2, ... suffixes.
func headerNames(grid [][]cell, rng usedRange) []string {
	names := make([]string, 0, rng.maxCol-rng.minCol+1)
	seen := make(map[string]int)

	for colIdx := rng.minCol; colIdx <= rng.maxCol; colIdx++ {
		base := cellAt(grid, rng.minRow, colIdx).text
		if base == "" {
			base = emptyHeader
		}

		name := base
		if counter := seen[base]; counter == 0 {
			seen[base] = 1
		} else {
			for {
				name = fmt.Sprintf("%s_%d", base, counter)
				counter++
				if seen[name] == 0 {
					break
				}
			}
			seen[base] = counter
			seen[name] = 1
		}
		names = append(names, name)
	}

	return names
}

// DeriveColumns returns the key set of the first row, in that row's order.
// Keys that only appear in later rows are not columns.
func DeriveColumns(rows []models.Record) []string {
	if len(rows) == 0 {
		return []string{}
	}
	columns := make([]string, len(rows[0].Keys))
	copy(columns, rows[0].Keys)
	return columns
}
