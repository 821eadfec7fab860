// Package parser decodes spreadsheet bytes into datasets.
package parser

import (
	"bytes"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/exchart-go/internal/logger"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// Decode turns raw spreadsheet bytes into a Dataset.
// Only the first sheet is read. A sheet without data rows yields
// empty Rows and Columns rather than an error.
func Decode(filename string, data []byte) (*models.Dataset, error) {
	grid, err := readFirstSheet(filename, data)
	if err != nil {
		return nil, err
	}

	rows := recordsFromGrid(grid)
	columns := DeriveColumns(rows)
	logger.Debug("decoded %s: %d rows, %d columns", filename, len(rows), len(columns))

	return &models.Dataset{
		ID:         uuid.New().String(),
		Filename:   filename,
		Rows:       rows,
		Columns:    columns,
		UploadedAt: time.Now(),
		FileSize:   int64(len(data)),
	}, nil
}

// readFirstSheet dispatches on the container and returns the first sheet's grid.
func readFirstSheet(filename string, data []byte) ([][]cell, error) {
	if len(data) == 0 {
		return nil, NewDecodeError(filename, StageContainer, ErrEmptyInput)
	}

	kind := sniffContainer(data)
	logger.Debug("%s: %s container, %d bytes", filename, kind, len(data))

	switch kind {
	case containerZip:
		return readWorkbook(filename, data)
	case containerOLE:
		if err := checkLegacyWorkbook(data); err != nil {
			return nil, NewDecodeError(filename, StageContainer, err)
		}
		grid, err := readLegacyGrid(data)
		if err != nil {
			stage := StageCells
			if errors.Is(err, ErrNoSheet) {
				stage = StageSheet
			}
			return nil, NewDecodeError(filename, stage, err)
		}
		return grid, nil
	default:
		return nil, NewDecodeError(filename, StageContainer, ErrUnrecognizedContainer)
	}
}

// readWorkbook opens an xlsx package and reads its first sheet.
func readWorkbook(filename string, data []byte) ([][]cell, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, NewDecodeError(filename, StageContainer, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, NewDecodeError(filename, StageSheet, ErrNoSheet)
	}
	sheetName := sheetList[0]

	grid, err := readWorksheetGrid(f, sheetName)
	if err != nil {
		return nil, NewDecodeError(filename, StageCells, err)
	}
	if rng, ok := findUsedRange(grid); ok {
		logger.Debug("%s: sheet %q used range %s", filename, sheetName, rng)
	}

	return grid, nil
}
