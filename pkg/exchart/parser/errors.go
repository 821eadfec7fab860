package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the input contained no bytes.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnrecognizedContainer indicates the bytes are not a spreadsheet container.
	ErrUnrecognizedContainer = errors.New("unrecognized spreadsheet container")

	// ErrEncryptedWorkbook indicates a password-protected workbook.
	ErrEncryptedWorkbook = errors.New("encrypted workbook")

	// ErrNoSheet indicates the workbook has no first sheet.
	ErrNoSheet = errors.New("workbook has no sheets")
)

// Decode stages reported by DecodeError.
const (
	StageContainer = "container"
	StageSheet     = "sheet"
	StageCells     = "cells"
)

// DecodeError represents a failure to turn raw bytes into a dataset.
type DecodeError struct {
	Filename string
	Stage    string // "container", "sheet", "cells"
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error in %q (%s): %v", e.Filename, e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(filename, stage string, err error) *DecodeError {
	return &DecodeError{
		Filename: filename,
		Stage:    stage,
		Err:      err,
	}
}
