package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		assert.Equal(t, tt.expected, result, "parseValue(%q)", tt.input)
	}
}

func TestTypedValue(t *testing.T) {
	tests := []struct {
		cellType excelize.CellType
		input    string
		expected any
	}{
		{excelize.CellTypeBool, "1", true},
		{excelize.CellTypeBool, "0", false},
		{excelize.CellTypeBool, "TRUE", true},
		{excelize.CellTypeSharedString, "100", "100"},
		{excelize.CellTypeInlineString, "x", "x"},
		{excelize.CellTypeFormula, "42", "42"},
		{excelize.CellTypeError, "#DIV/0!", "#DIV/0!"},
		{excelize.CellTypeUnset, "42", int64(42)},
		{excelize.CellTypeNumber, "4.5", 4.5},
		{excelize.CellTypeDate, "45000", int64(45000)},
	}

	for _, tt := range tests {
		result := typedValue(tt.cellType, tt.input)
		assert.Equal(t, tt.expected, result, "typedValue(%v, %q)", tt.cellType, tt.input)
	}
}
