package exchart

import (
	"errors"

	"github.com/ukaji3/exchart-go/pkg/exchart/parser"
)

var (
	// ErrUploadInProgress indicates a decode is already running for this session.
	ErrUploadInProgress = errors.New("upload already in progress")

	// ErrUnsupportedExtension indicates a file outside the accepted spreadsheet types.
	ErrUnsupportedExtension = errors.New("unsupported file extension")

	// ErrNoSelection indicates no dataset is selected.
	ErrNoSelection = errors.New("no dataset selected")

	// ErrConfigurationIncomplete indicates an axis is unset, so no chart can be generated.
	ErrConfigurationIncomplete = errors.New("chart configuration incomplete")
)

// DecodeError is returned when uploaded bytes cannot be decoded.
type DecodeError = parser.DecodeError
