package dbsources

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a readable spreadsheet.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrSheetNotFound indicates the expressions sheet is missing.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrColumnNotFound indicates the expression column is missing.
var ErrColumnNotFound = errors.New("column not found")

// ErrNoDataSources indicates that no expression produced a data source.
var ErrNoDataSources = errors.New("no data sources found")

// NoDataSourcesError reports an empty result for the configured row marker.
type NoDataSourcesError struct {
	Marker string
}

func (e *NoDataSourcesError) Error() string {
	return fmt.Sprintf("%v: no rows contain %q", ErrNoDataSources, e.Marker)
}

func (e *NoDataSourcesError) Unwrap() error {
	return ErrNoDataSources
}

// InputError represents a missing sheet or column in the uploaded workbook.
type InputError struct {
	Sheet  string
	Column string // empty when the sheet itself is missing
	Err    error
}

func (e *InputError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%v: workbook has no sheet named %q", e.Err, e.Sheet)
	}
	return fmt.Sprintf("%v: sheet %q has no column named %q", e.Err, e.Sheet, e.Column)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new InputError.
func NewInputError(sheet, column string, err error) *InputError {
	return &InputError{
		Sheet:  sheet,
		Column: column,
		Err:    err,
	}
}

// UserMessage renders err as a message suitable for display to the person
// who uploaded the file.
func UserMessage(err error) string {
	var inputErr *InputError
	var emptyErr *NoDataSourcesError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &inputErr):
		if inputErr.Column == "" {
			return fmt.Sprintf("Error: The uploaded file must contain a sheet named %q.", inputErr.Sheet)
		}
		return fmt.Sprintf("Error: The sheet %q must contain a column named %q.", inputErr.Sheet, inputErr.Column)
	case errors.Is(err, ErrInvalidFormat):
		return fmt.Sprintf("Error: The uploaded file is not a valid Excel workbook (%v).", err)
	case errors.As(err, &emptyErr):
		return fmt.Sprintf("No %s data sources were found in the uploaded file.", emptyErr.Marker)
	case errors.Is(err, ErrNoDataSources):
		return "No data sources were found in the uploaded file."
	default:
		return "An unexpected error occurred while processing the file."
	}
}
