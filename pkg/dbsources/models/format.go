package models

import "fmt"

// Format selects the shape of the output rows.
type Format string

const (
	// FormatCombined writes a single "Schema.Name" column.
	FormatCombined Format = "combined"
	// FormatColumns writes separate Schema and Name columns.
	FormatColumns Format = "columns"
)

// ParseFormat converts a configuration string to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCombined, FormatColumns:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be combined or columns)", s)
	}
}

// Headers returns the output column headers for the format.
// includeViews selects the "Table/View" wording.
func (f Format) Headers(includeViews bool) []string {
	if f == FormatColumns {
		if includeViews {
			return []string{"Schema", "Table Name/View Name"}
		}
		return []string{"Schema", "Table Name"}
	}
	if includeViews {
		return []string{"Schema.Table/View Name"}
	}
	return []string{"Schema.Table Name"}
}

// Row renders a data source as one output row.
func (f Format) Row(d DataSource) []string {
	if f == FormatColumns {
		return []string{d.Schema, d.Name}
	}
	return []string{d.Qualified()}
}
