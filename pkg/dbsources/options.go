// Package dbsources extracts Databricks data sources from expression workbooks.
package dbsources

import "github.com/ukaji3/dbsources-go/pkg/dbsources/models"

// Defaults for the input workbook layout.
const (
	DefaultSheet  = "Expressions"
	DefaultColumn = "Expression"
	DefaultMarker = "Databricks"
)

// Options configures extraction behavior.
type Options struct {
	// Sheet is the name of the sheet holding expressions.
	Sheet string
	// Column is the header of the expression column.
	Column string
	// Marker selects the rows to process (case-sensitive substring).
	Marker string
	// Format selects combined or two-column output.
	Format models.Format
	// IncludeViews specifies whether View names take precedence over Table names.
	// If nil, defaults to true.
	IncludeViews *bool
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Sheet:  DefaultSheet,
		Column: DefaultColumn,
		Marker: DefaultMarker,
		Format: models.FormatCombined,
	}
}

// ShouldIncludeViews returns whether View names are looked up.
func (o Options) ShouldIncludeViews() bool {
	if o.IncludeViews != nil {
		return *o.IncludeViews
	}
	return true
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Sheet == "" {
		o.Sheet = def.Sheet
	}
	if o.Column == "" {
		o.Column = def.Column
	}
	if o.Marker == "" {
		o.Marker = def.Marker
	}
	if o.Format == "" {
		o.Format = def.Format
	}
	return o
}
