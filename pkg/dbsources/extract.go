package dbsources

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ukaji3/dbsources-go/pkg/dbsources/expr"
	"github.com/ukaji3/dbsources-go/pkg/dbsources/models"
	"github.com/ukaji3/dbsources-go/pkg/dbsources/parser"
	"github.com/xuri/excelize/v2"
)

// ExtractFile extracts the data-source table from an Excel file on disk.
func ExtractFile(path string, opts Options) (*models.Table, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return extractTable(f, filepath.Base(path), opts)
}

// ExtractReader extracts the data-source table from an uploaded workbook.
// filename is the client-side name used to derive the output names.
func ExtractReader(r io.Reader, filename string, opts Options) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return extractTable(f, filename, opts)
}

func extractTable(f *excelize.File, filename string, opts Options) (*models.Table, error) {
	opts = opts.withDefaults()

	sources, err := Extract(f, opts)
	if err != nil {
		return nil, err
	}

	table := Tabulate(sources, opts)
	if table.Len() == 0 {
		return nil, &NoDataSourcesError{Marker: opts.Marker}
	}
	table.SheetName, table.FileName = OutputNames(filename)

	return table, nil
}

// Extract reads the expression column of an open workbook and returns one
// data source per matching row, in sheet order and without deduplication.
func Extract(f *excelize.File, opts Options) ([]models.DataSource, error) {
	opts = opts.withDefaults()

	if !slices.Contains(f.GetSheetList(), opts.Sheet) {
		return nil, NewInputError(opts.Sheet, "", ErrSheetNotFound)
	}

	rows, err := parser.ReadRows(f, opts.Sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", opts.Sheet, err)
	}

	loc, ok := parser.LocateColumn(rows, opts.Column)
	if !ok {
		return nil, NewInputError(opts.Sheet, opts.Column, ErrColumnNotFound)
	}

	cells := parser.ExtractExpressions(f, opts.Sheet, rows, loc)
	return Process(cells, opts), nil
}

// Process filters cells on opts.Marker and extracts a data source from each
// remaining cell.
func Process(cells []models.ExpressionCell, opts Options) []models.DataSource {
	opts = opts.withDefaults()
	includeViews := opts.ShouldIncludeViews()

	var sources []models.DataSource
	for _, cell := range cells {
		if !cell.IsText() || !strings.Contains(*cell.Text, opts.Marker) {
			continue
		}
		sources = append(sources, SourceOf(cell.Text, includeViews))
	}
	return sources
}

// SourceOf extracts the schema and object name from one expression. The View
// name wins over the Table name when includeViews is set and both exist.
func SourceOf(expression *string, includeViews bool) models.DataSource {
	name := ""
	if includeViews {
		name = expr.ExtractName(expression, expr.KindView)
	}
	if name == "" {
		name = expr.ExtractName(expression, expr.KindTable)
	}

	return models.DataSource{
		Schema: expr.ExtractName(expression, expr.KindSchema),
		Name:   name,
	}
}

// Tabulate formats sources as output rows and removes duplicate rows,
// keeping the first occurrence. SheetName and FileName are left empty.
func Tabulate(sources []models.DataSource, opts Options) *models.Table {
	opts = opts.withDefaults()

	table := &models.Table{
		Headers: opts.Format.Headers(opts.ShouldIncludeViews()),
		Rows:    [][]string{},
	}

	seen := make(map[string]struct{}, len(sources))
	for _, src := range sources {
		row := opts.Format.Row(src)
		key := strings.Join(row, "\x00")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		table.Rows = append(table.Rows, row)
	}

	return table
}
