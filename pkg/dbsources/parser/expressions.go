package parser

import (
	"strconv"

	"github.com/ukaji3/dbsources-go/pkg/dbsources/models"
	"github.com/xuri/excelize/v2"
)

// ReadRows returns the raw cell values of a sheet.
func ReadRows(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

// ExtractExpressions extracts the cells below the header in the located
// column. Every data row yields one cell; empty and non-string cells carry a
// nil Text.
func ExtractExpressions(f *excelize.File, sheetName string, rows [][]string, loc ColumnLocation) []models.ExpressionCell {
	if loc.HeaderRow+1 >= len(rows) {
		return nil
	}

	result := make([]models.ExpressionCell, 0, len(rows)-loc.HeaderRow-1)
	for rowIdx := loc.HeaderRow + 1; rowIdx < len(rows); rowIdx++ {
		cell := models.ExpressionCell{Row: rowIdx + 1}

		row := rows[rowIdx]
		if loc.Col < len(row) && row[loc.Col] != "" {
			value := row[loc.Col]
			cellName, _ := excelize.CoordinatesToCellName(loc.Col+1, rowIdx+1)
			if isTextCell(f, sheetName, cellName, value) {
				cell.Text = &value
			}
		}

		result = append(result, cell)
	}

	return result
}

// isTextCell reports whether a non-empty cell holds a string value.
func isTextCell(f *excelize.File, sheetName, cellName, value string) bool {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return false
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return true
	case excelize.CellTypeUnset:
		// Untyped cells default to numbers in OOXML.
		_, isString := parseValue(value).(string)
		return isString
	default:
		return false
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
