// Package parser reads expression sheets and writes data-source sheets.
package parser

// ColumnLocation identifies a named column within a sheet.
type ColumnLocation struct {
	// HeaderRow is the 0-based index of the header row.
	HeaderRow int
	// Col is the 0-based column index.
	Col int
}

// LocateColumn finds the column whose header equals name. The header row is
// the first non-empty row of the sheet; the first matching header wins.
func LocateColumn(rows [][]string, name string) (ColumnLocation, bool) {
	headerRow, _, minCol, maxCol := findDataBounds(rows)
	if headerRow < 0 {
		return ColumnLocation{}, false
	}

	header := rows[headerRow]
	for colIdx := minCol; colIdx <= maxCol && colIdx < len(header); colIdx++ {
		if header[colIdx] == name {
			return ColumnLocation{HeaderRow: headerRow, Col: colIdx}, true
		}
	}

	return ColumnLocation{}, false
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
