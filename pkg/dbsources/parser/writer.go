package parser

import (
	"github.com/ukaji3/dbsources-go/pkg/dbsources/models"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize.NewFile creates.
const defaultSheet = "Sheet1"

// NewWorkbook creates a workbook holding the table in a single sheet.
// The caller owns the returned file and must Close it.
func NewWorkbook(table *models.Table) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, table.SheetName); err != nil {
		f.Close()
		return nil, err
	}
	if err := WriteTable(f, table); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteTable writes headers and rows into table.SheetName starting at A1.
// The header row is bold and boxed, and column widths follow the content.
func WriteTable(f *excelize.File, table *models.Table) error {
	sheet := table.SheetName

	headers := table.Headers
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	if len(headers) == 0 {
		return nil
	}

	style, err := f.NewStyle(headerStyle())
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, style); err != nil {
		return err
	}

	for colIdx, header := range headers {
		colName, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return err
		}
		values := []string{header}
		for _, row := range table.Rows {
			if colIdx < len(row) {
				values = append(values, row[colIdx])
			}
		}
		if err := f.SetColWidth(sheet, colName, colName, ColumnWidth(values)); err != nil {
			return err
		}
	}

	return nil
}

func headerStyle() *excelize.Style {
	border := func(side string) excelize.Border {
		return excelize.Border{Type: side, Color: "000000", Style: 1}
	}
	return &excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			border("left"), border("top"), border("right"), border("bottom"),
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
	}
}
