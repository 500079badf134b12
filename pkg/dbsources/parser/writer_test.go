package parser

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/dbsources-go/pkg/dbsources/models"
	"github.com/xuri/excelize/v2"
)

func TestNewWorkbook(t *testing.T) {
	table := &models.Table{
		SheetName: "report_datasources",
		Headers:   []string{"Schema", "Table Name/View Name"},
		Rows: [][]string{
			{"sales", "orders"},
			{"finance", "=not_a_formula"},
		},
	}

	f, err := NewWorkbook(table)
	if err != nil {
		t.Fatalf("NewWorkbook failed: %v", err)
	}
	defer f.Close()

	tmpFile := filepath.Join(t.TempDir(), "out.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f2.Close()

	sheets := f2.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "report_datasources" {
		t.Fatalf("Expected single sheet report_datasources, got %v", sheets)
	}

	rows, err := f2.GetRows("report_datasources")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], "|") != "Schema|Table Name/View Name" {
		t.Errorf("Unexpected header row: %v", rows[0])
	}
	if rows[2][1] != "=not_a_formula" {
		t.Errorf("Expected literal text, got %q", rows[2][1])
	}

	formula, err := f2.GetCellFormula("report_datasources", "B3")
	if err != nil {
		t.Fatalf("GetCellFormula failed: %v", err)
	}
	if formula != "" {
		t.Errorf("Expected no formula, got %q", formula)
	}

	styleID, err := f2.GetCellStyle("report_datasources", "A1")
	if err != nil {
		t.Fatalf("GetCellStyle failed: %v", err)
	}
	style, err := f2.GetStyle(styleID)
	if err != nil {
		t.Fatalf("GetStyle failed: %v", err)
	}
	if style.Font == nil || !style.Font.Bold {
		t.Errorf("Expected bold header font")
	}
}

func TestNewWorkbook_InvalidSheetName(t *testing.T) {
	table := &models.Table{SheetName: "bad[name]", Headers: []string{"Schema"}}
	if _, err := NewWorkbook(table); err == nil {
		t.Errorf("Expected error for invalid sheet name")
	}
}

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		values   []string
		expected float64
	}{
		{nil, MinColumnWidth},
		{[]string{"abc"}, MinColumnWidth},
		{[]string{"Schema.Table/View Name"}, 24},
		{[]string{"short", "sales.orders_archive_2024"}, 27},
		{[]string{strings.Repeat("x", 500)}, MaxColumnWidth},
	}

	for _, tt := range tests {
		if got := ColumnWidth(tt.values); got != tt.expected {
			t.Errorf("ColumnWidth(%v) = %v, expected %v", tt.values, got, tt.expected)
		}
	}
}
