package models

// Table represents the deduplicated output of one processing run.
type Table struct {
	// SheetName is the worksheet name of the exported workbook.
	SheetName string `json:"sheet_name"`
	// FileName is the suggested download file name.
	FileName string `json:"file_name"`
	// Headers contains the column headers.
	Headers []string `json:"headers"`
	// Rows contains the deduplicated output rows in first-seen order.
	Rows [][]string `json:"rows"`
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Records returns the rows as header-keyed maps.
func (t *Table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records
}
