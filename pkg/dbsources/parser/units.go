package parser

import "unicode/utf8"

// MinColumnWidth and MaxColumnWidth bound computed column widths, in
// characters of the default font.
const (
	MinColumnWidth = 10
	MaxColumnWidth = 100
)

// columnPadding accounts for cell margins and the header's bold font.
const columnPadding = 2

// ColumnWidth returns a column width wide enough for the longest value.
func ColumnWidth(values []string) float64 {
	longest := 0
	for _, v := range values {
		if n := utf8.RuneCountInString(v); n > longest {
			longest = n
		}
	}

	width := longest + columnPadding
	if width < MinColumnWidth {
		width = MinColumnWidth
	}
	if width > MaxColumnWidth {
		width = MaxColumnWidth
	}
	return float64(width)
}
