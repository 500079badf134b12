// Package models defines data structures for data-source extraction.
package models

// ExpressionCell represents one cell of the expression column.
type ExpressionCell struct {
	// Row is the worksheet row index (1-based).
	Row int `json:"row"`
	// Text is the cell text, or nil when the cell is empty or not a string.
	Text *string `json:"text,omitempty"`
}

// IsText reports whether the cell holds a string value.
func (c ExpressionCell) IsText() bool {
	return c.Text != nil
}
