// Package expr locates named entities inside Databricks source expressions.
//
// A Databricks navigation step looks like
//
//	Source{[Name="sales",Kind="Schema"]}[Data]
//
// and ExtractName returns the Name value paired with a given Kind.
package expr

import "strings"

// Kind is the category tag of a named entity within an expression.
type Kind string

const (
	// KindSchema tags the namespace qualifier.
	KindSchema Kind = "Schema"
	// KindTable tags a table.
	KindTable Kind = "Table"
	// KindView tags a view.
	KindView Kind = "View"
)

const nameMarker = "[Name="

// Marker returns the text that introduces kind inside an expression.
func (k Kind) Marker() string {
	return `,Kind="` + string(k) + `"`
}

// ExtractName returns the name paired with kind in expression.
// A nil expression (absent or non-string cell) yields "".
func ExtractName(expression *string, kind Kind) string {
	if expression == nil {
		return ""
	}
	return Name(*expression, kind)
}

// Name returns the value of the last [Name= marker preceding the first
// occurrence of kind's marker, or "" when either marker is missing.
func Name(expression string, kind Kind) string {
	kindPos := strings.Index(expression, kind.Marker())
	if kindPos < 0 {
		return ""
	}

	namePos := strings.LastIndex(expression[:kindPos], nameMarker)
	if namePos < 0 {
		return ""
	}

	return unquote(expression[namePos+len(nameMarker) : kindPos])
}

// unquote strips one leading and one trailing double quote when both are
// present. A lone `"` satisfies both tests and becomes "".
func unquote(value string) string {
	if !strings.HasPrefix(value, `"`) || !strings.HasSuffix(value, `"`) {
		return value
	}
	if len(value) < 2 {
		return ""
	}
	return value[1 : len(value)-1]
}
