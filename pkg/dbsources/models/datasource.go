package models

// DataSource is the schema and object name referenced by one expression.
type DataSource struct {
	// Schema is the namespace qualifier (may be empty).
	Schema string `json:"schema"`
	// Name is the view name when present, otherwise the table name (may be empty).
	Name string `json:"name"`
}

// Qualified returns the "Schema.Name" form.
func (d DataSource) Qualified() string {
	return d.Schema + "." + d.Name
}
