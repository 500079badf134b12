// Package output renders data-source tables for previews and downloads.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ukaji3/dbsources-go/pkg/dbsources/models"
	"github.com/ukaji3/dbsources-go/pkg/dbsources/parser"
)

// XLSXContentType is the MIME type of generated workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Preview formats accepted by Render.
const (
	PreviewTable    = "table"
	PreviewJSON     = "json"
	PreviewCSV      = "csv"
	PreviewMarkdown = "markdown"
	PreviewNone     = "none"
)

// ToJSON serializes the table rows as header-keyed records.
func ToJSON(t *models.Table, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(t.Records(), "", "  ")
	}
	return json.Marshal(t.Records())
}

// XLSX returns the table as workbook bytes.
func XLSX(t *models.Table) ([]byte, error) {
	f, err := parser.NewWorkbook(t)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteXLSX writes the table as a workbook to w.
func WriteXLSX(w io.Writer, t *models.Table) error {
	data, err := XLSX(t)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}

// Render writes a preview of the table in the given format.
func Render(w io.Writer, t *models.Table, format string) error {
	switch format {
	case PreviewNone:
		return nil
	case PreviewJSON:
		data, err := ToJSON(t, true)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case PreviewCSV:
		return renderCSV(w, t)
	case PreviewMarkdown:
		return renderMarkdown(w, t)
	case PreviewTable, "":
		return renderTable(w, t)
	default:
		return fmt.Errorf("invalid preview format: %s (must be table, json, csv, markdown, or none)", format)
	}
}

func renderTable(w io.Writer, t *models.Table) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault

	headerRow := make(table.Row, len(t.Headers))
	for i, h := range t.Headers {
		headerRow[i] = h
	}
	tw.AppendHeader(headerRow)

	for _, r := range t.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = v
		}
		tw.AppendRow(row)
	}

	tw.Render()
	_, err := fmt.Fprintf(w, "(%d rows)\n", t.Len())
	return err
}

func renderCSV(w io.Writer, t *models.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

func renderMarkdown(w io.Writer, t *models.Table) error {
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(t.Headers, " | "))
	seps := make([]string, len(t.Headers))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for _, r := range t.Rows {
		values := make([]string, len(r))
		for i, v := range r {
			values[i] = strings.ReplaceAll(v, "|", `\|`)
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(values, " | ")); err != nil {
			return err
		}
	}
	return nil
}
