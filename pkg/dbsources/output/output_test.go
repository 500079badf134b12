package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/dbsources-go/pkg/dbsources/models"
)

func sampleTable() *models.Table {
	return &models.Table{
		SheetName: "in_datasources",
		FileName:  "in_datasources.xlsx",
		Headers:   []string{"Schema", "Table Name/View Name"},
		Rows:      [][]string{{"sales", "orders"}, {"dw", "a|b"}},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleTable(), false)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"Schema":"sales","Table Name/View Name":"orders"},{"Schema":"dw","Table Name/View Name":"a|b"}]`,
		string(data))
}

func TestToJSON_Empty(t *testing.T) {
	data, err := ToJSON(&models.Table{Headers: []string{"Schema.Table/View Name"}}, true)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRender(t *testing.T) {
	tests := []struct {
		format   string
		contains []string
	}{
		{PreviewTable, []string{"Schema", "Table Name/View Name", "orders", "(2 rows)"}},
		{"", []string{"(2 rows)"}},
		{PreviewCSV, []string{"Schema,Table Name/View Name\n", "sales,orders\n"}},
		{PreviewMarkdown, []string{"| Schema | Table Name/View Name |", "| --- | --- |", `| dw | a\|b |`}},
		{PreviewJSON, []string{`"Schema": "sales"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, sampleTable(), tt.format))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRender_None(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTable(), PreviewNone))
	assert.Empty(t, buf.String())
}

func TestRender_InvalidFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, sampleTable(), "yaml")
	assert.ErrorContains(t, err, "invalid preview format")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"in_datasources"}, f.GetSheetList())

	rows, err := f.GetRows("in_datasources")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Schema", "Table Name/View Name"},
		{"sales", "orders"},
		{"dw", "a|b"},
	}, rows)
}
