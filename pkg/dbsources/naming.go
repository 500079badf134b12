package dbsources

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	// MaxSheetNameLength is the spreadsheet limit on sheet name length.
	MaxSheetNameLength = 31
	// TruncatedBaseLength is the base name length used once a base exceeds
	// MaxSheetNameLength.
	TruncatedBaseLength = 10
	// OutputSuffix is appended to the base name of the uploaded file.
	OutputSuffix = "_datasources"
)

var sheetNameReplacer = strings.NewReplacer(
	"[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", `\`, "_",
)

// OutputNames returns the sheet name and download file name for an uploaded
// file name.
func OutputNames(filename string) (sheetName, outputFile string) {
	base := baseName(filename)
	if utf8.RuneCountInString(base) > MaxSheetNameLength {
		base = truncateRunes(base, TruncatedBaseLength)
	}

	outputFile = base + OutputSuffix + ".xlsx"

	sheetBase := strings.TrimLeft(sheetNameReplacer.Replace(base), "'")
	sheetBase = truncateRunes(sheetBase, MaxSheetNameLength-len(OutputSuffix))
	sheetName = sheetBase + OutputSuffix

	return sheetName, outputFile
}

// baseName strips directories (either separator) and the extension.
// Leading dots are part of the name, so ".xlsx" has no extension.
func baseName(filename string) string {
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		filename = filename[i+1:]
	}
	stem := strings.TrimLeft(filename, ".")
	return strings.TrimSuffix(filename, filepath.Ext(stem))
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
