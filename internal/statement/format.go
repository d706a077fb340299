package statement

import (
	"path/filepath"
	"strings"
)

// Format is the text layout a statement file is parsed with.
type Format int

const (
	// FormatCSV is comma delimited text with a header row.
	FormatCSV Format = iota
	// FormatSpreadsheet covers .xlsx and .xls uploads. Their content is read
	// as tab or comma delimited text; no binary workbook decoding happens.
	FormatSpreadsheet
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatSpreadsheet:
		return "spreadsheet"
	}
	return "unknown"
}

// DetectFormat picks the Format from the file name extension.
func DetectFormat(fileName string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	switch ext {
	case "csv":
		return FormatCSV, nil
	case "xlsx", "xls":
		return FormatSpreadsheet, nil
	}
	return 0, &FormatError{Extension: ext}
}
