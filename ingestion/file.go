package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lotofacil/domain/entities"
)

// ParseFile parses a results export, choosing the format from the file extension.
// .csv and .txt are read as CSV, .xlsx and .xls as a workbook, everything else as HTML.
func ParseFile(path string) ([]*entities.DrawResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return ParseCSV(file)
	case ".xlsx", ".xls":
		return ParseXLSX(file)
	default:
		return ParseHTML(file)
	}
}
