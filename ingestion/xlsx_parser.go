package ingestion

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"lotofacil/domain/entities"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// spreadsheets often hold typed dates, which excelize renders as yyyy-mm-dd
var isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)

// ParseXLSX extracts draw results from the first worksheet of a workbook. Results come back
// newest first.
func ParseXLSX(r io.Reader) ([]*entities.DrawResult, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook (legacy .xls files must be saved as .xlsx): %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no worksheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s: %w", sheets[0], err)
	}

	var draws []*entities.DrawResult
	skipped := 0
	for _, row := range rows {
		if draw, ok := parseSheetRow(normalizeDates(row)); ok {
			draws = append(draws, draw)
		} else {
			skipped++
		}
	}

	log.WithFields(log.Fields{
		"sheet":   sheets[0],
		"parsed":  len(draws),
		"skipped": skipped,
	}).Debug("Parsed XLSX results")

	return newestFirst(draws), nil
}

// parseSheetRow accepts everything parseRow does, plus rows whose contest column comes after
// the date. There the contest is the first integer above 25 that is not the draw's year.
func parseSheetRow(cells []string) (*entities.DrawResult, bool) {
	if draw, ok := parseRow(cells); ok {
		return draw, true
	}

	date := ""
	for _, cell := range cells {
		if date = datePattern.FindString(cell); date != "" {
			break
		}
	}
	if date == "" {
		return nil, false
	}
	year, _ := strconv.Atoi(date[len(date)-4:])

	contestIndex := -1
	for i, cell := range cells {
		if n, ok := cellInt(cell); ok && n > entities.UniverseSize && n != year {
			contestIndex = i
			break
		}
	}
	if contestIndex == -1 {
		return nil, false
	}
	contestID, _ := cellInt(cells[contestIndex])

	rest := make([]string, 0, len(cells)-1)
	rest = append(rest, cells[:contestIndex]...)
	rest = append(rest, cells[contestIndex+1:]...)
	balls := ballsFromCells(rest)
	if len(balls) < entities.DrawSize {
		return nil, false
	}

	draw, err := entities.NewDrawResult(contestID, date, balls[:entities.DrawSize]...)
	if err != nil {
		return nil, false
	}
	return draw, true
}

func normalizeDates(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		if m := isoDatePattern.FindStringSubmatch(cell); m != nil {
			cell = m[3] + "/" + m[2] + "/" + m[1]
		}
		out[i] = cell
	}
	return out
}
