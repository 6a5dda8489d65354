package ingestion

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"lotofacil/domain/entities"

	log "github.com/sirupsen/logrus"
)

// ParseCSV extracts draw results from a CSV export. The separator is ';' when the first line
// contains one, ',' otherwise. Results come back newest first.
func ParseCSV(r io.Reader) ([]*entities.DrawResult, error) {
	buffered := bufio.NewReader(r)
	firstLine, err := buffered.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	if line, _, _ := strings.Cut(string(firstLine), "\n"); strings.Contains(line, ";") {
		reader.Comma = ';'
	}

	var draws []*entities.DrawResult
	skipped := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		if draw, ok := parseRow(record); ok {
			draws = append(draws, draw)
		} else {
			skipped++
		}
	}

	log.WithFields(log.Fields{
		"parsed":  len(draws),
		"skipped": skipped,
	}).Debug("Parsed CSV results")

	return newestFirst(draws), nil
}
