package ingestion

import (
	"fmt"
	"io"
	"strings"

	"lotofacil/domain/entities"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// ParseHTML extracts draw results from the table rows of an exported results page.
// Rows that do not look like a result are skipped. Results come back newest first.
func ParseHTML(r io.Reader) ([]*entities.DrawResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var draws []*entities.DrawResult
	skipped := 0
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) == 0 {
			cells = []string{strings.Join(strings.Fields(row.Text()), " ")}
		}

		if draw, ok := parseRow(cells); ok {
			draws = append(draws, draw)
		} else {
			skipped++
		}
	})

	log.WithFields(log.Fields{
		"parsed":  len(draws),
		"skipped": skipped,
	}).Debug("Parsed HTML results")

	return newestFirst(draws), nil
}
