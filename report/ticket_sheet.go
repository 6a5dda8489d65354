package report

import (
	"fmt"
	"io"

	"lotofacil/domain/entities"

	"github.com/xuri/excelize/v2"
)

const ticketSheetName = "Tickets"

// WriteTicketSheet writes tickets as a workbook with one row per ticket and one column per
// number, widest ticket first deciding the column count
func WriteTicketSheet(tickets []*entities.Ticket, w io.Writer) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", ticketSheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	width := entities.DrawSize
	for _, ticket := range tickets {
		width = max(width, len(ticket.Numbers))
	}

	header := []any{"ID", "Label", "Source", "Mode", "Created", "Size"}
	for i := range width {
		header = append(header, fmt.Sprintf("N%d", i+1))
	}
	if err := workbook.SetSheetRow(ticketSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := workbook.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := workbook.SetCellStyle(ticketSheetName, "A1", lastHeader, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := workbook.SetColWidth(ticketSheetName, "A", "A", 38); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	for i, ticket := range tickets {
		row := []any{
			ticket.ID.String(),
			ticket.Label,
			string(ticket.Source),
			string(ticket.Mode),
			ticket.CreatedAt.UTC().Format("2006-01-02 15:04"),
			len(ticket.Numbers),
		}
		for _, n := range ticket.Numbers {
			row = append(row, n)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := workbook.SetSheetRow(ticketSheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write ticket %s: %w", ticket.ID, err)
		}
	}

	if _, err := workbook.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
