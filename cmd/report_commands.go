package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"lotofacil/domain/entities"
	"lotofacil/report"

	"github.com/google/uuid"
)

func runCard(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("card", flag.ContinueOnError)
	numbers := fs.String("numbers", "", "ticket numbers")
	ticketID := fs.String("ticket", "", "saved ticket id")
	contest := fs.Int("contest", -1, "highlight hits against this contest (0 for latest)")
	output := fs.String("out", "ticket.png", "output PNG path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	set, title, err := ticketNumbers(ctx, app, *numbers, *ticketID)
	if err != nil {
		return err
	}

	var draw *entities.DrawResult
	if *contest >= 0 {
		analysis, err := app.Strategy.AnalyzeContest(ctx, *contest)
		if err != nil {
			return err
		}
		draw = analysis.Draw
	}

	data, err := report.NewTicketCardGenerator().Render(title, set, draw)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write card: %w", err)
	}
	fmt.Fprintf(out, "Wrote %s\n", *output)
	return nil
}

func runChart(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("chart", flag.ContinueOnError)
	numbers := fs.String("numbers", "", "ticket numbers")
	ticketID := fs.String("ticket", "", "saved ticket id")
	frequencies := fs.Bool("frequencies", false, "chart number frequencies instead of ticket hits")
	window := fs.Int("window", 0, "most recent draws to include (all when 0)")
	output := fs.String("out", "chart.html", "output HTML path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config := report.DefaultChartConfig()
	var render func(io.Writer) error

	if *frequencies {
		table, err := app.Strategy.Frequencies(ctx, *window)
		if err != nil {
			return err
		}
		config.Title = "Number frequencies"
		render = func(w io.Writer) error {
			return report.RenderFrequencies(table, config, w)
		}
	} else {
		set, title, err := ticketNumbers(ctx, app, *numbers, *ticketID)
		if err != nil {
			return err
		}
		result, err := app.Strategy.Backtest(ctx, set, *window)
		if err != nil {
			return err
		}
		config.Title = title
		config.Subtitle = set.String()
		render = func(w io.Writer) error {
			return report.RenderHitDistribution(result.Distribution, config, w)
		}
	}

	if err := report.WriteFile(*output, render); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", *output)
	return nil
}

func runTickets(ctx context.Context, app *App, args []string, out io.Writer) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("tickets list", flag.ContinueOnError)
		source := fs.String("source", "", "manual or generated")
		limit := fs.Int("limit", 0, "maximum tickets (all when 0)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		tickets, err := app.Tickets.ListTickets(ctx, entities.TicketSource(*source), *limit)
		if err != nil {
			return err
		}
		for _, ticket := range tickets {
			fmt.Fprintf(out, "%s  %-10s %-20s %s\n", ticket.ID, ticket.Source, displayLabel(ticket), ticket.Numbers)
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("tickets add", flag.ContinueOnError)
		label := fs.String("label", "", "ticket label")
		numbers := fs.String("numbers", "", "ticket numbers")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		parsed, err := parseNumbers(*numbers)
		if err != nil {
			return err
		}
		ticket, err := app.Strategy.SaveManualTicket(ctx, *label, parsed)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved %s\n", ticket.ID)
		return nil

	case "export":
		fs := flag.NewFlagSet("tickets export", flag.ContinueOnError)
		source := fs.String("source", "", "manual or generated")
		outPath := fs.String("out", "tickets.xlsx", "output workbook")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		tickets, err := app.Tickets.ListTickets(ctx, entities.TicketSource(*source), 0)
		if err != nil {
			return err
		}
		if err := report.WriteFile(*outPath, func(w io.Writer) error {
			return report.WriteTicketSheet(tickets, w)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported %d tickets to %s\n", len(tickets), *outPath)
		return nil

	case "rename":
		if len(args) != 3 {
			return errors.New("usage: tickets rename ID LABEL")
		}
		id, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid ticket id: %w", err)
		}
		return app.Tickets.RenameTicket(ctx, id, args[2])

	case "delete":
		if len(args) != 2 {
			return errors.New("usage: tickets delete ID")
		}
		id, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid ticket id: %w", err)
		}
		return app.Tickets.DeleteTicket(ctx, id)

	default:
		return fmt.Errorf("unknown tickets subcommand %q", args[0])
	}
}
