package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"lotofacil/domain/entities"
	"lotofacil/domain/interfaces"

	"github.com/google/uuid"
)

func runGenerate(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	modeName := fs.String("mode", string(entities.ModeSmart), "generation mode")
	quantity := fs.Int("n", 1, "number of tickets")
	save := fs.Bool("save", false, "store the generated tickets")
	label := fs.String("label", "", "label for saved tickets")
	constraints := constraintFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	mode, err := entities.ParseGenerationMode(*modeName)
	if err != nil {
		return err
	}
	if mode == entities.ModeClosure {
		return errors.New("use the closure command for closure mode")
	}

	req := interfaces.GenerateTicketsRequest{
		Mode:     mode,
		Quantity: *quantity,
		Save:     *save,
		Label:    *label,
	}
	if mode == entities.ModeConstrained {
		if req.Constraints, err = constraints(); err != nil {
			return err
		}
	}

	tickets, err := app.Strategy.GenerateTickets(ctx, req)
	if err != nil {
		return err
	}
	printTickets(out, tickets)
	return nil
}

func runClosure(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("closure", flag.ContinueOnError)
	save := fs.Bool("save", false, "store the generated tickets")
	label := fs.String("label", "", "label for saved tickets")
	planOnly := fs.Bool("plan", false, "only report the number of tickets")
	parseConstraints := constraintFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	constraints, err := parseConstraints()
	if err != nil {
		return err
	}

	plan, err := app.Strategy.PlanClosure(ctx, constraints)
	if err != nil {
		return err
	}
	if !plan.Feasible {
		return fmt.Errorf("%w: need %d numbers but only %d are available", entities.ErrInfeasibleConstraints, plan.Needed, plan.Available)
	}

	fmt.Fprintf(out, "Closure: C(%d,%d) = %d tickets\n", plan.Available, plan.Needed, plan.Count)
	if plan.TooLarge {
		return fmt.Errorf("%w: %d tickets exceed the limit of %d", entities.ErrClosureTooLarge, plan.Count, app.generator.Config().ClosureCeiling)
	}
	if *planOnly {
		return nil
	}

	tickets, err := app.Strategy.GenerateTickets(ctx, interfaces.GenerateTicketsRequest{
		Mode:        entities.ModeClosure,
		Constraints: constraints,
		Save:        *save,
		Label:       *label,
	})
	if err != nil {
		return err
	}
	printTickets(out, tickets)
	return nil
}

func runSuggest(ctx context.Context, app *App, _ []string, out io.Writer) error {
	suggestion, err := app.Strategy.SuggestConstraints(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Fixed:    %s\nExcluded: %s\n%s\n", suggestion.Fixed, suggestion.Excluded, suggestion.Reason)
	return nil
}

func runScore(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	numbers := fs.String("numbers", "", "ticket numbers")
	ticketID := fs.String("ticket", "", "saved ticket id")
	window := fs.Int("window", 0, "most recent draws to score against (all when 0)")
	verbose := fs.Bool("v", false, "print hits per contest")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var result *interfaces.BacktestResult
	title := "Ticket"
	if *ticketID != "" && *numbers == "" {
		id, err := uuid.Parse(*ticketID)
		if err != nil {
			return fmt.Errorf("invalid ticket id: %w", err)
		}
		if result, err = app.Strategy.BacktestTicket(ctx, id, *window); err != nil {
			return err
		}
		title = displayLabel(result.Ticket)
	} else {
		set, _, err := ticketNumbers(ctx, app, *numbers, *ticketID)
		if err != nil {
			return err
		}
		if result, err = app.Strategy.Backtest(ctx, set, *window); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%s %s\n", title, result.Ticket.Numbers)
	printDistribution(out, result.Distribution)
	if *verbose {
		for _, hit := range result.PerDraw {
			fmt.Fprintf(out, "  contest %5d: %2d\n", hit.ContestID, hit.Hits)
		}
	}
	return nil
}

func runCheck(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	numbers := fs.String("numbers", "", "ticket numbers")
	saved := fs.Bool("saved", false, "check every saved ticket")
	contest := fs.Int("contest", 0, "contest to check against (latest when 0)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *saved {
		portfolio, err := app.Strategy.CheckSavedTickets(ctx, *contest)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Contest %d: %s\n", portfolio.Draw.ContestID, portfolio.Draw.Numbers)
		for _, result := range portfolio.Results {
			marker := ""
			if result.IsPrize() {
				marker = " *"
			}
			fmt.Fprintf(out, "  %-24s %2d hits%s\n", displayLabel(result.Ticket), result.Hits, marker)
		}
		printDistribution(out, portfolio.Distribution)
		return nil
	}

	set, err := parseTicketNumbers(*numbers)
	if err != nil {
		return err
	}
	check, err := app.Strategy.CheckTicket(ctx, set, *contest)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Hits: %d  Repeats from previous contest: %d\n", check.Hits, check.Repeats)
	for row := range entities.GridSide {
		cells := make([]string, entities.GridSide)
		for col := range entities.GridSide {
			if n := check.Grid[row][col]; n > 0 {
				cells[col] = fmt.Sprintf("%02d", n)
			} else {
				cells[col] = "--"
			}
		}
		fmt.Fprintf(out, "  %s  | %d\n", strings.Join(cells, " "), check.RowCounts[row])
	}
	colCounts := make([]string, entities.GridSide)
	for col, count := range check.ColCounts {
		colCounts[col] = fmt.Sprintf("%2d", count)
	}
	fmt.Fprintf(out, "  %s\n", strings.Join(colCounts, " "))
	return nil
}

func runAnalyze(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	contest := fs.Int("contest", 0, "contest to analyze (latest when 0)")
	frequencies := fs.Int("frequencies", -1, "print number frequencies over the most recent N draws (0 for all)")
	groups := fs.Bool("groups", false, "audit every configured group in the contest")
	window := fs.Int("window", defaultAuditWindow, "draws up to the contest averaged by -groups (0 for all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *groups {
		return printGroupAudit(ctx, app, *contest, *window, out)
	}

	if *frequencies >= 0 {
		table, err := app.Strategy.Frequencies(ctx, *frequencies)
		if err != nil {
			return err
		}
		for _, frequency := range table {
			fmt.Fprintf(out, "  %02d: %d\n", frequency.Number, frequency.Count)
		}
		return nil
	}

	analysis, err := app.Strategy.AnalyzeContest(ctx, *contest)
	if err != nil {
		return err
	}

	stats := analysis.Stats
	fmt.Fprintf(out, "Contest %d (%s): %s\n", analysis.Draw.ContestID, analysis.Draw.Date, analysis.Draw.Numbers)
	fmt.Fprintf(out, "Even %d / Odd %d\n", stats.EvenCount, stats.OddCount)
	if analysis.Previous == nil {
		fmt.Fprintln(out, "No previous contest stored")
		return nil
	}
	fmt.Fprintf(out, "Repeated from %d: %s (%d)\n", analysis.Previous.ContestID, stats.RepeatedNumbers, len(stats.RepeatedNumbers))
	fmt.Fprintf(out, "New: %s\nAbsent: %s\n", stats.NewNumbers, stats.AbsentNumbers)
	return nil
}

const defaultAuditWindow = 10

func printGroupAudit(ctx context.Context, app *App, contest, window int, out io.Writer) error {
	report, err := app.Strategy.AuditGroups(ctx, contest, window)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Contest %d (%s): %s\n", report.Draw.ContestID, report.Draw.Date, report.Draw.Numbers)
	fmt.Fprintf(out, "%-12s %5s %5s %6s  %-7s %s\n", "group", "hits", "size", "pct", "heat", fmt.Sprintf("avg/%d", report.Window))
	for _, audit := range report.Groups {
		fmt.Fprintf(out, "%-12s %5d %5d %5d%%  %-7s %.1f (max %d, zero in %d)\n",
			audit.Name, audit.Hits, audit.Size, audit.Percent, audit.Heat,
			audit.WindowAverage, audit.WindowMax, audit.ZeroHitDraws)
	}
	return nil
}

func runSearch(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	numbersFlag := fs.String("numbers", "", "numbers that must all appear in a draw")
	limit := fs.Int("limit", 0, "print at most N matches (0 for all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	numbers, err := parseNumbers(*numbersFlag)
	if err != nil {
		return err
	}
	pattern := entities.NewNumberSet(numbers...)

	matches, err := app.Strategy.SearchPattern(ctx, pattern)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s appeared together in %d draws\n", pattern, len(matches))
	if *limit > 0 {
		matches = matches.Recent(*limit)
	}
	for _, draw := range matches {
		fmt.Fprintf(out, "  %5d  %-10s %s\n", draw.ContestID, draw.Date, draw.Numbers)
	}
	return nil
}

func printTickets(out io.Writer, tickets []*entities.Ticket) {
	for i, ticket := range tickets {
		fmt.Fprintf(out, "%3d. %s  (even %d, odd %d)\n", i+1, ticket.Numbers, ticket.EvenCount(), ticket.OddCount())
	}
	if len(tickets) == 0 {
		fmt.Fprintln(out, "No tickets")
	}
}

func printDistribution(out io.Writer, distribution entities.HitDistribution) {
	fmt.Fprintf(out, "Scored draws: %d, prizes: %d\n", distribution.Total(), distribution.Prizes())
	for hits := entities.DrawSize; hits >= entities.PrizeMinHits; hits-- {
		fmt.Fprintf(out, "  %2d hits: %d\n", hits, distribution[hits])
	}
}
