package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"lotofacil/domain/entities"
	"lotofacil/ingestion"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type command struct {
	usage string
	run   func(ctx context.Context, app *App, args []string, out io.Writer) error
}

var commands = map[string]command{
	"import":   {"import <file.html|file.csv|file.xlsx>", runImport},
	"fetch":    {"fetch [-contest N]", runFetch},
	"sync":     {"sync", runSync},
	"generate": {"generate -mode smart|fixed|constrained|golden [-n N] [-fixed 1,2] [-exclude 3,4] [-size 15] [-save] [-label L]", runGenerate},
	"closure":  {"closure -fixed 1,2 [-exclude 3,4] -size 15 [-save] [-label L]", runClosure},
	"suggest":  {"suggest", runSuggest},
	"score":    {"score (-numbers 1,2,... | -ticket ID) [-window N]", runScore},
	"check":    {"check (-numbers 1,2,... | -saved) [-contest N]", runCheck},
	"analyze":  {"analyze [-contest N] [-frequencies N | -groups [-window N]]", runAnalyze},
	"search":   {"search -numbers 1,2,... [-limit N]", runSearch},
	"card":     {"card (-numbers 1,2,... | -ticket ID) [-contest N] -out card.png", runCard},
	"chart":    {"chart (-numbers 1,2,... | -ticket ID | -frequencies) [-window N] -out chart.html", runChart},
	"tickets":  {"tickets list [-source manual|generated] | export [-source S] -out tickets.xlsx | add -label L -numbers 1,2,... | rename ID LABEL | delete ID", runTickets},
}

// Usage lists the available subcommands
func Usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: lotofacil <command> [flags]\n\ncommands:\n  migrate up|down [N]|status\n  run\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", commands[name].usage)
	}
	return b.String()
}

// Execute runs a single subcommand against a freshly wired App
func Execute(ctx context.Context, name string, args []string, out io.Writer) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q\n\n%s", name, Usage())
	}

	app, err := NewApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	return cmd.run(ctx, app, args, out)
}

// parseNumbers reads a comma or space separated list of numbers
func parseNumbers(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})

	numbers := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", field)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// parseTicketNumbers reads a ticket and checks it is playable
func parseTicketNumbers(s string) (entities.NumberSet, error) {
	numbers, err := parseNumbers(s)
	if err != nil {
		return nil, err
	}
	ticket := &entities.Ticket{Numbers: entities.NewNumberSet(numbers...)}
	if len(ticket.Numbers) != len(numbers) {
		return nil, fmt.Errorf("%w: numbers repeat", entities.ErrInvalidTicket)
	}
	if err := ticket.Validate(); err != nil {
		return nil, err
	}
	return ticket.Numbers, nil
}

// ticketNumbers resolves -numbers or -ticket, whichever was given
func ticketNumbers(ctx context.Context, app *App, numbers, ticketID string) (entities.NumberSet, string, error) {
	switch {
	case numbers != "" && ticketID != "":
		return nil, "", errors.New("use either -numbers or -ticket, not both")
	case numbers != "":
		set, err := parseTicketNumbers(numbers)
		return set, "Ticket", err
	case ticketID != "":
		id, err := uuid.Parse(ticketID)
		if err != nil {
			return nil, "", fmt.Errorf("invalid ticket id: %w", err)
		}
		ticket, err := app.Tickets.GetTicket(ctx, id)
		if err != nil {
			return nil, "", err
		}
		return ticket.Numbers, displayLabel(ticket), nil
	default:
		return nil, "", errors.New("either -numbers or -ticket is required")
	}
}

func displayLabel(ticket *entities.Ticket) string {
	if ticket.Label != "" {
		return ticket.Label
	}
	return string(ticket.Mode)
}

func constraintFlags(fs *flag.FlagSet) func() (entities.NumberConstraintSet, error) {
	fixed := fs.String("fixed", "", "numbers every ticket must contain")
	excluded := fs.String("exclude", "", "numbers no ticket may contain")
	size := fs.Int("size", entities.MinTicketSize, "ticket size")

	return func() (entities.NumberConstraintSet, error) {
		fixedNumbers, err := parseNumbers(*fixed)
		if err != nil {
			return entities.NumberConstraintSet{}, err
		}
		excludedNumbers, err := parseNumbers(*excluded)
		if err != nil {
			return entities.NumberConstraintSet{}, err
		}
		constraints := entities.NewConstraintSet(fixedNumbers, excludedNumbers, *size)
		return constraints, constraints.ValidateLimits()
	}
}

func runImport(ctx context.Context, app *App, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: import <file.html|file.csv>")
	}

	draws, err := ingestion.ParseFile(args[0])
	if err != nil {
		return err
	}
	if len(draws) == 0 {
		return fmt.Errorf("no results found in %s", args[0])
	}

	stored, err := app.ImportResults(ctx, draws)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"file": args[0], "stored": stored}).Info("Imported results")
	fmt.Fprintf(out, "Imported %d results (newest contest %d)\n", stored, draws[0].ContestID)
	return nil
}

func runFetch(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	contest := fs.Int("contest", 0, "contest to fetch (latest when 0)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var draw *entities.DrawResult
	var err error
	if *contest > 0 {
		draw, err = app.fetcher.FetchContest(ctx, *contest)
	} else {
		draw, err = app.fetcher.FetchLatest(ctx)
	}
	if err != nil {
		return err
	}

	if _, err := app.ImportResults(ctx, []*entities.DrawResult{draw}); err != nil {
		return err
	}
	fmt.Fprintf(out, "Contest %d (%s): %s\n", draw.ContestID, draw.Date, draw.Numbers)
	return nil
}

func runSync(ctx context.Context, app *App, _ []string, out io.Writer) error {
	result, err := app.Sync.Sync(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Latest contest %d, fetched %d, stored %d\n", result.LatestContest, result.Fetched, result.Stored)
	return nil
}
