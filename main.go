package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"lotofacil/cmd"
	"lotofacil/config"
	"lotofacil/database"

	log "github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, cmd.Usage())
		os.Exit(2)
	}
	switch os.Args[1] {
	case "help", "-h", "--help":
		fmt.Print(cmd.Usage())
		return
	}

	cfg := config.Get()
	setupLogging(cfg)

	// Check for migration subcommands
	if os.Args[1] == "migrate" {
		if err := handleMigrationCommand(cfg); err != nil {
			log.Fatal("Migration error: ", err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	var err error
	switch os.Args[1] {
	case "run":
		err = cmd.Run(ctx)
	default:
		err = cmd.Execute(ctx, os.Args[1], os.Args[2:], os.Stdout)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func setupLogging(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func handleMigrationCommand(cfg *config.Config) error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: lotofacil migrate [up|down|status] [args...]")
	}

	databaseURL := cfg.GetDatabaseURL()

	var (
		state *database.SchemaState
		err   error
	)
	switch command := os.Args[2]; command {
	case "up":
		state, err = database.MigrateUp(databaseURL)
	case "down":
		steps := 1
		if len(os.Args) > 3 {
			if steps, err = strconv.Atoi(os.Args[3]); err != nil {
				return fmt.Errorf("invalid steps value: %w", err)
			}
		}
		state, err = database.MigrateDown(databaseURL, steps)
	case "status":
		state, err = database.MigrationStatus(databaseURL)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
	if err != nil {
		return err
	}

	if !state.Applied {
		log.Info("No migrations have been applied yet")
		return nil
	}
	log.WithFields(state.Fields()).Info("Draw store schema")
	if state.Draws == 0 {
		log.Info("No draw results stored yet, run import, fetch or sync")
	}
	return nil
}
