package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/pacer/internal/cli"
	"github.com/alexanderramin/pacer/internal/db"
	"github.com/alexanderramin/pacer/internal/repository"
	"github.com/alexanderramin/pacer/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pacer/pacer.db
	dbPath := os.Getenv("PACER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pacer", "pacer.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)
	dayRepo := repository.NewSQLiteDayRepo(database)
	auditRepo := repository.NewSQLiteAuditRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Plans:    service.NewPlanService(planRepo, dayRepo, uow),
		Tracker:  service.NewTrackerService(planRepo, dayRepo, auditRepo, uow),
		Progress: service.NewProgressService(planRepo, dayRepo, service.SystemClock),
		Clock:    service.SystemClock,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
