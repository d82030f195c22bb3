package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"rdprint/internal/auth"
	"rdprint/internal/config"
	"rdprint/internal/excel"
	"rdprint/internal/logger"
	"rdprint/internal/orchestrator"
	"rdprint/internal/printer"
	"rdprint/internal/report"
	"rdprint/internal/selection"

	"github.com/google/uuid"
)

// App runs one password-gated print session.
type App struct {
	Config  *config.Config
	Host    excel.Host
	Spooler printer.Spooler
	Out     io.Writer

	// Authenticate and Select block on the operator.
	Authenticate func() error
	Select       func(batches *report.BatchMap) ([]string, error)
}

// New wires the platform spreadsheet host and print spooler.
func New(cfg *config.Config) *App {
	return &App{
		Config:  cfg,
		Host:    excel.System(),
		Spooler: printer.System(),
		Out:     os.Stdout,
		Authenticate: func() error {
			return auth.Prompt(os.Stdin, os.Stdout, cfg.Auth.Password)
		},
		Select: func(batches *report.BatchMap) ([]string, error) {
			return selection.Prompt(batches)
		},
	}
}

// NewDryRun formats reports in memory and prints nothing.
func NewDryRun(cfg *config.Config) *App {
	a := New(cfg)
	a.Host = excel.Excelize{}
	a.Spooler = printer.Ready{}
	return a
}

// Run authenticates, lets the operator pick batches and prints them.
// Outcomes with nothing to print return nil.
func (a *App) Run() error {
	runID := uuid.New().String()
	logger.Info("Starting print run", "run_id", runID, "directory", a.Config.Scan.Directory)

	if err := a.Authenticate(); err != nil {
		if errors.Is(err, auth.ErrIncorrectPassword) {
			fmt.Fprintln(a.Out, "Incorrect password. Exiting.")
		}
		logger.Error("Authentication failed", "run_id", runID, "error", err)
		return err
	}

	batches, err := a.Batches()
	if err != nil {
		return err
	}
	if batches.Len() == 0 {
		fmt.Fprintln(a.Out, "No valid files found in the directory.")
		logger.Info("No report files found", "run_id", runID)
		return nil
	}
	logger.Info("Found report batches", "run_id", runID, "dates", batches.Len(), "files", batches.FileCount())

	selected, err := a.Select(batches)
	if err != nil {
		logger.Error("Selection prompt failed", "run_id", runID, "error", err)
		return err
	}
	if len(selected) == 0 {
		fmt.Fprintln(a.Out, "No dates selected to print.")
		logger.Info("No dates selected", "run_id", runID)
		return nil
	}
	logger.Info("Dates selected", "run_id", runID, "dates", selected)

	o := orchestrator.New(a.Host, a.Spooler)
	o.CloseOnFailure = a.Config.Print.CloseOnFailure()
	o.Out = a.Out

	result, err := o.Run(batches.Job(selected))
	if err != nil {
		logger.Error("Print run aborted", "run_id", runID, "error", err)
		return err
	}
	logger.Info("Print run finished", "run_id", runID, "printed", len(result.Printed), "failed", len(result.Failed))
	return nil
}

// Batches discovers and groups the reports in the configured directory.
func (a *App) Batches() (*report.BatchMap, error) {
	files, err := report.Discover(a.Config.Scan.Directory)
	if err != nil {
		logger.Error("Failed to list report files", "error", err)
		return nil, err
	}
	return report.Group(files), nil
}

// List prints the batches found in the configured directory.
func (a *App) List() error {
	batches, err := a.Batches()
	if err != nil {
		return err
	}
	if batches.Len() == 0 {
		fmt.Fprintln(a.Out, "No valid files found in the directory.")
		return nil
	}

	fmt.Fprintf(a.Out, "Found %d report files in %d batches:\n", batches.FileCount(), batches.Len())
	for _, date := range batches.SortedDates() {
		fmt.Fprintf(a.Out, "\n%s\n", date)
		for _, file := range batches.Files(date) {
			fmt.Fprintf(a.Out, "   %s\n", file.Name())
		}
	}
	return nil
}
