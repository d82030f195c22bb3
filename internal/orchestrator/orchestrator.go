package orchestrator

import (
	"errors"
	"fmt"
	"io"
	"os"

	"rdprint/internal/excel"
	"rdprint/internal/logger"
	"rdprint/internal/printer"
	"rdprint/internal/report"
)

var ErrPrinterNotReady = errors.New("printer is not ready")

// FileError is a report that could not be printed.
type FileError struct {
	File report.ReportFile
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.File.Name(), e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Result summarises a print run.
type Result struct {
	Printer  string
	Ready    bool
	Launched bool
	Printed  []report.ReportFile
	Failed   []FileError
}

// Orchestrator prints a job through one spreadsheet session.
type Orchestrator struct {
	Host    excel.Host
	Spooler printer.Spooler
	Layout  excel.Layout

	// CloseOnFailure closes a workbook without saving after any of its
	// steps fails.
	CloseOnFailure bool

	// Out receives operator-facing progress lines. Nil means stdout.
	Out io.Writer
}

// New returns an orchestrator using the fixed report layout.
func New(host excel.Host, spooler printer.Spooler) *Orchestrator {
	return &Orchestrator{
		Host:           host,
		Spooler:        spooler,
		Layout:         excel.ReportLayout,
		CloseOnFailure: true,
		Out:            os.Stdout,
	}
}

func (o *Orchestrator) printf(format string, args ...any) {
	out := o.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, format, args...)
}

// Run prints every file in job, in order. An empty job launches nothing.
// The printer is checked once before any file is opened; when it is not
// ready Run returns ErrPrinterNotReady. Failures of individual files are
// collected in the result and do not stop the run.
func (o *Orchestrator) Run(job []report.ReportFile) (result *Result, err error) {
	result = &Result{}
	if len(job) == 0 {
		o.printf("No report files to print.\n")
		logger.Info("Empty print job, nothing to do")
		return result, nil
	}

	session, err := o.Host.Launch()
	if err != nil {
		logger.Error("Failed to launch spreadsheet host", "error", err)
		return result, fmt.Errorf("failed to launch spreadsheet host: %w", err)
	}
	result.Launched = true
	defer func() {
		if quitErr := session.Quit(); quitErr != nil {
			logger.Error("Failed to quit spreadsheet host", "error", quitErr)
			if err == nil {
				err = quitErr
			}
		}
	}()

	if !o.checkPrinter(result) {
		return result, fmt.Errorf("%w: %s", ErrPrinterNotReady, result.Printer)
	}

	for i, file := range job {
		o.printf("[%d/%d] Printing %s...\n", i+1, len(job), file.Name())
		logger.Info("Processing file", "file", file.Path, "date", file.Date, "progress", fmt.Sprintf("%d/%d", i+1, len(job)))

		if err := o.printFile(session, file); err != nil {
			o.printf("Failed to print %s: %v\n", file.Name(), err)
			logger.Error("Failed to print file", "file", file.Path, "error", err)
			result.Failed = append(result.Failed, FileError{File: file, Err: err})
			continue
		}

		logger.Info("Printed file", "file", file.Path)
		result.Printed = append(result.Printed, file)
	}

	logger.Info("Print run completed",
		"printed_count", len(result.Printed),
		"failed_count", len(result.Failed))
	o.printf("Printed %d of %d files", len(result.Printed), len(job))
	if len(result.Failed) > 0 {
		o.printf(", %d failed", len(result.Failed))
	}
	o.printf(".\n")

	return result, nil
}

// checkPrinter resolves the default printer and runs the readiness check.
func (o *Orchestrator) checkPrinter(result *Result) bool {
	name, err := o.Spooler.DefaultPrinter()
	if err != nil {
		o.printf("Error getting default printer: %v\n", err)
		logger.Error("Failed to get default printer", "error", err)
		o.printf("Printer is not ready. OFFLINE\n")
		return false
	}
	result.Printer = name
	o.printf("Default Printer: %s\n", name)

	ready, err := printer.Check(o.Spooler, name)
	if err != nil {
		o.printf("Error checking printer status: %v\n", err)
		logger.Error("Printer readiness check failed", "printer", name, "error", err)
	}
	if !ready {
		o.printf("Printer '%s' is not ready. OFFLINE\n", name)
		logger.Warn("Printer not ready, aborting run", "printer", name)
		return false
	}

	result.Ready = true
	logger.Info("Printer ready", "printer", name)
	return true
}

// printFile runs open, format, print and close for one file.
func (o *Orchestrator) printFile(session excel.Session, file report.ReportFile) error {
	wb, err := session.Open(file.Path)
	if err != nil {
		return err
	}

	err = excel.ApplyLayout(wb, o.Layout)
	if err == nil {
		err = wb.PrintOut()
	}
	if err != nil {
		if o.CloseOnFailure {
			if closeErr := wb.Close(false); closeErr != nil {
				logger.Warn("Failed to close workbook after error", "file", file.Path, "error", closeErr)
			}
		}
		return err
	}

	// Formatting is never written back to the report.
	return wb.Close(false)
}
