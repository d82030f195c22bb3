package main

import (
	"errors"
	"fmt"
	"log"

	"rdprint/internal/app"
	"rdprint/internal/auth"
	"rdprint/internal/config"
	"rdprint/internal/logger"
	"rdprint/internal/orchestrator"
)

// Runs the interactive print flow with the default configuration path. The
// full command set lives in cmd/rdprint.
func main() {
	cfg, err := config.LoadConfig(config.DefaultPath)
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if err := logger.Init(cfg.Log.Directory, cfg.Log.Level); err != nil {
		log.Fatal("Error opening log file: ", err)
	}

	if err := app.New(cfg).Run(); !alreadyReported(err) {
		logger.Error("Print run did not complete", "error", err)
		fmt.Println("Print run did not complete.")
	}
}

// alreadyReported is true for a nil error and for the failures the app has
// already explained to the operator.
func alreadyReported(err error) bool {
	return err == nil ||
		errors.Is(err, auth.ErrIncorrectPassword) ||
		errors.Is(err, orchestrator.ErrPrinterNotReady)
}
