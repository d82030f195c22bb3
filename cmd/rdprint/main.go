package main

import (
	"errors"
	"fmt"
	"os"

	"rdprint/internal/app"
	"rdprint/internal/auth"
	"rdprint/internal/config"
	"rdprint/internal/logger"
	"rdprint/internal/orchestrator"
)

func main() {
	command := "print"
	if len(os.Args) >= 2 {
		command = os.Args[1]
	}

	if command == "init-config" {
		runInitConfig()
		return
	}

	cfg, err := config.LoadConfig(config.DefaultPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Log.Directory, cfg.Log.Level); err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "print":
		runPrint(app.New(cfg))
	case "check":
		fmt.Println("Dry run: reports are formatted in memory, nothing is printed.")
		runPrint(app.NewDryRun(cfg))
	case "list":
		runList(cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("rdprint - Installment report batch printer")
	fmt.Println("\nUsage:")
	fmt.Println("  rdprint [print]       - Choose report dates and print them on the default printer")
	fmt.Println("  rdprint check         - Same as print, but only format the reports in memory")
	fmt.Println("  rdprint list          - List report batches found in the report directory")
	fmt.Println("  rdprint init-config   - Write the default configuration to " + config.DefaultPath)
}

func runPrint(a *app.App) {
	err := a.Run()
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrIncorrectPassword), errors.Is(err, orchestrator.ErrPrinterNotReady):
		// already reported to the operator
	default:
		logger.Error("Print operation failed", "error", err)
		fmt.Printf("Error: %v\n", err)
	}
}

func runList(cfg *config.Config) {
	logger.Info("Starting list operation", "directory", cfg.Scan.Directory)
	if err := app.New(cfg).List(); err != nil {
		logger.Error("List operation failed", "error", err)
		fmt.Printf("Error listing reports: %v\n", err)
		os.Exit(1)
	}
}

func runInitConfig() {
	if _, err := os.Stat(config.DefaultPath); err == nil {
		fmt.Printf("Config file already exists: %s\n", config.DefaultPath)
		return
	}
	if err := config.SaveConfig(config.DefaultPath, config.Default()); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Default config written to %s\n", config.DefaultPath)
}
