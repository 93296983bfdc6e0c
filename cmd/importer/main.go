package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"minelog/internal/config"
	"minelog/internal/dataprocessing"
	"minelog/internal/exporter"
	"minelog/internal/files"
	"minelog/internal/infrastructure"
)

func main() {
	inFile := flag.String("in", "", "input .xlsx workbook (defaults to the configured input file)")
	outFile := flag.String("out", "", "output JSON payload (defaults to the configured output file)")
	reportFile := flag.String("csv", "", "optional CSV report of the emitted records")
	sheet := flag.String("sheet", "", "sheet name to read (defaults to auto-discovery)")
	configFile := flag.String("config", "minelog.yaml", "configuration file")
	debug := flag.Bool("debug", false, "print the normalized header mapping before processing")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// CLI flags override file and environment configuration.
	if *inFile != "" {
		cfg.Import.InputFile = *inFile
	}
	if *outFile != "" {
		cfg.Import.OutputFile = *outFile
	}
	if *reportFile != "" {
		cfg.Import.ReportFile = *reportFile
	}
	if *sheet != "" {
		cfg.Import.Sheet = *sheet
	}
	if *debug {
		cfg.Import.Verbose = true
		cfg.Logging.Level = "debug"
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	logger.Info("Starting production log import",
		slog.String("input", cfg.Import.InputFile),
		slog.String("output", cfg.Import.OutputFile),
		slog.Bool("verbose", cfg.Import.Verbose))

	reader := files.NewReader(logger)
	workbook, err := reader.Read(cfg.Import.InputFile, cfg.Import.Sheet)
	if err != nil {
		logger.Error("Failed to read workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := dataprocessing.NewPipeline(logger, cfg.Import.Verbose)
	records, stats := pipeline.Run(workbook.Headers, workbook.Rows)

	if err := exporter.NewJSONWriter(logger).WriteRecords(cfg.Import.OutputFile, records); err != nil {
		logger.Error("Failed to write import payload", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.Import.ReportFile != "" {
		if err := exporter.NewCSVWriter(logger).WriteReport(cfg.Import.ReportFile, records); err != nil {
			logger.Error("Failed to write CSV report", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Human-readable completion summary for the operator.
	fmt.Printf("OK! Wrote %s with %d entries.\n", cfg.Import.OutputFile, stats.Records)
	tonnageKey := stats.UsedTonnageKey
	if tonnageKey == "" {
		tonnageKey = "(none - tonnage may have been derived from TON/HR x hours)"
	}
	fmt.Printf("Tonnage column used: %s\n", tonnageKey)
	fmt.Printf("Entries computed from TON/HR x hours: %d\n", stats.ComputedFromTonPerHour)
	fmt.Printf("Entries without tonnage: %d\n", stats.WithoutTonnage)
	if cfg.Import.Verbose {
		fmt.Println("Ran in verbose mode - check the detected header mapping above.")
	}
}
