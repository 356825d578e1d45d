package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fatura/internal/cli"
	"fatura/internal/core"
	"fatura/internal/ingest"
	"fatura/internal/report"
	"fatura/internal/services"
)

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	var (
		csvPath       = flag.String("csv", "", "statement CSV file (columns: date, title, amount)")
		rosterText    = flag.String("roster", "", "comma-separated names splitting the bill")
		decisionsPath = flag.String("decisions", "", "JSON file with classifications for unrecognized charges")
		outputDir     = flag.String("out", cfg.OutputDir, "directory for the generated workbook")
	)
	flag.Parse()

	if *csvPath == "" || *rosterText == "" {
		flag.Usage()
		os.Exit(2)
	}

	roster := core.ParseRoster(*rosterText)
	if len(roster) == 0 {
		logger.Error("Roster has no names", "roster", *rosterText)
		os.Exit(1)
	}

	statement, err := os.Open(*csvPath)
	if err != nil {
		logger.Error("Failed to open statement", "error", err, "path", *csvPath)
		os.Exit(1)
	}
	txs, rowErrs, err := ingest.ReadStatement(statement)
	statement.Close()
	if err != nil {
		logger.Error("Failed to read statement", "error", err, "path", *csvPath)
		os.Exit(1)
	}
	for _, re := range rowErrs {
		logger.Warn("Statement row excluded", "row", re.Row, "field", re.Field, "error", re.Err)
	}

	decisions := map[int]ingest.Decision{}
	if *decisionsPath != "" {
		df, err := os.Open(*decisionsPath)
		if err != nil {
			logger.Error("Failed to open decisions file", "error", err, "path", *decisionsPath)
			os.Exit(1)
		}
		decisions, err = ingest.ReadDecisions(df)
		df.Close()
		if err != nil {
			logger.Error("Failed to read decisions file", "error", err, "path", *decisionsPath)
			os.Exit(1)
		}
	}

	store := cli.InitStore(logger, cfg)
	defer store.Close()

	ctx := context.Background()
	session := services.NewSession(store, roster)
	result, err := session.Run(ctx, txs, decisions)
	if err != nil {
		logger.Error("Session failed", "error", err)
		os.Exit(1)
	}

	wb, err := report.Build(result.Transactions, result.Allocations, roster, result.Totals)
	if err != nil {
		logger.Error("Failed to build report", "error", err)
		os.Exit(1)
	}
	defer wb.Close()

	name := fmt.Sprintf("fatura_dividida_%s.xlsx", time.Now().Format("20060102_150405"))
	path := filepath.Join(*outputDir, name)
	if err := wb.SaveAs(path); err != nil {
		logger.Error("Failed to save workbook", "error", err, "path", path)
		os.Exit(1)
	}

	logger.Info("Workbook generated",
		"path", path,
		"transactions", len(result.Transactions),
		"excluded_rows", len(rowErrs),
		"people_with_totals", len(result.Totals))
}
