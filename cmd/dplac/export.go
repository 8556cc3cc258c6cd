package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/classify"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/common"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/export"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/report"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/sheets"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the income statement as PDF, XLSX or Google Sheets",
		Long: `Render the income statement over the filtered entries and write it to
a file (pdf, xlsx) or push it to a Google Sheets spreadsheet (sheets).

Sheets export reads credentials from GOOGLE_SHEETS_* environment variables.`,
		RunE: runExport,
	}

	addFilterFlags(cmd)
	cmd.Flags().String("format", "pdf", "Output format: pdf, xlsx or sheets")
	cmd.Flags().StringP("output", "o", "", "Output file path (default: dre.<format>)")
	cmd.Flags().String("revenue-mode", "total", "Revenue recognition: total or sales")
	cmd.Flags().Bool("detailed", false, "Include group and subgroup breakdown")
	cmd.Flags().String("title", "Demonstrativo de Resultado", "Report title")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	transactions, err := loadFilteredTransactions(ctx, cmd)
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		return common.ErrNoTransactions
	}

	modeStr, _ := cmd.Flags().GetString("revenue-mode")
	mode := report.RevenueMode(modeStr)
	if !mode.Valid() {
		return common.NewUserError(
			fmt.Sprintf("unknown revenue mode %q (use total or sales)", modeStr), common.ErrInvalidConfig)
	}

	format, _ := cmd.Flags().GetString("format")
	detailed, _ := cmd.Flags().GetBool("detailed")
	title, _ := cmd.Flags().GetString("title")

	classifier := classify.Default()
	monthly := report.BuildMonthlyDRE(transactions, classifier, mode)
	annualRows := report.BuildAnnualDRE(transactions, classifier, mode)

	// The statement section covers the filtered range as a whole; with a
	// multi-year range the most recent year is exported.
	annual := annualRows[len(annualRows)-1]

	switch format {
	case "pdf", "xlsx":
		return exportToFile(cmd, format, title, monthly, annual, detailed)
	case "sheets":
		return exportToSheets(ctx, title, report.ComputeKPI(transactions), monthly)
	default:
		return common.NewUserError(
			fmt.Sprintf("unknown format %q (use pdf, xlsx or sheets)", format), common.ErrInvalidConfig)
	}
}

func exportToFile(cmd *cobra.Command, format, title string, monthly []report.MonthlyDRERow, annual report.AnnualDRERow, detailed bool) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "pdf":
		data, err = export.BuildDREPDF(title, monthly, annual, detailed)
	case "xlsx":
		data, err = export.BuildDREXLSX(title, monthly, annual, detailed)
	}
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "dre." + format
	}

	if err := os.WriteFile(output, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Report written to %s", output)))
	return nil
}

func exportToSheets(ctx context.Context, title string, kpi report.KPI, monthly []report.MonthlyDRERow) error {
	config := sheets.DefaultConfig()
	if err := config.LoadFromEnv(); err != nil {
		return common.NewUserError("missing Google Sheets configuration", err)
	}

	writer, err := sheets.NewWriter(ctx, config, slog.Default())
	if err != nil {
		return err
	}

	if err := writer.Write(ctx, title, kpi, monthly); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Report pushed to Google Sheets"))
	return nil
}
