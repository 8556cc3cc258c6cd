package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/common"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/xlsx"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import entries from XLSX bookkeeping exports",
		Long: `Import financial entries from XLSX spreadsheets exported from the
bookkeeping system. Entries are deduplicated automatically, so re-importing
the same file is safe.

Examples:
  # Import a single export
  dplac import ~/Downloads/movimentacao_2024.xlsx

  # Import everything in a directory
  dplac import ~/Downloads/*.xlsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Preview import without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	files, err := expandFileArgs(args)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle("Importing bookkeeping exports"))

	parser := xlsx.NewParser()
	var all []model.Transaction

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Parsing files..."),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
	)

	for _, path := range files {
		f, err := os.Open(path) // #nosec G304
		if err != nil {
			common.LogError(err, "Failed to open file", common.Fields{"file": path})
			_ = bar.Add(1)
			continue
		}

		transactions, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			common.LogError(err, "Failed to parse file", common.Fields{"file": filepath.Base(path)})
			_ = bar.Add(1)
			continue
		}

		common.LogDebug("Parsed file", common.Fields{
			"file":    filepath.Base(path),
			"entries": len(transactions),
		})
		all = append(all, transactions...)
		_ = bar.Add(1)
	}
	fmt.Println()

	if len(all) == 0 {
		return fmt.Errorf("no entries found in %d file(s)", len(files))
	}

	if dryRun {
		fmt.Println(cli.FormatWarning("Dry run mode - not saving to database"))
		displayImportSummary(all)
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	saved, err := store.SaveTransactions(ctx, all)
	if err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d new entries (%d duplicates skipped)", saved, len(all)-saved)))
	return nil
}

// expandFileArgs resolves glob patterns and direct paths into a file list.
func expandFileArgs(args []string) ([]string, error) {
	var files []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files found to import")
	}
	return files, nil
}

func displayImportSummary(transactions []model.Transaction) {
	var revenue, expense float64
	for _, t := range transactions {
		if t.Kind == model.Credit {
			revenue += t.Amount
		} else {
			expense += t.AbsAmount()
		}
	}

	table := cli.NewTable("Entradas", "Receita", "Despesa")
	table.AddRow(
		fmt.Sprintf("%d", len(transactions)),
		cli.Currency(revenue),
		cli.Currency(expense),
	)
	fmt.Println(table.Render())
}
