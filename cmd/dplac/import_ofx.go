package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/common"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import entries from OFX/QFX bank statements",
		Long: `Import financial entries from OFX or QFX files exported from your bank.

Statement entries carry no account-plan grouping, so they land in the
residual income-statement bucket until reclassified.

Examples:
  dplac import-ofx ~/Downloads/extrato_jan_2024.ofx
  dplac import-ofx ~/Downloads/*.ofx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().Bool("dry-run", false, "Preview import without saving")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	files, err := expandFileArgs(args)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle("Importing bank statements"))

	parser := ofx.NewParser()
	var all []model.Transaction

	for _, path := range files {
		f, err := os.Open(path) // #nosec G304
		if err != nil {
			common.LogError(err, "Failed to open file", common.Fields{"file": path})
			continue
		}

		transactions, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			common.LogError(err, "Failed to parse OFX file", common.Fields{"file": filepath.Base(path)})
			continue
		}

		if len(transactions) == 0 {
			slog.Warn("No entries found in file", "file", filepath.Base(path))
			continue
		}

		all = append(all, transactions...)
	}

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
