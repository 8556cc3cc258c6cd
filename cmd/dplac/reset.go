package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
)

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored entries",
		Long:  `Remove every entry from the local database. The schema is kept.`,
		RunE:  runReset,
	}

	cmd.Flags().Bool("force", false, "Skip the confirmation prompt")

	return cmd
}

func runReset(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	count, err := store.CountTransactions(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Println(cli.FormatInfo("Database is already empty"))
		return nil
	}

	if force, _ := cmd.Flags().GetBool("force"); !force {
		fmt.Printf("This will delete %d entries. Type 'yes' to continue: ", count)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Println(cli.FormatWarning("Aborted"))
			return nil
		}
	}

	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %d entries", count)))
	return nil
}
