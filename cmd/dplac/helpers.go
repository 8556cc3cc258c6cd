package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/config"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/report"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/storage"
)

// initStorage opens the database and brings the schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// addFilterFlags registers the shared report filter flags.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("start-date", "s", "", "Only include entries from this date (format: 2006-01-02)")
	cmd.Flags().StringP("end-date", "e", "", "Only include entries up to this date (format: 2006-01-02)")
	cmd.Flags().StringSlice("companies", nil, "Filter by company (comma-separated)")
	cmd.Flags().StringSlice("groups", nil, "Filter by account-plan group (comma-separated)")
	cmd.Flags().StringSlice("subgroups", nil, "Filter by account-plan subgroup (comma-separated)")
	cmd.Flags().StringSlice("accounts", nil, "Filter by account (comma-separated)")
	cmd.Flags().String("kind", "", "Filter by entry kind: c (credit) or d (debit)")
}

// criteriaFromFlags builds report filter criteria from the shared flags.
func criteriaFromFlags(cmd *cobra.Command) (report.Criteria, error) {
	var criteria report.Criteria

	if startStr, _ := cmd.Flags().GetString("start-date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return criteria, fmt.Errorf("invalid start date %q: %w", startStr, err)
		}
		criteria.Start = &start
	}
	if endStr, _ := cmd.Flags().GetString("end-date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return criteria, fmt.Errorf("invalid end date %q: %w", endStr, err)
		}
		criteria.End = &end
	}

	criteria.Companies, _ = cmd.Flags().GetStringSlice("companies")
	criteria.Groups, _ = cmd.Flags().GetStringSlice("groups")
	criteria.Subgroups, _ = cmd.Flags().GetStringSlice("subgroups")
	criteria.Accounts, _ = cmd.Flags().GetStringSlice("accounts")

	if kindStr, _ := cmd.Flags().GetString("kind"); kindStr != "" {
		switch kindStr {
		case "c":
			criteria.Kinds = []model.Kind{model.Credit}
		case "d":
			criteria.Kinds = []model.Kind{model.Debit}
		default:
			return criteria, fmt.Errorf("invalid kind %q: use c or d", kindStr)
		}
	}

	return criteria, nil
}

// loadFilteredTransactions opens the store, lists all saved entries and
// applies the shared filter flags.
func loadFilteredTransactions(ctx context.Context, cmd *cobra.Command) ([]model.Transaction, error) {
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	transactions, err := store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return report.Filter(transactions, criteria), nil
}
