package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
)

// SaveTransactions saves transactions to the database, skipping entries whose
// hash is already present.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransactions(transactions); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			hash, date, company, description, kind, amount, account, txn_group, subgroup
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	saved := 0
	for i := range transactions {
		txn := transactions[i]
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}

		result, execErr := stmt.ExecContext(ctx,
			txn.Hash,
			txn.Date.Format("2006-01-02"),
			txn.Company,
			txn.Description,
			string(txn.Kind),
			txn.Amount,
			txn.Account,
			txn.Group,
			txn.Subgroup,
		)
		if execErr != nil {
			return 0, fmt.Errorf("failed to insert transaction: %w", execErr)
		}
		if rows, _ := result.RowsAffected(); rows > 0 {
			saved++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	return saved, nil
}

// ListTransactions returns all stored transactions in insertion order.
// Drill-down display order depends on this ordering.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT hash, date, company, description, kind, amount, account, txn_group, subgroup
		FROM transactions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var dateStr, kind string
		if err := rows.Scan(&t.Hash, &dateStr, &t.Company, &t.Description, &kind, &t.Amount, &t.Account, &t.Group, &t.Subgroup); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		date, parseErr := parseStoredDate(dateStr)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse stored date %q: %w", dateStr, parseErr)
		}
		t.Date = date
		t.Kind = model.Kind(kind)
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// Dataset loads all transactions and derives the index lists and date range.
func (s *SQLiteStorage) Dataset(ctx context.Context) (*model.Dataset, error) {
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return model.NewDataset(transactions), nil
}

// CountTransactions returns the number of stored transactions.
func (s *SQLiteStorage) CountTransactions(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// Clear removes all stored transactions.
func (s *SQLiteStorage) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM transactions"); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}

// parseStoredDate accepts both the date-only format this schema writes and
// the full timestamp format older SQLite drivers may return.
func parseStoredDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05Z07:00", "2006-01-02 15:04:05-07:00"} {
		if date, err := time.Parse(layout, value); err == nil {
			return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}
