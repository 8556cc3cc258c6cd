package storage

import (
	"context"
	"fmt"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return ctx.Err()
}

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateTransactions(transactions []model.Transaction) error {
	for i := range transactions {
		t := &transactions[i]
		if t.Date.IsZero() {
			return fmt.Errorf("transaction %d has no date", i)
		}
		if t.Kind != model.Credit && t.Kind != model.Debit {
			return fmt.Errorf("transaction %d has invalid kind %q", i, t.Kind)
		}
		if t.Kind == model.Credit && t.Amount < 0 {
			return fmt.Errorf("transaction %d: credit amount must not be negative", i)
		}
		if t.Kind == model.Debit && t.Amount > 0 {
			return fmt.Errorf("transaction %d: debit amount must not be positive", i)
		}
	}
	return nil
}
