// Package model defines the core data structures for the dplac application.
package model

import (
	"crypto/sha256"
	"fmt"
	"math"
	"time"
)

// Kind distinguishes revenue-side from expense-side entries.
type Kind string

// Transaction kinds. The single-letter values mirror the "Tipo" column of
// the bookkeeping exports this tool ingests.
const (
	Credit Kind = "c"
	Debit  Kind = "d"
)

// Transaction represents a single normalized bookkeeping entry.
//
// The amount is signed: credits are >= 0 and debits are <= 0. Aggregation
// code works with AbsAmount and re-applies sign contextually.
type Transaction struct {
	Date        time.Time
	Company     string
	Description string
	Account     string
	Group       string
	Subgroup    string
	Hash        string
	Kind        Kind
	Amount      float64
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%.2f:%s:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Kind,
		t.Amount,
		t.Company,
		t.Description,
		t.Account)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// AbsAmount returns the magnitude of the transaction amount.
func (t *Transaction) AbsAmount() float64 {
	return math.Abs(t.Amount)
}

// MonthKey returns the YYYY-MM bucket key for this transaction.
// Lexicographic order of these keys equals chronological order.
func (t *Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// YearKey returns the YYYY bucket key for this transaction.
func (t *Transaction) YearKey() string {
	return t.Date.Format("2006")
}
