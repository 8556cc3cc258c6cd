// Package xlsx parses spreadsheet bookkeeping exports into normalized
// transactions.
package xlsx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/classify"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/common"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
)

// Parser implements XLSX bookkeeping-export parsing.
type Parser struct{}

// NewParser creates a new XLSX parser.
func NewParser() *Parser {
	return &Parser{}
}

// Column aliases accepted in the header row, normalized (lower-case, no
// diacritics). Exports from the bookkeeping system use the long forms;
// hand-edited sheets tend to use the short ones.
var columnAliases = map[string][]string{
	"date":        {"data", "date"},
	"company":     {"empresa", "company"},
	"description": {"descricao", "description"},
	"kind":        {"tipo", "kind"},
	"amount":      {"valor", "amount"},
	"account":     {"conta", "account"},
	"group":       {"plano conta - grupo", "grupo", "group"},
	"subgroup":    {"plano conta - sub-grupo", "sub-grupo", "subgrupo", "subgroup"},
}

// ParseFile parses the first worksheet of an XLSX file into normalized
// transactions. Rows without a parseable date are dropped and counted, not
// failed. The signed amount convention is enforced here: credits >= 0,
// debits <= 0.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no worksheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("worksheet %q: %w", sheets[0], common.ErrEmptySheet)
	}

	columns := resolveColumns(rows[0])
	if _, ok := columns["date"]; !ok {
		return nil, fmt.Errorf("worksheet %q has no recognizable date column", sheets[0])
	}

	var transactions []model.Transaction
	dropped := 0

	for _, row := range rows[1:] {
		txn, ok := parseRow(row, columns)
		if !ok {
			dropped++
			continue
		}
		txn.Hash = txn.GenerateHash()
		transactions = append(transactions, txn)
	}

	if dropped > 0 {
		slog.Warn("Dropped rows without a parseable date",
			"sheet", sheets[0],
			"dropped", dropped)
	}

	slog.Info("Parsed worksheet",
		"sheet", sheets[0],
		"transactions", len(transactions))

	return transactions, nil
}

// resolveColumns maps logical field names to header column indices.
func resolveColumns(header []string) map[string]int {
	columns := make(map[string]int)
	for i, cell := range header {
		normalized := classify.Normalize(strings.TrimSpace(cell))
		for field, aliases := range columnAliases {
			if _, taken := columns[field]; taken {
				continue
			}
			for _, alias := range aliases {
				if normalized == alias {
					columns[field] = i
					break
				}
			}
		}
	}
	return columns
}

func parseRow(row []string, columns map[string]int) (model.Transaction, bool) {
	date, ok := parseDate(cell(row, columns, "date"))
	if !ok {
		return model.Transaction{}, false
	}

	kind := parseKind(cell(row, columns, "kind"))
	amount := math.Abs(parseAmount(cell(row, columns, "amount")))
	if kind == model.Debit {
		amount = -amount
	}

	return model.Transaction{
		Date:        date,
		Company:     strings.TrimSpace(cell(row, columns, "company")),
		Description: strings.TrimSpace(cell(row, columns, "description")),
		Account:     strings.TrimSpace(cell(row, columns, "account")),
		Group:       strings.TrimSpace(cell(row, columns, "group")),
		Subgroup:    strings.TrimSpace(cell(row, columns, "subgroup")),
		Kind:        kind,
		Amount:      amount,
	}, true
}

func cell(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseDate accepts the formats the exports actually produce: slash dates in
// month/day order with two- or four-digit years, ISO dates, the dashed
// rendering excelize gives date-typed cells, and raw Excel serial numbers
// from cells that lost their date style.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	layouts := []string{
		"1/2/06",
		"1/2/2006",
		"2006-01-02",
		"01-02-06",
		"01-02-2006",
	}
	for _, layout := range layouts {
		if date, err := time.Parse(layout, value); err == nil {
			return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		if date, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

func parseKind(value string) model.Kind {
	value = strings.TrimSpace(strings.ToLower(value))
	if strings.HasPrefix(value, "d") {
		return model.Debit
	}
	return model.Credit
}

// parseAmount cleans currency formatting before conversion: the exports use
// a dot decimal separator with commas as thousands separators, optionally
// prefixed with the currency symbol.
func parseAmount(value string) float64 {
	cleaned := strings.NewReplacer("R$", "", " ", "", " ", "", ",", "").Replace(strings.TrimSpace(value))
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return amount
}
