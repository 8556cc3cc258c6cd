package report

import (
	"sort"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
)

// MonthAggregate is one month's revenue and expense totals.
type MonthAggregate struct {
	Month   string
	Revenue float64
	Expense float64
}

// Metric selects which aggregate a ranking orders by.
type Metric string

// Rankable metrics.
const (
	MetricRevenue Metric = "revenue"
	MetricExpense Metric = "expense"
)

// Direction selects ranking order.
type Direction string

// Ranking directions.
const (
	Top    Direction = "top"
	Bottom Direction = "bottom"
)

// BuildMonthAggregates sums revenue and expense per month key, in first-seen
// order.
func BuildMonthAggregates(transactions []model.Transaction) []MonthAggregate {
	byMonth := make(map[string]*MonthAggregate)
	var order []string

	for i := range transactions {
		t := &transactions[i]
		key := t.MonthKey()
		agg, ok := byMonth[key]
		if !ok {
			agg = &MonthAggregate{Month: key}
			byMonth[key] = agg
			order = append(order, key)
		}
		if t.Kind == model.Credit {
			agg.Revenue += t.AbsAmount()
		} else {
			agg.Expense += t.AbsAmount()
		}
	}

	aggregates := make([]MonthAggregate, 0, len(order))
	for _, key := range order {
		aggregates = append(aggregates, *byMonth[key])
	}
	return aggregates
}

// TopMonths ranks month aggregates by metric and direction and returns the
// first limit entries with distinct month keys. Series built per company can
// carry the same month more than once; only the first occurrence after
// sorting survives.
func TopMonths(series []MonthAggregate, metric Metric, direction Direction, limit int) []MonthAggregate {
	sorted := make([]MonthAggregate, len(series))
	copy(sorted, series)

	value := func(m MonthAggregate) float64 {
		if metric == MetricExpense {
			return m.Expense
		}
		return m.Revenue
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == Bottom {
			return value(sorted[i]) < value(sorted[j])
		}
		return value(sorted[i]) > value(sorted[j])
	})

	seen := make(map[string]bool, limit)
	ranked := make([]MonthAggregate, 0, limit)
	for _, m := range sorted {
		if seen[m.Month] {
			continue
		}
		seen[m.Month] = true
		ranked = append(ranked, m)
		if limit > 0 && len(ranked) >= limit {
			break
		}
	}

	return ranked
}
