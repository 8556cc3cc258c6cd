package report

import (
	"sort"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
)

// MonthValue is one point of a monthly series, keyed YYYY-MM.
type MonthValue struct {
	Month string
	Value float64
}

// KPI holds the aggregate indicators for a transaction set.
type KPI struct {
	TotalRevenue   float64
	TotalExpense   float64
	NetProfit      float64
	MarginPct      float64
	RevenueByMonth []MonthValue
	ExpenseByMonth []MonthValue
}

// ComputeKPI aggregates revenue, expense, profit and margin over the given
// transactions, plus ascending monthly series per kind. Zero revenue yields
// a margin of 0, not NaN.
func ComputeKPI(transactions []model.Transaction) KPI {
	kpi := KPI{
		RevenueByMonth: []MonthValue{},
		ExpenseByMonth: []MonthValue{},
	}

	revenueByMonth := make(map[string]float64)
	expenseByMonth := make(map[string]float64)

	for i := range transactions {
		t := &transactions[i]
		if t.Kind == model.Credit {
			kpi.TotalRevenue += t.AbsAmount()
			revenueByMonth[t.MonthKey()] += t.AbsAmount()
		} else {
			kpi.TotalExpense += t.AbsAmount()
			expenseByMonth[t.MonthKey()] += t.AbsAmount()
		}
	}

	kpi.NetProfit = kpi.TotalRevenue - kpi.TotalExpense
	if kpi.TotalRevenue > 0 {
		kpi.MarginPct = kpi.NetProfit / kpi.TotalRevenue * 100
	}

	kpi.RevenueByMonth = sortedMonthSeries(revenueByMonth)
	kpi.ExpenseByMonth = sortedMonthSeries(expenseByMonth)

	return kpi
}

func sortedMonthSeries(byMonth map[string]float64) []MonthValue {
	series := make([]MonthValue, 0, len(byMonth))
	for month, value := range byMonth {
		series = append(series, MonthValue{Month: month, Value: value})
	}
	// Month keys sort lexicographically into chronological order.
	sort.Slice(series, func(i, j int) bool {
		return series[i].Month < series[j].Month
	})
	return series
}
