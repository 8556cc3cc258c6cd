package report

import (
	"sort"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/classify"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
)

// RevenueMode selects which revenue the income statement recognizes.
type RevenueMode string

// Revenue-recognition modes. In sales mode only sales revenue counts and
// non-operating outflows are excluded from recognized expense.
const (
	RevenueTotal RevenueMode = "total"
	RevenueSales RevenueMode = "sales"
)

// Valid reports whether the mode is one of the supported values.
func (m RevenueMode) Valid() bool {
	return m == RevenueTotal || m == RevenueSales
}

// MonthlyDRERow is one month of the synthetic income statement. The monthly
// view is deliberately coarser than the annual one: revenue split, total
// expense and profit only, no bucket breakdown.
type MonthlyDRERow struct {
	Month               string
	SalesRevenue        float64
	OtherRevenue        float64
	TotalRevenue        float64
	TotalExpense        float64
	NonOperatingOutflow float64
	RecognizedRevenue   float64
	RecognizedExpense   float64
	Profit              float64
}

// AnnualDRERow is one year of the full income statement, with per-bucket
// totals, drill-down breakdowns and derived margins.
type AnnualDRERow struct {
	Year                string
	SalesRevenue        float64
	OtherRevenue        float64
	TotalRevenue        float64
	TotalExpense        float64
	NonOperatingOutflow float64
	RecognizedRevenue   float64
	RecognizedExpense   float64
	ContributionMargin  float64
	OperationalResult   float64
	Buckets             map[classify.Bucket]float64
	Breakdown           map[classify.Bucket]*Drilldown
}

// BucketTotal returns the accumulated total for a bucket.
func (r *AnnualDRERow) BucketTotal(b classify.Bucket) float64 {
	return r.Buckets[b]
}

// Profit returns the recognized net result for the year.
func (r *AnnualDRERow) Profit() float64 {
	return r.RecognizedRevenue - r.RecognizedExpense
}

// BuildMonthlyDRE computes the monthly income statement rows, ascending by
// month key.
func BuildMonthlyDRE(transactions []model.Transaction, classifier *classify.Classifier, mode RevenueMode) []MonthlyDRERow {
	byMonth := make(map[string]*MonthlyDRERow)
	var keys []string

	for i := range transactions {
		t := &transactions[i]
		key := t.MonthKey()
		row, ok := byMonth[key]
		if !ok {
			row = &MonthlyDRERow{Month: key}
			byMonth[key] = row
			keys = append(keys, key)
		}

		if t.Kind == model.Credit {
			if classifier.IsSalesRevenue(t.Group) {
				row.SalesRevenue += t.AbsAmount()
			}
			row.TotalRevenue += t.AbsAmount()
		} else {
			row.TotalExpense += t.AbsAmount()
			if classifier.IsNonOperatingOutflow(t.Group) {
				row.NonOperatingOutflow += t.AbsAmount()
			}
		}
	}

	sort.Strings(keys)
	rows := make([]MonthlyDRERow, 0, len(keys))
	for _, key := range keys {
		row := byMonth[key]
		// Other revenue is the residual of total minus sales, never an
		// independently accumulated category.
		row.OtherRevenue = row.TotalRevenue - row.SalesRevenue
		row.RecognizedRevenue, row.RecognizedExpense = recognize(mode,
			row.TotalRevenue, row.SalesRevenue, row.TotalExpense, row.NonOperatingOutflow)
		row.Profit = row.RecognizedRevenue - row.RecognizedExpense
		rows = append(rows, *row)
	}

	return rows
}

// BuildAnnualDRE computes the full income statement per year, ascending by
// year.
func BuildAnnualDRE(transactions []model.Transaction, classifier *classify.Classifier, mode RevenueMode) []AnnualDRERow {
	byYear := make(map[string]*AnnualDRERow)
	var years []string

	for i := range transactions {
		t := &transactions[i]
		key := t.YearKey()
		row, ok := byYear[key]
		if !ok {
			row = &AnnualDRERow{
				Year:      key,
				Buckets:   make(map[classify.Bucket]float64),
				Breakdown: make(map[classify.Bucket]*Drilldown),
			}
			byYear[key] = row
			years = append(years, key)
		}

		if t.Kind == model.Credit {
			if classifier.IsSalesRevenue(t.Group) {
				row.SalesRevenue += t.AbsAmount()
			}
			row.TotalRevenue += t.AbsAmount()
			continue
		}

		bucket := classifier.ExpenseBucket(t.Group)
		row.Buckets[bucket] += t.AbsAmount()
		row.TotalExpense += t.AbsAmount()
		if classifier.IsNonOperatingOutflow(t.Group) {
			row.NonOperatingOutflow += t.AbsAmount()
		}

		breakdown, ok := row.Breakdown[bucket]
		if !ok {
			breakdown = NewDrilldown()
			row.Breakdown[bucket] = breakdown
		}
		breakdown.Add(t.Group, t.Subgroup, t.AbsAmount())
	}

	sort.Strings(years)
	rows := make([]AnnualDRERow, 0, len(years))
	for _, year := range years {
		row := byYear[year]
		row.OtherRevenue = row.TotalRevenue - row.SalesRevenue
		row.RecognizedRevenue, row.RecognizedExpense = recognize(mode,
			row.TotalRevenue, row.SalesRevenue, row.TotalExpense, row.NonOperatingOutflow)

		row.ContributionMargin = row.RecognizedRevenue - row.Buckets[classify.BucketVariableCosts]

		fixed := row.Buckets[classify.BucketPersonnel] +
			row.Buckets[classify.BucketAdministrative] +
			row.Buckets[classify.BucketOperational] +
			row.Buckets[classify.BucketFinancial] +
			row.Buckets[classify.BucketOther]
		if mode == RevenueSales {
			fixed -= row.NonOperatingOutflow
		}
		row.OperationalResult = row.ContributionMargin - fixed

		rows = append(rows, *row)
	}

	return rows
}

// recognize applies the revenue-mode switch to raw totals.
func recognize(mode RevenueMode, totalRevenue, salesRevenue, totalExpense, nonOperating float64) (revenue, expense float64) {
	if mode == RevenueSales {
		return salesRevenue, totalExpense - nonOperating
	}
	return totalRevenue, totalExpense
}
