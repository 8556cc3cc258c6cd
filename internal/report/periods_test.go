package report

import (
	"testing"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPeriods_Months(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 2, 10), Kind: model.Credit, Amount: 300},
		{Date: date(2024, 1, 5), Kind: model.Credit, Amount: 100},
		{Date: date(2024, 1, 20), Kind: model.Debit, Amount: -40},
	}

	periods := BuildPeriods(txns, GranularityMonth)
	require.Len(t, periods, 2)

	jan := periods[0]
	assert.Equal(t, "2024-01", jan.Key)
	assert.Equal(t, 100.0, jan.Revenue)
	assert.Equal(t, 40.0, jan.Expense)
	assert.Equal(t, 60.0, jan.Profit)
	assert.Equal(t, 16, jan.DaySpan, "inclusive day count from Jan 5 to Jan 20")

	assert.Equal(t, "2024-02", periods[1].Key)
}

func TestBuildPeriods_SyntheticChunks(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 1, 10), Kind: model.Credit, Amount: 1},  // B1, T1, S1
		{Date: date(2024, 2, 10), Kind: model.Credit, Amount: 2},  // B1, T1, S1
		{Date: date(2024, 3, 10), Kind: model.Credit, Amount: 4},  // B2, T1, S1
		{Date: date(2024, 7, 10), Kind: model.Credit, Amount: 8},  // B4, T3, S2
		{Date: date(2024, 12, 10), Kind: model.Credit, Amount: 16}, // B6, T4, S2
	}

	tests := []struct {
		name        string
		granularity Granularity
		want        map[string]float64
	}{
		{
			"bimester",
			GranularityBimester,
			map[string]float64{"2024-B1": 3, "2024-B2": 4, "2024-B4": 8, "2024-B6": 16},
		},
		{
			"trimester",
			GranularityTrimester,
			map[string]float64{"2024-T1": 7, "2024-T3": 8, "2024-T4": 16},
		},
		{
			"semester",
			GranularitySemester,
			map[string]float64{"2024-S1": 7, "2024-S2": 24},
		},
		{
			"year",
			GranularityYear,
			map[string]float64{"2024": 31},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := BuildPeriods(txns, tt.granularity)
			// Chunks with no transactions are omitted, not zero-filled.
			require.Len(t, periods, len(tt.want))
			for _, p := range periods {
				assert.Equal(t, tt.want[p.Key], p.Revenue, p.Key)
			}
			// Ascending key order.
			for i := 1; i < len(periods); i++ {
				assert.Less(t, periods[i-1].Key, periods[i].Key)
			}
		})
	}
}

func TestFindPeriod(t *testing.T) {
	periods := []Period{{Key: "2024-01"}, {Key: "2024-02"}}

	p, ok := FindPeriod(periods, "2024-02")
	assert.True(t, ok)
	assert.Equal(t, "2024-02", p.Key)

	_, ok = FindPeriod(periods, "2024-03")
	assert.False(t, ok)
}

func TestCompare(t *testing.T) {
	p1 := Period{Key: "2024-01", Revenue: 1000, Expense: 400, Profit: 600}
	p2 := Period{Key: "2024-02", Revenue: 1200, Expense: 300, Profit: 900}

	cmp := Compare(p1, p2)

	assert.Equal(t, "2024-01", cmp.Period1)
	assert.Equal(t, "2024-02", cmp.Period2)
	assert.Equal(t, VarianceLine{P1: 1000, P2: 1200, Delta: 200, DeltaPct: 20}, cmp.Revenue)
	assert.Equal(t, VarianceLine{P1: 400, P2: 300, Delta: -100, DeltaPct: -25}, cmp.Expense)
	assert.Equal(t, VarianceLine{P1: 600, P2: 900, Delta: 300, DeltaPct: 50}, cmp.Profit)
	assert.False(t, cmp.Adjusted)
}

func TestCompare_ZeroPriorYieldsZeroPct(t *testing.T) {
	p1 := Period{Key: "2024-01"}
	p2 := Period{Key: "2024-02", Revenue: 500, Profit: 500}

	cmp := Compare(p1, p2)

	assert.Equal(t, 0.0, cmp.Revenue.DeltaPct)
	assert.Equal(t, 500.0, cmp.Revenue.Delta)
	assert.Equal(t, 0.0, cmp.Expense.DeltaPct)
}

func TestCompareYears_ProportionalAdjustment(t *testing.T) {
	// Year A covers 30 days, year B covers 365: A scales by 365/30.
	a := Period{Key: "2024", Revenue: 300, Expense: 30, Profit: 270, DaySpan: 30}
	b := Period{Key: "2023", Revenue: 3650, Expense: 365, Profit: 3285, DaySpan: 365}

	cmp := CompareYears(b, a)

	assert.True(t, cmp.Adjusted)
	assert.Equal(t, "2024", cmp.AdjustedKey)
	assert.InDelta(t, 300.0/30.0*365.0, cmp.Revenue.P2, 0.001)
	assert.InDelta(t, 30.0/30.0*365.0, cmp.Expense.P2, 0.001)
	// Unscaled side untouched.
	assert.Equal(t, 3650.0, cmp.Revenue.P1)
}

func TestCompareYears_NoAdjustmentForSimilarSpans(t *testing.T) {
	a := Period{Key: "2023", Revenue: 1000, DaySpan: 360}
	b := Period{Key: "2024", Revenue: 1100, DaySpan: 365}

	cmp := CompareYears(a, b)

	assert.False(t, cmp.Adjusted)
	assert.Empty(t, cmp.AdjustedKey)
	assert.Equal(t, 1000.0, cmp.Revenue.P1)
	assert.Equal(t, 1100.0, cmp.Revenue.P2)
}

func TestCompareYears_ThresholdBoundary(t *testing.T) {
	// Exactly at 80% coverage no adjustment fires; just below it does.
	at := Period{Key: "2024", Revenue: 100, DaySpan: 292} // 292 = 0.8 * 365
	full := Period{Key: "2023", Revenue: 100, DaySpan: 365}
	assert.False(t, CompareYears(full, at).Adjusted)

	below := Period{Key: "2024", Revenue: 100, DaySpan: 291}
	assert.True(t, CompareYears(full, below).Adjusted)
}

func TestCompareYears_ZeroSpanSkipsAdjustment(t *testing.T) {
	a := Period{Key: "2023", Revenue: 100, DaySpan: 0}
	b := Period{Key: "2024", Revenue: 200, DaySpan: 365}

	cmp := CompareYears(a, b)
	assert.False(t, cmp.Adjusted)
}
