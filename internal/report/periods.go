package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
)

// Granularity selects how transactions are chunked into comparison periods.
type Granularity string

// Supported period granularities. Bimester, trimester and semester are
// synthetic fixed-size chunks of each calendar year starting at month 1.
const (
	GranularityMonth     Granularity = "month"
	GranularityBimester  Granularity = "bimester"
	GranularityTrimester Granularity = "trimester"
	GranularitySemester  Granularity = "semester"
	GranularityYear      Granularity = "year"
)

// Valid reports whether the granularity is supported.
func (g Granularity) Valid() bool {
	switch g {
	case GranularityMonth, GranularityBimester, GranularityTrimester, GranularitySemester, GranularityYear:
		return true
	}
	return false
}

func (g Granularity) chunkMonths() int {
	switch g {
	case GranularityBimester:
		return 2
	case GranularityTrimester:
		return 3
	case GranularitySemester:
		return 6
	}
	return 0
}

// Period is one comparison bucket with its aggregates and the inclusive day
// span its transactions actually cover. Chunks with no contributing
// transactions are omitted from BuildPeriods output, never zero-filled.
type Period struct {
	Key     string
	Revenue float64
	Expense float64
	Profit  float64
	DaySpan int
	minDate time.Time
	maxDate time.Time
}

// BuildPeriods partitions transactions into periods of the given granularity,
// sorted ascending by key. Keys are lexicographically sortable:
// "2024-03", "2024-B2", "2024-T1", "2024-S1", "2024".
func BuildPeriods(transactions []model.Transaction, granularity Granularity) []Period {
	byKey := make(map[string]*Period)
	var keys []string

	for i := range transactions {
		t := &transactions[i]
		key := periodKey(t.Date, granularity)
		p, ok := byKey[key]
		if !ok {
			p = &Period{Key: key, minDate: t.Date, maxDate: t.Date}
			byKey[key] = p
			keys = append(keys, key)
		}

		if t.Kind == model.Credit {
			p.Revenue += t.AbsAmount()
		} else {
			p.Expense += t.AbsAmount()
		}
		if t.Date.Before(p.minDate) {
			p.minDate = t.Date
		}
		if t.Date.After(p.maxDate) {
			p.maxDate = t.Date
		}
	}

	sort.Strings(keys)
	periods := make([]Period, 0, len(keys))
	for _, key := range keys {
		p := byKey[key]
		p.Profit = p.Revenue - p.Expense
		p.DaySpan = daySpan(p.minDate, p.maxDate)
		periods = append(periods, *p)
	}

	return periods
}

// FindPeriod returns the period with the given key, if present.
func FindPeriod(periods []Period, key string) (Period, bool) {
	for _, p := range periods {
		if p.Key == key {
			return p, true
		}
	}
	return Period{}, false
}

func periodKey(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityYear:
		return date.Format("2006")
	case GranularityBimester:
		return chunkKey(date, "B", 2)
	case GranularityTrimester:
		return chunkKey(date, "T", 3)
	case GranularitySemester:
		return chunkKey(date, "S", 6)
	default:
		return date.Format("2006-01")
	}
}

// chunkKey places a date in its fixed-size chunk of the year: with size 3,
// months 1-3 map to T1, 4-6 to T2 and so on.
func chunkKey(date time.Time, prefix string, size int) string {
	chunk := (int(date.Month())-1)/size + 1
	return fmt.Sprintf("%s-%s%d", date.Format("2006"), prefix, chunk)
}

// daySpan counts inclusive calendar days between two dates.
func daySpan(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours()/24) + 1
}

// ProportionalThreshold is the ratio below which two compared year spans are
// considered unequal enough to warrant proportional adjustment. The value is
// inherited from the source system as-is.
const ProportionalThreshold = 0.8

// VarianceLine compares one metric across two periods.
type VarianceLine struct {
	P1       float64
	P2       float64
	Delta    float64
	DeltaPct float64
}

// Comparison is the variance record between two periods. When Adjusted is
// set, the period named by AdjustedKey had its totals scaled up to the other
// period's day coverage and displays must disclose that.
type Comparison struct {
	Period1     string
	Period2     string
	Revenue     VarianceLine
	Expense     VarianceLine
	Profit      VarianceLine
	Adjusted    bool
	AdjustedKey string
}

// Compare computes absolute and percentage variance between two periods.
// A zero prior value yields a 0 percentage, not an error or infinity.
func Compare(p1, p2 Period) Comparison {
	return Comparison{
		Period1: p1.Key,
		Period2: p2.Key,
		Revenue: variance(p1.Revenue, p2.Revenue),
		Expense: variance(p1.Expense, p2.Expense),
		Profit:  variance(p1.Profit, p2.Profit),
	}
}

// CompareYears compares two year periods, scaling the shorter-covered year
// up to the longer one's day span when coverage is unequal (shorter span
// below ProportionalThreshold of the longer). This yields a like-for-like
// comparison when one year is only partially covered, e.g. year-to-date
// against a full prior year.
func CompareYears(y1, y2 Period) Comparison {
	a, b := y1, y2
	adjusted := false
	adjustedKey := ""

	if a.DaySpan > 0 && b.DaySpan > 0 {
		switch {
		case float64(a.DaySpan) < ProportionalThreshold*float64(b.DaySpan):
			a = scalePeriod(a, float64(b.DaySpan)/float64(a.DaySpan))
			adjusted = true
			adjustedKey = a.Key
		case float64(b.DaySpan) < ProportionalThreshold*float64(a.DaySpan):
			b = scalePeriod(b, float64(a.DaySpan)/float64(b.DaySpan))
			adjusted = true
			adjustedKey = b.Key
		}
	}

	cmp := Compare(a, b)
	cmp.Adjusted = adjusted
	cmp.AdjustedKey = adjustedKey
	return cmp
}

func scalePeriod(p Period, factor float64) Period {
	p.Revenue *= factor
	p.Expense *= factor
	p.Profit = p.Revenue - p.Expense
	return p
}

func variance(prior, current float64) VarianceLine {
	line := VarianceLine{
		P1:    prior,
		P2:    current,
		Delta: current - prior,
	}
	if prior != 0 {
		line.DeltaPct = line.Delta / prior * 100
	}
	return line
}
