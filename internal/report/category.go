package report

import (
	"sort"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
)

// Dimension selects the classification field category totals group by.
type Dimension string

// Supported grouping dimensions.
const (
	DimensionGroup    Dimension = "group"
	DimensionSubgroup Dimension = "subgroup"
	DimensionCompany  Dimension = "company"
)

// CategoryTotal is one ranked entry of a category breakdown.
type CategoryTotal struct {
	Name  string
	Value float64
}

// GroupByDimension sums absolute amounts per dimension value and returns the
// totals sorted descending by value. Ties keep first-seen input order; an
// empty dimension value is skipped. Callers slice the result for "top N".
func GroupByDimension(transactions []model.Transaction, dimension Dimension) []CategoryTotal {
	totals := make(map[string]float64)
	var order []string

	for i := range transactions {
		t := &transactions[i]
		key := dimensionValue(t, dimension)
		if key == "" {
			continue
		}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += t.AbsAmount()
	}

	ranked := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, CategoryTotal{Name: name, Value: totals[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	return ranked
}

// TopExpenses ranks debit transactions by subgroup and returns the first
// limit entries.
func TopExpenses(transactions []model.Transaction, limit int) []CategoryTotal {
	expenses := Filter(transactions, Criteria{Kinds: []model.Kind{model.Debit}})
	ranked := GroupByDimension(expenses, DimensionSubgroup)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func dimensionValue(t *model.Transaction, dimension Dimension) string {
	switch dimension {
	case DimensionSubgroup:
		return t.Subgroup
	case DimensionCompany:
		return t.Company
	default:
		return t.Group
	}
}
