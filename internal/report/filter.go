// Package report contains the pure aggregation engines: filtering, KPIs,
// category totals, the income-statement (DRE) builder, period comparison and
// month rankings. Every function here is a pure function of its inputs;
// nothing performs I/O and nothing can fail on normalized data.
package report

import (
	"time"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
)

// Criteria is a conjunctive transaction filter. A transaction passes when it
// satisfies every active dimension; within a dimension, membership in the
// allowed-value set suffices. Empty sets and nil date bounds mean
// "no restriction".
type Criteria struct {
	Start     *time.Time
	End       *time.Time
	Companies []string
	Groups    []string
	Subgroups []string
	Accounts  []string
	Kinds     []model.Kind
}

// IsZero reports whether no dimension is active.
func (c Criteria) IsZero() bool {
	return len(c.Companies) == 0 && len(c.Groups) == 0 && len(c.Subgroups) == 0 &&
		len(c.Accounts) == 0 && len(c.Kinds) == 0 && c.Start == nil && c.End == nil
}

// Filter returns the subset of transactions matching the criteria, in input
// order. Unmatched data yields an empty result, never an error.
func Filter(transactions []model.Transaction, criteria Criteria) []model.Transaction {
	if criteria.IsZero() {
		return transactions
	}

	companies := toSet(criteria.Companies)
	groups := toSet(criteria.Groups)
	subgroups := toSet(criteria.Subgroups)
	accounts := toSet(criteria.Accounts)

	kinds := make(map[model.Kind]bool, len(criteria.Kinds))
	for _, k := range criteria.Kinds {
		kinds[k] = true
	}

	matched := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if len(companies) > 0 && !companies[t.Company] {
			continue
		}
		if len(groups) > 0 && !groups[t.Group] {
			continue
		}
		if len(subgroups) > 0 && !subgroups[t.Subgroup] {
			continue
		}
		if len(accounts) > 0 && !accounts[t.Account] {
			continue
		}
		if len(kinds) > 0 && !kinds[t.Kind] {
			continue
		}
		if criteria.Start != nil && t.Date.Before(*criteria.Start) {
			continue
		}
		if criteria.End != nil && t.Date.After(*criteria.End) {
			continue
		}
		matched = append(matched, t)
	}

	return matched
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
