package model

import "time"

// Dataset is the normalizer output consumed by the reporting engines: the
// ordered transaction list plus the distinct-value indices and overall date
// range the filter UI needs. Indices preserve first-seen order.
type Dataset struct {
	Start        time.Time
	End          time.Time
	Companies    []string
	Groups       []string
	Subgroups    []string
	Accounts     []string
	Transactions []Transaction
}

// NewDataset derives the index lists and date range from a transaction list.
func NewDataset(transactions []Transaction) *Dataset {
	ds := &Dataset{Transactions: transactions}

	companies := make(map[string]bool)
	groups := make(map[string]bool)
	subgroups := make(map[string]bool)
	accounts := make(map[string]bool)

	for i := range transactions {
		t := &transactions[i]

		if t.Company != "" && !companies[t.Company] {
			companies[t.Company] = true
			ds.Companies = append(ds.Companies, t.Company)
		}
		if t.Group != "" && !groups[t.Group] {
			groups[t.Group] = true
			ds.Groups = append(ds.Groups, t.Group)
		}
		if t.Subgroup != "" && !subgroups[t.Subgroup] {
			subgroups[t.Subgroup] = true
			ds.Subgroups = append(ds.Subgroups, t.Subgroup)
		}
		if t.Account != "" && !accounts[t.Account] {
			accounts[t.Account] = true
			ds.Accounts = append(ds.Accounts, t.Account)
		}

		if ds.Start.IsZero() || t.Date.Before(ds.Start) {
			ds.Start = t.Date
		}
		if ds.End.IsZero() || t.Date.After(ds.End) {
			ds.End = t.Date
		}
	}

	return ds
}
