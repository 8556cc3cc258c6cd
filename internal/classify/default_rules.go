package classify

// DefaultRules is the ordered rule set for Brazilian bookkeeping exports.
// Keywords are stored unaccented; Normalize strips diacritics before
// matching, so "Custos Variáveis" and "Custos Variaveis" both hit the
// variable-costs rule. Order matters: "Despesas Operacionais" must not be
// captured by a later rule, and anything unmatched falls to BucketOther.
var DefaultRules = []Rule{
	{
		Name:     "variable costs",
		Bucket:   BucketVariableCosts,
		Keywords: []string{"custo", "varia"},
	},
	{
		Name:     "personnel expenses",
		Bucket:   BucketPersonnel,
		Keywords: []string{"pessoal"},
	},
	{
		Name:     "administrative expenses",
		Bucket:   BucketAdministrative,
		Keywords: []string{"administrat"},
	},
	{
		Name:     "operational expenses",
		Bucket:   BucketOperational,
		Keywords: []string{"operacion"},
	},
	{
		Name:     "financial expenses",
		Bucket:   BucketFinancial,
		Keywords: []string{"financeira"},
	},
}

// Default returns a classifier configured with DefaultRules.
func Default() *Classifier {
	return NewClassifier(DefaultRules)
}
