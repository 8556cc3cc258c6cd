package classify

import "strings"

// Bucket is one of the mutually exclusive expense categories of the income
// statement (DRE).
type Bucket string

// Expense buckets, in income-statement display order.
const (
	BucketVariableCosts  Bucket = "variable_costs"
	BucketPersonnel      Bucket = "personnel"
	BucketAdministrative Bucket = "administrative"
	BucketOperational    Bucket = "operational"
	BucketFinancial      Bucket = "financial"
	BucketOther          Bucket = "other"
)

// ExpenseBuckets lists all buckets in display order.
var ExpenseBuckets = []Bucket{
	BucketVariableCosts,
	BucketPersonnel,
	BucketAdministrative,
	BucketOperational,
	BucketFinancial,
	BucketOther,
}

// Label returns the human-readable income-statement label for a bucket.
func (b Bucket) Label() string {
	switch b {
	case BucketVariableCosts:
		return "Custos Variáveis"
	case BucketPersonnel:
		return "Despesas com Pessoal"
	case BucketAdministrative:
		return "Despesas Administrativas"
	case BucketOperational:
		return "Despesas Operacionais"
	case BucketFinancial:
		return "Despesas Financeiras"
	case BucketOther:
		return "Outras Despesas"
	}
	return string(b)
}

// Rule maps a group whose normalized text contains every keyword to a bucket.
// Rules are evaluated in order; the first match wins.
type Rule struct {
	Name     string
	Bucket   Bucket
	Keywords []string
}

// Matches reports whether the normalized group text satisfies the rule.
func (r Rule) Matches(normalizedGroup string) bool {
	for _, kw := range r.Keywords {
		if !strings.Contains(normalizedGroup, kw) {
			return false
		}
	}
	return true
}

// Classifier assigns transactions to buckets via an ordered rule list.
// Groups matching no rule fall to BucketOther; classification is total and
// never fails.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier with the given ordered rules.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// ExpenseBucket returns the bucket for a debit transaction's group.
func (c *Classifier) ExpenseBucket(group string) Bucket {
	normalized := Normalize(group)
	for _, rule := range c.rules {
		if rule.Matches(normalized) {
			return rule.Bucket
		}
	}
	return BucketOther
}

// IsSalesRevenue reports whether a credit transaction's group counts as
// sales revenue. Everything else on the credit side is "other revenue",
// computed by the aggregators as a residual so reclassification can never
// double count.
func (c *Classifier) IsSalesRevenue(group string) bool {
	normalized := Normalize(group)
	return strings.Contains(normalized, "receita") && strings.Contains(normalized, "venda")
}

// IsNonOperatingOutflow reports whether a debit transaction's group marks a
// non-operating outflow. Sales-mode expense recognition excludes these.
func (c *Classifier) IsNonOperatingOutflow(group string) bool {
	normalized := Normalize(group)
	return strings.Contains(normalized, "saida") && strings.Contains(normalized, "nao operacional")
}
