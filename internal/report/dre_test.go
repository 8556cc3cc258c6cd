package report

import (
	"testing"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/classify"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dreScenario() []model.Transaction {
	return []model.Transaction{
		{Date: date(2024, 1, 15), Group: "Receita de Vendas", Subgroup: "Balcão", Kind: model.Credit, Amount: 1000},
		{Date: date(2024, 1, 20), Group: "Despesas com Pessoal", Subgroup: "Salários", Kind: model.Debit, Amount: -400},
		{Date: date(2024, 1, 22), Group: "Custos Variáveis", Subgroup: "Matéria Prima", Kind: model.Debit, Amount: -100},
	}
}

func TestBuildAnnualDRE_Scenario(t *testing.T) {
	rows := BuildAnnualDRE(dreScenario(), classify.Default(), RevenueTotal)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "2024", row.Year)
	assert.Equal(t, 1000.0, row.SalesRevenue)
	assert.Equal(t, 0.0, row.OtherRevenue)
	assert.Equal(t, 100.0, row.BucketTotal(classify.BucketVariableCosts))
	assert.Equal(t, 900.0, row.ContributionMargin)
	assert.Equal(t, 400.0, row.BucketTotal(classify.BucketPersonnel))
	assert.Equal(t, 500.0, row.OperationalResult)
}

func TestBuildAnnualDRE_BucketExclusivity(t *testing.T) {
	// Every debit lands in exactly one bucket; bucket totals sum to the
	// total expense for any transaction set.
	txns := []model.Transaction{
		{Date: date(2024, 1, 1), Group: "Custos Variáveis", Kind: model.Debit, Amount: -10},
		{Date: date(2024, 2, 1), Group: "Despesas com Pessoal", Kind: model.Debit, Amount: -20},
		{Date: date(2024, 3, 1), Group: "Despesas Administrativas", Kind: model.Debit, Amount: -30},
		{Date: date(2024, 4, 1), Group: "Despesas Operacionais", Kind: model.Debit, Amount: -40},
		{Date: date(2024, 5, 1), Group: "Despesas Financeiras", Kind: model.Debit, Amount: -50},
		{Date: date(2024, 6, 1), Group: "Sem Classificação", Kind: model.Debit, Amount: -60},
		{Date: date(2024, 7, 1), Group: "", Kind: model.Debit, Amount: -70},
		{Date: date(2024, 8, 1), Group: "Despesas Operacionais com Pessoal", Kind: model.Debit, Amount: -80},
	}

	rows := BuildAnnualDRE(txns, classify.Default(), RevenueTotal)
	require.Len(t, rows, 1)
	row := rows[0]

	var bucketSum float64
	for _, b := range classify.ExpenseBuckets {
		bucketSum += row.BucketTotal(b)
	}
	assert.Equal(t, row.TotalExpense, bucketSum)
	assert.Equal(t, 360.0, bucketSum)
	// Empty and unknown groups fall to the other bucket.
	assert.Equal(t, 130.0, row.BucketTotal(classify.BucketOther))
	// Priority order: personnel captured the ambiguous group.
	assert.Equal(t, 100.0, row.BucketTotal(classify.BucketPersonnel))
}

func TestBuildAnnualDRE_OtherRevenueResidual(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 1, 1), Group: "Receita de Vendas", Kind: model.Credit, Amount: 700},
		{Date: date(2024, 1, 2), Group: "Receitas Financeiras", Kind: model.Credit, Amount: 200},
		{Date: date(2024, 1, 3), Group: "Outras Receitas de Venda", Kind: model.Credit, Amount: 100},
	}

	rows := BuildAnnualDRE(txns, classify.Default(), RevenueTotal)
	require.Len(t, rows, 1)
	row := rows[0]

	// "Outras Receitas de Venda" contains both keywords and counts as
	// sales; other revenue is strictly the residual so the total never
	// double counts.
	assert.Equal(t, 800.0, row.SalesRevenue)
	assert.Equal(t, 1000.0, row.TotalRevenue)
	assert.Equal(t, row.TotalRevenue-row.SalesRevenue, row.OtherRevenue)
}

func TestBuildAnnualDRE_SalesMode(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 1, 1), Group: "Receita de Vendas", Kind: model.Credit, Amount: 1000},
		{Date: date(2024, 1, 2), Group: "Receitas Financeiras", Kind: model.Credit, Amount: 300},
		{Date: date(2024, 1, 3), Group: "Custos Variáveis", Kind: model.Debit, Amount: -200},
		{Date: date(2024, 1, 4), Group: "Despesas com Pessoal", Kind: model.Debit, Amount: -100},
		{Date: date(2024, 1, 5), Group: "Saídas Não Operacionais", Kind: model.Debit, Amount: -150},
	}

	total := BuildAnnualDRE(txns, classify.Default(), RevenueTotal)
	require.Len(t, total, 1)
	assert.Equal(t, 1300.0, total[0].RecognizedRevenue)
	assert.Equal(t, 450.0, total[0].RecognizedExpense)
	assert.Equal(t, 1300.0-200.0, total[0].ContributionMargin)
	// 1100 - (100 personnel + 150 non-operating in the operational bucket)
	assert.Equal(t, 850.0, total[0].OperationalResult)

	sales := BuildAnnualDRE(txns, classify.Default(), RevenueSales)
	require.Len(t, sales, 1)
	assert.Equal(t, 1000.0, sales[0].RecognizedRevenue)
	// Non-operating outflow excluded from recognized expense.
	assert.Equal(t, 300.0, sales[0].RecognizedExpense)
	assert.Equal(t, 150.0, sales[0].NonOperatingOutflow)
	assert.Equal(t, 800.0, sales[0].ContributionMargin)
	// Fixed side also drops the excluded outflow: 800 - (250 - 150).
	assert.Equal(t, 700.0, sales[0].OperationalResult)
	assert.Equal(t, sales[0].Profit(), sales[0].OperationalResult)

	// Bucket totals are mode-independent: the outflow still classifies.
	assert.Equal(t, total[0].Buckets, sales[0].Buckets)
}

func TestBuildAnnualDRE_Drilldown(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 1, 1), Group: "Despesas com Pessoal", Subgroup: "Salários", Kind: model.Debit, Amount: -400},
		{Date: date(2024, 1, 2), Group: "Despesas com Pessoal", Subgroup: "Benefícios", Kind: model.Debit, Amount: -100},
		{Date: date(2024, 1, 3), Group: "Encargos de Pessoal", Subgroup: "INSS", Kind: model.Debit, Amount: -50},
		{Date: date(2024, 1, 4), Group: "Despesas com Pessoal", Subgroup: "Salários", Kind: model.Debit, Amount: -200},
	}

	rows := BuildAnnualDRE(txns, classify.Default(), RevenueTotal)
	require.Len(t, rows, 1)

	breakdown := rows[0].Breakdown[classify.BucketPersonnel]
	require.NotNil(t, breakdown)
	groups := breakdown.Groups()
	require.Len(t, groups, 2)

	// First-insertion order at both levels.
	assert.Equal(t, "Despesas com Pessoal", groups[0].Name)
	assert.Equal(t, 700.0, groups[0].Total)
	require.Len(t, groups[0].Subgroups, 2)
	assert.Equal(t, SubgroupBreakdown{Name: "Salários", Total: 600}, groups[0].Subgroups[0])
	assert.Equal(t, SubgroupBreakdown{Name: "Benefícios", Total: 100}, groups[0].Subgroups[1])

	assert.Equal(t, "Encargos de Pessoal", groups[1].Name)
	assert.Equal(t, 50.0, groups[1].Total)

	assert.Equal(t, rows[0].BucketTotal(classify.BucketPersonnel), breakdown.Total())
}

func TestBuildMonthlyDRE(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2023, 12, 10), Group: "Receita de Vendas", Kind: model.Credit, Amount: 500},
		{Date: date(2024, 1, 15), Group: "Receita de Vendas", Kind: model.Credit, Amount: 1000},
		{Date: date(2024, 1, 18), Group: "Receitas Financeiras", Kind: model.Credit, Amount: 200},
		{Date: date(2024, 1, 20), Group: "Despesas com Pessoal", Kind: model.Debit, Amount: -400},
	}

	rows := BuildMonthlyDRE(txns, classify.Default(), RevenueTotal)
	require.Len(t, rows, 2)

	assert.Equal(t, "2023-12", rows[0].Month)
	assert.Equal(t, 500.0, rows[0].SalesRevenue)

	jan := rows[1]
	assert.Equal(t, "2024-01", jan.Month)
	assert.Equal(t, 1000.0, jan.SalesRevenue)
	assert.Equal(t, 200.0, jan.OtherRevenue)
	assert.Equal(t, 1200.0, jan.TotalRevenue)
	assert.Equal(t, 400.0, jan.TotalExpense)
	assert.Equal(t, 800.0, jan.Profit)
}

func TestBuildMonthlyDRE_SalesMode(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 1, 15), Group: "Receita de Vendas", Kind: model.Credit, Amount: 1000},
		{Date: date(2024, 1, 18), Group: "Receitas Financeiras", Kind: model.Credit, Amount: 200},
		{Date: date(2024, 1, 20), Group: "Despesas com Pessoal", Kind: model.Debit, Amount: -400},
		{Date: date(2024, 1, 25), Group: "Saída Não Operacional", Kind: model.Debit, Amount: -100},
	}

	rows := BuildMonthlyDRE(txns, classify.Default(), RevenueSales)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 1000.0, row.RecognizedRevenue)
	assert.Equal(t, 400.0, row.RecognizedExpense)
	assert.Equal(t, 600.0, row.Profit)
	// Raw totals stay visible alongside the recognized ones.
	assert.Equal(t, 1200.0, row.TotalRevenue)
	assert.Equal(t, 500.0, row.TotalExpense)
}

func TestBuildDRE_Empty(t *testing.T) {
	assert.Empty(t, BuildMonthlyDRE(nil, classify.Default(), RevenueTotal))
	assert.Empty(t, BuildAnnualDRE(nil, classify.Default(), RevenueTotal))
}

func TestRevenueMode_Valid(t *testing.T) {
	assert.True(t, RevenueTotal.Valid())
	assert.True(t, RevenueSales.Valid())
	assert.False(t, RevenueMode("vendas").Valid())
}
