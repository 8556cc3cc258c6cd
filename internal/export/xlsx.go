package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/classify"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/report"
)

// BuildDREXLSX renders the income statement as an XLSX workbook with a
// summary sheet and a monthly sheet, plus a detail sheet when requested.
func BuildDREXLSX(title string, monthly []report.MonthlyDRERow, annual report.AnnualDRERow, detailed bool) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	summarySheet := "Resumo"
	monthlySheet := "Mensal"
	f.SetSheetName(f.GetSheetName(0), summarySheet)
	if _, err := f.NewSheet(monthlySheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	_ = f.SetCellValue(summarySheet, "A1", title)
	summaryRows := []struct {
		label string
		value float64
	}{
		{"Receita de Vendas", annual.SalesRevenue},
		{"Outras Receitas", annual.OtherRevenue},
		{classify.BucketVariableCosts.Label(), -annual.Buckets[classify.BucketVariableCosts]},
		{"Margem de Contribuição", annual.ContributionMargin},
		{classify.BucketPersonnel.Label(), -annual.Buckets[classify.BucketPersonnel]},
		{classify.BucketAdministrative.Label(), -annual.Buckets[classify.BucketAdministrative]},
		{classify.BucketOperational.Label(), -annual.Buckets[classify.BucketOperational]},
		{classify.BucketFinancial.Label(), -annual.Buckets[classify.BucketFinancial]},
		{classify.BucketOther.Label(), -annual.Buckets[classify.BucketOther]},
		{"Resultado Operacional", annual.OperationalResult},
		{"Resultado Líquido", annual.Profit()},
	}
	for i, row := range summaryRows {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+3), row.label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+3), row.value)
	}

	_ = f.SetCellValue(monthlySheet, "A1", "Mês")
	_ = f.SetCellValue(monthlySheet, "B1", "Receita")
	_ = f.SetCellValue(monthlySheet, "C1", "Despesa")
	_ = f.SetCellValue(monthlySheet, "D1", "Resultado")
	for i, row := range monthly {
		r := i + 2
		_ = f.SetCellValue(monthlySheet, fmt.Sprintf("A%d", r), cli.MonthLabel(row.Month))
		_ = f.SetCellValue(monthlySheet, fmt.Sprintf("B%d", r), row.RecognizedRevenue)
		_ = f.SetCellValue(monthlySheet, fmt.Sprintf("C%d", r), row.RecognizedExpense)
		_ = f.SetCellValue(monthlySheet, fmt.Sprintf("D%d", r), row.Profit)
	}

	if detailed {
		if err := writeDetailSheet(f, annual); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeDetailSheet(f *excelize.File, annual report.AnnualDRERow) error {
	sheet := "Detalhado"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	_ = f.SetCellValue(sheet, "A1", "Categoria")
	_ = f.SetCellValue(sheet, "B1", "Grupo")
	_ = f.SetCellValue(sheet, "C1", "Sub-grupo")
	_ = f.SetCellValue(sheet, "D1", "Valor")

	row := 2
	for _, bucket := range classify.ExpenseBuckets {
		drill := annual.Breakdown[bucket]
		if drill == nil {
			continue
		}
		for _, group := range drill.Groups() {
			_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), bucket.Label())
			_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), group.Name)
			_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), group.Total)
			row++
			for _, sub := range group.Subgroups {
				_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), bucket.Label())
				_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), group.Name)
				_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), sub.Name)
				_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), sub.Total)
				row++
			}
		}
	}
	return nil
}
