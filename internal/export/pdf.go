// Package export renders reports as PDF and XLSX documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/classify"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/report"
)

// BuildDREPDF renders the income statement as a PDF. The monthly table is
// always included; detailed adds the per-bucket group and subgroup
// breakdown.
func BuildDREPDF(title string, monthly []report.MonthlyDRERow, annual report.AnnualDRERow, detailed bool) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, tr(title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(30, 6, tr("Mês"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, tr("Receita"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, tr("Despesa"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, tr("Resultado"), "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range monthly {
		pdf.CellFormat(30, 6, cli.MonthLabel(row.Month), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, tr(cli.Currency(row.RecognizedRevenue)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, tr(cli.Currency(row.RecognizedExpense)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, tr(cli.Currency(row.Profit)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, tr("Resultado do Exercício"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	writeAnnualLine(pdf, tr, "Receita de Vendas", annual.SalesRevenue)
	writeAnnualLine(pdf, tr, "Outras Receitas", annual.OtherRevenue)
	writeAnnualLine(pdf, tr, classify.BucketVariableCosts.Label(), -annual.Buckets[classify.BucketVariableCosts])
	writeAnnualLine(pdf, tr, "Margem de Contribuição", annual.ContributionMargin)
	for _, bucket := range classify.ExpenseBuckets {
		if bucket == classify.BucketVariableCosts {
			continue
		}
		writeAnnualLine(pdf, tr, bucket.Label(), -annual.Buckets[bucket])
	}
	writeAnnualLine(pdf, tr, "Resultado Operacional", annual.OperationalResult)
	writeAnnualLine(pdf, tr, "Resultado Líquido", annual.Profit())

	if detailed {
		writeBreakdown(pdf, tr, annual)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeAnnualLine(pdf *gofpdf.Fpdf, tr func(string) string, label string, value float64) {
	pdf.CellFormat(110, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(70, 6, tr(cli.Currency(value)), "", 0, "R", false, 0, "")
	pdf.Ln(-1)
}

// writeBreakdown emits the group and subgroup detail under each expense
// bucket, in statement order.
func writeBreakdown(pdf *gofpdf.Fpdf, tr func(string) string, annual report.AnnualDRERow) {
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, tr("Detalhamento"))
	pdf.Ln(10)

	for _, bucket := range classify.ExpenseBuckets {
		drill := annual.Breakdown[bucket]
		if drill == nil || drill.Len() == 0 {
			continue
		}

		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, tr(bucket.Label()))
		pdf.Ln(6)

		pdf.SetFont("Arial", "", 10)
		for _, group := range drill.Groups() {
			pdf.CellFormat(110, 5, tr("  "+group.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(70, 5, tr(cli.Currency(group.Total)), "", 0, "R", false, 0, "")
			pdf.Ln(-1)
			for _, sub := range group.Subgroups {
				pdf.CellFormat(110, 5, tr("    "+sub.Name), "", 0, "L", false, 0, "")
				pdf.CellFormat(70, 5, tr(cli.Currency(sub.Total)), "", 0, "R", false, 0, "")
				pdf.Ln(-1)
			}
		}
		pdf.Ln(2)
	}
}
