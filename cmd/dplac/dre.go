package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/classify"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/common"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/report"
)

func dreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dre",
		Short: "Show the income statement (DRE)",
		Long: `Build the monthly and annual income statement over the stored entries.
Expense groups are classified into statement buckets by keyword rules.

In sales mode only sales revenue is recognized and non-operating outflows
are excluded from recognized expense.`,
		RunE: runDRE,
	}

	addFilterFlags(cmd)
	cmd.Flags().String("revenue-mode", "total", "Revenue recognition: total or sales")
	cmd.Flags().Bool("drill", false, "Show group and subgroup breakdown under each bucket")

	return cmd
}

func runDRE(cmd *cobra.Command, _ []string) error {
	transactions, err := loadFilteredTransactions(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		return common.ErrNoTransactions
	}

	modeStr, _ := cmd.Flags().GetString("revenue-mode")
	mode := report.RevenueMode(modeStr)
	if !mode.Valid() {
		return common.NewUserError(
			fmt.Sprintf("unknown revenue mode %q (use total or sales)", modeStr), common.ErrInvalidConfig)
	}
	drill, _ := cmd.Flags().GetBool("drill")

	classifier := classify.Default()
	monthly := report.BuildMonthlyDRE(transactions, classifier, mode)
	annual := report.BuildAnnualDRE(transactions, classifier, mode)

	fmt.Println(cli.FormatTitle("Demonstrativo de Resultado"))

	table := cli.NewTable("Mês", "Receita", "Despesa", "Resultado")
	for _, row := range monthly {
		table.AddRow(
			cli.MonthLabel(row.Month),
			cli.Currency(row.RecognizedRevenue),
			cli.Currency(row.RecognizedExpense),
			cli.FormatSigned(row.Profit),
		)
	}
	fmt.Println(table.Render())

	for _, year := range annual {
		printAnnualDRE(year, drill)
	}

	return nil
}

func printAnnualDRE(year report.AnnualDRERow, drill bool) {
	fmt.Println(cli.TitleStyle.Render("Exercício " + year.Year))

	table := cli.NewTable("Linha", "Valor")
	table.AddRow("Receita de Vendas", cli.Currency(year.SalesRevenue))
	table.AddRow("Outras Receitas", cli.Currency(year.OtherRevenue))
	table.AddRow("(-) "+classify.BucketVariableCosts.Label(), cli.Currency(-year.BucketTotal(classify.BucketVariableCosts)))
	table.AddRow("Margem de Contribuição", cli.FormatSigned(year.ContributionMargin))
	for _, bucket := range classify.ExpenseBuckets {
		if bucket == classify.BucketVariableCosts {
			continue
		}
		table.AddRow("(-) "+bucket.Label(), cli.Currency(-year.BucketTotal(bucket)))
	}
	table.AddRow("Resultado Operacional", cli.FormatSigned(year.OperationalResult))
	table.AddRow("Resultado Líquido", cli.FormatSigned(year.Profit()))
	fmt.Println(table.Render())

	if !drill {
		return
	}

	for _, bucket := range classify.ExpenseBuckets {
		breakdown := year.Breakdown[bucket]
		if breakdown.Len() == 0 {
			continue
		}

		fmt.Println(cli.SubtleStyle.Render(bucket.Label()))
		detail := cli.NewTable("Grupo / Sub-grupo", "Valor")
		for _, group := range breakdown.Groups() {
			detail.AddRow(group.Name, cli.Currency(group.Total))
			for _, sub := range group.Subgroups {
				detail.AddRow("  "+sub.Name, cli.Currency(sub.Total))
			}
		}
		fmt.Println(detail.Render())
	}
}
