package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/common"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/report"
)

func kpiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kpi",
		Short: "Show headline indicators for the filtered period",
		Long: `Compute total revenue, total expense, net profit and margin over the
stored entries, plus the monthly revenue and expense series. All filter
flags apply.`,
		RunE: runKPI,
	}

	addFilterFlags(cmd)
	cmd.Flags().Bool("monthly", false, "Also print the monthly revenue and expense series")

	return cmd
}

func runKPI(cmd *cobra.Command, _ []string) error {
	transactions, err := loadFilteredTransactions(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		return common.ErrNoTransactions
	}

	kpi := report.ComputeKPI(transactions)

	fmt.Println(cli.FormatTitle("Indicadores"))

	table := cli.NewTable("Indicador", "Valor")
	table.AddRow("Receita Total", cli.Currency(kpi.TotalRevenue))
	table.AddRow("Despesa Total", cli.Currency(kpi.TotalExpense))
	table.AddRow("Resultado Líquido", cli.Currency(kpi.NetProfit))
	table.AddRow("Margem", cli.Percent(kpi.MarginPct))
	fmt.Println(table.Render())

	if monthly, _ := cmd.Flags().GetBool("monthly"); monthly {
		printMonthlySeries(kpi)
	}

	return nil
}

func printMonthlySeries(kpi report.KPI) {
	revenueByMonth := make(map[string]float64, len(kpi.RevenueByMonth))
	expenseByMonth := make(map[string]float64, len(kpi.ExpenseByMonth))
	monthSet := make(map[string]bool)
	for _, mv := range kpi.RevenueByMonth {
		revenueByMonth[mv.Month] = mv.Value
		monthSet[mv.Month] = true
	}
	for _, mv := range kpi.ExpenseByMonth {
		expenseByMonth[mv.Month] = mv.Value
		monthSet[mv.Month] = true
	}

	months := make([]string, 0, len(monthSet))
	for month := range monthSet {
		months = append(months, month)
	}
	sort.Strings(months)

	table := cli.NewTable("Mês", "Receita", "Despesa")
	for _, month := range months {
		table.AddRow(cli.MonthLabel(month), cli.Currency(revenueByMonth[month]), cli.Currency(expenseByMonth[month]))
	}
	fmt.Println(table.Render())
}
