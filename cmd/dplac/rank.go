package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/common"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/report"
)

func rankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank months by revenue or expense",
		Long: `List the best or worst months by total revenue or total expense.

Examples:
  # Three strongest revenue months
  dplac rank --metric revenue --limit 3

  # Worst expense months of 2024
  dplac rank --metric expense --direction bottom -s 2024-01-01 -e 2024-12-31`,
		RunE: runRank,
	}

	addFilterFlags(cmd)
	cmd.Flags().String("metric", "revenue", "Metric: revenue or expense")
	cmd.Flags().String("direction", "top", "Direction: top or bottom")
	cmd.Flags().Int("limit", 5, "Number of months to list")

	return cmd
}

func runRank(cmd *cobra.Command, _ []string) error {
	transactions, err := loadFilteredTransactions(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		return common.ErrNoTransactions
	}

	metricStr, _ := cmd.Flags().GetString("metric")
	metric := report.Metric(metricStr)
	if metric != report.MetricRevenue && metric != report.MetricExpense {
		return common.NewUserError(
			fmt.Sprintf("unknown metric %q (use revenue or expense)", metricStr), common.ErrInvalidConfig)
	}

	directionStr, _ := cmd.Flags().GetString("direction")
	direction := report.Direction(directionStr)
	if direction != report.Top && direction != report.Bottom {
		return common.NewUserError(
			fmt.Sprintf("unknown direction %q (use top or bottom)", directionStr), common.ErrInvalidConfig)
	}

	limit, _ := cmd.Flags().GetInt("limit")

	series := report.BuildMonthAggregates(transactions)
	ranked := report.TopMonths(series, metric, direction, limit)

	fmt.Println(cli.FormatTitle("Ranking de Meses"))

	table := cli.NewTable("#", "Mês", "Receita", "Despesa")
	for i, month := range ranked {
		table.AddRow(
			fmt.Sprintf("%d", i+1),
			cli.MonthLabel(month.Month),
			cli.Currency(month.Revenue),
			cli.Currency(month.Expense),
		)
	}
	fmt.Println(table.Render())

	return nil
}
