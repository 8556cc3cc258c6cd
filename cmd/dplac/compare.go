package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/common"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/report"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two periods",
		Long: `Compare revenue, expense and profit across two periods of the chosen
granularity. Without explicit keys the two most recent periods are compared.

Year comparisons scale a partially covered year up to the other's day span,
so a year-to-date total can be compared against a full prior year.

Period keys by granularity:
  month      2024-03
  bimester   2024-B2
  trimester  2024-T1
  semester   2024-S1
  year       2024`,
		RunE: runCompare,
	}

	addFilterFlags(cmd)
	cmd.Flags().String("granularity", "year", "Granularity: month, bimester, trimester, semester or year")
	cmd.Flags().String("p1", "", "First period key (default: second most recent)")
	cmd.Flags().String("p2", "", "Second period key (default: most recent)")

	return cmd
}

func runCompare(cmd *cobra.Command, _ []string) error {
	transactions, err := loadFilteredTransactions(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		return common.ErrNoTransactions
	}

	granStr, _ := cmd.Flags().GetString("granularity")
	granularity := report.Granularity(granStr)
	if !granularity.Valid() {
		return common.NewUserError(
			fmt.Sprintf("unknown granularity %q (use month, bimester, trimester, semester or year)", granStr), common.ErrInvalidConfig)
	}

	periods := report.BuildPeriods(transactions, granularity)
	if len(periods) < 2 {
		return fmt.Errorf("need at least two %s periods to compare, have %d", granStr, len(periods))
	}

	p1, p2, err := pickPeriods(cmd, periods)
	if err != nil {
		return err
	}

	var comparison report.Comparison
	if granularity == report.GranularityYear {
		comparison = report.CompareYears(p1, p2)
	} else {
		comparison = report.Compare(p1, p2)
	}

	printComparison(comparison)
	return nil
}

// pickPeriods resolves the --p1/--p2 keys, defaulting to the two most
// recent periods.
func pickPeriods(cmd *cobra.Command, periods []report.Period) (report.Period, report.Period, error) {
	key1, _ := cmd.Flags().GetString("p1")
	key2, _ := cmd.Flags().GetString("p2")

	if key1 == "" {
		key1 = periods[len(periods)-2].Key
	}
	if key2 == "" {
		key2 = periods[len(periods)-1].Key
	}

	p1, ok := report.FindPeriod(periods, key1)
	if !ok {
		return report.Period{}, report.Period{}, fmt.Errorf("no data for period %q", key1)
	}
	p2, ok := report.FindPeriod(periods, key2)
	if !ok {
		return report.Period{}, report.Period{}, fmt.Errorf("no data for period %q", key2)
	}

	return p1, p2, nil
}

func printComparison(comparison report.Comparison) {
	fmt.Println(cli.FormatTitle(fmt.Sprintf("Comparativo %s × %s", comparison.Period1, comparison.Period2)))

	if comparison.Adjusted {
		fmt.Println(cli.FormatWarning(fmt.Sprintf(
			"Período %s ajustado proporcionalmente pela cobertura de dias", comparison.AdjustedKey)))
	}

	table := cli.NewTable("Métrica", comparison.Period1, comparison.Period2, "Δ", "Δ%")
	addVarianceRow(table, "Receita", comparison.Revenue)
	addVarianceRow(table, "Despesa", comparison.Expense)
	addVarianceRow(table, "Resultado", comparison.Profit)
	fmt.Println(table.Render())
}

func addVarianceRow(table *cli.Table, label string, line report.VarianceLine) {
	table.AddRow(
		label,
		cli.Currency(line.P1),
		cli.Currency(line.P2),
		cli.FormatSigned(line.Delta),
		cli.Percent(line.DeltaPct),
	)
}
