package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/common"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/report"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show totals by group, subgroup or company",
		Long: `Sum absolute amounts per classification dimension and list the totals
in descending order. Use --expenses-only for the top expense subgroups.`,
		RunE: runCategories,
	}

	addFilterFlags(cmd)
	cmd.Flags().String("by", "group", "Dimension: group, subgroup or company")
	cmd.Flags().Int("top", 0, "Limit output to the N largest totals (0 = all)")
	cmd.Flags().Bool("expenses-only", false, "Rank only debit entries by subgroup")

	return cmd
}

func runCategories(cmd *cobra.Command, _ []string) error {
	transactions, err := loadFilteredTransactions(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		return common.ErrNoTransactions
	}

	top, _ := cmd.Flags().GetInt("top")

	if expensesOnly, _ := cmd.Flags().GetBool("expenses-only"); expensesOnly {
		totals := report.TopExpenses(transactions, top)
		printCategoryTable("Maiores Despesas", totals)
		return nil
	}

	byStr, _ := cmd.Flags().GetString("by")
	dimension := report.Dimension(byStr)
	switch dimension {
	case report.DimensionGroup, report.DimensionSubgroup, report.DimensionCompany:
	default:
		return common.NewUserError(
			fmt.Sprintf("unknown dimension %q (use group, subgroup or company)", byStr), common.ErrInvalidConfig)
	}

	totals := report.GroupByDimension(transactions, dimension)
	if top > 0 && top < len(totals) {
		totals = totals[:top]
	}

	printCategoryTable("Totais por "+byStr, totals)
	return nil
}

func printCategoryTable(title string, totals []report.CategoryTotal) {
	fmt.Println(cli.FormatTitle(title))

	table := cli.NewTable("Categoria", "Valor")
	for _, entry := range totals {
		table.AddRow(entry.Name, cli.Currency(entry.Value))
	}
	fmt.Println(table.Render())
}
