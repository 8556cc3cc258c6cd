package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/common"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/insights"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/report"
)

func insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Generate management commentary with Gemini",
		Long: `Send the period's indicators to the Gemini API and print the generated
management commentary in Portuguese.

Requires the GEMINI_API_KEY environment variable.`,
		RunE: runInsights,
	}

	addFilterFlags(cmd)
	cmd.Flags().String("mode", "summary", "Commentary depth: summary or detailed")

	return cmd
}

func runInsights(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	transactions, err := loadFilteredTransactions(ctx, cmd)
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		return common.ErrNoTransactions
	}

	modeStr, _ := cmd.Flags().GetString("mode")

	analyst, err := insights.NewAnalyst(ctx)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle("Análise Gerencial"))
	fmt.Println(cli.SubtleStyle.Render("Gerando comentário..."))

	commentary, err := analyst.Analyze(ctx, report.ComputeKPI(transactions), insights.Mode(modeStr))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(commentary)
	return nil
}
