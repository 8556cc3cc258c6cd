package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/common"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show what is stored: date range, companies, groups and accounts",
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	dataset, err := store.Dataset(ctx)
	if err != nil {
		return err
	}
	if len(dataset.Transactions) == 0 {
		return common.ErrNoTransactions
	}

	fmt.Println(cli.FormatTitle("Base de Dados"))

	table := cli.NewTable("Campo", "Valor")
	table.AddRow("Entradas", fmt.Sprintf("%d", len(dataset.Transactions)))
	table.AddRow("Período", fmt.Sprintf("%s a %s",
		dataset.Start.Format("2006-01-02"), dataset.End.Format("2006-01-02")))
	table.AddRow("Empresas", strings.Join(dataset.Companies, ", "))
	table.AddRow("Grupos", fmt.Sprintf("%d", len(dataset.Groups)))
	table.AddRow("Sub-grupos", fmt.Sprintf("%d", len(dataset.Subgroups)))
	table.AddRow("Contas", fmt.Sprintf("%d", len(dataset.Accounts)))
	fmt.Println(table.Render())

	return nil
}
