package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/model"
)

func newFilterCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	addFilterFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestCriteriaFromFlags(t *testing.T) {
	cmd := newFilterCmd(t,
		"--start-date", "2024-01-01",
		"--end-date", "2024-06-30",
		"--companies", "Matriz,Filial",
		"--groups", "Receita de Vendas",
		"--kind", "d",
	)

	criteria, err := criteriaFromFlags(cmd)
	require.NoError(t, err)

	require.NotNil(t, criteria.Start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *criteria.Start)
	require.NotNil(t, criteria.End)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), *criteria.End)
	assert.Equal(t, []string{"Matriz", "Filial"}, criteria.Companies)
	assert.Equal(t, []string{"Receita de Vendas"}, criteria.Groups)
	assert.Equal(t, []model.Kind{model.Debit}, criteria.Kinds)
}

func TestCriteriaFromFlagsDefaults(t *testing.T) {
	cmd := newFilterCmd(t)

	criteria, err := criteriaFromFlags(cmd)
	require.NoError(t, err)
	assert.True(t, criteria.IsZero())
}

func TestCriteriaFromFlagsInvalidDate(t *testing.T) {
	cmd := newFilterCmd(t, "--start-date", "01/02/2024")

	_, err := criteriaFromFlags(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")
}

func TestCriteriaFromFlagsInvalidKind(t *testing.T) {
	cmd := newFilterCmd(t, "--kind", "x")

	_, err := criteriaFromFlags(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid kind")
}
