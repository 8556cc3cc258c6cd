// Package insights generates narrative commentary over financial reports
// using the Gemini API.
package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/cli"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/common"
	"github.com/steelplacmaringa-create/dplac-insight-flow/internal/report"
)

// DefaultModelName is the Gemini model used for commentary.
const DefaultModelName = "gemini-2.0-flash"

// Mode selects the depth of the generated commentary.
type Mode string

// Commentary depth modes.
const (
	ModeSummary  Mode = "summary"
	ModeDetailed Mode = "detailed"
)

// Valid reports whether m is a recognized mode.
func (m Mode) Valid() bool {
	return m == ModeSummary || m == ModeDetailed
}

// Analyst produces management commentary from indicator data.
type Analyst struct {
	client *genai.Client
	model  string
}

// NewAnalyst creates an Analyst. Credentials come from the GEMINI_API_KEY
// environment variable, which the genai client reads itself.
func NewAnalyst(ctx context.Context) (*Analyst, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, common.NewUserError("failed to initialize the AI client (set GEMINI_API_KEY)", err)
	}

	return &Analyst{client: client, model: DefaultModelName}, nil
}

// Analyze generates commentary for the given indicators. The response text
// comes back verbatim from the model; an empty response is an error.
func (a *Analyst) Analyze(ctx context.Context, kpi report.KPI, mode Mode) (string, error) {
	if !mode.Valid() {
		return "", common.NewUserError(
			fmt.Sprintf("unknown insight mode %q (use summary or detailed)", mode), common.ErrInvalidConfig)
	}
	if len(kpi.RevenueByMonth) == 0 && len(kpi.ExpenseByMonth) == 0 {
		return "", common.ErrNoTransactions
	}

	prompt := buildPrompt(kpi, mode)

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	var text string
	err := common.WithRetry(ctx, func() error {
		resp, genErr := a.client.Models.GenerateContent(ctx, a.model, contents, nil)
		if genErr != nil {
			return &common.RetryableError{Err: genErr, Retryable: true}
		}
		text = strings.TrimSpace(resp.Text())
		return nil
	}, common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		MaxDelay:     15 * time.Second,
		Multiplier:   2.0,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate insights: %w", err)
	}

	if text == "" {
		return "", common.ErrInsightEmpty
	}

	return text, nil
}

// buildPrompt lays out the indicator summary the model reasons over. The
// commentary is requested in Portuguese to match the reports.
func buildPrompt(kpi report.KPI, mode Mode) string {
	var b strings.Builder

	b.WriteString("Você é um analista financeiro. Analise os indicadores abaixo ")
	b.WriteString("de uma empresa brasileira e escreva um comentário gerencial em português.\n\n")

	b.WriteString("Indicadores do período:\n")
	fmt.Fprintf(&b, "- Receita total: %s\n", cli.Currency(kpi.TotalRevenue))
	fmt.Fprintf(&b, "- Despesa total: %s\n", cli.Currency(kpi.TotalExpense))
	fmt.Fprintf(&b, "- Resultado líquido: %s\n", cli.Currency(kpi.NetProfit))
	fmt.Fprintf(&b, "- Margem: %s\n\n", cli.Percent(kpi.MarginPct))

	if len(kpi.RevenueByMonth) > 0 {
		b.WriteString("Receita por mês:\n")
		for _, mv := range kpi.RevenueByMonth {
			fmt.Fprintf(&b, "- %s: %s\n", cli.MonthLabel(mv.Month), cli.Currency(mv.Value))
		}
		b.WriteString("\n")
	}

	if len(kpi.ExpenseByMonth) > 0 {
		b.WriteString("Despesa por mês:\n")
		for _, mv := range kpi.ExpenseByMonth {
			fmt.Fprintf(&b, "- %s: %s\n", cli.MonthLabel(mv.Month), cli.Currency(mv.Value))
		}
		b.WriteString("\n")
	}

	switch mode {
	case ModeDetailed:
		b.WriteString("Escreva uma análise detalhada: tendências mês a mês, ")
		b.WriteString("meses atípicos, evolução da margem e recomendações práticas. ")
		b.WriteString("Use títulos curtos por seção.\n")
	default:
		b.WriteString("Escreva um resumo executivo de no máximo três parágrafos ")
		b.WriteString("destacando os pontos mais relevantes.\n")
	}

	b.WriteString("Responda apenas com o texto do comentário, sem Markdown.\n")

	return b.String()
}
