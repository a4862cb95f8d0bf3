package adapters

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finflow/backend/internal/application/adapter"
)

func TestGeminiService_IsAvailable(t *testing.T) {
	assert.False(t, NewGeminiService("", "").IsAvailable())
	assert.True(t, NewGeminiService("key", "").IsAvailable())
	assert.Equal(t, defaultGeminiModel, NewGeminiService("key", "").modelName)
}

func TestGeminiService_SuggestWithoutKey(t *testing.T) {
	_, err := NewGeminiService("", "").Suggest(context.Background(), &adapter.InsightRequest{})
	assert.Error(t, err)
}

func TestBuildInsightPrompt(t *testing.T) {
	prompt := buildInsightPrompt(&adapter.InsightRequest{
		JobTitle:                 "Teacher",
		EducationLevel:           "Master's",
		MonthCount:               decimal.RequireFromString("1.1"),
		MonthlyIncome:            decimal.NewFromInt(5000),
		NormalizedMonthlyExpense: decimal.RequireFromString("1363.64"),
		MonthlySurplus:           decimal.RequireFromString("3636.36"),
		SavingsRatePct:           decimal.RequireFromString("72.7"),
		MonthlyEMI:               decimal.NewFromInt(300),
		LoanInterestRatePct:      decimal.RequireFromString("9.5"),
		TopExpenses: []adapter.SpendItem{
			{Description: "Landlord", MonthlyAmount: decimal.NewFromInt(900)},
			{Category: "Food", MonthlyAmount: decimal.NewFromInt(250)},
		},
	})

	for _, want := range []string{
		"Teacher", "Master's", "1.1 months", "Income: 5000", "expense: 1364",
		"surplus (negative is a deficit): 3636", "72.7%", "EMI: 300 at 9.5%",
		"- Landlord: 900", "- Food: 250", "JSON array",
	} {
		assert.Contains(t, prompt, want)
	}
}

func TestParseSuggestions(t *testing.T) {
	t.Run("fenced json", func(t *testing.T) {
		got, err := parseSuggestions("```json\n[\"- Cook at home\", \"  \", \"* Automate savings\", \"Review subscriptions\", \"Extra\"]\n```")
		require.NoError(t, err)
		assert.Equal(t, []string{"Cook at home", "Automate savings", "Review subscriptions"}, got)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := parseSuggestions("Cook at home")
		assert.Error(t, err)
	})
}

func TestResponseText(t *testing.T) {
	_, err := responseText(nil)
	assert.Error(t, err)

	_, err = responseText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}})
	assert.Error(t, err)

	text, err := responseText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text(`["a"]`)}},
	}}})
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, text)
}
