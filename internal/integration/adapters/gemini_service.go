package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/finflow/backend/internal/application/adapter"
)

const (
	defaultGeminiModel = "gemini-2.5-flash-lite"
	maxSuggestions     = 3
)

// GeminiService implements the adapter.InsightGenerator using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest asks Gemini for saving suggestions.
func (s *GeminiService) Suggest(ctx context.Context, request *adapter.InsightRequest) ([]string, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildInsightPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return parseSuggestions(text)
}

// buildInsightPrompt creates the prompt for Gemini.
func buildInsightPrompt(req *adapter.InsightRequest) string {
	var sb strings.Builder

	sb.WriteString("You are a concise personal finance coach. ")
	if req.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("The user works as a %s", req.JobTitle))
		if req.EducationLevel != "" {
			sb.WriteString(fmt.Sprintf(" with a %s education", req.EducationLevel))
		}
		sb.WriteString(". ")
	}

	sb.WriteString(fmt.Sprintf("\n\nMonthly context, normalized over %s months:\n", req.MonthCount.StringFixed(1)))
	sb.WriteString(fmt.Sprintf("- Income: %s\n", req.MonthlyIncome.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("- Average monthly expense: %s\n", req.NormalizedMonthlyExpense.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("- Monthly surplus (negative is a deficit): %s\n", req.MonthlySurplus.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("- Savings rate: %s%%\n", req.SavingsRatePct.StringFixed(1)))
	if req.MonthlyEMI.IsPositive() {
		sb.WriteString(fmt.Sprintf("- Loan EMI: %s at %s%% interest\n",
			req.MonthlyEMI.StringFixed(0), req.LoanInterestRatePct.StringFixed(1)))
	}

	if len(req.TopExpenses) > 0 {
		sb.WriteString("\nLargest expenses per month:\n")
		for _, e := range req.TopExpenses {
			label := e.Description
			if label == "" {
				label = e.Category
			}
			sb.WriteString(fmt.Sprintf("- %s: %s\n", label, e.MonthlyAmount.StringFixed(0)))
		}
	}

	sb.WriteString(fmt.Sprintf(`
RULES:
1. Give at most %d short, actionable suggestions.
2. Never mention personal names that appear in descriptions.
3. Focus on the monthly surplus or deficit.

Respond with a JSON array of strings only.`, maxSuggestions))

	return sb.String()
}

// responseText extracts the first text part of a Gemini response.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && text != "" {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

// parseSuggestions decodes the JSON array answer, dropping blanks and
// capping the count.
func parseSuggestions(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw []string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, text)
	}

	suggestions := make([]string, 0, maxSuggestions)
	for _, s := range raw {
		s = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), "-*• "))
		if s == "" {
			continue
		}
		suggestions = append(suggestions, s)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions, nil
}
