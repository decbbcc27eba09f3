package utils

import (
	"context"
	"fmt"
	"strings"

	"lotrinh/internal/models/request_models"
)

// PlannerClientInterface is the narrow contract with the text-generation
// collaborator: candidates plus a day count in, raw JSON-in-text out.
// Callers own parsing and validation of the reply.
type PlannerClientInterface interface {
	GenerateDayGrouping(ctx context.Context, pois []request_models.POISummary, dayCount int) (string, error)
	Close() error
}

// NewPlannerClient builds either the Gemini or the OpenAI client based on
// config.
func NewPlannerClient(provider, apiKey, model string) (PlannerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlannerClient(apiKey, model), nil
	case "", "gemini":
		return NewGeminiPlannerClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// CleanJSONResponse strips markdown code fences and leading prose that
// models wrap around JSON payloads.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")

	trimmed := strings.TrimSpace(response)
	if i := strings.IndexAny(trimmed, "[{"); i > 0 {
		trimmed = trimmed[i:]
	}
	return strings.TrimSpace(trimmed)
}

// buildGroupingPrompt is shared by both planner clients.
func buildGroupingPrompt(pois []request_models.POISummary, dayCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a travel expert. Group the destinations below into a realistic %d-day itinerary.\n\n", dayCount)
	b.WriteString("DESTINATIONS:\n")
	for _, p := range pois {
		fmt.Fprintf(&b, "- ID:%s | Name:%s | Category:%s | Address:%s | Lat:%f | Lon:%f | Description:%s\n",
			p.ID, p.Name, p.Category, p.Address, p.Latitude, p.Longitude, p.Description)
	}

	fmt.Fprintf(&b, `
REQUIREMENTS:
1. Exactly %d days, day numbers 1..%d.
2. 3-5 destinations per day, balanced across categories (am-thuc, tham-quan, khach-san).
3. Group geographically close destinations on the same day.
4. Use only the exact ID values from the list above.

Return ONLY a JSON array in this format, no extra text:
[
  {"day": 1, "destinations": [{"id": "<ID from list>", "reason": "why this place"}]},
  {"day": 2, "destinations": [{"id": "<ID from list>", "reason": "why this place"}]}
]
`, dayCount, dayCount)

	return b.String()
}
