// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/duobudget/backend/internal/application/adapter"
)

// GeminiService implements the AICategorizationService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Categorize analyzes transactions and returns categorization suggestions.
func (s *GeminiService) Categorize(ctx context.Context, request *adapter.CategorizationRequest) ([]*adapter.CategorizationResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	results, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return results, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.CategorizationRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at categorizing bank transactions for a household budget. Analyze the uncategorized transactions below and suggest a spending category for each one.

RULES:
- Prefer one of the existing categories when it fits.
- Use short, everyday category names (e.g. Groceries, Rent, Transport, Restaurants, Utilities, Streaming, Health, Insurance).
- Raw bank labels are noisy (uppercase merchant codes, branch numbers); infer the merchant behind the label.
- Provide up to 3 alternative categories per transaction, ordered by likelihood.
- Confidence is your own estimate between 0.0 and 1.0.

EXISTING CATEGORIES:
`)

	if len(request.ExistingCategories) > 0 {
		for _, cat := range request.ExistingCategories {
			sb.WriteString(fmt.Sprintf("- %s\n", cat))
		}
	} else {
		sb.WriteString("(none yet)\n")
	}

	sb.WriteString("\nTRANSACTIONS TO CATEGORIZE:\n")
	for _, tx := range request.Transactions {
		sb.WriteString(fmt.Sprintf("- ID: %s, Label: \"%s\", Amount: %s, Date: %s\n",
			tx.ID, tx.Label, tx.Amount, tx.Date))
	}

	sb.WriteString(`
Respond with a JSON array of suggestions. Each suggestion must have:
{
  "transaction_id": "uuid of the transaction",
  "category": "suggested category name",
  "alternatives": ["other plausible categories"],
  "confidence": 0.0-1.0
}

RESPONSE FORMAT: Return only the JSON array, with no additional text.
`)

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	TransactionID string   `json:"transaction_id"`
	Category      string   `json:"category"`
	Alternatives  []string `json:"alternatives"`
	Confidence    float64  `json:"confidence"`
}

// parseResponse parses the Gemini response into CategorizationResults.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]*adapter.CategorizationResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var suggestions []geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	results := make([]*adapter.CategorizationResult, 0, len(suggestions))
	for _, sg := range suggestions {
		txID, err := uuid.Parse(sg.TransactionID)
		if err != nil {
			continue // Skip invalid IDs
		}

		confidence := sg.Confidence
		if confidence < 0 {
			confidence = 0
		}
		if confidence > 1 {
			confidence = 1
		}

		results = append(results, &adapter.CategorizationResult{
			TransactionID: txID,
			Category:      strings.TrimSpace(sg.Category),
			Alternatives:  sg.Alternatives,
			Confidence:    confidence,
		})
	}

	return results, nil
}
