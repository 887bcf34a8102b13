package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
	"gorm.io/gorm"

	"shiori-planner/constants"
	eventModel "shiori-planner/models/event"
	itineraryModel "shiori-planner/models/itinerary"
)

// Service generates packing-list suggestions for an itinerary from its
// planned events using Gemini. Suggestions are returned to the client and
// never persisted; the user decides what to keep.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// PackingSuggestion is one proposed packing item.
type PackingSuggestion struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	IsEssential bool   `json:"isEssential"`
}

// SuggestPackingItems asks Gemini for packing items that fit the trip's
// events and dates.
func (s *Service) SuggestPackingItems(ctx context.Context, itineraryID string) ([]PackingSuggestion, error) {
	var itin itineraryModel.Itinerary
	if err := s.DB.First(&itin, "id = ?", itineraryID).Error; err != nil {
		return nil, err
	}
	var events []eventModel.Event
	if err := s.DB.Where("itinerary_id = ?", itineraryID).Order("order_index ASC").Find(&events).Error; err != nil {
		return nil, err
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	prompt := buildPrompt(itin, events)
	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	result, err := client.Models.GenerateContent(
		ctx,
		"gemini-2.5-flash-lite",
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.4)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate packing suggestions: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no suggestions generated")
	}
	responseText := result.Candidates[0].Content.Parts[0].Text
	if responseText == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var suggestions []PackingSuggestion
	if err := json.Unmarshal([]byte(extractJSONFromMarkdown(responseText)), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions JSON: %w", err)
	}

	return sanitizeSuggestions(suggestions), nil
}

func buildPrompt(itin itineraryModel.Itinerary, events []eventModel.Event) string {
	var b strings.Builder
	b.WriteString("You are a travel assistant. Based on the trip below, suggest packing items. Return ONLY a valid JSON array.\n\n")
	b.WriteString("Each element must have this shape:\n")
	b.WriteString(`{"name": string, "category": string, "quantity": number, "isEssential": boolean}` + "\n\n")
	b.WriteString("category must be one of: ")
	for i, c := range constants.PackingCategories {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.ID)
	}
	b.WriteString("\n\nTrip: " + itin.Title + "\nEvents:\n")
	for _, ev := range events {
		b.WriteString("- " + ev.Title)
		if ev.EventDate != nil && *ev.EventDate != "" {
			b.WriteString(" (" + *ev.EventDate + ")")
		}
		if ev.Location != nil && *ev.Location != "" {
			b.WriteString(" at " + *ev.Location)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// sanitizeSuggestions clamps model output onto the fixed catalog.
func sanitizeSuggestions(suggestions []PackingSuggestion) []PackingSuggestion {
	cleaned := make([]PackingSuggestion, 0, len(suggestions))
	for _, sg := range suggestions {
		if strings.TrimSpace(sg.Name) == "" {
			continue
		}
		if !constants.IsValidPackingCategory(sg.Category) {
			sg.Category = constants.CategoryFallback
		}
		if sg.Quantity < 1 {
			sg.Quantity = 1
		}
		cleaned = append(cleaned, sg)
	}
	return cleaned
}

// extractJSONFromMarkdown strips markdown code fences the model sometimes
// wraps around its JSON output.
func extractJSONFromMarkdown(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) > 1 {
			return strings.Join(lines[1:len(lines)-1], "\n")
		}
	}

	return text
}
