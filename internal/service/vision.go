package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const detectPrompt = "List only the visible food ingredients in this image. Respond with just a comma-separated list of ingredient names."

var ingredientSeparator = regexp.MustCompile(`[,.\n]+`)

// VisionService detects food ingredients in photos using the Gemini vision
// model.
type VisionService struct {
	client *genai.Client
	model  string
}

// NewVisionService creates a vision service. model falls back to
// gemini-1.5-flash when empty.
func NewVisionService(ctx context.Context, apiKey, model string) (*VisionService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &VisionService{client: client, model: model}, nil
}

// Close releases the underlying client.
func (s *VisionService) Close() error {
	return s.client.Close()
}

// DetectIngredients sends the image to the model and returns the normalized
// ingredient names it reports. An empty list is a valid result: the photo
// just contained no recognizable food.
func (s *VisionService) DetectIngredients(ctx context.Context, imageData []byte, mimeFormat string) ([]string, error) {
	model := s.client.GenerativeModel(s.model)

	resp, err := model.GenerateContent(ctx,
		genai.ImageData(mimeFormat, imageData),
		genai.Text(detectPrompt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze image: %w", err)
	}

	return parseIngredientList(extractText(resp)), nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

// parseIngredientList splits the model output on commas, periods and
// newlines, then trims, lowercases and drops empty entries.
func parseIngredientList(text string) []string {
	var ingredients []string
	for _, piece := range ingredientSeparator.Split(text, -1) {
		name := NormalizeIngredient(piece)
		if name != "" {
			ingredients = append(ingredients, name)
		}
	}
	return ingredients
}
