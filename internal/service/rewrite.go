package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// InstructionRewriter turns raw upstream cooking instructions into clean,
// numbered steps. Callers treat failures as non-fatal and keep the raw text.
type InstructionRewriter interface {
	Rewrite(ctx context.Context, title, instructions string) (string, error)
}

// chatMessage is one turn of a chat completion request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// DeepSeekRewriter rewrites instructions via the DeepSeek chat completions
// API.
type DeepSeekRewriter struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewDeepSeekRewriter creates a rewriter. apiURL and model fall back to the
// DeepSeek defaults when empty.
func NewDeepSeekRewriter(apiKey, apiURL, model string) *DeepSeekRewriter {
	if apiURL == "" {
		apiURL = "https://api.deepseek.com/v1/chat/completions"
	}
	if model == "" {
		model = "deepseek-chat"
	}
	return &DeepSeekRewriter{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

const rewriteSystemPrompt = `You are a professional recipe editor. Rewrite the cooking instructions you are given as a clear, numbered list of steps. Keep every detail from the original, remove HTML markup and boilerplate, and do not invent steps. Respond with the numbered steps only.`

// Rewrite sends the raw instructions to the chat API and returns the cleaned
// version.
func (r *DeepSeekRewriter) Rewrite(ctx context.Context, title, instructions string) (string, error) {
	reqBody := chatRequest{
		Model: r.model,
		Messages: []chatMessage{
			{Role: "system", Content: rewriteSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Recipe: %s\n\nInstructions:\n%s", title, instructions)},
		},
		Temperature: 0.2,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}
