package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wander/internal/credentials"
)

// DefaultTweetPrompt is used when a generation request carries no prompt.
const DefaultTweetPrompt = "Write an engaging travel tweet:"

// OpenAIClient generates tweet text through the chat completions API.
type OpenAIClient struct {
	httpClient *http.Client
	creds      *credentials.Store
	baseURL    string
	model      string
	maxTokens  int
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewOpenAIClient(baseURL, model string, maxTokens int, creds *credentials.Store) *OpenAIClient {
	return &OpenAIClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		creds:      creds,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		maxTokens:  maxTokens,
	}
}

// GenerateTweet sends prompt (or DefaultTweetPrompt when empty) to the
// completion endpoint and returns the trimmed completion text.
func (oc *OpenAIClient) GenerateTweet(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		prompt = DefaultTweetPrompt
	}

	payload, err := json.Marshal(chatRequest{
		Model:     oc.model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: oc.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, oc.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey, ok := oc.creds.Get(credentials.OpenAIAPIKey); ok && apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := oc.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai: unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai: response carried no choices")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
