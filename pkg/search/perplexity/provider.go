package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ai-research-be/pkg/search"
)

const apiURL = "https://api.perplexity.ai/chat/completions"

type PerplexityProvider struct {
	APIKey    string
	ModelName string
	Client    *http.Client
}

var _ search.Provider = &PerplexityProvider{}

func NewPerplexityProvider(apiKey string) *PerplexityProvider {
	return &PerplexityProvider{
		APIKey:    apiKey,
		ModelName: "sonar",
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type chatRequest struct {
	Model        string        `json:"model"`
	Messages     []chatMessage `json:"messages"`
	SearchFilter string        `json:"search_filter,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations"`
}

// --- Interface Implementation ---

func (p *PerplexityProvider) Search(ctx context.Context, query string) (*search.Result, error) {
	reqPayload := chatRequest{
		Model: p.ModelName,
		Messages: []chatMessage{{
			Role:    "user",
			Content: fmt.Sprintf("Search for current information about: %s. Provide recent, accurate, and comprehensive information with sources.", query),
		}},
		SearchFilter: "academic",
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perplexity request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("perplexity error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("perplexity returned an empty result")
	}

	links := make([]string, 0, len(chatResp.Citations))
	for _, c := range chatResp.Citations {
		if strings.HasPrefix(c, "http://") || strings.HasPrefix(c, "https://") {
			links = append(links, c)
		}
	}

	return &search.Result{
		Query:     query,
		Text:      chatResp.Choices[0].Message.Content,
		Sources:   chatResp.Citations,
		Links:     links,
		Timestamp: time.Now(),
	}, nil
}
