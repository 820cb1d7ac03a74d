package factory

import (
	"fmt"
	"log"

	"ai-research-be/pkg/llm"
	"ai-research-be/pkg/llm/azure"
	"ai-research-be/pkg/llm/fallback"
)

// NewProvider selects the completion backend. "demo" (or missing Azure
// credentials) yields the deterministic offline provider so research
// sessions always have a working completion capability.
func NewProvider(providerType, modelName, endpoint, apiKey string) (llm.Provider, error) {
	switch providerType {
	case "azure":
		if endpoint == "" || apiKey == "" {
			log.Println("[WARN] Azure OpenAI not configured, using fallback completions")
			return fallback.NewFallbackProvider(), nil
		}
		return azure.NewAzureProvider(endpoint, apiKey, modelName), nil
	case "demo":
		return fallback.NewFallbackProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", providerType)
	}
}
