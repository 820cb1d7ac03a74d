package factory

import (
	"fmt"
	"log"

	"ai-research-be/pkg/search"
	"ai-research-be/pkg/search/fallback"
	"ai-research-be/pkg/search/perplexity"
)

// NewProvider selects the search backend. "demo" (or a missing Perplexity
// key) yields the deterministic offline provider.
func NewProvider(providerType, apiKey string) (search.Provider, error) {
	switch providerType {
	case "perplexity":
		if apiKey == "" {
			log.Println("[WARN] Perplexity not configured, using fallback search")
			return fallback.NewFallbackProvider(), nil
		}
		return perplexity.NewPerplexityProvider(apiKey), nil
	case "demo":
		return fallback.NewFallbackProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported search provider: %s", providerType)
	}
}
