package research

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-research-be/pkg/llm"
)

const (
	maxKeyFindings         = 10
	keyFindingMinScore     = 0.7
	keyFindingContentLimit = 100
)

// KeyFinding is a high-confidence excerpt surfaced in the synthesis.
type KeyFinding struct {
	Content    string  `json:"content"`
	Agent      string  `json:"agent"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
}

// Synthesis is the combined report built from all of a session's
// findings.
type Synthesis struct {
	Text        string       `json:"text"`
	KeyFindings []KeyFinding `json:"keyFindings"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

// Synthesizer combines findings into a structured report via the
// completion capability. Wrap the provider with the fallback decorator
// so synthesis always yields text.
type Synthesizer struct {
	llm llm.Provider
}

func NewSynthesizer(completions llm.Provider) *Synthesizer {
	return &Synthesizer{llm: completions}
}

// Synthesize concatenates all finding contents and asks the completion
// capability for a report with five canonical parts. Key findings are
// the up-to-ten findings whose confidence exceeds the threshold,
// original aggregation order preserved.
func (s *Synthesizer) Synthesize(ctx context.Context, topic string, findings []Finding) (*Synthesis, error) {
	var prompt string
	if llm.IsCanned(s.llm) {
		// Canned completions match keywords against the whole prompt;
		// embedded finding text would steer the match away from the
		// synthesis sentence.
		prompt = fmt.Sprintf("Create a research synthesis for the topic %q.", topic)
	} else {
		var combined strings.Builder
		for _, f := range findings {
			fmt.Fprintf(&combined, "[%s / %s]\n%s\n\n", f.Agent, f.Specialization, f.Content)
		}
		prompt = fmt.Sprintf(
			"Create a research synthesis for the topic %q from the findings below. Structure the synthesis with five parts: executive summary, key findings, analysis, implications, and future directions.\n\nFindings:\n%s",
			topic, combined.String(),
		)
	}

	text, err := s.llm.Complete(ctx, prompt,
		llm.WithSystemMessage("You are a lead researcher synthesizing the findings of a specialized research team into a single coherent report."),
	)
	if err != nil {
		return nil, fmt.Errorf("synthesis completion: %w", err)
	}

	return &Synthesis{
		Text:        text,
		KeyFindings: extractKeyFindings(findings),
		GeneratedAt: time.Now(),
	}, nil
}

func extractKeyFindings(findings []Finding) []KeyFinding {
	key := make([]KeyFinding, 0, maxKeyFindings)
	for _, f := range findings {
		if f.Confidence <= keyFindingMinScore {
			continue
		}
		key = append(key, KeyFinding{
			Content:    truncate(f.Content, keyFindingContentLimit),
			Agent:      f.Agent,
			Source:     f.Source,
			Confidence: f.Confidence,
		})
		if len(key) == maxKeyFindings {
			break
		}
	}
	return key
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
