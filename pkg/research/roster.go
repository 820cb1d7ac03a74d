package research

import "fmt"

// Persona describes one specialized worker: identity and presentation
// metadata, prompt ingredients, and the heuristic confidence policy for
// its findings. Personality and color affect prompt tone and rendering
// only, never control flow.
type Persona struct {
	AgentId        uint
	Name           string
	Specialization string
	Personality    string
	Color          string

	// QueryKeywords are appended to the session topic to form the
	// worker's search query.
	QueryKeywords string

	// FocusPoints are the bullet points embedded in the analysis prompt.
	FocusPoints []string

	// ConfidenceLo/Hi bound the pseudo-random confidence of an
	// AI-derived finding. FallbackConfidence is the fixed score of a
	// templated fallback finding.
	ConfidenceLo       float64
	ConfidenceHi       float64
	FallbackConfidence float64
}

// Roster is the fixed set of worker personas. A plan selects the first N
// entries, so the order here defines the canonical subtask partition:
// background, trends, technical, impact, then cross-domain.
var Roster = []Persona{
	{
		AgentId:        1,
		Name:           "Explorer",
		Specialization: "background_research",
		Personality:    "curious and thorough",
		Color:          "#00ff88",
		QueryKeywords:  "background history",
		FocusPoints: []string{
			"Historical context and origins of the field",
			"Key milestones and foundational developments",
			"Core concepts and established terminology",
			"Influential organizations and researchers",
			"Current state of foundational knowledge",
		},
		ConfidenceLo:       0.85,
		ConfidenceHi:       0.95,
		FallbackConfidence: 0.80,
	},
	{
		AgentId:        2,
		Name:           "Trend Scout",
		Specialization: "trend_analysis",
		Personality:    "observant and up to date",
		Color:          "#0088ff",
		QueryKeywords:  "latest trends",
		FocusPoints: []string{
			"Most recent developments and announcements",
			"Emerging directions and momentum shifts",
			"Adoption patterns across industries",
			"Notable recent publications and releases",
			"Short-term outlook and active debates",
		},
		ConfidenceLo:       0.80,
		ConfidenceHi:       0.92,
		FallbackConfidence: 0.75,
	},
	{
		AgentId:        3,
		Name:           "Tech Specialist",
		Specialization: "technical_analysis",
		Personality:    "logical and precise",
		Color:          "#ff8800",
		QueryKeywords:  "technical implementation",
		FocusPoints: []string{
			"Underlying mechanisms and architectures",
			"Implementation approaches and trade-offs",
			"Performance characteristics and constraints",
			"Known technical limitations and open problems",
			"Tooling, standards, and interoperability",
		},
		ConfidenceLo:       0.88,
		ConfidenceHi:       0.97,
		FallbackConfidence: 0.90,
	},
	{
		AgentId:        4,
		Name:           "Impact Assessor",
		Specialization: "impact_assessment",
		Personality:    "holistic and forward-looking",
		Color:          "#ff0088",
		QueryKeywords:  "impact future",
		FocusPoints: []string{
			"Societal and economic impact to date",
			"Affected stakeholders and communities",
			"Risks, externalities, and mitigation efforts",
			"Plausible future scenarios and timelines",
			"Policy and governance implications",
		},
		ConfidenceLo:       0.78,
		ConfidenceHi:       0.90,
		FallbackConfidence: 0.70,
	},
	{
		AgentId:        5,
		Name:           "Connector",
		Specialization: "cross_domain_analysis",
		Personality:    "holistic and integrative",
		Color:          "#8800ff",
		QueryKeywords:  "related fields connections",
		FocusPoints: []string{
			"Connections with adjacent disciplines",
			"Interdisciplinary opportunities and synergies",
			"Transferable methods and shared infrastructure",
			"Cross-domain case studies",
			"Broader implications across domains",
		},
		ConfidenceLo:       0.75,
		ConfidenceHi:       0.88,
		FallbackConfidence: 0.60,
	},
}

// fallbackTemplates hold the deterministic finding text used when a
// worker's capabilities fail or serve canned content.
var fallbackTemplates = map[string]string{
	"background_research":   "Background research on %s: This field has evolved significantly over the past decade, with key developments in methodology and application.",
	"trend_analysis":        "Trend analysis of %s: Recent developments indicate accelerating activity, with new approaches and applications emerging across the field.",
	"technical_analysis":    "Technical analysis of %s: Critical examination reveals several key factors that influence outcomes, implementation quality, and effectiveness.",
	"impact_assessment":     "Impact assessment of %s: Evaluation shows meaningful effects on stakeholders, with both opportunities and risks requiring continued attention.",
	"cross_domain_analysis": "Cross-domain analysis of %s: Integration with related fields reveals new opportunities and potential synergies for advancement.",
}

// FallbackContent returns the templated finding text for a
// specialization. Unknown specializations get a generic template
// parameterized only by the tag and the topic.
func FallbackContent(specialization, topic string) string {
	if tmpl, ok := fallbackTemplates[specialization]; ok {
		return fmt.Sprintf(tmpl, topic)
	}
	return fmt.Sprintf("Research on %s from the %s perspective: analysis completed with the available material and general domain knowledge.", topic, specialization)
}
