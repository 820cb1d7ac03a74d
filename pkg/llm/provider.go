package llm

import (
	"context"
)

// Option allows for optional parameters like SystemMessage, Temperature, etc.
type Option func(*Options)

type Options struct {
	SystemMessage string
	Temperature   float64
	MaxTokens     int
	Model         string // Override default model
}

func WithSystemMessage(msg string) Option {
	return func(o *Options) {
		o.SystemMessage = msg
	}
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider defines the contract for any text-completion backend.
// Implementations must bound their own latency; callers recover from
// provider errors with deterministic fallback content and never block a
// research session on a backend.
type Provider interface {
	Complete(ctx context.Context, prompt string, options ...Option) (string, error)
}

// Canned marks a provider that serves deterministic offline content
// instead of live completions. Workers use it to tag their findings as
// templated rather than AI-derived.
type Canned interface {
	Canned() bool
}

// IsCanned reports whether a provider serves deterministic offline
// content.
func IsCanned(p Provider) bool {
	c, ok := p.(Canned)
	return ok && c.Canned()
}
