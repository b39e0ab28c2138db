package stylesuggest

import (
	"context"
	"strings"

	"pictureme/internal/providers/genai"
)

// Gemini asks the Gemini text model for a style and falls back to the static
// suggester on any failure.
type Gemini struct {
	client   *genai.Client
	fallback Suggester
}

func NewGemini(client *genai.Client, fallback Suggester) *Gemini {
	if fallback == nil {
		fallback = NewStatic()
	}
	return &Gemini{client: client, fallback: fallback}
}

func (g *Gemini) Suggest(ctx context.Context, brief string) (string, error) {
	text, err := g.client.SuggestStyleText(ctx, brief)
	if err != nil {
		return g.fallback.Suggest(ctx, brief)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return g.fallback.Suggest(ctx, brief)
	}
	return text, nil
}

var _ Suggester = (*Gemini)(nil)
