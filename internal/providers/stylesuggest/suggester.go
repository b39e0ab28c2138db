// Package stylesuggest produces the short art-direction brief that keeps a
// multi-photo shoot visually consistent. Providers degrade gracefully: the
// static suggester always answers, and the model-backed ones fall back to it.
package stylesuggest

import "context"

// DefaultStyle is served whenever no model can produce a suggestion.
const DefaultStyle = "A retro 80s studio background with laser beams, neon geometric shapes, fog, and dramatic backlighting."

// Suggester returns one art-direction style for the given brief.
type Suggester interface {
	Suggest(ctx context.Context, brief string) (string, error)
}

// Static answers with a fixed style and never fails.
type Static struct {
	Style string
}

func NewStatic() *Static {
	return &Static{Style: DefaultStyle}
}

func (s *Static) Suggest(ctx context.Context, brief string) (string, error) {
	if s.Style == "" {
		return DefaultStyle, nil
	}
	return s.Style, nil
}

var _ Suggester = (*Static)(nil)
