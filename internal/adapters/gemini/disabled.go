package gemini

import (
	"context"

	"lounge_finder/internal/domain"
)

// Off is the generator used when no model is configured.
type Off struct{}

func (Off) Generate(context.Context, string) domain.Generation { return domain.Disabled() }

// NewGenerator returns a live client when enabled, Off otherwise.
func NewGenerator(enabled bool, base, key, model string, rps int) (domain.TextGenerator, error) {
	if !enabled {
		return Off{}, nil
	}
	c, err := New(base, key, model, rps)
	if err != nil {
		return nil, err
	}
	return c, nil
}
