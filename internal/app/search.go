package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"lounge_finder/internal/adapters/observability"
	"lounge_finder/internal/domain"
)

type SearchService struct {
	source  domain.LoungeSource
	gen     domain.TextGenerator
	timeout time.Duration
}

// NewSearchService wires the pipeline. timeout bounds the generation call; <= 0 disables the bound.
func NewSearchService(src domain.LoungeSource, gen domain.TextGenerator, timeout time.Duration) *SearchService {
	return &SearchService{source: src, gen: gen, timeout: timeout}
}

// Search generates a fresh collection and runs the pipeline on it.
func (s *SearchService) Search(ctx context.Context, q domain.SearchQuery) domain.SearchResult {
	return s.Run(ctx, s.source.Lounges(ctx), q)
}

// Run filters lounges by q.Place and rewrites the description of the top-rated match.
// The input slice is never modified.
func (s *SearchService) Run(ctx context.Context, lounges []domain.Lounge, q domain.SearchQuery) domain.SearchResult {
	res := domain.SearchResult{
		Lounges:      FilterByAirport(lounges, q.Place),
		Terms:        q,
		SearchActive: true,
	}

	top, ok := SelectHighlight(res.Lounges)
	if !ok {
		observability.ObserveHighlight("none")
		return res
	}

	outcome, text := s.describe(ctx, q, top)
	if text != "" {
		res.Lounges = ReplaceDescription(res.Lounges, top.ID, text)
	}
	res.Highlight = &domain.HighlightInfo{LoungeID: top.ID, Outcome: outcome}
	observability.ObserveHighlight(string(outcome))
	return res
}

// describe returns the highlight outcome and the replacement text ("" keeps the default).
func (s *SearchService) describe(ctx context.Context, q domain.SearchQuery, top domain.Lounge) (domain.HighlightOutcome, string) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	g := s.gen.Generate(ctx, BuildPrompt(q, top))
	switch g.Status {
	case domain.GenerationOK:
		if g.Text == "" {
			log.Warn().Int("lounge_id", top.ID).Msg("generation returned empty text, keeping default description")
			return domain.HighlightEmpty, ""
		}
		return domain.HighlightGenerated, g.Text

	case domain.GenerationDisabled:
		log.Debug().Int("lounge_id", top.ID).Msg("generation disabled, using simulated description")
		return domain.HighlightSimulated, SimulatedDescription(q, top)

	default:
		ev := log.Warn().Err(g.Err).Int("lounge_id", top.ID)
		if errors.Is(g.Err, context.DeadlineExceeded) {
			ev = ev.Bool("timeout", true)
		}
		ev.Msg("generation failed, keeping default description")
		return domain.HighlightFailed, ""
	}
}
