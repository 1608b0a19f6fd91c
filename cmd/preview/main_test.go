package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lounge_finder/internal/domain"
)

func TestPreviewLine(t *testing.T) {
	res := domain.SearchResult{
		Terms: domain.SearchQuery{Place: "JFK"},
		Lounges: []domain.Lounge{
			{ID: 4, Name: "Sky Lounge", Description: "default"},
			{ID: 9, Name: "Star Lounge", Description: "✨ picked"},
		},
		Highlight: &domain.HighlightInfo{LoungeID: 9, Outcome: domain.HighlightSimulated},
	}
	assert.Equal(t, preview{
		Airport: "JFK", Matches: 2, LoungeID: 9, Name: "Star Lounge",
		Outcome: "simulated", Description: "✨ picked",
	}, previewLine(res))

	assert.Equal(t, preview{Airport: "XXX", Outcome: "none"},
		previewLine(domain.SearchResult{Terms: domain.SearchQuery{Place: "XXX"}}))
}
