package main

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"lounge_finder/internal/adapters/catalog"
	"lounge_finder/internal/adapters/gemini"
	"lounge_finder/internal/adapters/observability"
	"lounge_finder/internal/app"
	"lounge_finder/internal/domain"
	"lounge_finder/internal/shared"
)

// preview runs the search pipeline for several airports against one generated
// collection and prints one JSON line per airport.
//
//	preview JFK LHR sin
func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	// logs go to stderr so stdout stays machine-readable
	log.Logger = observability.NewLogger(cfg.AppEnv).Output(os.Stderr)

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}
	gen, err := gemini.NewGenerator(cfg.GenerationEnabled(), cfg.GeminiBase, cfg.GeminiKey, cfg.GeminiModel, cfg.GeminiRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Gemini client")
	}

	src := catalog.NewGenerator(cat, cfg.LoungeCount, nil)
	svc := app.NewSearchService(src, gen, cfg.GenerationTimeout)

	airports := os.Args[1:]
	if len(airports) == 0 {
		airports = cat.Airports
	}
	lounges := src.Lounges(ctx)

	log.Info().
		Int("airports", len(airports)).
		Int("workers", cfg.PreviewWorkers).
		Bool("generation", cfg.GenerationEnabled()).
		Msg("preview starting")

	var (
		mu  sync.Mutex
		enc = json.NewEncoder(os.Stdout)
		wg  sync.WaitGroup
		sem = semaphore.NewWeighted(int64(max(cfg.PreviewWorkers, 1)))
	)
	for _, a := range airports {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(place string) {
			defer wg.Done()
			defer sem.Release(1)

			res := svc.Run(ctx, lounges, app.NormalizeQuery(place, "", "", ""))
			line := previewLine(res)

			mu.Lock()
			defer mu.Unlock()
			if err := enc.Encode(line); err != nil {
				log.Warn().Str("airport", place).Err(err).Msg("write failed")
			}
		}(a)
	}

	wg.Wait()
	log.Info().Msg("preview completed")
}

type preview struct {
	Airport     string `json:"airport"`
	Matches     int    `json:"matches"`
	LoungeID    int    `json:"lounge_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Outcome     string `json:"outcome"`
	Description string `json:"description,omitempty"`
}

func previewLine(res domain.SearchResult) preview {
	p := preview{Airport: strings.ToUpper(res.Terms.Place), Matches: len(res.Lounges), Outcome: "none"}
	if res.Highlight == nil {
		return p
	}
	p.LoungeID = res.Highlight.LoungeID
	p.Outcome = string(res.Highlight.Outcome)
	for _, l := range res.Lounges {
		if l.ID == p.LoungeID {
			p.Name = l.Name
			p.Description = l.Description
			break
		}
	}
	return p
}
