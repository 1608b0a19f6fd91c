package catalog

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"

	"lounge_finder/internal/domain"
)

const (
	minRating = 3.5
	maxRating = 5.0
)

// Generator is a domain.LoungeSource producing random lounges from a Catalog.
type Generator struct {
	cat   Catalog
	count int

	mu  sync.Mutex // *rand.Rand is not safe for concurrent use
	rnd *rand.Rand
}

func NewGenerator(cat Catalog, count int, rnd *rand.Rand) *Generator {
	if count <= 0 {
		count = 100
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{cat: cat, count: count, rnd: rnd}
}

func (g *Generator) Lounges(_ context.Context) []domain.Lounge {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]domain.Lounge, 0, g.count)
	for i := 0; i < g.count; i++ {
		l := domain.Lounge{
			ID:        i + 1,
			Airport:   pick(g.rnd, g.cat.Airports),
			Name:      pick(g.rnd, g.cat.LoungeNames) + " Lounge",
			Terminal:  pick(g.rnd, g.cat.Terminals),
			Amenities: pick(g.rnd, g.cat.Amenities),
			Rating:    roundTenth(minRating + g.rnd.Float64()*(maxRating-minRating)),
		}
		l.Description = DefaultDescription(l)
		out = append(out, l)
	}
	return out
}

// DefaultDescription is the text every lounge starts with before highlighting.
func DefaultDescription(l domain.Lounge) string {
	return fmt.Sprintf("Experience comfort at %s in %s (%s). Enjoy %s.",
		l.Name, l.Airport, l.Terminal, strings.ToLower(l.Amenities))
}

func pick(r *rand.Rand, pool []string) string {
	return pool[r.IntN(len(pool))]
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}
