package catalog_test

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lounge_finder/internal/adapters/catalog"
)

func seeded(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }

func TestGenerator_RecordInvariants(t *testing.T) {
	g := catalog.NewGenerator(catalog.Default(), 100, seeded(7))
	ls := g.Lounges(context.Background())
	require.Len(t, ls, 100)

	seen := map[int]bool{}
	for _, l := range ls {
		assert.False(t, seen[l.ID], "duplicate id %d", l.ID)
		seen[l.ID] = true

		assert.GreaterOrEqual(t, l.Rating, 3.5)
		assert.LessOrEqual(t, l.Rating, 5.0)
		assert.Len(t, l.Airport, 3)
		assert.Contains(t, l.Name, " Lounge")
		assert.Equal(t, catalog.DefaultDescription(l), l.Description)
	}
}

func TestGenerator_SameSeedSameRecords(t *testing.T) {
	a := catalog.NewGenerator(catalog.Default(), 20, seeded(42)).Lounges(context.Background())
	b := catalog.NewGenerator(catalog.Default(), 20, seeded(42)).Lounges(context.Background())
	assert.Equal(t, a, b)
}

func TestGenerator_DefaultCount(t *testing.T) {
	g := catalog.NewGenerator(catalog.Default(), 0, nil)
	assert.Len(t, g.Lounges(context.Background()), 100)
}

func TestDefaultDescription(t *testing.T) {
	g := catalog.NewGenerator(catalog.Catalog{
		Airports:    []string{"JFK"},
		LoungeNames: []string{"Sky"},
		Terminals:   []string{"T4"},
		Amenities:   []string{"Wi-Fi, Snacks, Drinks"},
	}, 1, seeded(1))

	l := g.Lounges(context.Background())[0]
	assert.Equal(t, "Experience comfort at Sky Lounge in JFK (T4). Enjoy wi-fi, snacks, drinks.", l.Description)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	c, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, catalog.Default(), c)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("airports: [\"BOM\", \"DEL\"]\n"), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"BOM", "DEL"}, c.Airports)
	assert.Equal(t, catalog.Default().Terminals, c.Terminals)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("airports: [unclosed\n"), 0o600))

	_, err := catalog.Load(path)
	assert.Error(t, err)
}
