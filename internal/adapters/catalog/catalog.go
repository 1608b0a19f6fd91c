package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog holds the value pools the generator draws from.
type Catalog struct {
	Airports    []string `yaml:"airports"`
	LoungeNames []string `yaml:"lounge_names"` // " Lounge" is appended
	Terminals   []string `yaml:"terminals"`
	Amenities   []string `yaml:"amenities"`
}

func Default() Catalog {
	return Catalog{
		Airports:    []string{"JFK", "LAX", "LHR", "CDG", "DXB", "HND", "ORD", "ATL", "AMS", "SIN"},
		LoungeNames: []string{"Sky", "Star", "Aspire", "Centurion", "Maple Leaf", "Plaza Premium", "Qantas", "Emirates", "United Club", "Delta Sky Club"},
		Terminals:   []string{"T1", "T2", "T3", "T4", "International", "Domestic"},
		Amenities: []string{
			"Wi-Fi, Showers, Food, Bar",
			"Wi-Fi, Snacks, Drinks",
			"Wi-Fi, Business Center, Food",
			"Premium Wi-Fi, Spa, A la carte Dining, Bar",
			"Wi-Fi, Quiet Zone, Refreshments",
		},
	}
}

// Load reads a YAML catalog from path and fills any missing pool from Default.
// A missing file is not an error.
func Load(path string) (Catalog, error) {
	def := Default()
	if path == "" {
		return def, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return def, nil
		}
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Airports) == 0 {
		c.Airports = def.Airports
	}
	if len(c.LoungeNames) == 0 {
		c.LoungeNames = def.LoungeNames
	}
	if len(c.Terminals) == 0 {
		c.Terminals = def.Terminals
	}
	if len(c.Amenities) == 0 {
		c.Amenities = def.Amenities
	}
	return c, nil
}
