package app

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"lounge_finder/internal/domain"
)

const notSpecified = "Not specified"

// NormalizeQuery trims every field and upper-cases the airport code. It never fails.
func NormalizeQuery(place, date, tm, flight string) domain.SearchQuery {
	return domain.SearchQuery{
		Place:  strings.ToUpper(strings.TrimSpace(place)),
		Date:   strings.TrimSpace(date),
		Time:   strings.TrimSpace(tm),
		Flight: strings.TrimSpace(flight),
	}
}

// FilterByAirport returns a new slice with the lounges at airport, in input order.
// An empty airport keeps everything.
func FilterByAirport(lounges []domain.Lounge, airport string) []domain.Lounge {
	out := make([]domain.Lounge, 0, len(lounges))
	for _, l := range lounges {
		if airport == "" || l.Airport == airport {
			out = append(out, l)
		}
	}
	return out
}

// SelectHighlight returns the highest-rated lounge; ties go to the earliest one.
func SelectHighlight(lounges []domain.Lounge) (domain.Lounge, bool) {
	if len(lounges) == 0 {
		return domain.Lounge{}, false
	}
	sorted := slices.Clone(lounges)
	slices.SortStableFunc(sorted, func(a, b domain.Lounge) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		}
		return 0
	})
	return sorted[0], true
}

// ReplaceDescription maps lounges to a new slice where the first lounge with id carries text.
func ReplaceDescription(lounges []domain.Lounge, id int, text string) []domain.Lounge {
	out := make([]domain.Lounge, len(lounges))
	done := false
	for i, l := range lounges {
		if !done && l.ID == id {
			l.Description = text
			done = true
		}
		out[i] = l
	}
	return out
}

func BuildPrompt(q domain.SearchQuery, l domain.Lounge) string {
	var b strings.Builder
	b.WriteString("A traveler is looking for an airport lounge.\n")
	b.WriteString("Details:\n")
	fmt.Fprintf(&b, "- Airport: %s\n", orNotSpecified(q.Place))
	fmt.Fprintf(&b, "- Date: %s\n", orNotSpecified(q.Date))
	fmt.Fprintf(&b, "- Time: %s\n", orNotSpecified(q.Time))
	fmt.Fprintf(&b, "- Flight: %s\n\n", orNotSpecified(q.Flight))
	b.WriteString("Here is the top recommended lounge based on initial filtering:\n")
	fmt.Fprintf(&b, "- Name: %s\n", l.Name)
	fmt.Fprintf(&b, "- Terminal: %s\n", l.Terminal)
	fmt.Fprintf(&b, "- Rating: %s/5.0\n", formatRating(l.Rating))
	fmt.Fprintf(&b, "- Amenities: %s\n\n", l.Amenities)
	b.WriteString("Generate a short, appealing, and slightly enthusiastic description (1-2 sentences) ")
	b.WriteString("for this lounge, highlighting why it might be a great choice for this traveler. ")
	b.WriteString("Use emojis relevant to travel or luxury (like ✈️, ✨, 🥂, 🛋️). ")
	b.WriteString("Make it sound like a helpful AI assistant's recommendation.")
	return b.String()
}

// SimulatedDescription is the deterministic stand-in used when generation is disabled.
func SimulatedDescription(q domain.SearchQuery, l domain.Lounge) string {
	airport := q.Place
	if airport == "" {
		airport = l.Airport
	}
	flight := q.Flight
	if flight == "" {
		flight = "your next journey"
	}
	return fmt.Sprintf("✨ Jetsetter alert! For your stop at %s, the **%s** (%s) is a top pick (%s⭐)! "+
		"Unwind with amenities like _%s_ before flight %s. Bon voyage! ✈️🛋️",
		airport, l.Name, l.Terminal, formatRating(l.Rating), firstAmenity(l.Amenities), flight)
}

func firstAmenity(amenities string) string {
	first, _, _ := strings.Cut(amenities, ",")
	return strings.TrimSpace(first)
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}

func orNotSpecified(s string) string {
	if s == "" {
		return notSpecified
	}
	return s
}
