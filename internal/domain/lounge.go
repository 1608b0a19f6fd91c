package domain

type Lounge struct {
	ID          int     `json:"id"`
	Airport     string  `json:"airport"`
	Name        string  `json:"name"`
	Terminal    string  `json:"terminal"`
	Amenities   string  `json:"amenities"` // comma-separated, free text
	Rating      float64 `json:"rating"`    // 3.5..5.0, one decimal
	Description string  `json:"ai_description"`
}

type SearchQuery struct {
	Place  string `json:"place"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Flight string `json:"flight"`
}

// HighlightInfo reports which record (if any) was picked and what happened to its description.
type HighlightInfo struct {
	LoungeID int              `json:"lounge_id"`
	Outcome  HighlightOutcome `json:"outcome"`
}

type HighlightOutcome string

const (
	HighlightGenerated HighlightOutcome = "generated" // text from the model
	HighlightSimulated HighlightOutcome = "simulated" // generation disabled, template used
	HighlightFailed    HighlightOutcome = "failed"    // call failed, default kept
	HighlightEmpty     HighlightOutcome = "empty"     // model answered with no text
)

type SearchResult struct {
	Lounges      []Lounge       `json:"lounges"`
	Terms        SearchQuery    `json:"search_terms"`
	SearchActive bool           `json:"search_active"`
	Highlight    *HighlightInfo `json:"highlight,omitempty"`
}
