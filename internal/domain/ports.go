package domain

import "context"

// LoungeSource produces a freshly generated collection on every call.
type LoungeSource interface {
	Lounges(ctx context.Context) []Lounge
}

type TextGenerator interface {
	Generate(ctx context.Context, prompt string) Generation
}

type GenerationStatus int

const (
	GenerationOK GenerationStatus = iota
	GenerationDisabled
	GenerationFailed
)

func (s GenerationStatus) String() string {
	switch s {
	case GenerationOK:
		return "ok"
	case GenerationDisabled:
		return "disabled"
	case GenerationFailed:
		return "failed"
	}
	return "unknown"
}

// Generation is the explicit result of one text-generation attempt.
// Err is set only when Status is GenerationFailed.
type Generation struct {
	Status GenerationStatus
	Text   string
	Err    error
}

func Generated(text string) Generation { return Generation{Status: GenerationOK, Text: text} }

func Disabled() Generation { return Generation{Status: GenerationDisabled} }

func Failed(err error) Generation { return Generation{Status: GenerationFailed, Err: err} }
