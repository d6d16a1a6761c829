package labcore

import (
	"strings"
)

// AnalysisSeparator joins the requested analyses into the single display
// string stored in type_analyse.
const AnalysisSeparator = " + "

// CustomPlaceholder is shown when a free-text analysis was requested but no
// text was entered.
const CustomPlaceholder = "Analyse Spéciale"

// ChoiceKind tags an AnalysisChoice as either a vocabulary entry or free text.
type ChoiceKind string

const (
	ChoicePredefined ChoiceKind = "predefined"
	ChoiceCustom     ChoiceKind = "custom"
)

// AnalysisChoice is one requested test: a name drawn from the lab's fixed
// vocabulary, or a free-text entry for anything else.
type AnalysisChoice struct {
	Kind ChoiceKind `json:"kind"`
	Name string     `json:"name"`
}

// Predefined builds a vocabulary-backed choice.
func Predefined(name string) AnalysisChoice {
	return AnalysisChoice{Kind: ChoicePredefined, Name: name}
}

// Custom builds a free-text choice.
func Custom(text string) AnalysisChoice {
	return AnalysisChoice{Kind: ChoiceCustom, Name: text}
}

// Display returns the text shown for the choice in the joined string.
func (c AnalysisChoice) Display() string {
	if c.Kind == ChoiceCustom && strings.TrimSpace(c.Name) == "" {
		return CustomPlaceholder
	}
	return c.Name
}

// DefaultVocabulary lists the analyses offered by the intake form.
var DefaultVocabulary = []string{
	"FNS Completo",
	"PCR Covid-19",
	"Bilan Lipidique",
	"Sérologie",
}

// JoinAnalyses renders the requested analyses into a single display string.
// Callers must pass at least one choice; the intake form enforces a non-empty
// selection before saving.
func JoinAnalyses(choices []AnalysisChoice) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = c.Display()
	}
	return strings.Join(parts, AnalysisSeparator)
}

// SplitAnalyses is the inverse of JoinAnalyses: each piece that exactly
// matches a vocabulary entry comes back as Predefined, everything else as
// Custom. Custom text containing the separator itself is over-split into
// extra Custom choices; the source never escaped it and neither do we.
func SplitAnalyses(text string, vocabulary []string) []AnalysisChoice {
	if strings.TrimSpace(text) == "" {
		return []AnalysisChoice{}
	}
	pieces := strings.Split(text, AnalysisSeparator)
	choices := make([]AnalysisChoice, 0, len(pieces))
	for _, piece := range pieces {
		if inVocabulary(piece, vocabulary) {
			choices = append(choices, Predefined(piece))
		} else {
			choices = append(choices, Custom(piece))
		}
	}
	return choices
}

func inVocabulary(name string, vocabulary []string) bool {
	for _, v := range vocabulary {
		if name == v {
			return true
		}
	}
	return false
}
