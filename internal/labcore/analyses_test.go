package labcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinAnalyses(t *testing.T) {
	choices := []AnalysisChoice{
		Predefined("FNS Completo"),
		Custom("Test ADN"),
	}

	assert.Equal(t, "FNS Completo + Test ADN", JoinAnalyses(choices))
}

func TestJoinAnalysesEmptyCustomUsesPlaceholder(t *testing.T) {
	joined := JoinAnalyses([]AnalysisChoice{Custom("")})
	assert.Equal(t, CustomPlaceholder, joined)

	joined = JoinAnalyses([]AnalysisChoice{Predefined("Sérologie"), Custom("  ")})
	assert.Equal(t, "Sérologie + "+CustomPlaceholder, joined)
}

func TestSplitAnalysesKeepsKinds(t *testing.T) {
	vocabulary := []string{"FNS Completo"}
	choices := SplitAnalyses("FNS Completo + Test ADN", vocabulary)

	assert.Equal(t, []AnalysisChoice{
		Predefined("FNS Completo"),
		Custom("Test ADN"),
	}, choices)
}

func TestSplitJoinInverse(t *testing.T) {
	choices := []AnalysisChoice{
		Predefined("FNS Completo"),
		Predefined("PCR Covid-19"),
		Custom("Dosage vitamine D"),
	}

	roundTripped := SplitAnalyses(JoinAnalyses(choices), DefaultVocabulary)
	assert.Equal(t, choices, roundTripped)
}

func TestSplitAnalysesEmptyText(t *testing.T) {
	assert.Empty(t, SplitAnalyses("", DefaultVocabulary))
}

func TestSplitAnalysesSeparatorInCustomTextOverSplits(t *testing.T) {
	// Known edge case: the separator is never escaped, so custom text
	// containing it comes back as two choices.
	choices := SplitAnalyses(JoinAnalyses([]AnalysisChoice{Custom("A + B")}), DefaultVocabulary)
	assert.Len(t, choices, 2)
}
