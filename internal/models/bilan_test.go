package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyStatusTermineSetsCompletionDate(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	b := Bilan{Statut: StatusEnCours}

	b.ApplyStatus(StatusTermine, now)

	assert.Equal(t, StatusTermine, b.Statut)
	if assert.NotNil(t, b.DateFinAnalyse) {
		assert.Equal(t, now, *b.DateFinAnalyse)
	}
}

func TestApplyStatusLeavingTermineClearsCompletionDate(t *testing.T) {
	now := time.Now()
	b := Bilan{}
	b.ApplyStatus(StatusTermine, now)
	assert.NotNil(t, b.DateFinAnalyse)

	b.ApplyStatus(StatusEnCours, now)

	assert.Equal(t, StatusEnCours, b.Statut)
	assert.Nil(t, b.DateFinAnalyse)
}

func TestApplyStatusArchiveCarriesNoCompletionDate(t *testing.T) {
	now := time.Now()
	b := Bilan{}
	b.ApplyStatus(StatusTermine, now)

	b.ApplyStatus(StatusArchive, now)

	assert.Equal(t, StatusArchive, b.Statut)
	assert.Nil(t, b.DateFinAnalyse)
}

func TestApplyStatusAnyTransitionAllowed(t *testing.T) {
	// The lifecycle has no transition graph: pending straight to termine is fine.
	b := Bilan{Statut: StatusEnAttente}
	b.ApplyStatus(StatusTermine, time.Now())
	assert.Equal(t, StatusTermine, b.Statut)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusEnAttente))
	assert.True(t, ValidStatus(StatusEnCours))
	assert.True(t, ValidStatus(StatusTermine))
	assert.True(t, ValidStatus(StatusArchive))
	assert.False(t, ValidStatus(Status("annule")))
	assert.False(t, ValidStatus(Status("")))
}
