package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lab-manager-server/internal/models"
)

func testBilan() models.Bilan {
	return models.Bilan{
		BaseModel: models.BaseModel{
			ID:        "3f1c9a44-0000-0000-0000-000000000001",
			CreatedAt: time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
		},
		NomPatient:    "Benali",
		PrenomPatient: "Samira",
		Telephone:     "0551234567",
		TypeAnalyse:   "FNS Completo + Sérologie",
		Statut:        models.StatusTermine,
		SmsEnvoye:     true,
	}
}

func TestBuildExportRowHasEightFields(t *testing.T) {
	row := BuildExportRow(testBilan())

	fields := strings.Split(row, ";")
	assert.Len(t, fields, 8)
	assert.Equal(t, "3f1c9a44-0000-0000-0000-000000000001", fields[0])
	assert.Equal(t, "2025-02-01", fields[1])
	assert.Equal(t, "Benali", fields[2])
	assert.Equal(t, "Samira", fields[3])
	assert.Equal(t, "0551234567", fields[4])
	assert.Equal(t, "FNS Completo + Sérologie", fields[5])
	assert.Equal(t, "termine", fields[6])
	assert.Equal(t, "YES", fields[7])
}

func TestBuildExportRowNotifiedFlag(t *testing.T) {
	b := testBilan()
	b.SmsEnvoye = false

	fields := strings.Split(BuildExportRow(b), ";")
	assert.Equal(t, "NO", fields[7])
}

func TestBuildExportRowReplacesSemicolons(t *testing.T) {
	b := testBilan()
	b.TypeAnalyse = "FNS; Completo + Sérologie"

	row := BuildExportRow(b)
	fields := strings.Split(row, ";")

	assert.Len(t, fields, 8)
	assert.Equal(t, "FNS, Completo + Sérologie", fields[5])
}
