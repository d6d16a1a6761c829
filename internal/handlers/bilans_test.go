package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"lab-manager-server/internal/labcore"
	"lab-manager-server/internal/models"
)

func TestToChoices(t *testing.T) {
	choices := toChoices([]AnalysisChoiceRequest{
		{Kind: "predefined", Name: "FNS Completo"},
		{Kind: "custom", Name: "Test ADN"},
	})

	assert.Equal(t, []labcore.AnalysisChoice{
		labcore.Predefined("FNS Completo"),
		labcore.Custom("Test ADN"),
	}, choices)
}

func TestResultViewsFlagsOutOfRange(t *testing.T) {
	encoded := labcore.EncodeResults([]labcore.ResultParameter{
		{Name: "Hémoglobine", Value: "10", Unit: "g/dL", Min: "12", Max: "16"},
		{Name: "Glycémie", Value: "0,90", Unit: "g/L", Min: "0.7", Max: "1.1"},
		{Name: "Observation", Value: "RAS"},
	})

	views := resultViews(encoded)

	assert.Len(t, views, 3)
	assert.True(t, views[0].OutOfRange)
	assert.False(t, views[1].OutOfRange)
	assert.False(t, views[2].OutOfRange, "no bounds means no alert")
}

func TestCreateBilanReceptionCannotStartTermine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// No DB behind the handler: the request must be rejected before any
	// store call happens.
	h := &BilanHandler{}
	router.POST("/api/v1/bilans", func(c *gin.Context) {
		c.Set("userID", "b7b2c7de-0000-0000-0000-000000000001")
		c.Set("userRole", models.RoleReception)
	}, h.CreateBilan)

	body := `{"nom_patient":"Benali","prenom_patient":"Samira",` +
		`"analyses":[{"kind":"predefined","name":"FNS Completo"}],"statut":"termine"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bilans", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestResultViewsLegacyBlob(t *testing.T) {
	views := resultViews("RAS")

	assert.Len(t, views, 1)
	assert.Equal(t, labcore.GlobalResultName, views[0].Name)
	assert.False(t, views[0].OutOfRange)
}
