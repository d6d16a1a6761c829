package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"lab-manager-server/internal/labcore"
	"lab-manager-server/internal/models"
)

// Compile-time check to ensure mockPublicStore implements PublicBilanStore
var _ PublicBilanStore = (*mockPublicStore)(nil)

// mockPublicStore is a mock implementation of PublicBilanStore. It records
// every lookup so tests can assert the gateway touched the store exactly
// once and did nothing else.
type mockPublicStore struct {
	FindBilanFunc func(id string) (*models.Bilan, error)
	Lookups       []string
}

func (m *mockPublicStore) FindBilan(id string) (*models.Bilan, error) {
	m.Lookups = append(m.Lookups, id)
	if m.FindBilanFunc != nil {
		return m.FindBilanFunc(id)
	}
	return nil, errors.New("FindBilanFunc not implemented in mock")
}

func publicRouter(store PublicBilanStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := &PublicHandler{Store: store}
	router.GET("/api/v1/public/bilan", h.GetPublicBilan)
	return router
}

func TestGetPublicBilanMissingID(t *testing.T) {
	store := &mockPublicStore{}
	router := publicRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/bilan", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.Lookups, "no lookup without an id")
}

func TestGetPublicBilanRejectsPartialID(t *testing.T) {
	store := &mockPublicStore{}
	router := publicRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/bilan?id=3f1c9a44", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.Lookups, "partial identifiers must never reach the store")
}

func TestGetPublicBilanUnknownID(t *testing.T) {
	store := &mockPublicStore{
		FindBilanFunc: func(id string) (*models.Bilan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	router := publicRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/bilan?id=3f1c9a44-0000-0000-0000-0000000000ff", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, store.Lookups, 1)
}

func TestGetPublicBilanKnownID(t *testing.T) {
	bilan := testBilan()
	bilan.ResultatAnalyse = labcore.EncodeResults([]labcore.ResultParameter{
		{Name: "Hémoglobine", Value: "10", Unit: "g/dL", Min: "12", Max: "16"},
	})
	store := &mockPublicStore{
		FindBilanFunc: func(id string) (*models.Bilan, error) {
			if id == bilan.ID {
				b := bilan
				return &b, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	router := publicRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/bilan?id="+bilan.ID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data PublicBilanResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bilan.ID, resp.Data.ID)
	assert.Equal(t, bilan.NomPatient, resp.Data.NomPatient)
	if assert.Len(t, resp.Data.Resultats, 1) {
		assert.True(t, resp.Data.Resultats[0].OutOfRange)
	}

	// Exactly one exact-match lookup and nothing else: the gateway has no
	// write path, so the read leaves no journal entry behind.
	assert.Equal(t, []string{bilan.ID}, store.Lookups)
}
