package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lab-manager-server/internal/models"
	"lab-manager-server/internal/utils"
)

// PublicBilanStore is the read path behind the shareable result link. It
// deliberately exposes nothing but an exact-match single lookup: no listing,
// no partial matches, no writes.
type PublicBilanStore interface {
	FindBilan(id string) (*models.Bilan, error)
}

type gormPublicStore struct {
	db *gorm.DB
}

func (s gormPublicStore) FindBilan(id string) (*models.Bilan, error) {
	var bilan models.Bilan
	if err := s.db.First(&bilan, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bilan, nil
}

// PublicHandler serves the unauthenticated single-bilan read path behind the
// shareable result link.
type PublicHandler struct {
	Store PublicBilanStore
}

// NewPublicHandler creates a new PublicHandler backed by the database.
func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{Store: gormPublicStore{db: db}}
}

// PublicBilanResponse is the restricted view exposed to the patient: no
// creator, no phone, no raw blob.
type PublicBilanResponse struct {
	ID             string                `json:"id"`
	NomPatient     string                `json:"nom_patient"`
	PrenomPatient  string                `json:"prenom_patient"`
	TypeAnalyse    string                `json:"type_analyse"`
	Statut         models.Status         `json:"statut"`
	DateFinAnalyse *time.Time            `json:"date_fin_analyse"`
	Resultats      []ResultParameterView `json:"resultats"`
}

// GetPublicBilan fetches exactly one bilan by the identifier carried in the
// link's query parameter. The identifier is the whole access token: knowing
// it grants read access to that one record and nothing else. Only an exact
// match is accepted and no audit trace is left.
func (h *PublicHandler) GetPublicBilan(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		utils.BadRequest(c, "Missing id parameter")
		return
	}
	bilanID, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequest(c, "Invalid bilan ID format")
		return
	}

	bilan, err := h.Store.FindBilan(bilanID.String())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Bilan not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Bilan fetched successfully", PublicBilanResponse{
		ID:             bilan.ID,
		NomPatient:     bilan.NomPatient,
		PrenomPatient:  bilan.PrenomPatient,
		TypeAnalyse:    bilan.TypeAnalyse,
		Statut:         bilan.Statut,
		DateFinAnalyse: bilan.DateFinAnalyse,
		Resultats:      resultViews(bilan.ResultatAnalyse),
	})
}
