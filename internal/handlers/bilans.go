package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lab-manager-server/internal/config"
	"lab-manager-server/internal/labcore"
	"lab-manager-server/internal/middleware"
	"lab-manager-server/internal/models"
	"lab-manager-server/internal/utils"
)

// BilanHandler handles bilan (lab case file) related requests.
type BilanHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewBilanHandler creates a new BilanHandler.
func NewBilanHandler(db *gorm.DB, cfg *config.Config) *BilanHandler {
	return &BilanHandler{DB: db, Cfg: cfg}
}

// AnalysisChoiceRequest is one requested analysis in a create/update payload.
type AnalysisChoiceRequest struct {
	Kind string `json:"kind" binding:"required,oneof=predefined custom"`
	Name string `json:"name"`
}

func toChoices(reqs []AnalysisChoiceRequest) []labcore.AnalysisChoice {
	choices := make([]labcore.AnalysisChoice, len(reqs))
	for i, r := range reqs {
		if r.Kind == string(labcore.ChoicePredefined) {
			choices[i] = labcore.Predefined(r.Name)
		} else {
			choices[i] = labcore.Custom(r.Name)
		}
	}
	return choices
}

// ResultParameterView is a decoded result parameter plus the out-of-range
// flag computed against its reference bounds.
type ResultParameterView struct {
	labcore.ResultParameter
	OutOfRange bool `json:"hors_plage"`
}

func resultViews(encoded string) []ResultParameterView {
	params := labcore.DecodeResults(encoded)
	views := make([]ResultParameterView, len(params))
	for i, p := range params {
		views[i] = ResultParameterView{
			ResultParameter: p,
			OutOfRange:      labcore.IsOutOfRange(p.Value, p.Min, p.Max),
		}
	}
	return views
}

// BilanResponse is a bilan plus its decoded analysis and result lists.
type BilanResponse struct {
	models.Bilan
	Analyses  []labcore.AnalysisChoice `json:"analyses"`
	Resultats []ResultParameterView    `json:"resultats"`
}

func bilanResponse(b models.Bilan) BilanResponse {
	return BilanResponse{
		Bilan:     b,
		Analyses:  labcore.SplitAnalyses(b.TypeAnalyse, labcore.DefaultVocabulary),
		Resultats: resultViews(b.ResultatAnalyse),
	}
}

// CreateBilanRequest represents the request body for creating a bilan.
type CreateBilanRequest struct {
	NomPatient    string                    `json:"nom_patient" binding:"required"`
	PrenomPatient string                    `json:"prenom_patient" binding:"required"`
	AgePatient    string                    `json:"age_patient"`
	Telephone     string                    `json:"telephone"`
	Analyses      []AnalysisChoiceRequest   `json:"analyses" binding:"required,min=1,dive"`
	Statut        string                    `json:"statut"`
	Resultats     []labcore.ResultParameter `json:"resultats"`
}

// CreateBilan handles creating a new bilan. The creator is taken from the
// authenticated user; the audit entry is appended after the store assigns
// the new identifier.
func (h *BilanHandler) CreateBilan(c *gin.Context) {
	var req CreateBilanRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User ID not found in token")
		return
	}

	statut := models.StatusEnAttente
	if req.Statut != "" {
		statut = models.Status(req.Statut)
		if !models.ValidStatus(statut) {
			utils.BadRequest(c, "Unknown status: "+req.Statut)
			return
		}
	}
	// Same gate as UpdateBilan: reception opens case files but never moves
	// them through the lifecycle.
	if statut != models.StatusEnAttente {
		role, _ := middleware.GetUserRoleFromContext(c)
		if role == models.RoleReception {
			utils.Forbidden(c, "Reception staff cannot set the status of a bilan")
			return
		}
	}

	bilan := models.Bilan{
		NomPatient:      req.NomPatient,
		PrenomPatient:   req.PrenomPatient,
		AgePatient:      req.AgePatient,
		Telephone:       req.Telephone,
		TypeAnalyse:     labcore.JoinAnalyses(toChoices(req.Analyses)),
		ResultatAnalyse: labcore.EncodeResults(req.Resultats),
		CreePar:         userID,
	}
	bilan.ApplyStatus(statut, time.Now())

	if err := h.DB.Create(&bilan).Error; err != nil {
		utils.InternalServerError(c, "Failed to create bilan: "+err.Error())
		return
	}

	h.appendAudit(c, bilan.ID, models.ActionCreated,
		fmt.Sprintf("Record created for %s %s (%s)", bilan.NomPatient, bilan.PrenomPatient, bilan.TypeAnalyse))

	utils.Created(c, "Bilan created successfully", bilanResponse(bilan))
}

// GetBilans handles listing bilans, newest first. Supports an optional free
// text search over patient name and id, and an optional result cap.
func (h *BilanHandler) GetBilans(c *gin.Context) {
	query := h.DB.Model(&models.Bilan{}).Order("created_at desc")

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("nom_patient LIKE ? OR prenom_patient LIKE ? OR id LIKE ?", like, like, like)
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			utils.BadRequest(c, "Invalid limit parameter: "+limitStr)
			return
		}
		query = query.Limit(limit)
	}

	var bilans []models.Bilan
	if err := query.Find(&bilans).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch bilans: "+err.Error())
		return
	}

	responses := make([]BilanResponse, len(bilans))
	for i, b := range bilans {
		responses[i] = bilanResponse(b)
	}

	utils.Success(c, "Bilans fetched successfully", responses)
}

// GetBilanByID handles fetching a single bilan by its ID.
func (h *BilanHandler) GetBilanByID(c *gin.Context) {
	bilanIDStr := c.Param("id")
	bilanID, err := uuid.Parse(bilanIDStr)
	if err != nil {
		utils.BadRequest(c, "Invalid bilan ID format")
		return
	}

	var bilan models.Bilan
	if err := h.DB.First(&bilan, "id = ?", bilanID.String()).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Bilan not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Bilan fetched successfully", bilanResponse(bilan))
}

// UpdateBilanRequest represents the request body for updating a bilan.
// Analyses and Resultats are pointers so an absent field leaves the stored
// value untouched while an empty list clears it.
type UpdateBilanRequest struct {
	NomPatient    string                     `json:"nom_patient"`
	PrenomPatient string                     `json:"prenom_patient"`
	AgePatient    string                     `json:"age_patient"`
	Telephone     string                     `json:"telephone"`
	Analyses      *[]AnalysisChoiceRequest   `json:"analyses"`
	Statut        string                     `json:"statut"`
	Resultats     *[]labcore.ResultParameter `json:"resultats"`
}

// UpdateBilan handles updating an existing bilan. Setting the status to
// termine stamps the completion date; any other status clears it. Reception
// staff may edit patient details but not the status.
func (h *BilanHandler) UpdateBilan(c *gin.Context) {
	bilanIDStr := c.Param("id")
	bilanID, err := uuid.Parse(bilanIDStr)
	if err != nil {
		utils.BadRequest(c, "Invalid bilan ID format")
		return
	}

	var req UpdateBilanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var bilan models.Bilan
	if err := h.DB.First(&bilan, "id = ?", bilanID.String()).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Bilan not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if req.NomPatient != "" {
		bilan.NomPatient = req.NomPatient
	}
	if req.PrenomPatient != "" {
		bilan.PrenomPatient = req.PrenomPatient
	}
	if req.AgePatient != "" {
		bilan.AgePatient = req.AgePatient
	}
	if req.Telephone != "" {
		bilan.Telephone = req.Telephone
	}
	if req.Analyses != nil {
		if len(*req.Analyses) == 0 {
			utils.BadRequest(c, "At least one analysis must be selected")
			return
		}
		bilan.TypeAnalyse = labcore.JoinAnalyses(toChoices(*req.Analyses))
	}
	if req.Resultats != nil {
		bilan.ResultatAnalyse = labcore.EncodeResults(*req.Resultats)
	}

	auditDetail := "Record updated"
	target := bilan.Statut
	if req.Statut != "" {
		target = models.Status(req.Statut)
		if !models.ValidStatus(target) {
			utils.BadRequest(c, "Unknown status: "+req.Statut)
			return
		}
		if target != bilan.Statut {
			role, _ := middleware.GetUserRoleFromContext(c)
			if role == models.RoleReception {
				utils.Forbidden(c, "Reception staff cannot change the status of a bilan")
				return
			}
			auditDetail = fmt.Sprintf("Status changed from %s to %s", bilan.Statut, target)
		}
	}
	// The completion date is recomputed on every save, like the original form did.
	bilan.ApplyStatus(target, time.Now())

	if err := h.DB.Save(&bilan).Error; err != nil {
		utils.InternalServerError(c, "Failed to update bilan: "+err.Error())
		return
	}

	h.appendAudit(c, bilan.ID, models.ActionModified, auditDetail)

	utils.Success(c, "Bilan updated successfully", bilanResponse(bilan))
}

// DeleteBilan handles deleting a bilan. Admin only; the UI asks for an
// explicit confirmation before calling this. The audit entry is written
// before the row disappears so it still references an existing record.
func (h *BilanHandler) DeleteBilan(c *gin.Context) {
	bilanIDStr := c.Param("id")
	bilanID, err := uuid.Parse(bilanIDStr)
	if err != nil {
		utils.BadRequest(c, "Invalid bilan ID format")
		return
	}

	var bilan models.Bilan
	if err := h.DB.First(&bilan, "id = ?", bilanID.String()).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Bilan not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	h.appendAudit(c, bilan.ID, models.ActionDeleted,
		fmt.Sprintf("Record deleted for %s %s", bilan.NomPatient, bilan.PrenomPatient))

	if err := h.DB.Delete(&models.Bilan{}, "id = ?", bilan.ID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete bilan: "+err.Error())
		return
	}

	utils.Success(c, "Bilan deleted successfully", nil)
}
