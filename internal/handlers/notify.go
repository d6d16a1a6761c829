package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lab-manager-server/internal/labcore"
	"lab-manager-server/internal/models"
	"lab-manager-server/internal/utils"
)

// NotifyResponse carries the generated deep link back to the UI, which opens
// it in a new tab.
type NotifyResponse struct {
	Link      string `json:"link"`
	Telephone string `json:"telephone"`
}

// NotifyBilan builds the prefilled-message deep link carrying the public
// result URL, marks the bilan as notified and journals the action. The flag
// and the audit entry record that the link was generated, not that the
// patient ever opened it.
func (h *BilanHandler) NotifyBilan(c *gin.Context) {
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

	if bilan.Telephone == "" {
		utils.BadRequest(c, "Bilan has no phone number on file")
		return
	}

	publicLink := fmt.Sprintf("%s?id=%s", h.Cfg.PublicURL, bilan.ID)
	message := fmt.Sprintf("Bonjour %s %s, vos résultats d'analyses sont disponibles: %s",
		bilan.NomPatient, bilan.PrenomPatient, publicLink)
	link := labcore.WhatsAppLink(bilan.Telephone, message)

	bilan.SmsEnvoye = true
	if err := h.DB.Save(&bilan).Error; err != nil {
		utils.InternalServerError(c, "Failed to mark bilan as notified: "+err.Error())
		return
	}

	h.appendAudit(c, bilan.ID, models.ActionNotified,
		"Result notification link generated for "+labcore.NormalizePhone(bilan.Telephone))

	utils.Success(c, "Notification link generated", NotifyResponse{
		Link:      link,
		Telephone: labcore.NormalizePhone(bilan.Telephone),
	})
}
