package handlers

import (
	"github.com/gin-gonic/gin"

	"lab-manager-server/internal/models"
	"lab-manager-server/internal/utils"
)

// GetStats handles the dashboard counters: one row of per-status bucket
// counts, like the stats_labo view of the original schema.
func (h *BilanHandler) GetStats(c *gin.Context) {
	var buckets []struct {
		Statut models.Status
		N      int64
	}
	if err := h.DB.Model(&models.Bilan{}).
		Select("statut, count(*) as n").
		Group("statut").
		Scan(&buckets).Error; err != nil {
		utils.InternalServerError(c, "Failed to compute stats: "+err.Error())
		return
	}

	var stats models.LabStats
	for _, b := range buckets {
		switch b.Statut {
		case models.StatusEnAttente:
			stats.DossiersEnAttente = b.N
		case models.StatusEnCours:
			stats.DossiersEnCours = b.N
		case models.StatusTermine:
			stats.DossiersTermines = b.N
		}
	}

	utils.Success(c, "Stats fetched successfully", stats)
}
