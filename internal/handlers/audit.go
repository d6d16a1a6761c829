package handlers

import (
	"fmt"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lab-manager-server/internal/middleware"
	"lab-manager-server/internal/models"
	"lab-manager-server/internal/utils"
)

// appendAudit writes one journal entry for a bilan. The bilan write and the
// journal write are two separate store calls: if this one fails the bilan
// change stands and the miss is only logged, never surfaced to the caller.
func (h *BilanHandler) appendAudit(c *gin.Context, bilanID string, action models.AuditAction, detail string) {
	userID, _ := middleware.GetUserIDFromContext(c)
	entry := models.AuditEntry{
		BilanID: bilanID,
		UserID:  userID,
		Action:  action,
		Detail:  detail,
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		fmt.Printf("[WARN] failed to append audit entry for bilan %s: %v\n", bilanID, err)
	}
}

// sortAuditNewestFirst orders journal entries most recent first, the order
// the history panel shows them in.
func sortAuditNewestFirst(entries []models.AuditEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}

// GetBilanAudit handles listing the journal of a bilan, most recent first.
func (h *BilanHandler) GetBilanAudit(c *gin.Context) {
	bilanIDStr := c.Param("id")
	bilanID, err := uuid.Parse(bilanIDStr)
	if err != nil {
		utils.BadRequest(c, "Invalid bilan ID format")
		return
	}

	var entries []models.AuditEntry
	if err := h.DB.Where("bilan_id = ?", bilanID.String()).Find(&entries).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch audit entries: "+err.Error())
		return
	}
	sortAuditNewestFirst(entries)

	utils.Success(c, "Audit entries fetched successfully", entries)
}
