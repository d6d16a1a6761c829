package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"lab-manager-server/internal/models"
	"lab-manager-server/internal/utils"
)

// utf8BOM is prepended so spreadsheet tools detect the encoding.
const utf8BOM = "\xEF\xBB\xBF"

// BuildExportRow renders one bilan as a semicolon-delimited export line:
// id; creation date; last name; first name; phone; analyses; status;
// notified flag. Semicolons inside the analyses string would shift the
// columns, so they become commas.
func BuildExportRow(b models.Bilan) string {
	notified := "NO"
	if b.SmsEnvoye {
		notified = "YES"
	}
	analyses := strings.ReplaceAll(b.TypeAnalyse, ";", ",")
	return strings.Join([]string{
		b.ID,
		b.CreatedAt.Format("2006-01-02"),
		b.NomPatient,
		b.PrenomPatient,
		b.Telephone,
		analyses,
		string(b.Statut),
		notified,
	}, ";")
}

// ExportBilans handles the spreadsheet export: one line per bilan, newest
// first, UTF-8 with a byte-order marker.
func (h *BilanHandler) ExportBilans(c *gin.Context) {
	var bilans []models.Bilan
	if err := h.DB.Order("created_at desc").Find(&bilans).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch bilans for export: "+err.Error())
		return
	}

	var sb strings.Builder
	sb.WriteString(utf8BOM)
	for _, b := range bilans {
		sb.WriteString(BuildExportRow(b))
		sb.WriteString("\n")
	}

	c.Header("Content-Disposition", "attachment; filename=\"bilans.csv\"")
	c.Data(200, "text/csv; charset=utf-8", []byte(sb.String()))
}
