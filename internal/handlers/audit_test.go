package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lab-manager-server/internal/models"
)

func auditEntryAt(action models.AuditAction, ts time.Time) models.AuditEntry {
	return models.AuditEntry{
		BaseModel: models.BaseModel{CreatedAt: ts},
		BilanID:   "3f1c9a44-0000-0000-0000-000000000001",
		Action:    action,
	}
}

func TestSortAuditNewestFirst(t *testing.T) {
	base := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	created := auditEntryAt(models.ActionCreated, base)
	modified := auditEntryAt(models.ActionModified, base.Add(time.Hour))
	notified := auditEntryAt(models.ActionNotified, base.Add(2*time.Hour))

	entries := []models.AuditEntry{created, notified, modified}
	sortAuditNewestFirst(entries)

	assert.Equal(t, []models.AuditAction{
		models.ActionNotified,
		models.ActionModified,
		models.ActionCreated,
	}, []models.AuditAction{entries[0].Action, entries[1].Action, entries[2].Action})
}

func TestSortAuditNewestFirstEmpty(t *testing.T) {
	var entries []models.AuditEntry
	sortAuditNewestFirst(entries)
	assert.Empty(t, entries)
}
