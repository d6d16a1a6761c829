package models

// AuditAction represents the kind of action recorded in the journal
type AuditAction string

const (
	ActionCreated  AuditAction = "created"
	ActionModified AuditAction = "modified"
	ActionDeleted  AuditAction = "deleted"
	ActionNotified AuditAction = "notified"
)

// AuditEntry is one immutable journal line describing an action taken on a
// bilan. Entries are only ever created; there is no update or delete path.
// BilanID is deliberately not a foreign key: the "deleted" entry outlives
// the bilan it describes.
type AuditEntry struct {
	BaseModel
	BilanID string      `gorm:"size:36;index;not null" json:"bilan_id"`
	UserID  string      `gorm:"size:36;index" json:"user_id"`
	Action  AuditAction `gorm:"size:20;not null" json:"action"`
	Detail  string      `gorm:"type:text" json:"detail"`
}

// TableName keeps the legacy table name.
func (AuditEntry) TableName() string {
	return "journal_bilans"
}
