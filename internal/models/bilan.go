package models

import (
	"time"
)

// Status represents the lifecycle stage of a bilan
type Status string

const (
	StatusEnAttente Status = "en_attente"
	StatusEnCours   Status = "en_cours"
	StatusTermine   Status = "termine"
	StatusArchive   Status = "archive"
)

// ValidStatus reports whether s is one of the known lifecycle stages.
func ValidStatus(s Status) bool {
	switch s {
	case StatusEnAttente, StatusEnCours, StatusTermine, StatusArchive:
		return true
	}
	return false
}

// Bilan represents one lab case file, tracked from intake to result validation.
// Column names follow the legacy bilans table so existing exports keep working.
type Bilan struct {
	BaseModel
	NomPatient      string     `gorm:"column:nom_patient;size:100;not null" json:"nom_patient"`
	PrenomPatient   string     `gorm:"column:prenom_patient;size:100;not null" json:"prenom_patient"`
	AgePatient      string     `gorm:"column:age_patient;size:20" json:"age_patient"`
	Telephone       string     `gorm:"column:telephone;size:30" json:"telephone"`
	TypeAnalyse     string     `gorm:"column:type_analyse;size:255" json:"type_analyse"`
	Statut          Status     `gorm:"column:statut;size:20;default:'en_attente'" json:"statut"`
	ResultatAnalyse string     `gorm:"column:resultat_analyse;type:text" json:"resultat_analyse"`
	DateFinAnalyse  *time.Time `gorm:"column:date_fin_analyse" json:"date_fin_analyse"`
	CreePar         string     `gorm:"column:cree_par;size:36;index" json:"cree_par"`
	SmsEnvoye       bool       `gorm:"column:sms_envoye;default:false" json:"sms_envoye"`

	// Relations
	Createur User `gorm:"foreignKey:CreePar" json:"-"`
}

// TableName keeps the legacy table name.
func (Bilan) TableName() string {
	return "bilans"
}

// ApplyStatus sets the lifecycle stage and derives the completion date.
// Entering termine stamps DateFinAnalyse with now; any other stage clears it,
// whatever the previous value was. No transition is rejected here; role
// restrictions live at the route/handler level.
func (b *Bilan) ApplyStatus(s Status, now time.Time) {
	b.Statut = s
	if s == StatusTermine {
		t := now
		b.DateFinAnalyse = &t
	} else {
		b.DateFinAnalyse = nil
	}
}

// LabStats mirrors the stats_labo view of the original schema: one row of
// per-status bucket counts.
type LabStats struct {
	DossiersEnAttente int64 `json:"dossiers_en_attente"`
	DossiersEnCours   int64 `json:"dossiers_en_cours"`
	DossiersTermines  int64 `json:"dossiers_termines"`
}
