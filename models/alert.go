package models

import "time"

const (
	AlertIneffective = "ineffective"
	AlertSideEffects = "side_effects"
	AlertResistance  = "resistance"
	AlertAdherence   = "adherence"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

const (
	AlertActive       = "active"
	AlertAcknowledged = "acknowledged"
	AlertResolved     = "resolved"
	AlertDismissed    = "dismissed"
)

type MedicineEffectivenessAlert struct {
	AlertID         uint       `gorm:"primaryKey" json:"alert_id"`
	PatientID       uint       `json:"patient_id" gorm:"not null"`
	PrescriptionID  uint       `json:"prescription_id" gorm:"not null"`
	AlertType       string     `json:"alert_type"`
	Priority        string     `json:"priority"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	TriggeredBy     string     `json:"triggered_by"`
	Status          string     `json:"status"`
	AcknowledgedBy  string     `json:"acknowledged_by"`
	AcknowledgedAt  *time.Time `json:"acknowledged_at"`
	ResolutionNotes string     `json:"resolution_notes"`
	CreatedAt       time.Time  `json:"created_at"`
}
