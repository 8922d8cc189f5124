package models

import (
	"math"
	"time"
)

const (
	TreatmentOnTrack    = "on_track"
	TreatmentMonitoring = "monitoring"
	TreatmentConcern    = "concern"
	TreatmentCritical   = "critical"
	TreatmentCompleted  = "completed"
)

// PatientMonitoringDashboard tracks treatment progress per prescription,
// refreshed every time an assessment comes in
type PatientMonitoringDashboard struct {
	MonitoringID           uint      `gorm:"primaryKey" json:"monitoring_id"`
	PatientID              uint      `json:"patient_id" gorm:"not null;uniqueIndex:idx_patient_prescription"`
	PrescriptionID         uint      `json:"prescription_id" gorm:"not null;uniqueIndex:idx_patient_prescription"`
	TreatmentStartDate     time.Time `json:"treatment_start_date"`
	ExpectedCompletionDate time.Time `json:"expected_completion_date"`
	LastAssessmentDate     time.Time `json:"last_assessment_date"`
	TreatmentStatus        string    `json:"treatment_status"`
	EffectivenessScore     float64   `json:"effectiveness_score"`
	AdherenceScore         float64   `json:"adherence_score"`
	SideEffectsScore       float64   `json:"side_effects_score"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// OverallRiskScore combines the three scores into a single 0-10 risk figure
func (d *PatientMonitoringDashboard) OverallRiskScore() float64 {
	risk := (d.SideEffectsScore + (10 - d.EffectivenessScore) + (10 - d.AdherenceScore)) / 3
	return math.Round(risk*10) / 10
}
