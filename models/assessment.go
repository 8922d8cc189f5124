package models

import "time"

const (
	AssessmentInitial       = "initial"
	AssessmentFollowUp      = "follow_up"
	AssessmentSideEffects   = "side_effects"
	AssessmentEffectiveness = "effectiveness"
)

// Symptom improvement levels reported during an assessment
const (
	ImprovementSignificant = "significant"
	ImprovementModerate    = "moderate"
	ImprovementMinimal     = "minimal"
	ImprovementNoChange    = "no_change"
	ImprovementWorsening   = "worsening"
)

// Medication adherence levels
const (
	AdherenceExcellent = "excellent"
	AdherenceGood      = "good"
	AdherenceFair      = "fair"
	AdherencePoor      = "poor"
)

type PatientAssessment struct {
	AssessmentID           uint      `gorm:"primaryKey" json:"assessment_id"`
	PatientID              uint      `json:"patient_id" gorm:"not null"`
	PrescriptionID         uint      `json:"prescription_id" gorm:"not null"`
	AssessmentType         string    `json:"assessment_type"`
	ConductedBy            string    `json:"conducted_by"`
	SymptomImprovement     string    `json:"symptom_improvement"`
	SideEffectsExperienced bool      `json:"side_effects_experienced"`
	SideEffectsDetails     string    `json:"side_effects_details"`
	MedicationAdherence    string    `json:"medication_adherence"`
	PainLevel              int       `json:"pain_level"`
	OverallSatisfaction    string    `json:"overall_satisfaction"`
	DoctorNotes            string    `json:"doctor_notes"`
	CreatedAt              time.Time `json:"created_at"`
}
