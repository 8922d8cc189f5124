package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/steven202-max/resist-track/models"
	"gorm.io/gorm"
)

// AssessmentInput is what a doctor records at a follow-up visit.
type AssessmentInput struct {
	PrescriptionID         uint   `json:"prescription_id"`
	AssessmentType         string `json:"assessment_type" validate:"required,oneof=initial follow_up side_effects effectiveness"`
	SymptomImprovement     string `json:"symptom_improvement" validate:"required,oneof=significant moderate minimal no_change worsening"`
	SideEffectsExperienced bool   `json:"side_effects_experienced"`
	SideEffectsDetails     string `json:"side_effects_details"`
	MedicationAdherence    string `json:"medication_adherence" validate:"required,oneof=excellent good fair poor"`
	PainLevel              int    `json:"pain_level" validate:"omitempty,gte=1,lte=10"`
	OverallSatisfaction    string `json:"overall_satisfaction" validate:"omitempty,oneof=very_satisfied satisfied neutral dissatisfied very_dissatisfied"`
	DoctorNotes            string `json:"doctor_notes"`
}

// severe side-effect wording that escalates an alert to critical
var severeSideEffectTerms = []string{"severe", "serious", "allergic", "rash", "breathing"}

// SubmitAssessment stores a follow-up assessment for a patient's
// prescription, refreshes the monitoring dashboard scores and raises
// effectiveness alerts where the answers warrant them. When
// input.PrescriptionID is zero the patient's latest active prescription is
// assessed.
func SubmitAssessment(db *gorm.DB, patientID uint, conductedBy string, input AssessmentInput) (*models.PatientAssessment, []models.MedicineEffectivenessAlert, error) {
	var patient models.Patient
	if err := db.First(&patient, patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var prescription models.Prescription
	query := db.Where("patient_id = ?", patientID)
	if input.PrescriptionID != 0 {
		query = query.Where("prescription_id = ?", input.PrescriptionID)
	} else {
		query = query.Where("status = ?", models.PrescriptionActive).Order("created_at desc")
	}
	if err := query.First(&prescription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	assessment := models.PatientAssessment{
		PatientID:              patientID,
		PrescriptionID:         prescription.PrescriptionID,
		AssessmentType:         input.AssessmentType,
		ConductedBy:            conductedBy,
		SymptomImprovement:     input.SymptomImprovement,
		SideEffectsExperienced: input.SideEffectsExperienced,
		SideEffectsDetails:     input.SideEffectsDetails,
		MedicationAdherence:    input.MedicationAdherence,
		PainLevel:              input.PainLevel,
		OverallSatisfaction:    input.OverallSatisfaction,
		DoctorNotes:            input.DoctorNotes,
	}
	if err := db.Create(&assessment).Error; err != nil {
		return nil, nil, err
	}

	if err := refreshMonitoring(db, &prescription, &assessment); err != nil {
		return nil, nil, err
	}

	alerts, err := raiseEffectivenessAlerts(db, &prescription, &assessment)
	if err != nil {
		return nil, nil, err
	}
	return &assessment, alerts, nil
}

// refreshMonitoring upserts the dashboard row for the prescription and
// rescores it from the latest assessment.
func refreshMonitoring(db *gorm.DB, prescription *models.Prescription, assessment *models.PatientAssessment) error {
	var dashboard models.PatientMonitoringDashboard
	err := db.Where("patient_id = ? AND prescription_id = ?",
		prescription.PatientID, prescription.PrescriptionID).First(&dashboard).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		dashboard = models.PatientMonitoringDashboard{
			PatientID:              prescription.PatientID,
			PrescriptionID:         prescription.PrescriptionID,
			TreatmentStartDate:     prescription.CreatedAt,
			ExpectedCompletionDate: prescription.CreatedAt.AddDate(0, 0, 7),
			TreatmentStatus:        models.TreatmentOnTrack,
		}
	} else if err != nil {
		return err
	}

	dashboard.EffectivenessScore = effectivenessScore(assessment.SymptomImprovement)
	dashboard.AdherenceScore = adherenceScore(assessment.MedicationAdherence)
	dashboard.SideEffectsScore = 1.0
	if assessment.SideEffectsExperienced {
		dashboard.SideEffectsScore = 7.0
	}
	dashboard.LastAssessmentDate = time.Now()
	dashboard.TreatmentStatus = treatmentStatus(&dashboard)
	return db.Save(&dashboard).Error
}

func effectivenessScore(improvement string) float64 {
	switch improvement {
	case models.ImprovementSignificant:
		return 9.0
	case models.ImprovementModerate:
		return 7.0
	case models.ImprovementMinimal:
		return 5.0
	case models.ImprovementNoChange:
		return 3.0
	default:
		return 1.0
	}
}

func adherenceScore(adherence string) float64 {
	switch adherence {
	case models.AdherenceExcellent:
		return 10.0
	case models.AdherenceGood:
		return 8.0
	case models.AdherenceFair:
		return 5.0
	default:
		return 2.0
	}
}

func treatmentStatus(dashboard *models.PatientMonitoringDashboard) string {
	switch risk := dashboard.OverallRiskScore(); {
	case risk >= 7:
		return models.TreatmentCritical
	case risk >= 5:
		return models.TreatmentConcern
	case risk >= 3:
		return models.TreatmentMonitoring
	default:
		return models.TreatmentOnTrack
	}
}

// raiseEffectivenessAlerts creates the alerts an assessment warrants:
// ineffective treatment, severe side effects, poor adherence, and suspected
// resistance (no improvement despite excellent adherence).
func raiseEffectivenessAlerts(db *gorm.DB, prescription *models.Prescription, assessment *models.PatientAssessment) ([]models.MedicineEffectivenessAlert, error) {
	triggeredBy := fmt.Sprintf("assessment %d", assessment.AssessmentID)
	alerts := []models.MedicineEffectivenessAlert{}

	noImprovement := assessment.SymptomImprovement == models.ImprovementNoChange ||
		assessment.SymptomImprovement == models.ImprovementWorsening

	if noImprovement {
		alerts = append(alerts, models.MedicineEffectivenessAlert{
			AlertType:   models.AlertIneffective,
			Priority:    models.PriorityHigh,
			Title:       "Treatment showing no improvement",
			Description: fmt.Sprintf("Patient reports %s after treatment", assessment.SymptomImprovement),
		})
	}

	if assessment.SideEffectsExperienced && containsSevereTerm(assessment.SideEffectsDetails) {
		alerts = append(alerts, models.MedicineEffectivenessAlert{
			AlertType:   models.AlertSideEffects,
			Priority:    models.PriorityCritical,
			Title:       "Severe side effects reported",
			Description: assessment.SideEffectsDetails,
		})
	}

	if assessment.MedicationAdherence == models.AdherenceFair ||
		assessment.MedicationAdherence == models.AdherencePoor {
		alerts = append(alerts, models.MedicineEffectivenessAlert{
			AlertType:   models.AlertAdherence,
			Priority:    models.PriorityMedium,
			Title:       "Poor medication adherence",
			Description: fmt.Sprintf("Patient reports %s adherence to the prescribed course", assessment.MedicationAdherence),
		})
	}

	if noImprovement && assessment.MedicationAdherence == models.AdherenceExcellent {
		alerts = append(alerts, models.MedicineEffectivenessAlert{
			AlertType:   models.AlertResistance,
			Priority:    models.PriorityHigh,
			Title:       "Possible antibiotic resistance",
			Description: "No improvement despite excellent adherence, consider resistance testing",
		})
	}

	for i := range alerts {
		alerts[i].PatientID = prescription.PatientID
		alerts[i].PrescriptionID = prescription.PrescriptionID
		alerts[i].TriggeredBy = triggeredBy
		alerts[i].Status = models.AlertActive
		if err := db.Create(&alerts[i]).Error; err != nil {
			return nil, err
		}
	}
	return alerts, nil
}

func containsSevereTerm(details string) bool {
	lowered := strings.ToLower(details)
	for _, term := range severeSideEffectTerms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
