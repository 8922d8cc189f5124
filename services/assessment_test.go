package services

import (
	"testing"

	"github.com/steven202-max/resist-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func submitAssessment(t *testing.T, db *gorm.DB, patientID uint, input AssessmentInput) (*models.PatientAssessment, []models.MedicineEffectivenessAlert) {
	t.Helper()
	assessment, alerts, err := SubmitAssessment(db, patientID, "smith@hospital.test", input)
	require.NoError(t, err)
	return assessment, alerts
}

func TestSubmitAssessmentNoAlertsWhenImproving(t *testing.T) {
	db := newTestDB(t)
	patient := createPatient(t, db, "Alice")
	antibiotic := createAntibiotic(t, db, "Amoxicillin", "E. coli", "penicillin")
	doctor := createDoctor(t, db, "smith")
	prescription := createPrescriptionRow(t, db, patient.PatientID, antibiotic.AntibioticID, doctor.DoctorID)

	assessment, alerts := submitAssessment(t, db, patient.PatientID, AssessmentInput{
		AssessmentType:      models.AssessmentFollowUp,
		SymptomImprovement:  models.ImprovementSignificant,
		MedicationAdherence: models.AdherenceExcellent,
	})

	assert.Equal(t, prescription.PrescriptionID, assessment.PrescriptionID)
	assert.Empty(t, alerts)

	var dashboard models.PatientMonitoringDashboard
	require.NoError(t, db.Where("prescription_id = ?", prescription.PrescriptionID).First(&dashboard).Error)
	assert.Equal(t, 9.0, dashboard.EffectivenessScore)
	assert.Equal(t, 10.0, dashboard.AdherenceScore)
	assert.Equal(t, 1.0, dashboard.SideEffectsScore)
	assert.Equal(t, models.TreatmentOnTrack, dashboard.TreatmentStatus)
}

func TestSubmitAssessmentSuspectedResistance(t *testing.T) {
	db := newTestDB(t)
	patient := createPatient(t, db, "Alice")
	antibiotic := createAntibiotic(t, db, "Amoxicillin", "E. coli", "penicillin")
	doctor := createDoctor(t, db, "smith")
	createPrescriptionRow(t, db, patient.PatientID, antibiotic.AntibioticID, doctor.DoctorID)

	// no improvement despite taking every dose points at resistance
	_, alerts := submitAssessment(t, db, patient.PatientID, AssessmentInput{
		AssessmentType:      models.AssessmentEffectiveness,
		SymptomImprovement:  models.ImprovementNoChange,
		MedicationAdherence: models.AdherenceExcellent,
	})

	require.Len(t, alerts, 2)
	types := []string{alerts[0].AlertType, alerts[1].AlertType}
	assert.Contains(t, types, models.AlertIneffective)
	assert.Contains(t, types, models.AlertResistance)
	for _, alert := range alerts {
		assert.Equal(t, models.PriorityHigh, alert.Priority)
		assert.Equal(t, models.AlertActive, alert.Status)
	}
}

func TestSubmitAssessmentSevereSideEffects(t *testing.T) {
	db := newTestDB(t)
	patient := createPatient(t, db, "Alice")
	antibiotic := createAntibiotic(t, db, "Amoxicillin", "E. coli", "penicillin")
	doctor := createDoctor(t, db, "smith")
	createPrescriptionRow(t, db, patient.PatientID, antibiotic.AntibioticID, doctor.DoctorID)

	_, alerts := submitAssessment(t, db, patient.PatientID, AssessmentInput{
		AssessmentType:         models.AssessmentSideEffects,
		SymptomImprovement:     models.ImprovementModerate,
		SideEffectsExperienced: true,
		SideEffectsDetails:     "Allergic reaction with a spreading rash",
		MedicationAdherence:    models.AdherenceGood,
	})

	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertSideEffects, alerts[0].AlertType)
	assert.Equal(t, models.PriorityCritical, alerts[0].Priority)
}

func TestSubmitAssessmentMildSideEffectsNoAlert(t *testing.T) {
	db := newTestDB(t)
	patient := createPatient(t, db, "Alice")
	antibiotic := createAntibiotic(t, db, "Amoxicillin", "E. coli", "penicillin")
	doctor := createDoctor(t, db, "smith")
	createPrescriptionRow(t, db, patient.PatientID, antibiotic.AntibioticID, doctor.DoctorID)

	_, alerts := submitAssessment(t, db, patient.PatientID, AssessmentInput{
		AssessmentType:         models.AssessmentSideEffects,
		SymptomImprovement:     models.ImprovementModerate,
		SideEffectsExperienced: true,
		SideEffectsDetails:     "Mild nausea in the mornings",
		MedicationAdherence:    models.AdherenceGood,
	})
	assert.Empty(t, alerts)
}

func TestSubmitAssessmentPoorAdherence(t *testing.T) {
	db := newTestDB(t)
	patient := createPatient(t, db, "Alice")
	antibiotic := createAntibiotic(t, db, "Amoxicillin", "E. coli", "penicillin")
	doctor := createDoctor(t, db, "smith")
	createPrescriptionRow(t, db, patient.PatientID, antibiotic.AntibioticID, doctor.DoctorID)

	_, alerts := submitAssessment(t, db, patient.PatientID, AssessmentInput{
		AssessmentType:      models.AssessmentFollowUp,
		SymptomImprovement:  models.ImprovementMinimal,
		MedicationAdherence: models.AdherenceFair,
	})

	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertAdherence, alerts[0].AlertType)
	assert.Equal(t, models.PriorityMedium, alerts[0].Priority)
}

func TestSubmitAssessmentRescoresSingleDashboardRow(t *testing.T) {
	db := newTestDB(t)
	patient := createPatient(t, db, "Alice")
	antibiotic := createAntibiotic(t, db, "Amoxicillin", "E. coli", "penicillin")
	doctor := createDoctor(t, db, "smith")
	prescription := createPrescriptionRow(t, db, patient.PatientID, antibiotic.AntibioticID, doctor.DoctorID)

	submitAssessment(t, db, patient.PatientID, AssessmentInput{
		AssessmentType:      models.AssessmentInitial,
		SymptomImprovement:  models.ImprovementSignificant,
		MedicationAdherence: models.AdherenceExcellent,
	})
	submitAssessment(t, db, patient.PatientID, AssessmentInput{
		AssessmentType:         models.AssessmentFollowUp,
		SymptomImprovement:     models.ImprovementWorsening,
		SideEffectsExperienced: true,
		SideEffectsDetails:     "dizziness",
		MedicationAdherence:    models.AdherencePoor,
	})

	var count int64
	db.Model(&models.PatientMonitoringDashboard{}).
		Where("prescription_id = ?", prescription.PrescriptionID).Count(&count)
	assert.Equal(t, int64(1), count)

	var dashboard models.PatientMonitoringDashboard
	require.NoError(t, db.Where("prescription_id = ?", prescription.PrescriptionID).First(&dashboard).Error)
	assert.Equal(t, 1.0, dashboard.EffectivenessScore)
	assert.Equal(t, 2.0, dashboard.AdherenceScore)
	assert.Equal(t, 7.0, dashboard.SideEffectsScore)
	assert.Equal(t, models.TreatmentCritical, dashboard.TreatmentStatus)
}

func TestSubmitAssessmentUnknownPatient(t *testing.T) {
	db := newTestDB(t)

	_, _, err := SubmitAssessment(db, 9999, "smith@hospital.test", AssessmentInput{
		AssessmentType:      models.AssessmentInitial,
		SymptomImprovement:  models.ImprovementMinimal,
		MedicationAdherence: models.AdherenceGood,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitAssessmentNoActivePrescription(t *testing.T) {
	db := newTestDB(t)
	patient := createPatient(t, db, "Alice")

	_, _, err := SubmitAssessment(db, patient.PatientID, "smith@hospital.test", AssessmentInput{
		AssessmentType:      models.AssessmentInitial,
		SymptomImprovement:  models.ImprovementMinimal,
		MedicationAdherence: models.AdherenceGood,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
