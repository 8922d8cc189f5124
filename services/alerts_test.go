package services

import (
	"testing"

	"github.com/steven202-max/resist-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcknowledgeAlert(t *testing.T) {
	db := newTestDB(t)
	patient := createPatient(t, db, "Alice")
	antibiotic := createAntibiotic(t, db, "Amoxicillin", "E. coli", "penicillin")
	doctor := createDoctor(t, db, "smith")
	createPrescriptionRow(t, db, patient.PatientID, antibiotic.AntibioticID, doctor.DoctorID)

	_, alerts := submitAssessment(t, db, patient.PatientID, AssessmentInput{
		AssessmentType:      models.AssessmentFollowUp,
		SymptomImprovement:  models.ImprovementWorsening,
		MedicationAdherence: models.AdherenceGood,
	})
	require.NotEmpty(t, alerts)

	acknowledged, err := AcknowledgeAlert(db, alerts[0].AlertID, "smith@hospital.test")
	require.NoError(t, err)
	assert.Equal(t, models.AlertAcknowledged, acknowledged.Status)
	assert.Equal(t, "smith@hospital.test", acknowledged.AcknowledgedBy)
	require.NotNil(t, acknowledged.AcknowledgedAt)

	resolved, err := ResolveAlert(db, alerts[0].AlertID, "Switched to ceftriaxone")
	require.NoError(t, err)
	assert.Equal(t, models.AlertResolved, resolved.Status)
	assert.Equal(t, "Switched to ceftriaxone", resolved.ResolutionNotes)
}

func TestAlertNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := AcknowledgeAlert(db, 9999, "smith@hospital.test")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ResolveAlert(db, 9999, "notes")
	assert.ErrorIs(t, err, ErrNotFound)
}
