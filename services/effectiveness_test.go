package services

import (
	"testing"

	"github.com/steven202-max/resist-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEffectivenessNoFeedback(t *testing.T) {
	db := newTestDB(t)
	antibiotic := createAntibiotic(t, db, "Amoxicillin", "E. coli", "penicillin")

	stat, err := ComputeEffectiveness(db, antibiotic.AntibioticID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stat.TotalFeedback)
	assert.Equal(t, 0.0, stat.EffectivenessRate)
}

func TestComputeEffectivenessRate(t *testing.T) {
	db := newTestDB(t)
	doctor := createDoctor(t, db, "smith")
	antibiotic := createAntibiotic(t, db, "Ceftriaxone", "E. coli", "cephalosporin")
	other := createAntibiotic(t, db, "Gentamicin", "E. coli", "aminoglycoside")

	outcomes := []string{models.OutcomeRecovered, models.OutcomeRecovered, models.OutcomeNoImprovement}
	for i, outcome := range outcomes {
		patient := createPatient(t, db, "Patient")
		prescription := createPrescriptionRow(t, db, patient.PatientID, antibiotic.AntibioticID, doctor.DoctorID)
		_, err := SubmitFeedback(db, prescription.PrescriptionID, outcome, "", 0)
		require.NoError(t, err, "feedback %d", i)
	}

	// feedback against another antibiotic must not leak into the stat
	patient := createPatient(t, db, "Other Patient")
	prescription := createPrescriptionRow(t, db, patient.PatientID, other.AntibioticID, doctor.DoctorID)
	_, err := SubmitFeedback(db, prescription.PrescriptionID, models.OutcomeWorsening, "", 0)
	require.NoError(t, err)

	stat, err := ComputeEffectiveness(db, antibiotic.AntibioticID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stat.TotalFeedback)
	assert.Equal(t, int64(2), stat.RecoveredCount)
	assert.Equal(t, 66.7, stat.EffectivenessRate)
}

func TestComputeEffectivenessUnknownAntibiotic(t *testing.T) {
	db := newTestDB(t)

	_, err := ComputeEffectiveness(db, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
