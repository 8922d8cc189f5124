package services

import (
	"testing"

	"github.com/steven202-max/resist-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePrescriptionAdvisoryResistance(t *testing.T) {
	db := newTestDB(t)
	patient := createPatient(t, db, "Alice Johnson")
	doctor := createDoctor(t, db, "smith")
	amoxicillin := createAntibiotic(t, db, "Amoxicillin", "E. coli", "penicillin")
	addResistance(t, db, patient.PatientID, amoxicillin.AntibioticID, models.ResultResistant)

	input := PrescriptionInput{
		PatientID:    patient.PatientID,
		AntibioticID: amoxicillin.AntibioticID,
		Diagnosis:    "UTI",
		Dosage:       "500mg",
		Frequency:    "every 8 hours",
		Duration:     "7 days",
	}

	// resistance warns but never blocks
	prescription, verdict, err := CreatePrescription(db, doctor.DoctorID, input)
	require.NoError(t, err)
	assert.True(t, verdict.Resistant)
	assert.Equal(t, models.PrescriptionActive, prescription.Status)
	assert.NotEmpty(t, prescription.Code)
	assert.Equal(t, doctor.DoctorID, prescription.DoctorID)

	var saved models.Prescription
	require.NoError(t, db.First(&saved, prescription.PrescriptionID).Error)
	assert.Equal(t, "UTI", saved.Diagnosis)
}

func TestCreatePrescriptionNotResistant(t *testing.T) {
	db := newTestDB(t)
	patient := createPatient(t, db, "Bob Wilson")
	doctor := createDoctor(t, db, "jones")
	ceftriaxone := createAntibiotic(t, db, "Ceftriaxone", "E. coli", "cephalosporin")

	prescription, verdict, err := CreatePrescription(db, doctor.DoctorID, PrescriptionInput{
		PatientID:    patient.PatientID,
		AntibioticID: ceftriaxone.AntibioticID,
		Diagnosis:    "Pneumonia",
	})
	require.NoError(t, err)
	assert.False(t, verdict.Resistant)
	assert.Equal(t, models.PrescriptionActive, prescription.Status)
}

func TestCreatePrescriptionUnknownDoctor(t *testing.T) {
	db := newTestDB(t)
	patient := createPatient(t, db, "Carol Davis")
	antibiotic := createAntibiotic(t, db, "Gentamicin", "E. coli", "aminoglycoside")

	_, _, err := CreatePrescription(db, 9999, PrescriptionInput{
		PatientID:    patient.PatientID,
		AntibioticID: antibiotic.AntibioticID,
		Diagnosis:    "Sepsis",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePrescriptionUnknownPatient(t *testing.T) {
	db := newTestDB(t)
	doctor := createDoctor(t, db, "smith")
	antibiotic := createAntibiotic(t, db, "Gentamicin", "E. coli", "aminoglycoside")

	_, _, err := CreatePrescription(db, doctor.DoctorID, PrescriptionInput{
		PatientID:    9999,
		AntibioticID: antibiotic.AntibioticID,
		Diagnosis:    "Sepsis",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
