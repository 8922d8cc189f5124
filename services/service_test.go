package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/steven202-max/resist-track/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Patient{},
		&models.Antibiotic{},
		&models.ResistanceRecord{},
		&models.Prescription{},
		&models.Feedback{},
		&models.PatientAssessment{},
		&models.MedicineEffectivenessAlert{},
		&models.PatientMonitoringDashboard{},
		&models.Doctor{},
	))
	return db
}

func createPatient(t *testing.T, db *gorm.DB, name string) models.Patient {
	t.Helper()
	patient := models.Patient{Name: name, Age: 40, Gender: "F"}
	require.NoError(t, db.Create(&patient).Error)
	return patient
}

func createAntibiotic(t *testing.T, db *gorm.DB, name, bacteria, classType string) models.Antibiotic {
	t.Helper()
	antibiotic := models.Antibiotic{Name: name, BacteriaTargeted: bacteria, ClassType: classType}
	require.NoError(t, db.Create(&antibiotic).Error)
	return antibiotic
}

func createDoctor(t *testing.T, db *gorm.DB, name string) models.Doctor {
	t.Helper()
	doctor := models.Doctor{
		Name:          name,
		LicenseNumber: "LIC-" + name,
		Email:         name + "@hospital.test",
		Password:      "hashed",
	}
	require.NoError(t, db.Create(&doctor).Error)
	return doctor
}

func createPrescriptionRow(t *testing.T, db *gorm.DB, patientID, antibioticID, doctorID uint) models.Prescription {
	t.Helper()
	prescription := models.Prescription{
		Code:         fmt.Sprintf("rx-%d-%d-%d", patientID, antibioticID, time.Now().UnixNano()),
		PatientID:    patientID,
		AntibioticID: antibioticID,
		DoctorID:     doctorID,
		Status:       models.PrescriptionActive,
	}
	require.NoError(t, db.Create(&prescription).Error)
	return prescription
}

func addResistance(t *testing.T, db *gorm.DB, patientID, antibioticID uint, result string) models.ResistanceRecord {
	t.Helper()
	record := models.ResistanceRecord{
		PatientID:    patientID,
		AntibioticID: antibioticID,
		Result:       result,
		TestDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		TestMethod:   "disk diffusion",
	}
	require.NoError(t, db.Create(&record).Error)
	return record
}
