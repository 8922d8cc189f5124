package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/steven202-max/resist-track/models"
	"gorm.io/gorm"
)

// PrescriptionInput carries the doctor-entered fields of a new prescription
type PrescriptionInput struct {
	PatientID    uint   `json:"patient_id" validate:"required"`
	AntibioticID uint   `json:"antibiotic_id" validate:"required"`
	Diagnosis    string `json:"diagnosis" validate:"required"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Notes        string `json:"notes"`
}

// CreatePrescription persists a new active prescription. The resistance check
// runs first but is advisory only: a RESISTANT verdict is returned alongside
// the created prescription so the doctor sees the warning, creation is never
// blocked by it.
func CreatePrescription(db *gorm.DB, doctorID uint, input PrescriptionInput) (*models.Prescription, *ResistanceVerdict, error) {
	var doctor models.Doctor
	if err := db.First(&doctor, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	// also validates that patient and antibiotic exist
	verdict, err := CheckResistance(db, input.PatientID, input.AntibioticID)
	if err != nil {
		return nil, nil, err
	}

	prescription := models.Prescription{
		Code:         uuid.NewString(),
		PatientID:    input.PatientID,
		AntibioticID: input.AntibioticID,
		DoctorID:     doctorID,
		Diagnosis:    input.Diagnosis,
		Dosage:       input.Dosage,
		Frequency:    input.Frequency,
		Duration:     input.Duration,
		Notes:        input.Notes,
		Status:       models.PrescriptionActive,
	}
	if err := db.Create(&prescription).Error; err != nil {
		return nil, nil, err
	}
	return &prescription, verdict, nil
}
