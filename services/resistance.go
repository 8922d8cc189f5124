package services

import (
	"errors"

	"github.com/steven202-max/resist-track/models"
	"gorm.io/gorm"
)

// ResistanceVerdict is the advisory result of a resistance lookup. A patient
// counts as resistant only when a lab record with result "resistant" exists
// for the pair; sensitive/intermediate records and no record at all both
// come back as not resistant.
type ResistanceVerdict struct {
	Resistant bool                     `json:"is_resistant"`
	Record    *models.ResistanceRecord `json:"record,omitempty"`
}

// CheckResistance looks up the resistance status of a patient against an
// antibiotic. Pure read, no side effects.
func CheckResistance(db *gorm.DB, patientID, antibioticID uint) (*ResistanceVerdict, error) {
	var patient models.Patient
	if err := db.First(&patient, patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var antibiotic models.Antibiotic
	if err := db.First(&antibiotic, antibioticID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var record models.ResistanceRecord
	err := db.Where("patient_id = ? AND antibiotic_id = ? AND result = ?",
		patientID, antibioticID, models.ResultResistant).First(&record).Error
	if err == nil {
		return &ResistanceVerdict{Resistant: true, Record: &record}, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ResistanceVerdict{Resistant: false}, nil
	}
	return nil, err
}
