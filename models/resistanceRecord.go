package models

import "time"

// Lab test results for a (patient, antibiotic) pair
const (
	ResultResistant    = "resistant"
	ResultSensitive    = "sensitive"
	ResultIntermediate = "intermediate"
)

type ResistanceRecord struct {
	RecordID     uint      `gorm:"primaryKey" json:"record_id"`
	PatientID    uint      `json:"patient_id" gorm:"not null;uniqueIndex:idx_patient_antibiotic" validate:"required"`
	AntibioticID uint      `json:"antibiotic_id" gorm:"not null;uniqueIndex:idx_patient_antibiotic" validate:"required"`
	Result       string    `json:"result" validate:"required,oneof=resistant sensitive intermediate"`
	TestDate     time.Time `json:"test_date"`
	TestMethod   string    `json:"test_method"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}
