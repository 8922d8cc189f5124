package models

import "time"

const (
	PrescriptionActive    = "active"
	PrescriptionCompleted = "completed"
	PrescriptionCancelled = "cancelled"
)

type Prescription struct {
	PrescriptionID uint      `gorm:"primaryKey" json:"prescription_id"`
	Code           string    `json:"code" gorm:"uniqueIndex;not null"`
	PatientID      uint      `json:"patient_id" gorm:"not null"`
	AntibioticID   uint      `json:"antibiotic_id" gorm:"not null"`
	DoctorID       uint      `json:"doctor_id" gorm:"not null"`
	Diagnosis      string    `json:"diagnosis"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	Duration       string    `json:"duration"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
