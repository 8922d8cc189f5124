package models

import "time"

type Patient struct {
	PatientID      uint      `gorm:"primaryKey" json:"patient_id"`
	Name           string    `json:"name" validate:"required"`
	Age            int       `json:"age" validate:"gte=0,lte=150"`
	Gender         string    `json:"gender" validate:"required,oneof=M F O"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email" validate:"omitempty,email"`
	MedicalHistory string    `json:"medical_history"`
	Allergies      string    `json:"allergies"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
