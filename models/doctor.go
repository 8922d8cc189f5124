package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Doctor struct {
	DoctorID       uint      `gorm:"primaryKey" json:"doctor_id"`
	Name           string    `json:"name" gorm:"not null" validate:"required"`
	LicenseNumber  string    `json:"license_number" gorm:"unique;not null" validate:"required"`
	Specialization string    `json:"specialization"`
	Hospital       string    `json:"hospital"`
	Email          string    `json:"email" gorm:"unique;not null" validate:"required,email"`
	Phone          string    `json:"phone"`
	Password       string    `json:"password,omitempty" gorm:"not null" validate:"required,min=6"`
	Verified       string    `json:"verified"`
	CreatedAt      time.Time `json:"created_at"`
}

type DoctorClaims struct {
	Id          uint   `json:"id"`
	DoctorEmail string `json:"email"`
	jwt.RegisteredClaims
}
