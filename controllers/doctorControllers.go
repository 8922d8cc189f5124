package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/steven202-max/resist-track/authentication"
	"github.com/steven202-max/resist-track/configuration"
	"github.com/steven202-max/resist-track/models"
	"github.com/steven202-max/resist-track/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

// Signup handles the registration of a new doctor.
func Signup(c *gin.Context) {
	var doctor models.Doctor

	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Binding error",
			"data":    err.Error(),
		})
		return
	}

	// Validate doctor struct fields
	if err := validate.Struct(doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	// Check if email is already in use
	var existingDoctor models.Doctor
	if err := configuration.DB.Where("email = ?", doctor.Email).First(&existingDoctor).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "Failed",
			"message": "Email already in use",
			"data":    "Choose another email",
		})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Failed",
			"message": "Database error",
			"data":    err.Error(),
		})
		return
	}

	// Check if licence is already in use
	if err := configuration.DB.Where("license_number = ?", doctor.LicenseNumber).First(&existingDoctor).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "Failed",
			"message": "Licence number already in use",
			"data":    "Choose another Licence number",
		})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Failed",
			"message": "Database error",
			"data":    err.Error(),
		})
		return
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(doctor.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Failed",
			"message": "Failed to hash password",
			"data":    err.Error(),
		})
		return
	}
	doctor.Password = string(hashedPassword)

	// Generate OTP and send it via email
	otp := authentication.GenerateOTP(6)
	SendOTPEmail(otp, doctor.Email)

	// Marshal doctor data to JSON
	jsonData, err := json.Marshal(doctor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Failed to marshal json data",
			"data":    err.Error(),
		})
		return
	}

	// Store OTP in Redis with a key based on the doctor's email
	if err := configuration.Client.Set(context.Background(), "otp"+doctor.Email, otp, 300*time.Second).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Failed",
			"message": "Redis error",
			"data":    err.Error(),
		})
		return
	}

	// Store doctor data in Redis with a key based on the doctor's email
	if err := configuration.Client.Set(context.Background(), "user"+doctor.Email, jsonData, 1200*time.Second).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Failed",
			"message": "Redis error",
			"data":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Go to verification page",
		"data":    nil,
	})
}

// VerifyOTP for doctor signup.
func VerifyOTP(c *gin.Context) {
	var doctorData models.Doctor
	type OTPString struct {
		Email string `json:"email"`
		Otp   string `json:"otp"`
	}

	var doctor OTPString
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Binding error",
			"data":    err.Error(),
		})
		return
	}
	if doctor.Otp == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "OTP not entered",
			"data":    nil,
		})
		return
	}

	// Retrieve OTP from Redis
	otp, err := configuration.GetRedis("otp" + doctor.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "Failed",
			"message": "otp not found",
			"data":    err.Error(),
		})
		return
	}

	if !authentication.ValidateOTP(otp, doctor.Otp) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "Failed",
			"message": "Incorrect OTP",
			"data":    nil,
		})
		return
	}

	// If OTP is valid, retrieve doctor data from Redis
	user, err := configuration.GetRedis("user" + doctor.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "Failed",
			"message": "User details missing",
			"data":    err.Error(),
		})
		return
	}

	// Unmarshal doctor data
	err = json.Unmarshal([]byte(user), &doctorData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Failed",
			"message": "Error in unmarshaling json data",
			"data":    err.Error(),
		})
		return
	}

	// Create doctor record in the database
	doctorData.Verified = "true"
	if err := configuration.DB.Create(&doctorData).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Failed",
			"message": "Database error",
			"data":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Signup successful",
		"data":    doctorData,
	})
}

// DoctorLogin
func DoctorLogin(c *gin.Context) {
	var doctors models.Doctor
	if err := c.BindJSON(&doctors); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Finding doctor by email
	existingDoctor, err := authentication.GetDoctorByEmail(doctors.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email"})
		return
	}

	// Comparing password hashes
	if err := bcrypt.CompareHashAndPassword([]byte(existingDoctor.Password), []byte(doctors.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	// Generating JWT token for authenticated doctor
	token, err := authentication.GenerateDoctorToken(existingDoctor.Email, existingDoctor.DoctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

// DoctorLogout
func DoctorLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// DoctorDashboard shows the doctor's recent prescriptions with resistance
// alerts for any that hit a known-resistant antibiotic
func DoctorDashboard(c *gin.Context) {
	doctorID := c.GetUint("doctor_id")

	var recent []models.Prescription
	if err := configuration.DB.Where("doctor_id = ?", doctorID).
		Order("created_at desc").Limit(10).Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prescriptions"})
		return
	}

	resistanceAlerts := []models.Prescription{}
	for _, prescription := range recent {
		verdict, err := services.CheckResistance(configuration.DB, prescription.PatientID, prescription.AntibioticID)
		if err != nil {
			continue
		}
		if verdict.Resistant {
			resistanceAlerts = append(resistanceAlerts, prescription)
		}
	}

	var totalPrescriptions int64
	configuration.DB.Model(&models.Prescription{}).Where("doctor_id = ?", doctorID).Count(&totalPrescriptions)

	var activePrescriptions int64
	configuration.DB.Model(&models.Prescription{}).
		Where("doctor_id = ? AND status = ?", doctorID, models.PrescriptionActive).Count(&activePrescriptions)

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Dashboard fetched successfully",
		"data": gin.H{
			"recent_prescriptions": recent,
			"resistance_alerts":    resistanceAlerts,
			"total_prescriptions":  totalPrescriptions,
			"active_prescriptions": activePrescriptions,
		},
	})
}
