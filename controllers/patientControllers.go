package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/steven202-max/resist-track/configuration"
	"github.com/steven202-max/resist-track/models"
)

// AddPatient registers a new patient
func AddPatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Binding error",
			"data":    err.Error(),
		})
		return
	}

	if err := validate.Struct(patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	if err := configuration.DB.Create(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Patient added successfully",
		"data":    patient,
	})
}

// ListPatients with search and gender filter, paginated
func ListPatients(c *gin.Context) {
	query := configuration.DB.Model(&models.Patient{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern)
	}
	if gender := c.Query("gender"); gender != "" {
		query = query.Where("gender = ?", gender)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}

	var total int64
	query.Count(&total)

	var patients []models.Patient
	if err := query.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).Find(&patients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch patients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Patients list fetched successfully",
		"data":    patients,
		"total":   total,
		"page":    page,
	})
}

// GetPatient returns a patient with resistance history and prescriptions
func GetPatient(c *gin.Context) {
	var patient models.Patient
	patientID := c.Param("id")
	if err := configuration.DB.First(&patient, patientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	var resistanceRecords []models.ResistanceRecord
	configuration.DB.Where("patient_id = ?", patient.PatientID).
		Order("test_date desc").Find(&resistanceRecords)

	var prescriptions []models.Prescription
	configuration.DB.Where("patient_id = ?", patient.PatientID).
		Order("created_at desc").Find(&prescriptions)

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Patient details fetched successfully",
		"data": gin.H{
			"patient":            patient,
			"resistance_records": resistanceRecords,
			"prescriptions":      prescriptions,
		},
	})
}
