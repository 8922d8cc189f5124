package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/steven202-max/resist-track/configuration"
	"github.com/steven202-max/resist-track/models"
	"github.com/steven202-max/resist-track/services"
)

// CreatePrescription writes a new prescription for the logged-in doctor. The
// resistance verdict rides along in the response as a warning, a resistant
// patient does not stop the prescription.
func CreatePrescription(c *gin.Context) {
	var input services.PrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	doctorID := c.GetUint("doctor_id")
	prescription, verdict, err := services.CreatePrescription(configuration.DB, doctorID, input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient, antibiotic or doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := "Prescription created successfully"
	if verdict.Resistant {
		message = "Prescription created, but patient has known resistance to this antibiotic"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": message,
		"data": gin.H{
			"prescription": prescription,
			"verdict":      verdict,
		},
	})
}

// GetPrescription
func GetPrescription(c *gin.Context) {
	var prescription models.Prescription
	prescriptionID := c.Param("id")
	if err := configuration.DB.First(&prescription, prescriptionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prescription not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Prescription fetched successfully",
		"data":    prescription,
	})
}

// PrescriptionAlternatives suggests replacements for an existing prescription
func PrescriptionAlternatives(c *gin.Context) {
	var prescription models.Prescription
	prescriptionID := c.Param("id")
	if err := configuration.DB.First(&prescription, prescriptionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prescription not found"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	alternatives, err := services.SuggestAlternatives(configuration.DB,
		prescription.PatientID, prescription.AntibioticID, limit)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient or antibiotic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Alternatives fetched successfully",
		"data":    alternatives,
	})
}

// ApplyAlternative switches an existing prescription onto a chosen
// alternative antibiotic
func ApplyAlternative(c *gin.Context) {
	var prescription models.Prescription
	prescriptionID := c.Param("id")
	if err := configuration.DB.First(&prescription, prescriptionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prescription not found"})
		return
	}

	type swapRequest struct {
		AntibioticID uint `json:"antibiotic_id" validate:"required"`
	}
	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	var antibiotic models.Antibiotic
	if err := configuration.DB.First(&antibiotic, req.AntibioticID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Antibiotic not found"})
		return
	}

	prescription.AntibioticID = antibiotic.AntibioticID
	if err := configuration.DB.Save(&prescription).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prescription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Prescription updated to " + antibiotic.Name,
		"data":    prescription,
	})
}

// CheckResistance answers the live lookup the prescription form fires while
// the doctor picks an antibiotic
func CheckResistance(c *gin.Context) {
	patientID, err1 := strconv.ParseUint(c.Query("patient_id"), 10, 32)
	antibioticID, err2 := strconv.ParseUint(c.Query("antibiotic_id"), 10, 32)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters"})
		return
	}

	verdict, err := services.CheckResistance(configuration.DB, uint(patientID), uint(antibioticID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient or antibiotic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if verdict.Resistant {
		c.JSON(http.StatusOK, gin.H{
			"is_resistant": true,
			"message":      "Patient is resistant to this antibiotic (tested on " + verdict.Record.TestDate.Format("2006-01-02") + ")",
			"test_date":    verdict.Record.TestDate.Format("2006-01-02"),
			"test_method":  verdict.Record.TestMethod,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"is_resistant": false,
		"message":      "No resistance detected",
	})
}

// GetAlternatives answers the live alternatives lookup on the prescription form
func GetAlternatives(c *gin.Context) {
	patientID, err1 := strconv.ParseUint(c.Query("patient_id"), 10, 32)
	antibioticID, err2 := strconv.ParseUint(c.Query("antibiotic_id"), 10, 32)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	alternatives, err := services.SuggestAlternatives(configuration.DB, uint(patientID), uint(antibioticID), limit)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient or antibiotic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alternatives": alternatives})
}
