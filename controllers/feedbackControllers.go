package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/steven202-max/resist-track/configuration"
	"github.com/steven202-max/resist-track/models"
	"github.com/steven202-max/resist-track/services"
)

type feedbackRequest struct {
	PatientID      uint   `json:"patient_id" validate:"required"`
	Code           string `json:"code" validate:"required"`
	Outcome        string `json:"outcome" validate:"required"`
	Details        string `json:"details"`
	SeverityRating int    `json:"severity_rating" validate:"omitempty,gte=1,lte=10"`
}

// FeedbackForm resolves the patient id + prescription code a patient typed in
// and returns what the feedback form needs. No login required.
func FeedbackForm(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Query("patient_id"), 10, 32)
	code := c.Query("code")
	if err != nil || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	var prescription models.Prescription
	if err := configuration.DB.Where("code = ? AND patient_id = ?", code, uint(patientID)).
		First(&prescription).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid patient or prescription ID"})
		return
	}

	var antibiotic models.Antibiotic
	configuration.DB.First(&antibiotic, prescription.AntibioticID)

	var existing models.Feedback
	alreadySubmitted := configuration.DB.
		Where("prescription_id = ?", prescription.PrescriptionID).First(&existing).Error == nil

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Prescription found",
		"data": gin.H{
			"prescription":      prescription,
			"antibiotic":        antibiotic,
			"already_submitted": alreadySubmitted,
		},
	})
}

// SubmitFeedback records a patient's outcome. No login required, the
// prescription code acts as the shared secret.
func SubmitFeedback(c *gin.Context) {
	var req feedbackRequest
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

	var prescription models.Prescription
	if err := configuration.DB.Where("code = ? AND patient_id = ?", req.Code, req.PatientID).
		First(&prescription).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid patient or prescription ID"})
		return
	}

	feedback, err := services.SubmitFeedback(configuration.DB,
		prescription.PrescriptionID, req.Outcome, req.Details, req.SeverityRating)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Prescription not found"})
		case errors.Is(err, services.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Feedback already submitted for this prescription"})
		case errors.Is(err, services.ErrInvalidOutcome):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback outcome"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	// drop the cached effectiveness snapshot for this antibiotic
	if err := configuration.DelRedis(fmt.Sprintf("effectiveness:%d", prescription.AntibioticID)); err != nil {
		log.Println("Failed to invalidate effectiveness cache:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Thank you for your feedback",
		"data":    feedback,
	})
}
