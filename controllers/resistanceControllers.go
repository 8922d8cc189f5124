package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/steven202-max/resist-track/configuration"
	"github.com/steven202-max/resist-track/models"
	"gorm.io/gorm"
)

// AddResistanceRecord stores a lab observation. One record per
// (patient, antibiotic) pair is kept: a newer test replaces the old one.
func AddResistanceRecord(c *gin.Context) {
	var record models.ResistanceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	var patient models.Patient
	if err := configuration.DB.First(&patient, record.PatientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	var antibiotic models.Antibiotic
	if err := configuration.DB.First(&antibiotic, record.AntibioticID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Antibiotic not found"})
		return
	}

	var existing models.ResistanceRecord
	err := configuration.DB.Where("patient_id = ? AND antibiotic_id = ?",
		record.PatientID, record.AntibioticID).First(&existing).Error
	if err == nil {
		existing.Result = record.Result
		existing.TestDate = record.TestDate
		existing.TestMethod = record.TestMethod
		existing.Notes = record.Notes
		if err := configuration.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "Success",
			"message": "Resistance record updated successfully",
			"data":    existing,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := configuration.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Resistance record added successfully",
		"data":    record,
	})
}

// ListResistanceRecords paginated, newest tests first
func ListResistanceRecords(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 {
		limit = 20
	}

	var total int64
	configuration.DB.Model(&models.ResistanceRecord{}).Count(&total)

	var records []models.ResistanceRecord
	if err := configuration.DB.Order("test_date desc").
		Offset((page - 1) * limit).Limit(limit).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resistance records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Resistance records fetched successfully",
		"data":    records,
		"total":   total,
		"page":    page,
	})
}
