package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/steven202-max/resist-track/configuration"
	"github.com/steven202-max/resist-track/models"
	"gorm.io/gorm"
)

// AddAntibiotic adds an antibiotic to the reference data
func AddAntibiotic(c *gin.Context) {
	var antibiotic models.Antibiotic
	if err := c.ShouldBindJSON(&antibiotic); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(antibiotic); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	// Check if an antibiotic with the same name already exists
	var existingAntibiotic models.Antibiotic
	if err := configuration.DB.Where("name = ?", antibiotic.Name).First(&existingAntibiotic).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Antibiotic already exists",
			"message": "An antibiotic with the same name already exists",
		})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := configuration.DB.Create(&antibiotic).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Antibiotic added successfully",
		"data":    antibiotic,
	})
}

// ListAntibiotics
func ListAntibiotics(c *gin.Context) {
	var antibiotics []models.Antibiotic
	if err := configuration.DB.Order("name").Find(&antibiotics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching antibiotics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Antibiotics list fetched successfully",
		"data":    antibiotics,
	})
}

// GetAntibiotic
func GetAntibiotic(c *gin.Context) {
	var antibiotic models.Antibiotic
	antibioticID := c.Param("id")
	if err := configuration.DB.First(&antibiotic, antibioticID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Antibiotic not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Antibiotic details fetched successfully",
		"data":    antibiotic,
	})
}

// UpdateAntibiotic
func UpdateAntibiotic(c *gin.Context) {
	var antibiotic models.Antibiotic
	antibioticID := c.Param("id")

	if err := configuration.DB.First(&antibiotic, antibioticID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Antibiotic not found"})
		return
	}
	if err := c.ShouldBindJSON(&antibiotic); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := configuration.DB.Save(&antibiotic).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Antibiotic details updated successfully",
		"data":    antibiotic,
	})
}
