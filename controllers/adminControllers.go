package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/steven202-max/resist-track/authentication"
	"github.com/steven202-max/resist-track/configuration"
	"github.com/steven202-max/resist-track/models"
	"github.com/steven202-max/resist-track/services"
	"golang.org/x/crypto/bcrypt"
)

// Admin login
func AdminLogin(c *gin.Context) {
	var admin models.Admin
	if err := c.BindJSON(&admin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dbAdmin models.Admin
	if err := configuration.DB.Where("username = ?", admin.Username).First(&dbAdmin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if len(dbAdmin.Password) > 0 && dbAdmin.Password[0] == '$' {
		if err := bcrypt.CompareHashAndPassword([]byte(dbAdmin.Password), []byte(admin.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
	} else {
		if dbAdmin.Password != admin.Password {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		dbAdmin.Password = string(hashedPassword)
		if err := configuration.DB.Save(&dbAdmin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
			return
		}
	}

	token, err := authentication.GenerateAdminToken(admin.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

func AdminLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// ViewDoctors lists registered doctors for the admin
func ViewDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := configuration.DB.Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching doctors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Doctors list fetched successfully",
		"data":    doctors,
	})
}

// AdminStats returns the portal-wide counts plus per-antibiotic effectiveness
// snapshots. Snapshots come from the redis cache the daily job maintains,
// recomputed on a miss.
func AdminStats(c *gin.Context) {
	var totalPatients int64
	if err := configuration.DB.Model(&models.Patient{}).Count(&totalPatients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch patient count"})
		return
	}

	var totalAntibiotics int64
	configuration.DB.Model(&models.Antibiotic{}).Count(&totalAntibiotics)

	var activePrescriptions int64
	configuration.DB.Model(&models.Prescription{}).
		Where("status = ?", models.PrescriptionActive).Count(&activePrescriptions)

	var resistanceRecords int64
	configuration.DB.Model(&models.ResistanceRecord{}).Count(&resistanceRecords)

	var antibiotics []models.Antibiotic
	configuration.DB.Find(&antibiotics)

	effectiveness := []services.EffectivenessStat{}
	for _, antibiotic := range antibiotics {
		var stat services.EffectivenessStat
		cached, err := configuration.GetRedis(fmt.Sprintf("effectiveness:%d", antibiotic.AntibioticID))
		if err == nil && json.Unmarshal([]byte(cached), &stat) == nil {
			effectiveness = append(effectiveness, stat)
			continue
		}
		fresh, err := services.ComputeEffectiveness(configuration.DB, antibiotic.AntibioticID)
		if err != nil {
			continue
		}
		effectiveness = append(effectiveness, *fresh)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Stats fetched successfully",
		"data": gin.H{
			"total_patients":       totalPatients,
			"total_antibiotics":    totalAntibiotics,
			"active_prescriptions": activePrescriptions,
			"resistance_records":   resistanceRecords,
			"effectiveness":        effectiveness,
		},
	})
}
