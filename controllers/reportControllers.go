package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/steven202-max/resist-track/configuration"
	"github.com/steven202-max/resist-track/models"
	"github.com/steven202-max/resist-track/services"
)

// Reports builds the analytics view: effectiveness per antibiotic, resistance
// result breakdown and the latest feedback. Always recomputed from the
// current feedback state.
func Reports(c *gin.Context) {
	var antibiotics []models.Antibiotic
	if err := configuration.DB.Order("name").Find(&antibiotics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch antibiotics"})
		return
	}

	antibioticData := []gin.H{}
	for _, antibiotic := range antibiotics {
		stat, err := services.ComputeEffectiveness(configuration.DB, antibiotic.AntibioticID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute effectiveness"})
			return
		}
		antibioticData = append(antibioticData, gin.H{
			"name":               antibiotic.Name,
			"class_type":         antibiotic.ClassType,
			"total_feedback":     stat.TotalFeedback,
			"recovered_count":    stat.RecoveredCount,
			"effectiveness_rate": stat.EffectivenessRate,
		})
	}

	// Resistance result breakdown
	var resistanceStats []struct {
		Result string `json:"result"`
		Count  int64  `json:"count"`
	}
	if err := configuration.DB.Model(&models.ResistanceRecord{}).
		Select("result, COUNT(*) as count").
		Group("result").
		Order("count desc").
		Scan(&resistanceStats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resistance stats"})
		return
	}

	var recentFeedback []models.Feedback
	configuration.DB.Order("created_at desc").Limit(10).Find(&recentFeedback)

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Reports fetched successfully",
		"data": gin.H{
			"antibiotic_data":  antibioticData,
			"resistance_stats": resistanceStats,
			"recent_feedback":  recentFeedback,
		},
	})
}
