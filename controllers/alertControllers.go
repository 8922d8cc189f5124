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

// ListAlerts returns the effectiveness alerts on the doctor's own
// prescriptions, optionally filtered by priority or status.
func ListAlerts(c *gin.Context) {
	doctorID := c.GetUint("doctor_id")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit := 20

	query := configuration.DB.Model(&models.MedicineEffectivenessAlert{}).
		Joins("JOIN prescriptions ON prescriptions.prescription_id = medicine_effectiveness_alerts.prescription_id").
		Where("prescriptions.doctor_id = ?", doctorID)

	if priority := c.Query("priority"); priority != "" {
		query = query.Where("medicine_effectiveness_alerts.priority = ?", priority)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("medicine_effectiveness_alerts.status = ?", status)
	}

	var total int64
	query.Count(&total)

	var alerts []models.MedicineEffectivenessAlert
	if err := query.Order("medicine_effectiveness_alerts.created_at desc").
		Offset((page - 1) * limit).Limit(limit).Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Alerts fetched successfully",
		"data": gin.H{
			"alerts": alerts,
			"total":  total,
			"page":   page,
		},
	})
}

// GetAlert
func GetAlert(c *gin.Context) {
	var alert models.MedicineEffectivenessAlert
	alertID := c.Param("id")
	if err := configuration.DB.First(&alert, alertID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Alert fetched successfully",
		"data":    alert,
	})
}

// AlertAction acknowledges or resolves an alert
func AlertAction(c *gin.Context) {
	alertID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alert id"})
		return
	}

	type actionRequest struct {
		Action          string `json:"action" validate:"required,oneof=acknowledge resolve"`
		ResolutionNotes string `json:"resolution_notes"`
	}
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "Action must be acknowledge or resolve",
			"data":    err.Error(),
		})
		return
	}

	var alert *models.MedicineEffectivenessAlert
	switch req.Action {
	case "acknowledge":
		alert, err = services.AcknowledgeAlert(configuration.DB, uint(alertID), c.GetString("email"))
	case "resolve":
		alert, err = services.ResolveAlert(configuration.DB, uint(alertID), req.ResolutionNotes)
	}
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Alert " + alert.Status,
		"data":    alert,
	})
}
