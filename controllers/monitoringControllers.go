package controllers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/steven202-max/resist-track/configuration"
	"github.com/steven202-max/resist-track/models"
	"github.com/steven202-max/resist-track/services"
)

// PatientDashboard gathers everything a doctor reviews before a follow-up:
// active prescriptions with their monitoring scores, recent assessments,
// open alerts and the patient's own feedback.
func PatientDashboard(c *gin.Context) {
	var patient models.Patient
	patientID := c.Param("id")
	if err := configuration.DB.First(&patient, patientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	var prescriptions []models.Prescription
	configuration.DB.Where("patient_id = ? AND status = ?", patient.PatientID, models.PrescriptionActive).
		Order("created_at desc").Find(&prescriptions)

	var dashboards []models.PatientMonitoringDashboard
	configuration.DB.Where("patient_id = ?", patient.PatientID).
		Order("updated_at desc").Find(&dashboards)

	var assessments []models.PatientAssessment
	configuration.DB.Where("patient_id = ?", patient.PatientID).
		Order("created_at desc").Limit(5).Find(&assessments)

	var alerts []models.MedicineEffectivenessAlert
	configuration.DB.Where("patient_id = ? AND status = ?", patient.PatientID, models.AlertActive).
		Order("created_at desc").Limit(10).Find(&alerts)

	var feedback []models.Feedback
	configuration.DB.
		Joins("JOIN prescriptions ON prescriptions.prescription_id = feedbacks.prescription_id").
		Where("prescriptions.patient_id = ?", patient.PatientID).
		Order("feedbacks.created_at desc").Limit(5).Find(&feedback)

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Patient dashboard fetched successfully",
		"data": gin.H{
			"patient":              patient,
			"active_prescriptions": prescriptions,
			"monitoring":           dashboards,
			"recent_assessments":   assessments,
			"active_alerts":        alerts,
			"recent_feedback":      feedback,
		},
	})
}

// SubmitAssessment records a follow-up assessment for the patient in the URL
func SubmitAssessment(c *gin.Context) {
	var patient models.Patient
	patientID := c.Param("id")
	if err := configuration.DB.First(&patient, patientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	var input services.AssessmentInput
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

	conductedBy := c.GetString("email")
	assessment, alerts, err := services.SubmitAssessment(configuration.DB, patient.PatientID, conductedBy, input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No matching prescription for this patient"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := "Assessment recorded successfully"
	if len(alerts) > 0 {
		message = "Assessment recorded, alerts raised for review"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": message,
		"data": gin.H{
			"assessment": assessment,
			"alerts":     alerts,
		},
	})
}

// MonitoringAnalytics summarises treatment monitoring across the doctor's
// prescriptions: who is at risk, average scores, and how each antibiotic is
// holding up under assessment.
func MonitoringAnalytics(c *gin.Context) {
	doctorID := c.GetUint("doctor_id")

	type monitoredRow struct {
		Name               string
		TreatmentStatus    string
		EffectivenessScore float64
		AdherenceScore     float64
		SideEffectsScore   float64
	}
	var rows []monitoredRow
	if err := configuration.DB.Table("patient_monitoring_dashboards").
		Select("antibiotics.name as name, patient_monitoring_dashboards.treatment_status, patient_monitoring_dashboards.effectiveness_score, patient_monitoring_dashboards.adherence_score, patient_monitoring_dashboards.side_effects_score").
		Joins("JOIN prescriptions ON prescriptions.prescription_id = patient_monitoring_dashboards.prescription_id").
		Joins("JOIN antibiotics ON antibiotics.antibiotic_id = prescriptions.antibiotic_id").
		Where("prescriptions.doctor_id = ?", doctorID).
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch monitoring data"})
		return
	}

	var atRisk, onTrack int
	var effectivenessSum, adherenceSum, sideEffectsSum float64
	perAntibiotic := map[string]gin.H{}
	for _, row := range rows {
		if row.TreatmentStatus == models.TreatmentConcern || row.TreatmentStatus == models.TreatmentCritical {
			atRisk++
		}
		if row.TreatmentStatus == models.TreatmentOnTrack {
			onTrack++
		}
		effectivenessSum += row.EffectivenessScore
		adherenceSum += row.AdherenceScore
		sideEffectsSum += row.SideEffectsScore

		stats, ok := perAntibiotic[row.Name]
		if !ok {
			stats = gin.H{"total": 0, "effective": 0, "side_effects": 0}
		}
		stats["total"] = stats["total"].(int) + 1
		if row.EffectivenessScore >= 7 {
			stats["effective"] = stats["effective"].(int) + 1
		}
		if row.SideEffectsScore >= 5 {
			stats["side_effects"] = stats["side_effects"].(int) + 1
		}
		perAntibiotic[row.Name] = stats
	}

	averages := gin.H{"effectiveness": 0.0, "adherence": 0.0, "side_effects": 0.0}
	if len(rows) > 0 {
		n := float64(len(rows))
		averages["effectiveness"] = math.Round(effectivenessSum/n*10) / 10
		averages["adherence"] = math.Round(adherenceSum/n*10) / 10
		averages["side_effects"] = math.Round(sideEffectsSum/n*10) / 10
	}

	var recentAssessments []models.PatientAssessment
	configuration.DB.
		Joins("JOIN prescriptions ON prescriptions.prescription_id = patient_assessments.prescription_id").
		Where("prescriptions.doctor_id = ?", doctorID).
		Order("patient_assessments.created_at desc").Limit(10).Find(&recentAssessments)

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Monitoring analytics fetched successfully",
		"data": gin.H{
			"total_monitored":         len(rows),
			"at_risk":                 atRisk,
			"on_track":                onTrack,
			"average_scores":          averages,
			"antibiotic_performance":  perAntibiotic,
			"recent_assessments":      recentAssessments,
		},
	})
}
