package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/steven202-max/resist-track/authentication"
	"github.com/steven202-max/resist-track/controllers"
)

func PortalRoutes() *gin.Engine {
	//creates a new Gin engine instance with default configurations
	r := gin.Default()

	//doctor signup and login
	r.POST("/doctor/signup", controllers.Signup)
	r.POST("/doctor/verify", controllers.VerifyOTP)
	r.POST("/doctor/login", controllers.DoctorLogin)

	//patient feedback, looked up by patient id and prescription code
	r.GET("/feedback/form", controllers.FeedbackForm)
	r.POST("/feedback", controllers.SubmitFeedback)

	//Admin routes
	r.POST("/admin/login", controllers.AdminLogin)

	admin := r.Group("/admin")
	admin.Use(authentication.AdminAuthMiddleware())
	{
		admin.POST("/logout", controllers.AdminLogout)
		admin.POST("/add/antibiotic", controllers.AddAntibiotic)
		admin.PATCH("/update/antibiotic/:id", controllers.UpdateAntibiotic)
		admin.GET("/view/antibiotics", controllers.ListAntibiotics)
		admin.GET("/view/doctors", controllers.ViewDoctors)
		admin.GET("/stats", controllers.AdminStats)
	}

	//Doctor routes
	doctors := r.Group("/doctor")
	doctors.Use(authentication.DoctorAuthMiddleware())
	{
		doctors.GET("/logout", controllers.DoctorLogout)
		doctors.GET("/dashboard", controllers.DoctorDashboard)

		doctors.POST("/add/patient", controllers.AddPatient)
		doctors.GET("/patients", controllers.ListPatients)
		doctors.GET("/patients/:id", controllers.GetPatient)

		doctors.GET("/antibiotics", controllers.ListAntibiotics)
		doctors.GET("/antibiotics/:id", controllers.GetAntibiotic)

		doctors.POST("/add/resistance", controllers.AddResistanceRecord)
		doctors.GET("/resistance", controllers.ListResistanceRecords)

		doctors.POST("/add/prescription", controllers.CreatePrescription)
		doctors.GET("/prescriptions/:id", controllers.GetPrescription)
		doctors.GET("/prescriptions/:id/alternatives", controllers.PrescriptionAlternatives)
		doctors.POST("/prescriptions/:id/alternatives", controllers.ApplyAlternative)

		doctors.GET("/patients/:id/dashboard", controllers.PatientDashboard)
		doctors.POST("/patients/:id/assessment", controllers.SubmitAssessment)
		doctors.GET("/alerts", controllers.ListAlerts)
		doctors.GET("/alerts/:id", controllers.GetAlert)
		doctors.POST("/alerts/:id/action", controllers.AlertAction)
		doctors.GET("/monitoring/analytics", controllers.MonitoringAnalytics)

		doctors.GET("/check-resistance", controllers.CheckResistance)
		doctors.GET("/alternatives", controllers.GetAlternatives)

		doctors.GET("/reports", controllers.Reports)
	}

	return r
}
