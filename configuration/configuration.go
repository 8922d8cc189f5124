package configuration

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/steven202-max/resist-track/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// hold connection to db
var DB *gorm.DB

// initializing db connection
func ConfigDB() {

	err1 := godotenv.Load(".env")
	if err1 != nil {
		log.Println("No .env file found, relying on environment")
	}
	dsn := os.Getenv("DB")
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect to the database")
	}

	DB.AutoMigrate(
		&models.Patient{},
		&models.Antibiotic{},
		&models.ResistanceRecord{},
		&models.Prescription{},
		&models.Feedback{},
		&models.PatientAssessment{},
		&models.MedicineEffectivenessAlert{},
		&models.PatientMonitoringDashboard{},
		&models.Doctor{},
		&models.Admin{},
	)

}
