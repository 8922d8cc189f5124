package seed

import (
	"errors"
	"log"

	"github.com/steven202-max/resist-track/models"
	"gorm.io/gorm"
)

var antibiotics = []models.Antibiotic{
	{Name: "Amoxicillin", BacteriaTargeted: "E. coli, Streptococcus pneumoniae, Haemophilus influenzae", ClassType: "penicillin", DosageInfo: "500mg every 8 hours"},
	{Name: "Ciprofloxacin", BacteriaTargeted: "E. coli, Pseudomonas aeruginosa, Enterococcus", ClassType: "fluoroquinolone", DosageInfo: "500mg every 12 hours"},
	{Name: "Azithromycin", BacteriaTargeted: "Streptococcus pneumoniae, Haemophilus influenzae, Mycoplasma", ClassType: "macrolide", DosageInfo: "500mg on day 1, then 250mg daily"},
	{Name: "Ceftriaxone", BacteriaTargeted: "E. coli, Klebsiella, Streptococcus pneumoniae", ClassType: "cephalosporin", DosageInfo: "1-2g once daily"},
	{Name: "Vancomycin", BacteriaTargeted: "MRSA, Enterococcus, Clostridium difficile", ClassType: "other", DosageInfo: "15-20mg/kg every 8-12 hours"},
	{Name: "Doxycycline", BacteriaTargeted: "Chlamydia, Mycoplasma, Rickettsia", ClassType: "tetracycline", DosageInfo: "100mg every 12 hours"},
	{Name: "Gentamicin", BacteriaTargeted: "E. coli, Klebsiella, Pseudomonas aeruginosa", ClassType: "aminoglycoside", DosageInfo: "5mg/kg once daily"},
	{Name: "Trimethoprim/Sulfamethoxazole", BacteriaTargeted: "E. coli, Staphylococcus aureus, Pneumocystis", ClassType: "sulfonamide", DosageInfo: "160/800mg every 12 hours"},
}

// PopulateAntibiotics loads the reference antibiotics, skipping any that
// already exist. Safe to run on every boot.
func PopulateAntibiotics(db *gorm.DB) error {
	for _, antibiotic := range antibiotics {
		var existing models.Antibiotic
		err := db.Where("name = ?", antibiotic.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&antibiotic).Error; err != nil {
			return err
		}
		log.Println("Created antibiotic:", antibiotic.Name)
	}
	return nil
}
