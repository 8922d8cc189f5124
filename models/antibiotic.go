package models

import (
	"strings"
	"time"
)

type Antibiotic struct {
	AntibioticID      uint      `gorm:"primaryKey" json:"antibiotic_id"`
	Name              string    `json:"name" gorm:"unique;not null" validate:"required"`
	BacteriaTargeted  string    `json:"bacteria_targeted" validate:"required"`
	ClassType         string    `json:"class_type" validate:"required,oneof=penicillin cephalosporin fluoroquinolone macrolide tetracycline aminoglycoside sulfonamide carbapenem other"`
	Description       string    `json:"description"`
	DosageInfo        string    `json:"dosage_info"`
	Contraindications string    `json:"contraindications"`
	CreatedAt         time.Time `json:"created_at"`
}

// TargetedBacteriaList splits the comma-separated bacteria field
func (a *Antibiotic) TargetedBacteriaList() []string {
	var bacteria []string
	for _, b := range strings.Split(a.BacteriaTargeted, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			bacteria = append(bacteria, b)
		}
	}
	return bacteria
}
