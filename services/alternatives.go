package services

import (
	"errors"
	"sort"

	"github.com/steven202-max/resist-track/models"
	"gorm.io/gorm"
)

// Alternative is one suggested replacement antibiotic
type Alternative struct {
	AntibioticID      uint    `json:"antibiotic_id"`
	Name              string  `json:"name"`
	ClassType         string  `json:"class_type"`
	BacteriaTargeted  string  `json:"bacteria_targeted"`
	EffectivenessRate float64 `json:"effectiveness_rate"`
}

// SuggestAlternatives lists antibiotics that cover at least one of the same
// target bacteria, leaving out the queried antibiotic itself and anything the
// patient is known to be resistant to. Results are ordered by effectiveness
// rate (highest first), then by name, and cut off at limit. An empty list is
// a valid answer. Every call queries fresh, nothing is cached here.
func SuggestAlternatives(db *gorm.DB, patientID, antibioticID uint, limit int) ([]Alternative, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}

	var patient models.Patient
	if err := db.First(&patient, patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var antibiotic models.Antibiotic
	if err := db.First(&antibiotic, antibioticID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	targets := antibiotic.TargetedBacteriaList()
	if len(targets) == 0 {
		return []Alternative{}, nil
	}
	targetSet := make(map[string]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}

	var resistantIDs []uint
	if err := db.Model(&models.ResistanceRecord{}).
		Where("patient_id = ? AND result = ?", patientID, models.ResultResistant).
		Pluck("antibiotic_id", &resistantIDs).Error; err != nil {
		return nil, err
	}
	resistantSet := make(map[uint]bool, len(resistantIDs))
	for _, id := range resistantIDs {
		resistantSet[id] = true
	}

	var candidates []models.Antibiotic
	if err := db.Where("antibiotic_id <> ?", antibioticID).Find(&candidates).Error; err != nil {
		return nil, err
	}

	alternatives := []Alternative{}
	for _, candidate := range candidates {
		if resistantSet[candidate.AntibioticID] {
			continue
		}
		shared := false
		for _, b := range candidate.TargetedBacteriaList() {
			if targetSet[b] {
				shared = true
				break
			}
		}
		if !shared {
			continue
		}
		stat, err := ComputeEffectiveness(db, candidate.AntibioticID)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, Alternative{
			AntibioticID:      candidate.AntibioticID,
			Name:              candidate.Name,
			ClassType:         candidate.ClassType,
			BacteriaTargeted:  candidate.BacteriaTargeted,
			EffectivenessRate: stat.EffectivenessRate,
		})
	}

	sort.Slice(alternatives, func(i, j int) bool {
		if alternatives[i].EffectivenessRate != alternatives[j].EffectivenessRate {
			return alternatives[i].EffectivenessRate > alternatives[j].EffectivenessRate
		}
		return alternatives[i].Name < alternatives[j].Name
	})

	if len(alternatives) > limit {
		alternatives = alternatives[:limit]
	}
	return alternatives, nil
}
