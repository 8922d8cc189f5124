package services

import (
	"errors"
	"math"

	"github.com/steven202-max/resist-track/models"
	"gorm.io/gorm"
)

// EffectivenessStat is a derived snapshot, recomputed from feedback on every
// call. It is never stored as a source of truth; the redis copy written by
// the daily job is a rebuildable cache only.
type EffectivenessStat struct {
	AntibioticID      uint    `json:"antibiotic_id"`
	TotalFeedback     int64   `json:"total_feedback"`
	RecoveredCount    int64   `json:"recovered_count"`
	EffectivenessRate float64 `json:"effectiveness_rate"`
}

// ComputeEffectiveness aggregates feedback outcomes for an antibiotic across
// all of its prescriptions. Rate is a percentage rounded to one decimal,
// 0 when there is no feedback yet.
func ComputeEffectiveness(db *gorm.DB, antibioticID uint) (*EffectivenessStat, error) {
	var antibiotic models.Antibiotic
	if err := db.First(&antibiotic, antibioticID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var total int64
	if err := db.Model(&models.Feedback{}).
		Joins("JOIN prescriptions ON prescriptions.prescription_id = feedbacks.prescription_id").
		Where("prescriptions.antibiotic_id = ?", antibioticID).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var recovered int64
	if err := db.Model(&models.Feedback{}).
		Joins("JOIN prescriptions ON prescriptions.prescription_id = feedbacks.prescription_id").
		Where("prescriptions.antibiotic_id = ? AND feedbacks.outcome = ?", antibioticID, models.OutcomeRecovered).
		Count(&recovered).Error; err != nil {
		return nil, err
	}

	stat := &EffectivenessStat{
		AntibioticID:   antibioticID,
		TotalFeedback:  total,
		RecoveredCount: recovered,
	}
	if total > 0 {
		stat.EffectivenessRate = math.Round(float64(recovered)/float64(total)*1000) / 10
	}
	return stat, nil
}
