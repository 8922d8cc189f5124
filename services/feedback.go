package services

import (
	"errors"

	"github.com/steven202-max/resist-track/models"
	"gorm.io/gorm"
)

// SubmitFeedback records a patient's outcome for a prescription. A
// prescription takes exactly one feedback: a second submission fails with
// ErrDuplicate, and the unique index on prescription_id catches the
// concurrent case the pre-check cannot see. Feedback is immutable once
// stored. An outcome of recovered or side_effects also closes the
// prescription.
func SubmitFeedback(db *gorm.DB, prescriptionID uint, outcome, details string, severityRating int) (*models.Feedback, error) {
	if !models.ValidOutcome(outcome) {
		return nil, ErrInvalidOutcome
	}

	var prescription models.Prescription
	if err := db.First(&prescription, prescriptionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var existing models.Feedback
	err := db.Where("prescription_id = ?", prescriptionID).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	feedback := models.Feedback{
		PrescriptionID: prescriptionID,
		Outcome:        outcome,
		Details:        details,
		SeverityRating: severityRating,
	}
	if err := db.Create(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	if outcome == models.OutcomeRecovered || outcome == models.OutcomeSideEffects {
		prescription.Status = models.PrescriptionCompleted
		if err := db.Save(&prescription).Error; err != nil {
			return nil, err
		}
	}
	return &feedback, nil
}
