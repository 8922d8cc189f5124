package models

import "time"

// Outcome categories a patient can report for a prescription
const (
	OutcomeRecovered       = "recovered"
	OutcomeNoImprovement   = "no_improvement"
	OutcomeSideEffects     = "side_effects"
	OutcomeWorsening       = "worsening"
	OutcomePartialRecovery = "partial_recovery"
)

type Feedback struct {
	FeedbackID     uint      `gorm:"primaryKey" json:"feedback_id"`
	PrescriptionID uint      `json:"prescription_id" gorm:"uniqueIndex;not null"`
	Outcome        string    `json:"outcome"`
	Details        string    `json:"details"`
	SeverityRating int       `json:"severity_rating"`
	CreatedAt      time.Time `json:"created_at"`
}

// ValidOutcome reports whether s is one of the feedback categories
func ValidOutcome(s string) bool {
	switch s {
	case OutcomeRecovered, OutcomeNoImprovement, OutcomeSideEffects, OutcomeWorsening, OutcomePartialRecovery:
		return true
	}
	return false
}
