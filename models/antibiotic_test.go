package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetedBacteriaList(t *testing.T) {
	antibiotic := Antibiotic{BacteriaTargeted: "E. coli, Streptococcus pneumoniae , Haemophilus influenzae"}
	assert.Equal(t, []string{"E. coli", "Streptococcus pneumoniae", "Haemophilus influenzae"},
		antibiotic.TargetedBacteriaList())
}

func TestTargetedBacteriaListEmpty(t *testing.T) {
	antibiotic := Antibiotic{BacteriaTargeted: " , ,"}
	assert.Empty(t, antibiotic.TargetedBacteriaList())

	antibiotic.BacteriaTargeted = ""
	assert.Empty(t, antibiotic.TargetedBacteriaList())
}

func TestValidOutcome(t *testing.T) {
	for _, outcome := range []string{
		OutcomeRecovered, OutcomeNoImprovement, OutcomeSideEffects, OutcomeWorsening, OutcomePartialRecovery,
	} {
		assert.True(t, ValidOutcome(outcome), outcome)
	}
	assert.False(t, ValidOutcome("cured"))
	assert.False(t, ValidOutcome(""))
}
