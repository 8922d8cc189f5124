package controllers_test

import (
	"net/http"
	"testing"

	"github.com/steven202-max/resist-track/configuration"
	"github.com/steven202-max/resist-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddResistanceRecordUpserts(t *testing.T) {
	r := setupRouter(t)
	token := doctorToken(t)
	patient, _, ceftriaxone := seedPatientAndAntibiotics(t)

	w := performRequest(r, http.MethodPost, "/doctor/add/resistance", token, map[string]any{
		"patient_id":    patient.PatientID,
		"antibiotic_id": ceftriaxone.AntibioticID,
		"result":        models.ResultSensitive,
		"test_date":     "2024-04-01T00:00:00Z",
		"test_method":   "disk diffusion",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Resistance record added successfully", decodeBody(t, w)["message"])

	// a newer test for the same pair replaces the old record
	w = performRequest(r, http.MethodPost, "/doctor/add/resistance", token, map[string]any{
		"patient_id":    patient.PatientID,
		"antibiotic_id": ceftriaxone.AntibioticID,
		"result":        models.ResultResistant,
		"test_date":     "2024-05-20T00:00:00Z",
		"test_method":   "broth microdilution",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Resistance record updated successfully", decodeBody(t, w)["message"])

	var count int64
	configuration.DB.Model(&models.ResistanceRecord{}).
		Where("patient_id = ? AND antibiotic_id = ?", patient.PatientID, ceftriaxone.AntibioticID).
		Count(&count)
	assert.Equal(t, int64(1), count)

	var record models.ResistanceRecord
	require.NoError(t, configuration.DB.
		Where("patient_id = ? AND antibiotic_id = ?", patient.PatientID, ceftriaxone.AntibioticID).
		First(&record).Error)
	assert.Equal(t, models.ResultResistant, record.Result)
	assert.Equal(t, "broth microdilution", record.TestMethod)
	assert.Equal(t, "2024-05-20", record.TestDate.Format("2006-01-02"))
}
