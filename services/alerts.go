package services

import (
	"errors"
	"time"

	"github.com/steven202-max/resist-track/models"
	"gorm.io/gorm"
)

// AcknowledgeAlert marks an active alert as seen by the given doctor.
func AcknowledgeAlert(db *gorm.DB, alertID uint, acknowledgedBy string) (*models.MedicineEffectivenessAlert, error) {
	var alert models.MedicineEffectivenessAlert
	if err := db.First(&alert, alertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	alert.Status = models.AlertAcknowledged
	alert.AcknowledgedBy = acknowledgedBy
	alert.AcknowledgedAt = &now
	if err := db.Save(&alert).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

// ResolveAlert closes an alert with a note on what was done about it.
func ResolveAlert(db *gorm.DB, alertID uint, notes string) (*models.MedicineEffectivenessAlert, error) {
	var alert models.MedicineEffectivenessAlert
	if err := db.First(&alert, alertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	alert.Status = models.AlertResolved
	alert.ResolutionNotes = notes
	if err := db.Save(&alert).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}
