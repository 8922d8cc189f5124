package jobs

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/steven202-max/resist-track/configuration"
	"github.com/steven202-max/resist-track/models"
	"github.com/steven202-max/resist-track/services"
)

// StartDailyScheduler refreshes the effectiveness snapshots every night.
// The cache is rebuildable state only, reads fall back to recomputation.
func StartDailyScheduler() {
	c := cron.New()
	_, err := c.AddFunc("0 2 * * *", RefreshEffectivenessCache)
	if err != nil {
		log.Println("Failed to schedule effectiveness refresh:", err)
		return
	}
	c.Start()
}

// RefreshEffectivenessCache recomputes the stat for every antibiotic and
// writes it to redis
func RefreshEffectivenessCache() {
	var antibiotics []models.Antibiotic
	if err := configuration.DB.Find(&antibiotics).Error; err != nil {
		log.Println("Effectiveness refresh: failed to list antibiotics:", err)
		return
	}

	for _, antibiotic := range antibiotics {
		stat, err := services.ComputeEffectiveness(configuration.DB, antibiotic.AntibioticID)
		if err != nil {
			log.Println("Effectiveness refresh failed for", antibiotic.Name, ":", err)
			continue
		}
		data, err := json.Marshal(stat)
		if err != nil {
			continue
		}
		key := fmt.Sprintf("effectiveness:%d", antibiotic.AntibioticID)
		if err := configuration.SetRedis(key, data, 24*time.Hour); err != nil {
			log.Println("Effectiveness refresh: redis write failed:", err)
		}
	}
}
