package database

import (
	"fmt"
	"log"
	"time"

	"github.com/gdg-garage/park-planner-api/internal/config"
	"github.com/gdg-garage/park-planner-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Generations do not survive a restart.
	if err := ResetBusy(db); err != nil {
		log.Fatalf("Failed to reset pending generations: %v", err)
	}

	return db
}

// Open opens the sqlite database at path and migrates the planner tables.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite serializes writers; one connection also keeps ":memory:"
	// databases shared between goroutines.
	sqlDB.SetMaxOpenConns(1)

	// Auto Migrate
	if err := db.AutoMigrate(&models.PlannerSession{}, &models.GenerationRecord{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}

func ResetBusy(db *gorm.DB) error {
	return db.Model(&models.PlannerSession{}).Where("busy = ?", true).Update("busy", false).Error
}

// PurgeExpired deletes sessions past their expiry together with their
// generation history.
func PurgeExpired(db *gorm.DB, now time.Time) (int64, error) {
	var purged int64
	err := db.Transaction(func(tx *gorm.DB) error {
		expired := tx.Model(&models.PlannerSession{}).Select("id").Where("expires_at < ?", now)
		if err := tx.Unscoped().Where("planner_session_id IN (?)", expired).Delete(&models.GenerationRecord{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Where("expires_at < ?", now).Delete(&models.PlannerSession{})
		if res.Error != nil {
			return res.Error
		}
		purged = res.RowsAffected
		return nil
	})
	return purged, err
}
