package models

import (
	"gorm.io/gorm"
)

const (
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

// GenerationRecord snapshots the preferences that triggered a finished
// generation.
type GenerationRecord struct {
	gorm.Model
	PlannerSessionID uint `json:"planner_session_id" gorm:"index"`
	PreferenceFields `gorm:"embedded"`
	Outcome          string `json:"outcome"`
	Strategy         string `json:"strategy"`
	ItemCount        int    `json:"item_count"`
	ElapsedMS        int64  `json:"elapsed_ms"`
	Error            string `json:"error,omitempty"`
}
