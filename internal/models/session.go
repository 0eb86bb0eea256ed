package models

import (
	"time"

	"github.com/gdg-garage/park-planner-api/internal/planner"
	"gorm.io/gorm"
)

type PreferenceFields struct {
	Park       string   `json:"park"`
	AgeGroup   []string `json:"ageGroup" gorm:"serializer:json"`
	Interests  []string `json:"interests" gorm:"serializer:json"`
	Duration   string   `json:"duration"`
	Priorities []string `json:"priorities" gorm:"serializer:json"`
}

// PreferenceColumns are the fields written when the form changes.
var PreferenceColumns = []string{"Park", "AgeGroup", "Interests", "Duration", "Priorities"}

// GenerationColumns are the fields written when a generation starts or ends.
var GenerationColumns = []string{"Busy", "Plan", "GeneratedAt"}

func NewPreferenceFields(p planner.Preferences) PreferenceFields {
	return PreferenceFields{
		Park:       p.Park,
		AgeGroup:   p.AgeGroup,
		Interests:  p.Interests,
		Duration:   string(p.Duration),
		Priorities: p.Priorities,
	}
}

func (f PreferenceFields) Preferences() planner.Preferences {
	return planner.Preferences{
		Park:       f.Park,
		AgeGroup:   f.AgeGroup,
		Interests:  f.Interests,
		Duration:   planner.Duration(f.Duration),
		Priorities: f.Priorities,
	}.Clone()
}

// PlannerSession is the server-side state of one planner screen.
type PlannerSession struct {
	gorm.Model
	PublicID         string `gorm:"uniqueIndex"`
	VisitorName      string
	PreferenceFields `gorm:"embedded"`
	Busy             bool
	Plan             planner.Plan `gorm:"serializer:json"`
	GeneratedAt      *time.Time
	ExpiresAt        time.Time `gorm:"index"`
}

func (s PlannerSession) State() planner.State {
	return planner.State{
		Preferences: s.PreferenceFields.Preferences(),
		Plan:        s.Plan,
		Busy:        s.Busy,
	}
}

// Expired reports whether the session outlived its handle.
func (s PlannerSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
