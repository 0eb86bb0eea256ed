package database

import (
	"testing"
	"time"

	"github.com/gdg-garage/park-planner-api/internal/models"
	"github.com/gdg-garage/park-planner-api/internal/planner"
)

func TestOpen_RoundTripsSessionState(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	prefs := planner.Preferences{Park: "disneysea", Interests: []string{"ウエスタンランド"}, Duration: planner.DurationFullDay}
	session := models.PlannerSession{
		PublicID:         "abc",
		PreferenceFields: models.NewPreferenceFields(prefs),
		Plan:             planner.SamplePlan(),
		ExpiresAt:        time.Now().Add(time.Hour),
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	var loaded models.PlannerSession
	if err := db.Where("public_id = ?", "abc").First(&loaded).Error; err != nil {
		t.Fatalf("failed to load session: %v", err)
	}

	state := loaded.State()
	if state.Preferences.Park != "disneysea" || state.Preferences.Duration != planner.DurationFullDay {
		t.Errorf("unexpected preferences %+v", state.Preferences)
	}
	if len(state.Preferences.Interests) != 1 || state.Preferences.Interests[0] != "ウエスタンランド" {
		t.Errorf("unexpected interests %v", state.Preferences.Interests)
	}
	if len(state.Plan) != 12 || state.Plan[11].Activity != "ファミチキ" {
		t.Errorf("plan did not round trip: %+v", state.Plan)
	}
}

func TestResetBusy(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	db.Create(&models.PlannerSession{PublicID: "busy", Busy: true})
	if err := ResetBusy(db); err != nil {
		t.Fatalf("ResetBusy returned error: %v", err)
	}

	var s models.PlannerSession
	db.Where("public_id = ?", "busy").First(&s)
	if s.Busy {
		t.Error("expected busy flag cleared")
	}
}

func TestPurgeExpired(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	now := time.Now()
	old := models.PlannerSession{PublicID: "old", ExpiresAt: now.Add(-time.Minute)}
	fresh := models.PlannerSession{PublicID: "fresh", ExpiresAt: now.Add(time.Hour)}
	db.Create(&old)
	db.Create(&fresh)
	db.Create(&models.GenerationRecord{PlannerSessionID: old.ID, Outcome: models.OutcomeCompleted})
	db.Create(&models.GenerationRecord{PlannerSessionID: fresh.ID, Outcome: models.OutcomeCompleted})

	purged, err := PurgeExpired(db, now)
	if err != nil {
		t.Fatalf("PurgeExpired returned error: %v", err)
	}
	if purged != 1 {
		t.Errorf("expected 1 purged session, got %d", purged)
	}

	var sessions, records int64
	db.Model(&models.PlannerSession{}).Count(&sessions)
	db.Model(&models.GenerationRecord{}).Count(&records)
	if sessions != 1 || records != 1 {
		t.Errorf("expected 1 session and 1 record left, got %d and %d", sessions, records)
	}
}
