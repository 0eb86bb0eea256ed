package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/park-planner-api/internal/generator"
	"github.com/gdg-garage/park-planner-api/internal/models"
	"github.com/gdg-garage/park-planner-api/internal/notifier"
	"github.com/gdg-garage/park-planner-api/internal/planner"
	"github.com/gdg-garage/park-planner-api/internal/session"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PlannerHandler struct {
	db       *gorm.DB
	catalog  *planner.Catalog
	tasks    *generator.Registry
	sessions *session.Manager
	notifier notifier.Notifier
	logger   *zap.Logger
}

func NewPlannerHandler(db *gorm.DB, catalog *planner.Catalog, tasks *generator.Registry, sessions *session.Manager, notifier notifier.Notifier, logger *zap.Logger) *PlannerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlannerHandler{
		db:       db,
		catalog:  catalog,
		tasks:    tasks,
		sessions: sessions,
		notifier: notifier,
		logger:   logger,
	}
}

type SessionRequest struct{}

type SessionResponse struct {
	Body SessionView
}

type CreateSessionRequest struct {
	VisitorName string `query:"visitor" maxLength:"40" doc:"Name shown in the plan description"`
}

type CreateSessionResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Token   string      `json:"token" doc:"Session handle, usable in the X-Planner-Session header"`
		Session SessionView `json:"session"`
	}
}

func (h *PlannerHandler) HandleCreateSession(ctx context.Context, input *CreateSessionRequest) (*CreateSessionResponse, error) {
	id := h.sessions.NewID()
	token, exp, err := h.sessions.Issue(id)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to issue session handle")
	}

	s := models.PlannerSession{
		PublicID:    id,
		VisitorName: input.VisitorName,
		ExpiresAt:   exp,
	}
	if err := h.db.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create planner session: " + err.Error())
	}

	res := &CreateSessionResponse{SetCookie: h.sessions.Cookie(token, exp)}
	res.Body.Token = token
	res.Body.Session = NewSessionView(h.catalog, &s, false)
	return res, nil
}

func (h *PlannerHandler) HandleGetSession(ctx context.Context, input *SessionRequest) (*SessionResponse, error) {
	s, err := h.loadSession(ctx)
	if err != nil {
		return nil, err
	}
	return h.respond(s), nil
}

type SetParkRequest struct {
	Body struct {
		Park string `json:"park" doc:"Park identifier from the catalog, empty to clear"`
	}
}

func (h *PlannerHandler) HandleSetPark(ctx context.Context, input *SetParkRequest) (*SessionResponse, error) {
	if input.Body.Park != "" && !h.catalog.HasPark(input.Body.Park) {
		return nil, huma.Error422UnprocessableEntity(fmt.Sprintf("Unknown park %q", input.Body.Park))
	}
	return h.update(ctx, planner.SetPark{Park: input.Body.Park})
}

type SetDurationRequest struct {
	Body struct {
		Duration string `json:"duration" doc:"half-day, full-day, two-days or empty"`
	}
}

func (h *PlannerHandler) HandleSetDuration(ctx context.Context, input *SetDurationRequest) (*SessionResponse, error) {
	d := planner.Duration(input.Body.Duration)
	if !h.catalog.HasDuration(d) {
		return nil, huma.Error422UnprocessableEntity(fmt.Sprintf("Unknown duration %q", input.Body.Duration))
	}
	return h.update(ctx, planner.SetDuration{Duration: d})
}

type ToggleRequest struct {
	Body struct {
		Category string `json:"category" doc:"ageGroup, interests or priorities; other values are ignored"`
		Value    string `json:"value" doc:"Option label from the catalog"`
		Included bool   `json:"included" doc:"Whether the option is checked"`
	}
}

func (h *PlannerHandler) HandleToggle(ctx context.Context, input *ToggleRequest) (*SessionResponse, error) {
	category := planner.Category(input.Body.Category)
	if planner.KnownCategory(category) && !h.catalog.Offers(category, input.Body.Value) {
		return nil, huma.Error422UnprocessableEntity(fmt.Sprintf("Unknown %s option %q", category, input.Body.Value))
	}
	return h.update(ctx, planner.ToggleMember{
		Category: category,
		Value:    input.Body.Value,
		Included: input.Body.Included,
	})
}

func (h *PlannerHandler) update(ctx context.Context, events ...planner.Event) (*SessionResponse, error) {
	s, err := h.loadSession(ctx)
	if err != nil {
		return nil, err
	}

	state := planner.Reduce(s.State(), events...)
	s.PreferenceFields = models.NewPreferenceFields(state.Preferences)

	// Only preference columns: a generation may be finishing concurrently.
	if err := h.db.WithContext(ctx).Model(s).Select(models.PreferenceColumns).Updates(s).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to save preferences: " + err.Error())
	}
	return h.respond(s), nil
}

func (h *PlannerHandler) HandleGenerate(ctx context.Context, input *SessionRequest) (*SessionResponse, error) {
	s, err := h.loadSession(ctx)
	if err != nil {
		return nil, err
	}

	state := s.State()
	if state.Preferences.Park == "" {
		return nil, huma.Error409Conflict("Select a park before generating a plan")
	}
	if state.Busy || h.tasks.Busy(s.PublicID) {
		return nil, huma.Error409Conflict("A plan is already being generated")
	}

	sessionID := s.ID
	prefs := state.Preferences
	_, err = h.tasks.Begin(context.WithoutCancel(ctx), s.PublicID, prefs, generator.Hooks{
		OnStart: func() error {
			return h.db.Model(&models.PlannerSession{}).Where("id = ?", sessionID).Update("busy", true).Error
		},
		OnDone: func(res generator.Result) {
			h.finishGeneration(sessionID, prefs, res)
		},
	})
	switch {
	case err == nil:
	case errors.Is(err, generator.ErrBusy):
		return nil, huma.Error409Conflict("A plan is already being generated")
	case errors.Is(err, generator.ErrParkRequired):
		return nil, huma.Error409Conflict("Select a park before generating a plan")
	case errors.Is(err, generator.ErrRateLimited):
		return nil, huma.Error429TooManyRequests("Too many plan generations, try again later")
	case errors.Is(err, generator.ErrShuttingDown):
		return nil, huma.Error503ServiceUnavailable("Server is shutting down")
	default:
		return nil, huma.Error500InternalServerError("Failed to start plan generation: " + err.Error())
	}

	h.logger.Info("plan generation started",
		zap.String("session", s.PublicID),
		zap.String("park", prefs.Park),
		zap.Duration("delay", h.tasks.Generator().Delay()))

	s.Busy = true
	return h.respond(s), nil
}

func (h *PlannerHandler) HandleCancelGenerate(ctx context.Context, input *SessionRequest) (*SessionResponse, error) {
	s, err := h.loadSession(ctx)
	if err != nil {
		return nil, err
	}

	task, err := h.tasks.Cancel(s.PublicID)
	if errors.Is(err, generator.ErrNoTask) {
		return nil, huma.Error404NotFound("No plan generation in progress")
	}

	select {
	case <-task.Done():
	case <-ctx.Done():
		return nil, huma.Error503ServiceUnavailable("Cancellation still in progress")
	}

	s, err = h.loadSession(ctx)
	if err != nil {
		return nil, err
	}
	return h.respond(s), nil
}

func (h *PlannerHandler) finishGeneration(sessionID uint, prefs planner.Preferences, res generator.Result) {
	now := time.Now()
	update := models.PlannerSession{Busy: false}
	columns := []string{"Busy"}
	record := models.GenerationRecord{
		PlannerSessionID: sessionID,
		PreferenceFields: models.NewPreferenceFields(prefs),
		Strategy:         res.Strategy,
		ElapsedMS:        res.Elapsed.Milliseconds(),
	}

	switch {
	case res.Err == nil:
		update.Plan = res.Plan
		update.GeneratedAt = &now
		columns = models.GenerationColumns
		record.Outcome = models.OutcomeCompleted
		record.ItemCount = len(res.Plan)
	case res.Cancelled():
		record.Outcome = models.OutcomeCancelled
	default:
		record.Outcome = models.OutcomeFailed
		record.Error = res.Err.Error()
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		target := &models.PlannerSession{Model: gorm.Model{ID: sessionID}}
		if err := tx.Model(target).Select(columns).Updates(&update).Error; err != nil {
			return err
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		h.logger.Error("failed to record plan generation", zap.Uint("session_id", sessionID), zap.Error(err))
		return
	}

	if record.Outcome != models.OutcomeCompleted || h.notifier == nil {
		return
	}

	var s models.PlannerSession
	if err := h.db.First(&s, sessionID).Error; err != nil {
		h.logger.Warn("failed to load session for notification", zap.Uint("session_id", sessionID), zap.Error(err))
		return
	}
	if err := h.notifier.NotifyPlanGenerated(s, h.catalog.ParkLabel(prefs.Park)); err != nil {
		// The plan is already published; a failed notification is not fatal.
		h.logger.Warn("failed to send plan notification", zap.Error(err))
	}
}

func (h *PlannerHandler) loadSession(ctx context.Context) (*models.PlannerSession, error) {
	id, ok := session.IDFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("No active planner session")
	}

	var s models.PlannerSession
	err := h.db.WithContext(ctx).Where("public_id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, huma.Error404NotFound("Planner session not found")
	} else if err != nil {
		return nil, huma.Error500InternalServerError("Database error loading session: " + err.Error())
	}

	now := time.Now()
	if s.Expired(now) {
		return nil, huma.Error404NotFound("Planner session expired")
	}

	// Keep the stored expiry in step with the sliding cookie.
	if s.ExpiresAt.Sub(now) < h.sessions.TTL()/2 {
		s.ExpiresAt = now.Add(h.sessions.TTL())
		if err := h.db.WithContext(ctx).Model(&s).Update("expires_at", s.ExpiresAt).Error; err != nil {
			h.logger.Warn("failed to extend session", zap.String("session", id), zap.Error(err))
		}
	}
	return &s, nil
}

func (h *PlannerHandler) respond(s *models.PlannerSession) *SessionResponse {
	return &SessionResponse{Body: NewSessionView(h.catalog, s, h.tasks.Busy(s.PublicID))}
}
