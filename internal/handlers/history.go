package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/park-planner-api/internal/models"
)

type HistoryRequest struct {
	Limit int `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Maximum number of records"`
}

type HistoryEntry struct {
	CreatedAt   time.Time               `json:"created_at"`
	Outcome     string                  `json:"outcome"`
	Strategy    string                  `json:"strategy"`
	ItemCount   int                     `json:"item_count"`
	ElapsedMS   int64                   `json:"elapsed_ms"`
	Error       string                  `json:"error,omitempty"`
	Preferences models.PreferenceFields `json:"preferences"`
}

type HistoryResponse struct {
	Body struct {
		History []HistoryEntry `json:"history"`
	}
}

func (h *PlannerHandler) HandleHistory(ctx context.Context, input *HistoryRequest) (*HistoryResponse, error) {
	s, err := h.loadSession(ctx)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	var records []models.GenerationRecord
	if err := h.db.WithContext(ctx).
		Where("planner_session_id = ?", s.ID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to fetch history: " + err.Error())
	}

	res := &HistoryResponse{}
	res.Body.History = make([]HistoryEntry, 0, len(records))
	for _, r := range records {
		res.Body.History = append(res.Body.History, HistoryEntry{
			CreatedAt:   r.CreatedAt,
			Outcome:     r.Outcome,
			Strategy:    r.Strategy,
			ItemCount:   r.ItemCount,
			ElapsedMS:   r.ElapsedMS,
			Error:       r.Error,
			Preferences: r.PreferenceFields,
		})
	}
	return res, nil
}
