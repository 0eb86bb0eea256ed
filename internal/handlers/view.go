package handlers

import (
	"time"

	"github.com/gdg-garage/park-planner-api/internal/models"
	"github.com/gdg-garage/park-planner-api/internal/planner"
)

type PlanItemView struct {
	planner.PlanItem
	Icon          string `json:"icon"`
	PriorityClass string `json:"priority_class"`
	PriorityLabel string `json:"priority_label"`
}

type PlanView struct {
	Title      string         `json:"title"`
	Park       string         `json:"park"`
	ParkLabel  string         `json:"park_label"`
	Count      int            `json:"count"`
	CountBadge string         `json:"count_badge"`
	Items      []PlanItemView `json:"items"`
	Advisory   string         `json:"advisory"`
}

type SessionView struct {
	ID             string              `json:"id"`
	VisitorName    string              `json:"visitor_name,omitempty"`
	Preferences    planner.Preferences `json:"preferences"`
	Busy           bool                `json:"busy"`
	CanGenerate    bool                `json:"can_generate"`
	TriggerCaption string              `json:"trigger_caption"`
	Description    string              `json:"description"`
	EmptyPrompt    string              `json:"empty_prompt,omitempty"`
	Plan           *PlanView           `json:"plan"`
	GeneratedAt    *time.Time          `json:"generated_at,omitempty"`
	ExpiresAt      time.Time           `json:"expires_at"`
}

func NewPlanView(catalog *planner.Catalog, park string, plan planner.Plan) *PlanView {
	items := make([]PlanItemView, 0, len(plan))
	for _, item := range plan {
		items = append(items, PlanItemView{
			PlanItem:      item,
			Icon:          planner.TypeIcon(item.Type),
			PriorityClass: planner.PriorityClass(item.Priority),
			PriorityLabel: planner.PriorityLabel(item.Priority),
		})
	}
	return &PlanView{
		Title:      planner.PlanTitle,
		Park:       park,
		ParkLabel:  catalog.ParkLabel(park),
		Count:      len(plan),
		CountBadge: planner.ItemCountBadge(len(plan)),
		Items:      items,
		Advisory:   planner.PlanAdvisory,
	}
}

// NewSessionView renders a session. busy overrides the stored flag when a
// generation is known to be pending.
func NewSessionView(catalog *planner.Catalog, s *models.PlannerSession, busy bool) SessionView {
	state := s.State()
	state.Busy = state.Busy || busy

	view := SessionView{
		ID:             s.PublicID,
		VisitorName:    s.VisitorName,
		Preferences:    normalize(state.Preferences),
		Busy:           state.Busy,
		CanGenerate:    state.CanGenerate(),
		TriggerCaption: planner.TriggerCaption(state.Busy),
		Description:    planner.PlanDescription(state.Plan != nil, s.VisitorName),
		GeneratedAt:    s.GeneratedAt,
		ExpiresAt:      s.ExpiresAt,
	}
	if state.Plan != nil {
		// The badge follows the currently selected park.
		view.Plan = NewPlanView(catalog, state.Preferences.Park, state.Plan)
	} else {
		view.EmptyPrompt = planner.EmptyPrompt
	}
	return view
}

// normalize replaces nil sets with empty ones so they encode as [].
func normalize(p planner.Preferences) planner.Preferences {
	if p.AgeGroup == nil {
		p.AgeGroup = []string{}
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	if p.Priorities == nil {
		p.Priorities = []string{}
	}
	return p
}
