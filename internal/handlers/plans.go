package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/park-planner-api/internal/generator"
	"github.com/gdg-garage/park-planner-api/internal/planner"
)

type PlanHandler struct {
	gen     *generator.Generator
	catalog *planner.Catalog
}

func NewPlanHandler(gen *generator.Generator, catalog *planner.Catalog) *PlanHandler {
	return &PlanHandler{gen: gen, catalog: catalog}
}

type CatalogResponse struct {
	Body struct {
		planner.Catalog
		Labels planner.ScreenLabels `json:"labels"`
	}
}

func (h *PlanHandler) HandleCatalog(ctx context.Context, input *struct{}) (*CatalogResponse, error) {
	res := &CatalogResponse{}
	res.Body.Catalog = *h.catalog
	res.Body.Labels = planner.Labels()
	return res, nil
}

type GeneratePlanRequest struct {
	Body struct {
		Park       string   `json:"park" doc:"Park identifier from the catalog"`
		AgeGroup   []string `json:"ageGroup,omitempty"`
		Interests  []string `json:"interests,omitempty"`
		Duration   string   `json:"duration,omitempty"`
		Priorities []string `json:"priorities,omitempty"`
	}
}

type GeneratePlanResponse struct {
	Body *PlanView
}

// HandleGeneratePlan is the stateless form of generation: it waits for the
// simulated delay and returns the plan directly.
func (h *PlanHandler) HandleGeneratePlan(ctx context.Context, input *GeneratePlanRequest) (*GeneratePlanResponse, error) {
	var prefs planner.Preferences
	prefs = prefs.SetPark(input.Body.Park).SetDuration(planner.Duration(input.Body.Duration))
	for _, m := range []struct {
		category planner.Category
		values   []string
	}{
		{planner.CategoryAgeGroup, input.Body.AgeGroup},
		{planner.CategoryInterests, input.Body.Interests},
		{planner.CategoryPriorities, input.Body.Priorities},
	} {
		for _, v := range m.values {
			prefs = prefs.ToggleMember(m.category, v, true)
		}
	}

	if err := validatePreferences(h.catalog, prefs); err != nil {
		return nil, err
	}

	plan, err := h.gen.Generate(ctx, prefs)
	switch {
	case err == nil:
	case errors.Is(err, generator.ErrParkRequired):
		return nil, huma.Error400BadRequest("Select a park before generating a plan")
	case errors.Is(err, generator.ErrRateLimited):
		return nil, huma.Error429TooManyRequests("Too many plan generations, try again later")
	default:
		return nil, huma.Error500InternalServerError("Failed to generate plan: " + err.Error())
	}

	return &GeneratePlanResponse{Body: NewPlanView(h.catalog, prefs.Park, plan)}, nil
}

func validatePreferences(catalog *planner.Catalog, prefs planner.Preferences) error {
	if prefs.Park != "" && !catalog.HasPark(prefs.Park) {
		return huma.Error422UnprocessableEntity(fmt.Sprintf("Unknown park %q", prefs.Park))
	}
	if !catalog.HasDuration(prefs.Duration) {
		return huma.Error422UnprocessableEntity(fmt.Sprintf("Unknown duration %q", prefs.Duration))
	}
	for _, c := range planner.Categories {
		for _, v := range prefs.Members(c) {
			if !catalog.Offers(c, v) {
				return huma.Error422UnprocessableEntity(fmt.Sprintf("Unknown %s option %q", c, v))
			}
		}
	}
	return nil
}
