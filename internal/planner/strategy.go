package planner

import "context"

// Strategy turns preferences into a plan. Implementations must be safe
// for concurrent use.
type Strategy interface {
	Name() string
	Plan(ctx context.Context, prefs Preferences) (Plan, error)
}

// SampleStrategy ignores its input and always returns the reference
// itinerary. It stands in until a real recommendation algorithm exists.
type SampleStrategy struct{}

func (SampleStrategy) Name() string { return "sample" }

func (SampleStrategy) Plan(ctx context.Context, _ Preferences) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SamplePlan(), nil
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(ctx context.Context, prefs Preferences) (Plan, error)

func (f StrategyFunc) Name() string { return "func" }

func (f StrategyFunc) Plan(ctx context.Context, prefs Preferences) (Plan, error) {
	return f(ctx, prefs)
}
