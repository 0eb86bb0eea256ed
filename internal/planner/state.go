package planner

import "slices"

// State is everything the planner screen shows: the form, the last
// published plan (nil until the first generation) and the busy flag.
type State struct {
	Preferences Preferences `json:"preferences"`
	Plan        Plan        `json:"plan"`
	Busy        bool        `json:"busy"`
}

// CanGenerate reports whether the generate trigger is enabled.
func (s State) CanGenerate() bool {
	return s.Preferences.Park != "" && !s.Busy
}

// Event is a discrete user or generator action applied by Reduce.
type Event interface {
	apply(State) State
}

// SetPark selects the park.
type SetPark struct {
	Park string
}

// SetDuration selects the length of stay.
type SetDuration struct {
	Duration Duration
}

// ToggleMember checks or unchecks a value of a multi-valued field.
type ToggleMember struct {
	Category Category
	Value    string
	Included bool
}

// GenerationStarted marks the state busy.
type GenerationStarted struct{}

// GenerationFinished publishes a plan and clears busy.
type GenerationFinished struct {
	Plan Plan
}

// GenerationCancelled clears busy and keeps the previous plan.
type GenerationCancelled struct{}

func (e SetPark) apply(s State) State {
	s.Preferences = s.Preferences.SetPark(e.Park)
	return s
}

func (e SetDuration) apply(s State) State {
	s.Preferences = s.Preferences.SetDuration(e.Duration)
	return s
}

func (e ToggleMember) apply(s State) State {
	s.Preferences = s.Preferences.ToggleMember(e.Category, e.Value, e.Included)
	return s
}

func (GenerationStarted) apply(s State) State {
	s.Busy = true
	return s
}

func (e GenerationFinished) apply(s State) State {
	s.Plan = slices.Clone(e.Plan)
	s.Busy = false
	return s
}

func (GenerationCancelled) apply(s State) State {
	s.Busy = false
	return s
}

// Reduce applies events in order and returns the resulting state. The
// input state is never modified.
func Reduce(s State, events ...Event) State {
	next := State{
		Preferences: s.Preferences.Clone(),
		Plan:        slices.Clone(s.Plan),
		Busy:        s.Busy,
	}
	for _, e := range events {
		if e == nil {
			continue
		}
		next = e.apply(next)
	}
	return next
}
