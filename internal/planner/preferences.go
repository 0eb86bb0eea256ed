package planner

import "slices"

// Category names a multi-valued preference field.
type Category string

const (
	CategoryAgeGroup   Category = "ageGroup"
	CategoryInterests  Category = "interests"
	CategoryPriorities Category = "priorities"
)

// Categories lists the multi-valued fields in form order.
var Categories = []Category{CategoryAgeGroup, CategoryInterests, CategoryPriorities}

// Duration is the length of the planned stay.
type Duration string

const (
	DurationHalfDay Duration = "half-day"
	DurationFullDay Duration = "full-day"
	DurationTwoDays Duration = "two-days"
)

// Preferences holds the visitor's choices. Multi-valued fields keep
// insertion order and never contain duplicates.
type Preferences struct {
	Park       string   `json:"park"`
	AgeGroup   []string `json:"ageGroup"`
	Interests  []string `json:"interests"`
	Duration   Duration `json:"duration"`
	Priorities []string `json:"priorities"`
}

// SetPark returns a copy with park replaced.
func (p Preferences) SetPark(park string) Preferences {
	next := p.Clone()
	next.Park = park
	return next
}

// SetDuration returns a copy with duration replaced.
func (p Preferences) SetDuration(d Duration) Preferences {
	next := p.Clone()
	next.Duration = d
	return next
}

// ToggleMember returns a copy where value is present in category iff
// included is true. Unknown categories leave the preferences unchanged.
func (p Preferences) ToggleMember(category Category, value string, included bool) Preferences {
	next := p.Clone()
	field := next.members(category)
	if field == nil {
		return next
	}
	idx := slices.Index(*field, value)
	switch {
	case included && idx < 0:
		*field = append(*field, value)
	case !included && idx >= 0:
		*field = slices.Delete(*field, idx, idx+1)
	}
	return next
}

// Members returns the values selected for category, or nil for an
// unknown category.
func (p Preferences) Members(category Category) []string {
	field := p.members(category)
	if field == nil {
		return nil
	}
	return slices.Clone(*field)
}

// Has reports whether value is selected in category.
func (p Preferences) Has(category Category, value string) bool {
	field := p.members(category)
	return field != nil && slices.Contains(*field, value)
}

// Clone returns a deep copy.
func (p Preferences) Clone() Preferences {
	return Preferences{
		Park:       p.Park,
		AgeGroup:   slices.Clone(p.AgeGroup),
		Interests:  slices.Clone(p.Interests),
		Duration:   p.Duration,
		Priorities: slices.Clone(p.Priorities),
	}
}

func (p *Preferences) members(category Category) *[]string {
	switch category {
	case CategoryAgeGroup:
		return &p.AgeGroup
	case CategoryInterests:
		return &p.Interests
	case CategoryPriorities:
		return &p.Priorities
	default:
		return nil
	}
}

// KnownCategory reports whether c is one of the multi-valued fields.
func KnownCategory(c Category) bool {
	return slices.Contains(Categories, c)
}
