package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleMember_AddRemove(t *testing.T) {
	var p Preferences

	p = p.ToggleMember(CategoryInterests, "ウエスタンランド", true)
	p = p.ToggleMember(CategoryInterests, "トゥーンタウン", true)
	require.Equal(t, []string{"ウエスタンランド", "トゥーンタウン"}, p.Interests)

	p = p.ToggleMember(CategoryInterests, "ウエスタンランド", false)
	assert.Equal(t, []string{"トゥーンタウン"}, p.Interests)
	assert.False(t, p.Has(CategoryInterests, "ウエスタンランド"))
	assert.True(t, p.Has(CategoryInterests, "トゥーンタウン"))
}

func TestToggleMember_Idempotent(t *testing.T) {
	var p Preferences

	once := p.ToggleMember(CategoryAgeGroup, "大人カップル", true)
	twice := once.ToggleMember(CategoryAgeGroup, "大人カップル", true)
	assert.Equal(t, once, twice)
	assert.Len(t, twice.AgeGroup, 1)

	removed := twice.ToggleMember(CategoryAgeGroup, "大人カップル", false)
	removedAgain := removed.ToggleMember(CategoryAgeGroup, "大人カップル", false)
	assert.Empty(t, removedAgain.AgeGroup)
}

func TestToggleMember_LastWriteWins(t *testing.T) {
	sequences := [][]bool{
		{true},
		{false},
		{true, false},
		{false, true},
		{true, true, false, true},
		{true, false, false},
	}
	for _, seq := range sequences {
		var p Preferences
		for _, included := range seq {
			p = p.ToggleMember(CategoryPriorities, "グルメ重視", included)
		}
		want := seq[len(seq)-1]
		assert.Equal(t, want, p.Has(CategoryPriorities, "グルメ重視"), "sequence %v", seq)
		assert.LessOrEqual(t, len(p.Priorities), 1)
	}
}

func TestToggleMember_PreservesInsertionOrder(t *testing.T) {
	var p Preferences
	for _, v := range []string{"c", "a", "b"} {
		p = p.ToggleMember(CategoryAgeGroup, v, true)
	}
	p = p.ToggleMember(CategoryAgeGroup, "a", false)
	p = p.ToggleMember(CategoryAgeGroup, "a", true)

	assert.Equal(t, []string{"c", "b", "a"}, p.AgeGroup)
}

func TestToggleMember_UnknownCategoryIsNoop(t *testing.T) {
	p := Preferences{Park: "disneysea", Interests: []string{"x"}}

	got := p.ToggleMember(Category("park"), "disneyland", true)
	assert.Equal(t, p, got)
	assert.Nil(t, got.Members(Category("nope")))
	assert.False(t, KnownCategory(Category("park")))
}

func TestSetters_DoNotMutateReceiver(t *testing.T) {
	p := Preferences{Park: "disneyland", Interests: []string{"a"}}

	q := p.SetPark("disneysea").SetDuration(DurationTwoDays).ToggleMember(CategoryInterests, "b", true)

	assert.Equal(t, "disneyland", p.Park)
	assert.Equal(t, Duration(""), p.Duration)
	assert.Equal(t, []string{"a"}, p.Interests)

	assert.Equal(t, "disneysea", q.Park)
	assert.Equal(t, DurationTwoDays, q.Duration)
	assert.Equal(t, []string{"a", "b"}, q.Interests)
}

func TestSetters_KeepOnlyLatestValue(t *testing.T) {
	var p Preferences
	p = p.SetPark("disneyland").SetPark("disneysea")
	p = p.SetDuration(DurationHalfDay).SetDuration(DurationFullDay)

	assert.Equal(t, "disneysea", p.Park)
	assert.Equal(t, DurationFullDay, p.Duration)
}
