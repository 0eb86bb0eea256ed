// Package render formats planner output for terminals.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdg-garage/park-planner-api/internal/planner"
)

// Priority badge colors, matching the red/yellow/green badges of the web form.
var (
	HighColor    = lipgloss.Color("#e53935")
	MediumColor  = lipgloss.Color("#FFC107")
	LowColor     = lipgloss.Color("#8BC34A")
	DefaultColor = lipgloss.Color("#9e9e9e")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	timeStyle     = lipgloss.NewStyle().Width(6).Bold(true)
	locationStyle = lipgloss.NewStyle().Faint(true)
	footerStyle   = lipgloss.NewStyle().Italic(true)
)

func priorityColor(p planner.Priority) lipgloss.Color {
	switch p {
	case planner.PriorityHigh:
		return HighColor
	case planner.PriorityMedium:
		return MediumColor
	case planner.PriorityLow:
		return LowColor
	default:
		return DefaultColor
	}
}

// PriorityBadge renders the label of p in its badge color.
func PriorityBadge(p planner.Priority) string {
	return lipgloss.NewStyle().
		Foreground(priorityColor(p)).
		Bold(p == planner.PriorityHigh).
		Render("[" + planner.PriorityLabel(p) + "]")
}

// Plan renders an itinerary as a timeline headed by the park label.
func Plan(parkLabel, visitor string, plan planner.Plan) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(planner.PlanTitle))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("📅 %s  %s", parkLabel, planner.ItemCountBadge(len(plan))))
	b.WriteString("\n")
	b.WriteString(planner.PlanDescription(len(plan) > 0, visitor))
	b.WriteString("\n\n")

	for _, item := range plan {
		fmt.Fprintf(&b, "%s %s %s %s\n",
			timeStyle.Render(item.Time),
			planner.TypeIcon(item.Type),
			item.Activity,
			PriorityBadge(item.Priority))
		fmt.Fprintf(&b, "%s   %s\n", strings.Repeat(" ", 6), locationStyle.Render("📍 "+item.Location))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(planner.PlanAdvisory))
	b.WriteString("\n")
	return b.String()
}

// Catalog renders the offered options of every form section.
func Catalog(c *planner.Catalog) string {
	var b strings.Builder

	section := func(title string, values []string) {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
		for _, v := range values {
			b.WriteString("  - " + v + "\n")
		}
		b.WriteString("\n")
	}

	options := func(opts []planner.Option) []string {
		out := make([]string, 0, len(opts))
		for _, o := range opts {
			out = append(out, fmt.Sprintf("%s (%s)", o.Label, o.ID))
		}
		return out
	}

	b.WriteString(titleStyle.Render(planner.AppTitle))
	b.WriteString("\n")
	b.WriteString(planner.AppSubtitle)
	b.WriteString("\n\n")

	section(planner.ParkSectionLabel, options(c.Parks))
	section(planner.SectionLabel(planner.CategoryAgeGroup), c.AgeGroups)
	section(planner.SectionLabel(planner.CategoryInterests), c.Areas)
	section(planner.DurationSectionLabel, options(c.Durations))
	section(planner.SectionLabel(planner.CategoryPriorities), c.Focuses)
	return strings.TrimRight(b.String(), "\n") + "\n"
}
