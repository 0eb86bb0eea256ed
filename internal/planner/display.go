package planner

import "fmt"

const (
	DefaultIcon          = "📍"
	DefaultPriorityClass = "bg-gray-100 text-gray-800"
	DefaultPriorityLabel = "-"

	GenerateCaption   = "🎯 最適プランを生成"
	GeneratingCaption = "プラン生成中..."
	EmptyDescription  = "左側で条件を設定してプランを生成してください"
	EmptyPrompt       = "まずは左側で条件を設定して、プランを生成してみましょう！"
	PlanAdvisory      = "💡 このプランは目安です。当日の混雑状況や天候に応じて調整してくださいね！"

	AppTitle        = "🏰 ディズニーパーク 1日プランナー"
	AppSubtitle     = "あなたの好みに合わせて最適な1日プランを提案します"
	FormTitle       = "プラン設定"
	FormDescription = "あなたの好みや条件を選択してください"
	PlanTitle       = "おすすめ1日プラン"

	ParkSectionLabel       = "パーク選択"
	AgeGroupSectionLabel   = "年齢層・グループ"
	InterestsSectionLabel  = "興味のあるエリア"
	DurationSectionLabel   = "滞在時間"
	PrioritiesSectionLabel = "重視したいポイント"
)

// ScreenLabels are the fixed headings of the planner screen.
type ScreenLabels struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	FormTitle       string `json:"form_title"`
	FormDescription string `json:"form_description"`
	PlanTitle       string `json:"plan_title"`
	Park            string `json:"park"`
	AgeGroup        string `json:"age_group"`
	Interests       string `json:"interests"`
	Duration        string `json:"duration"`
	Priorities      string `json:"priorities"`
}

func Labels() ScreenLabels {
	return ScreenLabels{
		Title:           AppTitle,
		Subtitle:        AppSubtitle,
		FormTitle:       FormTitle,
		FormDescription: FormDescription,
		PlanTitle:       PlanTitle,
		Park:            ParkSectionLabel,
		AgeGroup:        AgeGroupSectionLabel,
		Interests:       InterestsSectionLabel,
		Duration:        DurationSectionLabel,
		Priorities:      PrioritiesSectionLabel,
	}
}

// SectionLabel is the form heading of a checkbox category, or "" when the
// category is unknown.
func SectionLabel(c Category) string {
	switch c {
	case CategoryAgeGroup:
		return AgeGroupSectionLabel
	case CategoryInterests:
		return InterestsSectionLabel
	case CategoryPriorities:
		return PrioritiesSectionLabel
	default:
		return ""
	}
}

// TypeIcon maps an item type to its glyph.
func TypeIcon(t ItemType) string {
	switch t {
	case TypeAttraction:
		return "🎢"
	case TypeShow:
		return "🎭"
	case TypeMeal:
		return "🍽️"
	case TypeBreak:
		return "☕"
	default:
		return DefaultIcon
	}
}

// PriorityClass maps a priority to the badge CSS classes used by the web
// front end.
func PriorityClass(p Priority) string {
	switch p {
	case PriorityHigh:
		return "bg-red-100 text-red-800"
	case PriorityMedium:
		return "bg-yellow-100 text-yellow-800"
	case PriorityLow:
		return "bg-green-100 text-green-800"
	default:
		return DefaultPriorityClass
	}
}

// PriorityLabel maps a priority to its badge text.
func PriorityLabel(p Priority) string {
	switch p {
	case PriorityHigh:
		return "必須"
	case PriorityMedium:
		return "推奨"
	case PriorityLow:
		return "余裕があれば"
	default:
		return DefaultPriorityLabel
	}
}

// TriggerCaption is the text of the generate button.
func TriggerCaption(busy bool) string {
	if busy {
		return GeneratingCaption
	}
	return GenerateCaption
}

// PlanDescription is the subtitle of the plan card. visitor may be empty.
func PlanDescription(hasPlan bool, visitor string) string {
	if !hasPlan {
		return EmptyDescription
	}
	if visitor == "" {
		return "あなたにぴったりのプランが完成しました！"
	}
	return fmt.Sprintf("%sさんにぴったりのプランが完成しました！", visitor)
}

// ItemCountBadge renders the "N items" badge.
func ItemCountBadge(n int) string {
	return fmt.Sprintf("全%d項目", n)
}
