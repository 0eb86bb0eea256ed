package planner

import "slices"

// ItemType classifies a plan entry. It only drives the display icon.
type ItemType string

const (
	TypeAttraction ItemType = "attraction"
	TypeShow       ItemType = "show"
	TypeMeal       ItemType = "meal"
	TypeBreak      ItemType = "break"
)

// Priority ranks a plan entry. It only drives the display style and label.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PlanItem is one scheduled entry of an itinerary. Time is a free-form
// wall-clock label and is never parsed.
type PlanItem struct {
	Time     string   `json:"time"`
	Activity string   `json:"activity"`
	Location string   `json:"location"`
	Type     ItemType `json:"type"`
	Priority Priority `json:"priority"`
}

// Plan is a chronological itinerary.
type Plan []PlanItem

var samplePlan = Plan{
	{Time: "8:00", Activity: "開園・入園", Location: "メインエントランス", Type: TypeBreak, Priority: PriorityHigh},
	{Time: "8:30", Activity: "ダックリングドリームバーガー", Location: "ファンタジースプリングス", Type: TypeMeal, Priority: PriorityMedium},
	{Time: "9:30", Activity: "ギョウザドッグ", Location: "ミステリアスアイランド", Type: TypeMeal, Priority: PriorityMedium},
	{Time: "10:30", Activity: "フライドチキン", Location: "アメリカンウォーターフロント", Type: TypeMeal, Priority: PriorityHigh},
	{Time: "12:00", Activity: "ユカタンソーセージドッグ", Location: "ロストリバーデルタ", Type: TypeMeal, Priority: PriorityMedium},
	{Time: "13:30", Activity: "クレームブリュレ風チュロス", Location: "ウエスタンランド", Type: TypeMeal, Priority: PriorityMedium},
	{Time: "14:30", Activity: "スパークリングカクテル（ウォッカ&パイナップル）", Location: "アメリカンウォーターフロント", Type: TypeBreak, Priority: PriorityLow},
	{Time: "15:30", Activity: "ウィスキーカクテル（ピーチ&バタフライピー", Location: "アメリカンウォーターフロント", Type: TypeBreak, Priority: PriorityLow},
	{Time: "16:30", Activity: "日本酒カクテル（Apple&バニラ）", Location: "アメリカンウォーターフロント", Type: TypeBreak, Priority: PriorityLow},
	{Time: "18:00", Activity: "スモークチキンレッグ", Location: "ファンタジースプリングス", Type: TypeMeal, Priority: PriorityHigh},
	{Time: "20:00", Activity: "退園", Location: "メインエントランス", Type: TypeBreak, Priority: PriorityLow},
	{Time: "21:00", Activity: "ファミチキ", Location: "最寄りのファミマ", Type: TypeMeal, Priority: PriorityHigh},
}

// SamplePlan returns a fresh copy of the fixed reference itinerary.
func SamplePlan() Plan {
	return slices.Clone(samplePlan)
}
