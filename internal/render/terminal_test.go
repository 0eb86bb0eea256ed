package render

import (
	"strings"
	"testing"

	"github.com/gdg-garage/park-planner-api/internal/planner"
	"github.com/stretchr/testify/assert"
)

func TestPlan(t *testing.T) {
	out := Plan("東京ディズニーシー", "", planner.SamplePlan())

	assert.Contains(t, out, "おすすめ1日プラン")
	assert.Contains(t, out, "東京ディズニーシー")
	assert.Contains(t, out, "全12項目")
	assert.Contains(t, out, "あなたにぴったりのプランが完成しました！")
	assert.Contains(t, out, "ファミチキ")
	assert.Contains(t, out, "最寄りのファミマ")
	assert.Contains(t, out, planner.PlanAdvisory)

	// Items keep their order
	assert.Less(t, strings.Index(out, "開園・入園"), strings.Index(out, "退園"))
}

func TestPriorityBadge(t *testing.T) {
	assert.Contains(t, PriorityBadge(planner.PriorityHigh), "必須")
	assert.Contains(t, PriorityBadge(planner.PriorityLow), "余裕があれば")
	assert.Contains(t, PriorityBadge(planner.Priority("urgent")), planner.DefaultPriorityLabel)
	assert.Equal(t, DefaultColor, priorityColor(planner.Priority("urgent")))
}

func TestCatalog(t *testing.T) {
	out := Catalog(planner.DefaultCatalog())

	assert.Contains(t, out, planner.AppTitle)
	assert.Contains(t, out, "パーク選択")
	assert.Contains(t, out, "年齢層・グループ")
	assert.Contains(t, out, "重視したいポイント")
	assert.NotContains(t, out, "優先したいこと")
	assert.Contains(t, out, "東京ディズニーランド (disneyland)")
	assert.Contains(t, out, "半日（4-6時間） (half-day)")
	assert.Contains(t, out, "のんびり過ごしたい")
}
