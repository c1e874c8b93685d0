package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

func buildTool() *model.Tool {
	// Orders are deliberately shuffled relative to slice order
	return &model.Tool{
		ID:   "office-safety",
		Name: "Ofis Güvenliği",
		Categories: []model.Category{
			{
				ID: "emergency", Name: "Acil Durum", Order: 2,
				Topics: []model.Topic{
					{
						ID: "exits", Name: "Çıkışlar", Order: 1,
						Questions: []model.Question{
							{ID: "exits-marked", Text: "Acil çıkışlar işaretli mi?", Order: 1},
						},
					},
				},
			},
			{
				ID: "general", Name: "Genel", Order: 1,
				Topics: []model.Topic{
					{
						ID: "electrical", Name: "Elektrik", Order: 2,
						Questions: []model.Question{
							{ID: "cables-safe", Text: "Kablolar güvenli mi?", Order: 2},
							{ID: "panels-locked", Text: "Panolar kilitli mi?", Order: 1},
						},
					},
					{
						ID: "housekeeping", Name: "Düzen", Order: 1,
						Questions: []model.Question{
							{ID: "floors-clear", Text: "Zeminler temiz mi?", Order: 1},
						},
					},
				},
			},
		},
	}
}

func TestToolRegistry_TraversalOrder(t *testing.T) {
	registry := model.NewToolRegistry()
	registry.Register(buildTool())

	tool := gt.R1(registry.Get("office-safety")).NoError(t)

	questions := tool.Questions()
	gt.Number(t, len(questions)).Equal(4)

	// (category order, topic order, question order)
	want := []types.QuestionID{"floors-clear", "panels-locked", "cables-safe", "exits-marked"}
	for i, w := range want {
		gt.Value(t, questions[i].Question.ID).Equal(w)
	}

	// Annotations carry the owning category and topic
	gt.Value(t, questions[0].CategoryID).Equal(types.CategoryID("general"))
	gt.Value(t, questions[0].TopicID).Equal(types.TopicID("housekeeping"))
	gt.Value(t, questions[3].CategoryName).Equal("Acil Durum")
}

func TestTool_QuestionCount(t *testing.T) {
	tool := buildTool()
	gt.Number(t, tool.QuestionCount()).Equal(4)

	empty := &model.Tool{ID: "empty"}
	gt.Number(t, empty.QuestionCount()).Equal(0)
}

func TestTool_HasQuestion(t *testing.T) {
	tool := buildTool()
	gt.Value(t, tool.HasQuestion("cables-safe")).Equal(true)
	gt.Value(t, tool.HasQuestion("no-such-question")).Equal(false)
}

func TestToolRegistry_GetUnknown(t *testing.T) {
	registry := model.NewToolRegistry()
	_, err := registry.Get("missing")
	gt.Error(t, err)
}

func TestToolRegistry_ListOrder(t *testing.T) {
	registry := model.NewToolRegistry()
	registry.Register(&model.Tool{ID: "b-tool"})
	registry.Register(&model.Tool{ID: "a-tool"})

	tools := registry.List()
	gt.Number(t, len(tools)).Equal(2)
	gt.Value(t, tools[0].ID).Equal(types.ToolID("b-tool"))
	gt.Value(t, tools[1].ID).Equal(types.ToolID("a-tool"))
}
