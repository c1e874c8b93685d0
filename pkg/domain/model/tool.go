package model

import (
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

// ErrToolNotFound is returned when a tool is not found in the registry
var ErrToolNotFound = goerr.New("tool not found")

// Question is a single reusable checklist question
type Question struct {
	ID    types.QuestionID
	Text  string
	Order int
}

// Topic groups questions inside a category
type Topic struct {
	ID        types.TopicID
	Name      string
	Order     int
	Questions []Question
}

// Category groups topics inside a tool
type Category struct {
	ID     types.CategoryID
	Name   string
	Order  int
	Topics []Topic
}

// Tool is a reusable questionnaire template: a strict 4-level ordered tree
// of Tool -> Category -> Topic -> Question. Tools are immutable at runtime;
// they are loaded once into a ToolRegistry at startup.
type Tool struct {
	ID          types.ToolID
	Name        string
	Description string
	Categories  []Category
}

// TraversedQuestion is a question annotated with its category and topic,
// as produced by the deterministic tool traversal.
type TraversedQuestion struct {
	CategoryID   types.CategoryID
	CategoryName string
	TopicID      types.TopicID
	TopicName    string
	Question     Question
}

// Questions yields every question of the tool exactly once, in
// (category order, topic order, question order).
func (t *Tool) Questions() []TraversedQuestion {
	var result []TraversedQuestion
	for _, cat := range t.Categories {
		for _, topic := range cat.Topics {
			for _, q := range topic.Questions {
				result = append(result, TraversedQuestion{
					CategoryID:   cat.ID,
					CategoryName: cat.Name,
					TopicID:      topic.ID,
					TopicName:    topic.Name,
					Question:     q,
				})
			}
		}
	}
	return result
}

// QuestionCount returns the total number of questions under the tool
func (t *Tool) QuestionCount() int {
	count := 0
	for _, cat := range t.Categories {
		for _, topic := range cat.Topics {
			count += len(topic.Questions)
		}
	}
	return count
}

// HasQuestion reports whether the tool contains the given question
func (t *Tool) HasQuestion(id types.QuestionID) bool {
	for _, cat := range t.Categories {
		for _, topic := range cat.Topics {
			for _, q := range topic.Questions {
				if q.ID == id {
					return true
				}
			}
		}
	}
	return false
}

// sortTree orders categories, topics and questions by their order index.
// Ties keep their definition order.
func (t *Tool) sortTree() {
	sort.SliceStable(t.Categories, func(i, j int) bool {
		return t.Categories[i].Order < t.Categories[j].Order
	})
	for ci := range t.Categories {
		cat := &t.Categories[ci]
		sort.SliceStable(cat.Topics, func(i, j int) bool {
			return cat.Topics[i].Order < cat.Topics[j].Order
		})
		for ti := range cat.Topics {
			topic := &cat.Topics[ti]
			sort.SliceStable(topic.Questions, func(i, j int) bool {
				return topic.Questions[i].Order < topic.Questions[j].Order
			})
		}
	}
}

// ToolRegistry holds the question library. It is populated once at startup
// and safely shared read-only across concurrent cases.
type ToolRegistry struct {
	entries map[types.ToolID]*Tool
	order   []types.ToolID // preserves registration order
}

// NewToolRegistry creates a new empty ToolRegistry
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		entries: make(map[types.ToolID]*Tool),
	}
}

// Register adds a tool to the registry and normalizes its tree ordering
func (r *ToolRegistry) Register(tool *Tool) {
	tool.sortTree()
	if _, exists := r.entries[tool.ID]; !exists {
		r.order = append(r.order, tool.ID)
	}
	r.entries[tool.ID] = tool
}

// Get retrieves a tool by ID
func (r *ToolRegistry) Get(toolID types.ToolID) (*Tool, error) {
	tool, ok := r.entries[toolID]
	if !ok {
		return nil, goerr.Wrap(ErrToolNotFound, "tool not found",
			goerr.V("tool_id", toolID))
	}
	return tool, nil
}

// List returns all registered tools in registration order
func (r *ToolRegistry) List() []*Tool {
	result := make([]*Tool, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.entries[id])
	}
	return result
}
