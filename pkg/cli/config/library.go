package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Library holds CLI flags for the question library configuration
type Library struct {
	paths []string
}

// Flags returns CLI flags for library configuration
func (l *Library) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "library",
			Usage:       "Question library tool definition file (TOML, repeatable)",
			Sources:     cli.EnvVars("RISKDESK_LIBRARY"),
			Destination: &l.paths,
		},
	}
}

// Paths returns the configured library file paths
func (l *Library) Paths() []string {
	return l.paths
}

type questionDoc struct {
	ID    string `toml:"id"`
	Text  string `toml:"text"`
	Order int    `toml:"order"`
}

type topicDoc struct {
	ID        string        `toml:"id"`
	Name      string        `toml:"name"`
	Order     int           `toml:"order"`
	Questions []questionDoc `toml:"question"`
}

type categoryDoc struct {
	ID     string     `toml:"id"`
	Name   string     `toml:"name"`
	Order  int        `toml:"order"`
	Topics []topicDoc `toml:"topic"`
}

type toolDoc struct {
	ID          string        `toml:"id"`
	Name        string        `toml:"name"`
	Description string        `toml:"description"`
	Categories  []categoryDoc `toml:"category"`
}

// Configure loads every tool definition file and builds the registry.
// Each file holds exactly one tool. The registry may legally be empty;
// a server without libraries only supports fast-track cases.
func (l *Library) Configure() (*model.ToolRegistry, error) {
	registry := model.NewToolRegistry()
	seen := map[types.ToolID]string{}

	for _, path := range l.paths {
		tool, err := loadTool(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[tool.ID]; ok {
			return nil, goerr.Wrap(ErrDuplicateToolID, "tool defined twice",
				goerr.V(ToolIDKey, tool.ID), goerr.V(ConfigPathKey, path), goerr.V("previous_path", prev))
		}
		seen[tool.ID] = path
		registry.Register(tool)
	}

	return registry, nil
}

func loadTool(path string) (*model.Tool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "library file not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read library file", goerr.V(ConfigPathKey, path))
	}

	var doc toolDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse library file", goerr.V(ConfigPathKey, path))
	}

	tool, err := doc.toTool()
	if err != nil {
		return nil, goerr.Wrap(err, "invalid library file", goerr.V(ConfigPathKey, path))
	}
	return tool, nil
}

func (d *toolDoc) toTool() (*model.Tool, error) {
	toolID := types.ToolID(d.ID)
	if err := toolID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid tool ID")
	}
	if d.Name == "" {
		return nil, goerr.Wrap(ErrMissingName, "tool name is required", goerr.V(ToolIDKey, d.ID))
	}

	tool := &model.Tool{
		ID:          toolID,
		Name:        d.Name,
		Description: d.Description,
	}

	questionIDs := map[types.QuestionID]bool{}
	for _, catDoc := range d.Categories {
		cat, err := catDoc.toCategory(questionIDs)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid category", goerr.V(ToolIDKey, d.ID))
		}
		tool.Categories = append(tool.Categories, cat)
	}

	if len(questionIDs) == 0 {
		return nil, goerr.Wrap(ErrEmptyLibraryConfig, "tool must contain at least one question",
			goerr.V(ToolIDKey, d.ID))
	}
	return tool, nil
}

func (d *categoryDoc) toCategory(questionIDs map[types.QuestionID]bool) (model.Category, error) {
	catID := types.CategoryID(d.ID)
	if err := catID.Validate(); err != nil {
		return model.Category{}, goerr.Wrap(err, "invalid category ID")
	}
	if d.Name == "" {
		return model.Category{}, goerr.Wrap(ErrMissingName, "category name is required",
			goerr.V(CategoryIDKey, d.ID))
	}

	cat := model.Category{
		ID:    catID,
		Name:  d.Name,
		Order: d.Order,
	}
	for _, topicDoc := range d.Topics {
		topic, err := topicDoc.toTopic(questionIDs)
		if err != nil {
			return model.Category{}, goerr.Wrap(err, "invalid topic", goerr.V(CategoryIDKey, d.ID))
		}
		cat.Topics = append(cat.Topics, topic)
	}
	return cat, nil
}

func (d *topicDoc) toTopic(questionIDs map[types.QuestionID]bool) (model.Topic, error) {
	topicID := types.TopicID(d.ID)
	if err := topicID.Validate(); err != nil {
		return model.Topic{}, goerr.Wrap(err, "invalid topic ID")
	}
	if d.Name == "" {
		return model.Topic{}, goerr.Wrap(ErrMissingName, "topic name is required",
			goerr.V(TopicIDKey, d.ID))
	}

	topic := model.Topic{
		ID:    topicID,
		Name:  d.Name,
		Order: d.Order,
	}
	for _, qDoc := range d.Questions {
		questionID := types.QuestionID(qDoc.ID)
		if err := questionID.Validate(); err != nil {
			return model.Topic{}, goerr.Wrap(err, "invalid question ID", goerr.V(TopicIDKey, d.ID))
		}
		if qDoc.Text == "" {
			return model.Topic{}, goerr.Wrap(ErrMissingText, "invalid question",
				goerr.V(QuestionIDKey, qDoc.ID))
		}
		if questionIDs[questionID] {
			return model.Topic{}, goerr.Wrap(ErrDuplicateQuestion, "question defined twice",
				goerr.V(QuestionIDKey, qDoc.ID))
		}
		questionIDs[questionID] = true

		topic.Questions = append(topic.Questions, model.Question{
			ID:    questionID,
			Text:  qDoc.Text,
			Order: qDoc.Order,
		})
	}
	return topic, nil
}
