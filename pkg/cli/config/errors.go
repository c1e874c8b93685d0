package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound     = goerr.New("configuration file not found")
	ErrDuplicateToolID    = goerr.New("duplicate tool ID")
	ErrDuplicateQuestion  = goerr.New("duplicate question ID")
	ErrMissingName        = goerr.New("name is required")
	ErrMissingText        = goerr.New("question text is required")
	ErrEmptyLibraryConfig = goerr.New("library has no questions")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	ToolIDKey     = "tool_id"
	CategoryIDKey = "category_id"
	TopicIDKey    = "topic_id"
	QuestionIDKey = "question_id"
)
