package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ToolID represents a unique identifier for a question library tool
type ToolID string

// Validate checks if the ToolID is valid
func (t ToolID) Validate() error {
	if t == "" {
		return goerr.New("tool ID cannot be empty")
	}
	if !idPattern.MatchString(string(t)) {
		return goerr.New("tool ID must be lowercase alphanumeric with hyphens", goerr.V("id", t))
	}
	return nil
}

// String returns the string representation of ToolID
func (t ToolID) String() string {
	return string(t)
}

// CategoryID represents a unique identifier for a library category
type CategoryID string

// Validate checks if the CategoryID is valid
func (c CategoryID) Validate() error {
	if c == "" {
		return goerr.New("category ID cannot be empty")
	}
	if !idPattern.MatchString(string(c)) {
		return goerr.New("category ID must be lowercase alphanumeric with hyphens", goerr.V("id", c))
	}
	return nil
}

// String returns the string representation of CategoryID
func (c CategoryID) String() string {
	return string(c)
}

// TopicID represents a unique identifier for a library topic
type TopicID string

// Validate checks if the TopicID is valid
func (t TopicID) Validate() error {
	if t == "" {
		return goerr.New("topic ID cannot be empty")
	}
	if !idPattern.MatchString(string(t)) {
		return goerr.New("topic ID must be lowercase alphanumeric with hyphens", goerr.V("id", t))
	}
	return nil
}

// String returns the string representation of TopicID
func (t TopicID) String() string {
	return string(t)
}

// QuestionID represents a unique identifier for a library question
type QuestionID string

// Validate checks if the QuestionID is valid
func (q QuestionID) Validate() error {
	if q == "" {
		return goerr.New("question ID cannot be empty")
	}
	if !idPattern.MatchString(string(q)) {
		return goerr.New("question ID must be lowercase alphanumeric with hyphens", goerr.V("id", q))
	}
	return nil
}

// String returns the string representation of QuestionID
func (q QuestionID) String() string {
	return string(q)
}
