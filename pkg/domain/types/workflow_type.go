package types

import "fmt"

// WorkflowType describes which creation path produced an assessment case.
// LIBRARY cases are structured around a question library tool, TEMPLATE
// cases are fast-track assessments seeded from the external risk catalog.
type WorkflowType string

const (
	WorkflowTypeLibrary  WorkflowType = "LIBRARY"
	WorkflowTypeTemplate WorkflowType = "TEMPLATE"
)

// AllWorkflowTypes returns all valid workflow types
func AllWorkflowTypes() []WorkflowType {
	return []WorkflowType{
		WorkflowTypeLibrary,
		WorkflowTypeTemplate,
	}
}

// IsValid checks if the workflow type is valid
func (w WorkflowType) IsValid() bool {
	switch w {
	case WorkflowTypeLibrary,
		WorkflowTypeTemplate:
		return true
	default:
		return false
	}
}

// String returns the string representation of the workflow type
func (w WorkflowType) String() string {
	return string(w)
}

// ParseWorkflowType parses a string into a WorkflowType
func ParseWorkflowType(s string) (WorkflowType, error) {
	wt := WorkflowType(s)
	if !wt.IsValid() {
		return "", fmt.Errorf("invalid workflow type: %s", s)
	}
	return wt, nil
}
