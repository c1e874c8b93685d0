package types

import "fmt"

// CaseStatus represents the lifecycle status of an assessment case
type CaseStatus string

const (
	CaseStatusDraft     CaseStatus = "DRAFT"
	CaseStatusCompleted CaseStatus = "COMPLETED"
)

// AllCaseStatuses returns all valid case statuses
func AllCaseStatuses() []CaseStatus {
	return []CaseStatus{
		CaseStatusDraft,
		CaseStatusCompleted,
	}
}

// IsValid checks if the case status is valid
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusDraft,
		CaseStatusCompleted:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as CaseStatusDraft
func (s CaseStatus) Normalize() CaseStatus {
	if s == "" {
		return CaseStatusDraft
	}
	return s
}

// String returns the string representation of the case status
func (s CaseStatus) String() string {
	return string(s)
}

// ParseCaseStatus parses a string into a CaseStatus
func ParseCaseStatus(s string) (CaseStatus, error) {
	status := CaseStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid case status: %s", s)
	}
	return status, nil
}
