package types

import "fmt"

// ScoringMethod selects the risk scoring methodology
type ScoringMethod string

const (
	// ScoringMethodFineKinney is the Fine-Kinney (P x F x S) methodology
	ScoringMethodFineKinney ScoringMethod = "FINE_KINNEY"
	// ScoringMethodLMatrix is the L-Matrix 5x5 (P x S) methodology
	ScoringMethodLMatrix ScoringMethod = "L_MATRIX"
)

// AllScoringMethods returns all valid scoring methods
func AllScoringMethods() []ScoringMethod {
	return []ScoringMethod{
		ScoringMethodFineKinney,
		ScoringMethodLMatrix,
	}
}

// IsValid checks if the scoring method is valid
func (m ScoringMethod) IsValid() bool {
	switch m {
	case ScoringMethodFineKinney,
		ScoringMethodLMatrix:
		return true
	default:
		return false
	}
}

// Normalize returns the method, treating empty as Fine-Kinney which is the
// historical default of the assessment workflow.
func (m ScoringMethod) Normalize() ScoringMethod {
	if m == "" {
		return ScoringMethodFineKinney
	}
	return m
}

// String returns the string representation of the scoring method
func (m ScoringMethod) String() string {
	return string(m)
}

// ParseScoringMethod parses a string into a ScoringMethod
func ParseScoringMethod(s string) (ScoringMethod, error) {
	method := ScoringMethod(s)
	if !method.IsValid() {
		return "", fmt.Errorf("invalid scoring method: %s", s)
	}
	return method, nil
}
