package types

import "fmt"

// RiskPriority is the remediation planning priority of a risk or answer
type RiskPriority string

const (
	RiskPriorityHigh   RiskPriority = "HIGH"
	RiskPriorityMedium RiskPriority = "MEDIUM"
	RiskPriorityLow    RiskPriority = "LOW"
)

// AllRiskPriorities returns all valid risk priorities
func AllRiskPriorities() []RiskPriority {
	return []RiskPriority{
		RiskPriorityHigh,
		RiskPriorityMedium,
		RiskPriorityLow,
	}
}

// IsValid checks if the risk priority is valid
func (p RiskPriority) IsValid() bool {
	switch p {
	case RiskPriorityHigh,
		RiskPriorityMedium,
		RiskPriorityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk priority
func (p RiskPriority) String() string {
	return string(p)
}

// ParseRiskPriority parses a string into a RiskPriority
func ParseRiskPriority(s string) (RiskPriority, error) {
	p := RiskPriority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid risk priority: %s", s)
	}
	return p, nil
}
