package types

import "fmt"

// HazardClass is the regulatory danger class of a workplace. It determines
// how long a completed assessment remains valid.
type HazardClass string

const (
	HazardClassHigh   HazardClass = "HIGH"
	HazardClassMedium HazardClass = "MEDIUM"
	HazardClassLow    HazardClass = "LOW"
)

// AllHazardClasses returns all valid hazard classes
func AllHazardClasses() []HazardClass {
	return []HazardClass{
		HazardClassHigh,
		HazardClassMedium,
		HazardClassLow,
	}
}

// IsValid checks if the hazard class is valid
func (h HazardClass) IsValid() bool {
	switch h {
	case HazardClassHigh,
		HazardClassMedium,
		HazardClassLow:
		return true
	default:
		return false
	}
}

// ValidityYears returns how many years a completed assessment stays valid
// for a workplace of this hazard class. Unknown classes fall back to the
// least dangerous period.
func (h HazardClass) ValidityYears() int {
	switch h {
	case HazardClassHigh:
		return 2
	case HazardClassMedium:
		return 4
	default:
		return 6
	}
}

// DisplayName returns the report label of the hazard class
func (h HazardClass) DisplayName() string {
	switch h {
	case HazardClassHigh:
		return "Çok Tehlikeli"
	case HazardClassMedium:
		return "Tehlikeli"
	case HazardClassLow:
		return "Az Tehlikeli"
	default:
		return "-"
	}
}

// String returns the string representation of the hazard class
func (h HazardClass) String() string {
	return string(h)
}

// ParseHazardClass parses a string into a HazardClass
func ParseHazardClass(s string) (HazardClass, error) {
	hc := HazardClass(s)
	if !hc.IsValid() {
		return "", fmt.Errorf("invalid hazard class: %s", s)
	}
	return hc, nil
}
