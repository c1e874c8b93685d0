package types

// ActionPlanStatus is the derived remediation status of a negatively
// scored answer or risk. It is never persisted; it is recomputed from the
// attached measures every time it is read.
type ActionPlanStatus string

const (
	// ActionPlanNoMeasures means the entry requires remediation but has no
	// measures attached yet
	ActionPlanNoMeasures ActionPlanStatus = "no_measures"
	// ActionPlanIncomplete means at least one attached measure is missing
	// its description
	ActionPlanIncomplete ActionPlanStatus = "incomplete"
	// ActionPlanComplete means every attached measure has a description
	ActionPlanComplete ActionPlanStatus = "complete"
)

// String returns the string representation of the action plan status
func (s ActionPlanStatus) String() string {
	return string(s)
}
