package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

// ErrMeasureParent is returned when a measure does not have exactly one parent
var ErrMeasureParent = goerr.New("measure must reference exactly one of answer or risk")

// MeasureID is a UUID-based identifier for Measure
type MeasureID string

// NewMeasureID generates a new UUID v4 MeasureID
func NewMeasureID() MeasureID {
	return MeasureID(uuid.New().String())
}

// String returns the string representation of MeasureID
func (m MeasureID) String() string {
	return string(m)
}

// Measure is a planned remediation step attached to exactly one negatively
// scored answer or ad-hoc risk.
type Measure struct {
	ID     MeasureID
	CaseID int64

	// Exactly one of the two parents must be set
	AnswerID *string
	RiskID   *int64

	Description       string
	RequiredExpertise string
	ResponsiblePerson string
	Budget            string
	PlannedStart      *time.Time
	PlannedEnd        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the parent exclusivity invariant
func (m *Measure) Validate() error {
	hasAnswer := m.AnswerID != nil && *m.AnswerID != ""
	hasRisk := m.RiskID != nil
	if hasAnswer == hasRisk {
		return goerr.Wrap(ErrMeasureParent, "invalid measure parents",
			goerr.V("has_answer", hasAnswer), goerr.V("has_risk", hasRisk))
	}
	return nil
}

// Described reports whether the measure carries a non-blank description
func (m *Measure) Described() bool {
	return strings.TrimSpace(m.Description) != ""
}

// DeriveActionPlan derives the three-way remediation status from a set of
// measures: no measures at all, at least one still undescribed, or all
// described. The same rule applies to answers and ad-hoc risks.
func DeriveActionPlan(measures []*Measure) types.ActionPlanStatus {
	if len(measures) == 0 {
		return types.ActionPlanNoMeasures
	}
	for _, m := range measures {
		if !m.Described() {
			return types.ActionPlanIncomplete
		}
	}
	return types.ActionPlanComplete
}
