package model

import (
	"time"

	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

// Case is a single facility's risk assessment instance. A case either
// references a question library tool (structured workflow) or carries only
// ad-hoc risks seeded from the external catalog (fast-track workflow).
type Case struct {
	ID            int64
	FacilityID    int64
	ToolID        *types.ToolID // nil = fast-track
	ScoringMethod types.ScoringMethod
	WorkflowType  types.WorkflowType
	Status        types.CaseStatus
	FinalComments string // set at completion
	Participants  string // set at completion
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

// IsFastTrack reports whether the case has no question library tool
func (c *Case) IsFastTrack() bool {
	return c.ToolID == nil
}

// ValidUntil returns the date the completed assessment expires, based on
// the workplace hazard class. Draft cases have no expiry.
func (c *Case) ValidUntil(class types.HazardClass) *time.Time {
	if c.Status != types.CaseStatusCompleted || c.CompletedAt == nil {
		return nil
	}
	t := c.CompletedAt.AddDate(class.ValidityYears(), 0, 0)
	return &t
}

// ProgressPercentage computes the progress of a structured case as the
// rounded share of answered questions. Fast-track cases report the share
// of risks that carry a computed score instead, since they have no
// question total to answer against.
func (c *Case) ProgressPercentage(answered, totalQuestions, scoredRisks, totalRisks int) int {
	if c.IsFastTrack() {
		if totalRisks <= 0 {
			return 0
		}
		return roundPercent(scoredRisks, totalRisks)
	}

	if totalQuestions <= 0 {
		return 0
	}
	return roundPercent(answered, totalQuestions)
}

func roundPercent(part, total int) int {
	return int((float64(part)/float64(total))*100 + 0.5)
}
