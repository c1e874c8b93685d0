package model

import (
	"fmt"
	"time"

	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

// Answer is the response to exactly one library question within exactly
// one case. The (CaseID, QuestionID) pair is unique; resubmitting the same
// pair updates the existing answer in place.
type Answer struct {
	ID           string // deterministic: AnswerKey(CaseID, QuestionID)
	CaseID       int64
	QuestionID   types.QuestionID
	Response     *types.Response // nil = unanswered
	Notes        string
	RiskPriority *types.RiskPriority // set later, during remediation planning
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AnswerKey builds the deterministic identity of an answer from its unique
// (case, question) pair. Both repository backends key their storage on it,
// which makes the upsert a single atomic write instead of check-then-insert.
func AnswerKey(caseID int64, questionID types.QuestionID) string {
	return fmt.Sprintf("%d_%s", caseID, questionID)
}

// Answered reports whether the answer carries a response
func (a *Answer) Answered() bool {
	return a.Response != nil
}

// RequiresAction reports whether the answer belongs on the action plan.
// Only negative answers require remediation.
func (a *Answer) RequiresAction() bool {
	return a.Response != nil && *a.Response == types.ResponseNo
}

// ActionPlanStatus derives the remediation status of the answer from its
// attached measures. The second return value is false when the answer does
// not require remediation at all, in which case it must not appear on the
// action plan view.
func (a *Answer) ActionPlanStatus(measures []*Measure) (types.ActionPlanStatus, bool) {
	if !a.RequiresAction() {
		return "", false
	}
	return DeriveActionPlan(measures), true
}
