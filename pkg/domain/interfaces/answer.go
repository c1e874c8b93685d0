package interfaces

import (
	"context"

	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

// AnswerRepository defines the interface for answer data access. Answers
// are unique on (case, question); there is no separate Create/Update pair,
// only an atomic Upsert keyed on that identity.
type AnswerRepository interface {
	// Upsert writes the answer for its (case, question) pair, creating it
	// if absent and replacing it in place otherwise. The write is a single
	// atomic operation, never a check-then-insert.
	Upsert(ctx context.Context, answer *model.Answer) (*model.Answer, error)

	// Get retrieves the answer for a (case, question) pair
	Get(ctx context.Context, caseID int64, questionID types.QuestionID) (*model.Answer, error)

	// ListByCase retrieves all answers of a case
	ListByCase(ctx context.Context, caseID int64) ([]*model.Answer, error)

	// Delete deletes the answer for a (case, question) pair
	Delete(ctx context.Context, caseID int64, questionID types.QuestionID) error
}
