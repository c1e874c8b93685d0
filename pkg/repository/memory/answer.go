package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

type answerRepository struct {
	mu sync.RWMutex
	// keyed by model.AnswerKey(caseID, questionID), which makes Upsert a
	// single map write under one lock
	answers map[string]*model.Answer
}

func newAnswerRepository() *answerRepository {
	return &answerRepository{
		answers: make(map[string]*model.Answer),
	}
}

func copyAnswer(a *model.Answer) *model.Answer {
	copied := *a
	copied.Response = copyPtr(a.Response)
	copied.RiskPriority = copyPtr(a.RiskPriority)
	return &copied
}

func (r *answerRepository) Upsert(ctx context.Context, answer *model.Answer) (*model.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := model.AnswerKey(answer.CaseID, answer.QuestionID)
	now := time.Now().UTC()

	stored := copyAnswer(answer)
	stored.ID = key
	stored.UpdatedAt = now
	if existing, exists := r.answers[key]; exists {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}

	r.answers[key] = stored
	return copyAnswer(stored), nil
}

func (r *answerRepository) Get(ctx context.Context, caseID int64, questionID types.QuestionID) (*model.Answer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := model.AnswerKey(caseID, questionID)
	answer, exists := r.answers[key]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "answer not found",
			goerr.V("case_id", caseID), goerr.V("question_id", questionID))
	}

	return copyAnswer(answer), nil
}

func (r *answerRepository) ListByCase(ctx context.Context, caseID int64) ([]*model.Answer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var answers []*model.Answer
	for _, a := range r.answers {
		if a.CaseID == caseID {
			answers = append(answers, copyAnswer(a))
		}
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].ID < answers[j].ID })

	return answers, nil
}

func (r *answerRepository) Delete(ctx context.Context, caseID int64, questionID types.QuestionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := model.AnswerKey(caseID, questionID)
	if _, exists := r.answers[key]; !exists {
		return goerr.Wrap(ErrNotFound, "answer not found",
			goerr.V("case_id", caseID), goerr.V("question_id", questionID))
	}

	delete(r.answers, key)
	return nil
}

func (r *answerRepository) deleteByCase(caseID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, a := range r.answers {
		if a.CaseID == caseID {
			delete(r.answers, key)
		}
	}
}
