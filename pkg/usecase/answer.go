package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

type AnswerUseCase struct {
	repo     interfaces.Repository
	registry *model.ToolRegistry
}

func NewAnswerUseCase(repo interfaces.Repository, registry *model.ToolRegistry) *AnswerUseCase {
	return &AnswerUseCase{
		repo:     repo,
		registry: registry,
	}
}

// UpsertAnswer records the response to one library question of a case.
// The question must belong to the case's tool; submitting the same
// question again replaces the stored answer in place. A nil response
// stores an unanswered placeholder carrying only notes.
func (uc *AnswerUseCase) UpsertAnswer(ctx context.Context, caseID int64, questionID types.QuestionID, response *types.Response, notes string, priority *types.RiskPriority) (*model.Answer, error) {
	if response != nil && !response.IsValid() {
		return nil, goerr.Wrap(ErrInvalidResponse, "unknown response value",
			goerr.V("response", *response))
	}
	if priority != nil && !priority.IsValid() {
		return nil, goerr.Wrap(ErrInvalidPriority, "unknown priority value",
			goerr.V("priority", *priority))
	}

	caseModel, err := requireDraftCase(ctx, uc.repo, caseID)
	if err != nil {
		return nil, err
	}

	if caseModel.IsFastTrack() {
		return nil, goerr.Wrap(ErrQuestionNotInTool, "fast-track case has no questions",
			goerr.V(CaseIDKey, caseID), goerr.V(QuestionIDKey, questionID))
	}
	tool, err := uc.registry.Get(*caseModel.ToolID)
	if err != nil {
		return nil, goerr.Wrap(ErrUnknownTool, "case references an unregistered tool",
			goerr.V(CaseIDKey, caseID), goerr.V("tool_id", *caseModel.ToolID))
	}
	if !tool.HasQuestion(questionID) {
		return nil, goerr.Wrap(ErrQuestionNotInTool, "question is not part of the tool",
			goerr.V(CaseIDKey, caseID), goerr.V(QuestionIDKey, questionID),
			goerr.V("tool_id", tool.ID))
	}

	answer, err := uc.repo.Answer().Upsert(ctx, &model.Answer{
		CaseID:       caseID,
		QuestionID:   questionID,
		Response:     response,
		Notes:        notes,
		RiskPriority: priority,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upsert answer",
			goerr.V(CaseIDKey, caseID), goerr.V(QuestionIDKey, questionID))
	}
	return answer, nil
}

func (uc *AnswerUseCase) GetAnswer(ctx context.Context, caseID int64, questionID types.QuestionID) (*model.Answer, error) {
	answer, err := uc.repo.Answer().Get(ctx, caseID, questionID)
	if err != nil {
		return nil, goerr.Wrap(ErrAnswerNotFound, "answer not found",
			goerr.V(CaseIDKey, caseID), goerr.V(QuestionIDKey, questionID))
	}
	return answer, nil
}

func (uc *AnswerUseCase) ListAnswers(ctx context.Context, caseID int64) ([]*model.Answer, error) {
	answers, err := uc.repo.Answer().ListByCase(ctx, caseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list answers", goerr.V(CaseIDKey, caseID))
	}
	return answers, nil
}

func (uc *AnswerUseCase) DeleteAnswer(ctx context.Context, caseID int64, questionID types.QuestionID) error {
	if _, err := requireDraftCase(ctx, uc.repo, caseID); err != nil {
		return err
	}
	if err := uc.repo.Answer().Delete(ctx, caseID, questionID); err != nil {
		return goerr.Wrap(ErrAnswerNotFound, "answer not found",
			goerr.V(CaseIDKey, caseID), goerr.V(QuestionIDKey, questionID))
	}
	return nil
}
