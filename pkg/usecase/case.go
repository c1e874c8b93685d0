package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

type CaseUseCase struct {
	repo     interfaces.Repository
	registry *model.ToolRegistry
}

func NewCaseUseCase(repo interfaces.Repository, registry *model.ToolRegistry) *CaseUseCase {
	return &CaseUseCase{
		repo:     repo,
		registry: registry,
	}
}

// CreateStructuredCase starts a DRAFT assessment bound to a question
// library tool. The tool must exist in the registry.
func (uc *CaseUseCase) CreateStructuredCase(ctx context.Context, facilityID int64, toolID types.ToolID, method types.ScoringMethod) (*model.Case, error) {
	if !method.Normalize().IsValid() {
		return nil, goerr.Wrap(ErrInvalidMethod, "invalid scoring method", goerr.V("method", method))
	}
	if _, err := uc.registry.Get(toolID); err != nil {
		return nil, goerr.Wrap(ErrUnknownTool, "tool is not registered", goerr.V("tool_id", toolID))
	}

	created, err := uc.repo.Case().Create(ctx, &model.Case{
		FacilityID:    facilityID,
		ToolID:        &toolID,
		ScoringMethod: method.Normalize(),
		WorkflowType:  types.WorkflowTypeLibrary,
		Status:        types.CaseStatusDraft,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create case")
	}
	return created, nil
}

// CreateFastTrackCase starts a DRAFT assessment without a tool. The case
// carries only ad-hoc risks, typically seeded from the catalog.
func (uc *CaseUseCase) CreateFastTrackCase(ctx context.Context, facilityID int64, method types.ScoringMethod) (*model.Case, error) {
	if !method.Normalize().IsValid() {
		return nil, goerr.Wrap(ErrInvalidMethod, "invalid scoring method", goerr.V("method", method))
	}

	created, err := uc.repo.Case().Create(ctx, &model.Case{
		FacilityID:    facilityID,
		ScoringMethod: method.Normalize(),
		WorkflowType:  types.WorkflowTypeTemplate,
		Status:        types.CaseStatusDraft,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create fast-track case")
	}
	return created, nil
}

func (uc *CaseUseCase) GetCase(ctx context.Context, id int64) (*model.Case, error) {
	caseModel, err := uc.repo.Case().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrCaseNotFound, "case not found", goerr.V(CaseIDKey, id))
	}
	return caseModel, nil
}

func (uc *CaseUseCase) ListCases(ctx context.Context) ([]*model.Case, error) {
	cases, err := uc.repo.Case().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list cases")
	}
	return cases, nil
}

func (uc *CaseUseCase) ListCasesByFacility(ctx context.Context, facilityID int64) ([]*model.Case, error) {
	cases, err := uc.repo.Case().ListByFacility(ctx, facilityID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list cases", goerr.V("facility_id", facilityID))
	}
	return cases, nil
}

// FinalizeCase flips a DRAFT case to COMPLETED, writing the final comments
// and participant list in the same update as the status change. The
// transition is one-way and not idempotent.
func (uc *CaseUseCase) FinalizeCase(ctx context.Context, id int64, finalComments, participants string) (*model.Case, error) {
	caseModel, err := uc.repo.Case().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrCaseNotFound, "case not found", goerr.V(CaseIDKey, id))
	}

	if caseModel.Status != types.CaseStatusDraft {
		return nil, goerr.Wrap(ErrCaseAlreadyCompleted, "finalize requires a draft case",
			goerr.V(CaseIDKey, id), goerr.V("status", caseModel.Status))
	}

	now := time.Now().UTC()
	caseModel.Status = types.CaseStatusCompleted
	caseModel.FinalComments = finalComments
	caseModel.Participants = participants
	caseModel.CompletedAt = &now

	updated, err := uc.repo.Case().Update(ctx, caseModel)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to finalize case", goerr.V(CaseIDKey, id))
	}
	return updated, nil
}

func (uc *CaseUseCase) DeleteCase(ctx context.Context, id int64) error {
	if err := uc.repo.Case().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrCaseNotFound, "case not found", goerr.V(CaseIDKey, id))
	}
	return nil
}

// Progress computes the case's completion percentage. Structured cases
// report answered questions over the tool's question total; fast-track
// cases report scored risks over total risks.
func (uc *CaseUseCase) Progress(ctx context.Context, id int64) (int, error) {
	caseModel, err := uc.repo.Case().Get(ctx, id)
	if err != nil {
		return 0, goerr.Wrap(ErrCaseNotFound, "case not found", goerr.V(CaseIDKey, id))
	}

	if caseModel.IsFastTrack() {
		risks, err := uc.repo.Risk().ListByCase(ctx, id)
		if err != nil {
			return 0, goerr.Wrap(err, "failed to list risks", goerr.V(CaseIDKey, id))
		}
		scored := 0
		for _, risk := range risks {
			if risk.Scored() {
				scored++
			}
		}
		return caseModel.ProgressPercentage(0, 0, scored, len(risks)), nil
	}

	tool, err := uc.registry.Get(*caseModel.ToolID)
	if err != nil {
		return 0, goerr.Wrap(ErrUnknownTool, "case references an unregistered tool",
			goerr.V(CaseIDKey, id), goerr.V("tool_id", *caseModel.ToolID))
	}

	answers, err := uc.repo.Answer().ListByCase(ctx, id)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list answers", goerr.V(CaseIDKey, id))
	}
	answered := 0
	for _, answer := range answers {
		if answer.Answered() {
			answered++
		}
	}

	return caseModel.ProgressPercentage(answered, tool.QuestionCount(), 0, 0), nil
}

// requireDraftCase loads the case and rejects mutation on completed ones
func requireDraftCase(ctx context.Context, repo interfaces.Repository, caseID int64) (*model.Case, error) {
	caseModel, err := repo.Case().Get(ctx, caseID)
	if err != nil {
		return nil, goerr.Wrap(ErrCaseNotFound, "case not found", goerr.V(CaseIDKey, caseID))
	}
	if caseModel.Status == types.CaseStatusCompleted {
		return nil, goerr.Wrap(ErrCaseCompleted, "completed case is read-only", goerr.V(CaseIDKey, caseID))
	}
	return caseModel, nil
}
