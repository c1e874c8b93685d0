package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

type MeasureUseCase struct {
	repo interfaces.Repository
}

func NewMeasureUseCase(repo interfaces.Repository) *MeasureUseCase {
	return &MeasureUseCase{repo: repo}
}

// MeasureInput carries the editable fields of a remediation measure
type MeasureInput struct {
	Description       string
	RequiredExpertise string
	ResponsiblePerson string
	Budget            string
	PlannedStart      *time.Time
	PlannedEnd        *time.Time
}

func (in *MeasureInput) apply(measure *model.Measure) {
	measure.Description = in.Description
	measure.RequiredExpertise = in.RequiredExpertise
	measure.ResponsiblePerson = in.ResponsiblePerson
	measure.Budget = in.Budget
	measure.PlannedStart = in.PlannedStart
	measure.PlannedEnd = in.PlannedEnd
}

// CreateMeasureForAnswer attaches a measure to a negatively answered
// question of a draft case
func (uc *MeasureUseCase) CreateMeasureForAnswer(ctx context.Context, caseID int64, answerID string, input MeasureInput) (*model.Measure, error) {
	if _, err := requireDraftCase(ctx, uc.repo, caseID); err != nil {
		return nil, err
	}

	measure := &model.Measure{
		CaseID:   caseID,
		AnswerID: &answerID,
	}
	input.apply(measure)

	created, err := uc.repo.Measure().Create(ctx, measure)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create measure",
			goerr.V(CaseIDKey, caseID), goerr.V("answer_id", answerID))
	}
	return created, nil
}

// CreateMeasureForRisk attaches a measure to an ad-hoc risk of a draft case
func (uc *MeasureUseCase) CreateMeasureForRisk(ctx context.Context, riskID int64, input MeasureInput) (*model.Measure, error) {
	risk, err := uc.repo.Risk().Get(ctx, riskID)
	if err != nil {
		return nil, goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, riskID))
	}
	if _, err := requireDraftCase(ctx, uc.repo, risk.CaseID); err != nil {
		return nil, err
	}

	measure := &model.Measure{
		CaseID: risk.CaseID,
		RiskID: &riskID,
	}
	input.apply(measure)

	created, err := uc.repo.Measure().Create(ctx, measure)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create measure", goerr.V(RiskIDKey, riskID))
	}
	return created, nil
}

func (uc *MeasureUseCase) GetMeasure(ctx context.Context, id model.MeasureID) (*model.Measure, error) {
	measure, err := uc.repo.Measure().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrMeasureNotFound, "measure not found", goerr.V(MeasureIDKey, id))
	}
	return measure, nil
}

func (uc *MeasureUseCase) ListMeasuresByCase(ctx context.Context, caseID int64) ([]*model.Measure, error) {
	measures, err := uc.repo.Measure().ListByCase(ctx, caseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list measures", goerr.V(CaseIDKey, caseID))
	}
	return measures, nil
}

// UpdateMeasure edits the measure's fields; its parent binding is fixed at
// creation and never changes
func (uc *MeasureUseCase) UpdateMeasure(ctx context.Context, id model.MeasureID, input MeasureInput) (*model.Measure, error) {
	measure, err := uc.repo.Measure().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrMeasureNotFound, "measure not found", goerr.V(MeasureIDKey, id))
	}
	if _, err := requireDraftCase(ctx, uc.repo, measure.CaseID); err != nil {
		return nil, err
	}

	input.apply(measure)

	updated, err := uc.repo.Measure().Update(ctx, measure)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update measure", goerr.V(MeasureIDKey, id))
	}
	return updated, nil
}

func (uc *MeasureUseCase) DeleteMeasure(ctx context.Context, id model.MeasureID) error {
	measure, err := uc.repo.Measure().Get(ctx, id)
	if err != nil {
		return goerr.Wrap(ErrMeasureNotFound, "measure not found", goerr.V(MeasureIDKey, id))
	}
	if _, err := requireDraftCase(ctx, uc.repo, measure.CaseID); err != nil {
		return err
	}

	if err := uc.repo.Measure().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete measure", goerr.V(MeasureIDKey, id))
	}
	return nil
}
