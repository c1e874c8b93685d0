package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/scoring"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

type PlanUseCase struct {
	repo     interfaces.Repository
	registry *model.ToolRegistry
}

func NewPlanUseCase(repo interfaces.Repository, registry *model.ToolRegistry) *PlanUseCase {
	return &PlanUseCase{
		repo:     repo,
		registry: registry,
	}
}

// ActionPlanEntry is one remediation item of a case's action plan. Exactly
// one of AnswerID and RiskID is set, mirroring the measure parent rule.
type ActionPlanEntry struct {
	AnswerID *string
	RiskID   *int64

	Description string
	Status      types.ActionPlanStatus
	Priority    *types.RiskPriority
	Score       *int
	Level       scoring.Level
	Measures    []*model.Measure
}

// ActionPlan projects the case's remediation work list: negatively
// answered questions and risks marked not acceptable, each with its
// derived three-way status. Nothing is persisted; the projection is
// recomputed from entity state on every call.
func (uc *PlanUseCase) ActionPlan(ctx context.Context, caseID int64) ([]*ActionPlanEntry, error) {
	caseModel, err := uc.repo.Case().Get(ctx, caseID)
	if err != nil {
		return nil, goerr.Wrap(ErrCaseNotFound, "case not found", goerr.V(CaseIDKey, caseID))
	}

	measures, err := uc.repo.Measure().ListByCase(ctx, caseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list measures", goerr.V(CaseIDKey, caseID))
	}
	byAnswer := map[string][]*model.Measure{}
	byRisk := map[int64][]*model.Measure{}
	for _, m := range measures {
		if m.AnswerID != nil {
			byAnswer[*m.AnswerID] = append(byAnswer[*m.AnswerID], m)
		}
		if m.RiskID != nil {
			byRisk[*m.RiskID] = append(byRisk[*m.RiskID], m)
		}
	}

	var entries []*ActionPlanEntry

	if !caseModel.IsFastTrack() {
		questionTexts := uc.questionTexts(caseModel)

		answers, err := uc.repo.Answer().ListByCase(ctx, caseID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list answers", goerr.V(CaseIDKey, caseID))
		}
		for _, answer := range answers {
			status, required := answer.ActionPlanStatus(byAnswer[answer.ID])
			if !required {
				continue
			}
			entries = append(entries, &ActionPlanEntry{
				AnswerID:    &answer.ID,
				Description: questionTexts[answer.QuestionID],
				Status:      status,
				Priority:    answer.RiskPriority,
				Measures:    byAnswer[answer.ID],
			})
		}
	}

	risks, err := uc.repo.Risk().ListByCase(ctx, caseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks", goerr.V(CaseIDKey, caseID))
	}
	for _, risk := range risks {
		status, required := risk.ActionPlanStatus(byRisk[risk.ID])
		if !required {
			continue
		}
		entries = append(entries, &ActionPlanEntry{
			RiskID:      &risk.ID,
			Description: risk.Description,
			Status:      status,
			Priority:    risk.RiskPriority,
			Score:       risk.Score(),
			Level:       risk.Level(),
			Measures:    byRisk[risk.ID],
		})
	}

	return entries, nil
}

func (uc *PlanUseCase) questionTexts(caseModel *model.Case) map[types.QuestionID]string {
	texts := map[types.QuestionID]string{}
	tool, err := uc.registry.Get(*caseModel.ToolID)
	if err != nil {
		return texts
	}
	for _, tq := range tool.Questions() {
		texts[tq.Question.ID] = tq.Question.Text
	}
	return texts
}

// RiskSummary counts a case's risks per display label for report headers
type RiskSummary struct {
	Total    int
	Unscored int
	ByLabel  map[string]int
}

// SummarizeRisks aggregates the case's risks by their resolved level
func (uc *PlanUseCase) SummarizeRisks(ctx context.Context, caseID int64) (*RiskSummary, error) {
	if _, err := uc.repo.Case().Get(ctx, caseID); err != nil {
		return nil, goerr.Wrap(ErrCaseNotFound, "case not found", goerr.V(CaseIDKey, caseID))
	}

	risks, err := uc.repo.Risk().ListByCase(ctx, caseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks", goerr.V(CaseIDKey, caseID))
	}

	summary := &RiskSummary{
		Total:   len(risks),
		ByLabel: map[string]int{},
	}
	for _, risk := range risks {
		level := risk.Level()
		if level.Unscored() {
			summary.Unscored++
			continue
		}
		summary.ByLabel[level.Label]++
	}
	return summary, nil
}
