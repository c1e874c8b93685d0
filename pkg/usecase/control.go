package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/scoring"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

type ControlUseCase struct {
	repo interfaces.Repository
}

func NewControlUseCase(repo interfaces.Repository) *ControlUseCase {
	return &ControlUseCase{repo: repo}
}

// ControlRecordInput carries one re-audit of an ad-hoc risk. A zero
// ScoringMethod defaults to the method currently recorded on the parent
// risk; setting it explicitly overrides the parent's method for this
// record only.
type ControlRecordInput struct {
	ControlDate time.Time
	Auditor     string
	Note        string

	ScoringMethod     types.ScoringMethod
	KinneyProbability *float64
	KinneyFrequency   *float64
	KinneySeverity    *int
	MatrixProbability *int
	MatrixSeverity    *int
}

// AppendControlRecord appends one control record to a risk's ledger. The
// residual score is computed from the record's own inputs under the
// record's own method; the parent risk's scores are never touched.
func (uc *ControlUseCase) AppendControlRecord(ctx context.Context, riskID int64, input ControlRecordInput) (*model.ControlRecord, error) {
	risk, err := uc.repo.Risk().Get(ctx, riskID)
	if err != nil {
		return nil, goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, riskID))
	}

	method := input.ScoringMethod
	if method == "" {
		method = risk.ScoringMethod.Normalize()
	}
	if !method.IsValid() {
		return nil, goerr.Wrap(ErrInvalidMethod, "unknown scoring method", goerr.V("method", input.ScoringMethod))
	}
	if err := scoring.ValidateMatrixInput("probability", input.MatrixProbability); err != nil {
		return nil, err
	}
	if err := scoring.ValidateMatrixInput("severity", input.MatrixSeverity); err != nil {
		return nil, err
	}

	created, err := uc.repo.ControlRecord().Append(ctx, &model.ControlRecord{
		RiskID:            riskID,
		ControlDate:       input.ControlDate,
		Auditor:           input.Auditor,
		Note:              input.Note,
		ScoringMethod:     method,
		KinneyProbability: input.KinneyProbability,
		KinneyFrequency:   input.KinneyFrequency,
		KinneySeverity:    input.KinneySeverity,
		MatrixProbability: input.MatrixProbability,
		MatrixSeverity:    input.MatrixSeverity,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append control record", goerr.V(RiskIDKey, riskID))
	}
	return created, nil
}

// ListControlRecords returns the risk's full audit ledger, newest first
func (uc *ControlUseCase) ListControlRecords(ctx context.Context, riskID int64) ([]*model.ControlRecord, error) {
	if _, err := uc.repo.Risk().Get(ctx, riskID); err != nil {
		return nil, goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, riskID))
	}

	records, err := uc.repo.ControlRecord().ListByRisk(ctx, riskID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list control records", goerr.V(RiskIDKey, riskID))
	}
	return records, nil
}
