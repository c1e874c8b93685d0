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

type RiskUseCase struct {
	repo    interfaces.Repository
	catalog interfaces.Catalog
}

func NewRiskUseCase(repo interfaces.Repository, catalog interfaces.Catalog) *RiskUseCase {
	return &RiskUseCase{
		repo:    repo,
		catalog: catalog,
	}
}

// RiskInput carries the caller-editable fields of an ad-hoc risk. Scoring
// inputs are pointers: nil means unset and never defaults to zero.
type RiskInput struct {
	Description  string
	Acceptable   *bool
	Evidence     string
	RiskPriority *types.RiskPriority

	Category        string
	SubCategory     string
	HazardSource    string
	LegalBasis      string
	AffectedPersons string
	MeasureText     string

	MitigationStrategy types.MitigationStrategy
	EstimatedBudget    *float64
	ResponsiblePerson  string
	DueDate            *time.Time

	ScoringMethod     types.ScoringMethod
	KinneyProbability *float64
	KinneyFrequency   *float64
	KinneySeverity    *int
	MatrixProbability *int
	MatrixSeverity    *int
}

func (in *RiskInput) validate() error {
	if in.Description == "" {
		return goerr.Wrap(ErrInvalidArgument, "risk description is required")
	}
	if !in.ScoringMethod.Normalize().IsValid() {
		return goerr.Wrap(ErrInvalidMethod, "unknown scoring method", goerr.V("method", in.ScoringMethod))
	}
	if in.RiskPriority != nil && !in.RiskPriority.IsValid() {
		return goerr.Wrap(ErrInvalidPriority, "unknown priority value", goerr.V("priority", *in.RiskPriority))
	}
	if in.MitigationStrategy != "" && !in.MitigationStrategy.IsValid() {
		return goerr.Wrap(ErrInvalidStrategy, "unknown mitigation strategy", goerr.V("strategy", in.MitigationStrategy))
	}
	if err := scoring.ValidateMatrixInput("probability", in.MatrixProbability); err != nil {
		return err
	}
	if err := scoring.ValidateMatrixInput("severity", in.MatrixSeverity); err != nil {
		return err
	}
	return nil
}

func (in *RiskInput) apply(risk *model.Risk) {
	risk.Description = in.Description
	risk.Acceptable = in.Acceptable
	risk.Evidence = in.Evidence
	risk.RiskPriority = in.RiskPriority
	risk.Category = in.Category
	risk.SubCategory = in.SubCategory
	risk.HazardSource = in.HazardSource
	risk.LegalBasis = in.LegalBasis
	risk.AffectedPersons = in.AffectedPersons
	risk.MeasureText = in.MeasureText
	risk.MitigationStrategy = in.MitigationStrategy
	risk.EstimatedBudget = in.EstimatedBudget
	risk.ResponsiblePerson = in.ResponsiblePerson
	risk.DueDate = in.DueDate
	risk.ScoringMethod = in.ScoringMethod.Normalize()
	risk.KinneyProbability = in.KinneyProbability
	risk.KinneyFrequency = in.KinneyFrequency
	risk.KinneySeverity = in.KinneySeverity
	risk.MatrixProbability = in.MatrixProbability
	risk.MatrixSeverity = in.MatrixSeverity
}

// CreateRisk adds an ad-hoc risk to a draft case. The cached scores are
// recomputed from the raw inputs on write.
func (uc *RiskUseCase) CreateRisk(ctx context.Context, caseID int64, input RiskInput) (*model.Risk, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	caseModel, err := requireDraftCase(ctx, uc.repo, caseID)
	if err != nil {
		return nil, err
	}
	if input.ScoringMethod == "" {
		input.ScoringMethod = caseModel.ScoringMethod
	}

	risk := &model.Risk{CaseID: caseID}
	input.apply(risk)

	created, err := uc.repo.Risk().Create(ctx, risk)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk", goerr.V(CaseIDKey, caseID))
	}
	return created, nil
}

// CreateRiskFromCatalog copies a catalog entry's text fields verbatim into
// a new ad-hoc risk and seeds one measure from the catalog's remediation
// text. An unknown catalog ID performs no mutation at all.
func (uc *RiskUseCase) CreateRiskFromCatalog(ctx context.Context, caseID int64, catalogID int) (*model.Risk, error) {
	if uc.catalog == nil {
		return nil, goerr.Wrap(ErrCatalogUnavailable, "no catalog configured")
	}

	entry, err := uc.catalog.Get(ctx, catalogID)
	if err != nil {
		return nil, goerr.Wrap(err, "catalog lookup failed", goerr.V(CatalogIDKey, catalogID))
	}

	caseModel, err := requireDraftCase(ctx, uc.repo, caseID)
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.Risk().Create(ctx, &model.Risk{
		CaseID:          caseID,
		Description:     entry.Risk,
		Category:        entry.Group,
		SubCategory:     entry.Topic,
		HazardSource:    entry.Hazard,
		LegalBasis:      entry.LegalBasis,
		AffectedPersons: entry.AffectedPersons,
		MeasureText:     entry.Measure,
		CatalogID:       &entry.ID,
		ScoringMethod:   caseModel.ScoringMethod,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk from catalog",
			goerr.V(CaseIDKey, caseID), goerr.V(CatalogIDKey, catalogID))
	}

	if entry.Measure != "" {
		if _, err := uc.repo.Measure().Create(ctx, &model.Measure{
			CaseID:      caseID,
			RiskID:      &created.ID,
			Description: entry.Measure,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to seed measure from catalog",
				goerr.V(RiskIDKey, created.ID), goerr.V(CatalogIDKey, catalogID))
		}
	}

	return created, nil
}

func (uc *RiskUseCase) GetRisk(ctx context.Context, id int64) (*model.Risk, error) {
	risk, err := uc.repo.Risk().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, id))
	}
	return risk, nil
}

func (uc *RiskUseCase) ListRisks(ctx context.Context, caseID int64) ([]*model.Risk, error) {
	risks, err := uc.repo.Risk().ListByCase(ctx, caseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks", goerr.V(CaseIDKey, caseID))
	}
	return risks, nil
}

// UpdateRisk replaces the editable fields of a risk and recomputes its
// cached scores. Catalog provenance survives updates untouched.
func (uc *RiskUseCase) UpdateRisk(ctx context.Context, id int64, input RiskInput) (*model.Risk, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	risk, err := uc.repo.Risk().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, id))
	}
	if _, err := requireDraftCase(ctx, uc.repo, risk.CaseID); err != nil {
		return nil, err
	}

	input.apply(risk)

	updated, err := uc.repo.Risk().Update(ctx, risk)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update risk", goerr.V(RiskIDKey, id))
	}
	return updated, nil
}

func (uc *RiskUseCase) DeleteRisk(ctx context.Context, id int64) error {
	risk, err := uc.repo.Risk().Get(ctx, id)
	if err != nil {
		return goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, id))
	}
	if _, err := requireDraftCase(ctx, uc.repo, risk.CaseID); err != nil {
		return err
	}

	if err := uc.repo.Risk().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete risk", goerr.V(RiskIDKey, id))
	}
	return nil
}
