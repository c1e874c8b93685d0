package usecase

import (
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

type UseCases struct {
	repo     interfaces.Repository
	registry *model.ToolRegistry
	catalog  interfaces.Catalog

	Case    *CaseUseCase
	Answer  *AnswerUseCase
	Risk    *RiskUseCase
	Measure *MeasureUseCase
	Control *ControlUseCase
	Plan    *PlanUseCase
	Team    *TeamUseCase
}

type Option func(*UseCases)

// WithToolRegistry injects the question library
func WithToolRegistry(registry *model.ToolRegistry) Option {
	return func(uc *UseCases) {
		uc.registry = registry
	}
}

// WithCatalog injects the external risk catalog
func WithCatalog(catalog interfaces.Catalog) Option {
	return func(uc *UseCases) {
		uc.catalog = catalog
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.registry == nil {
		uc.registry = model.NewToolRegistry()
	}

	uc.Case = NewCaseUseCase(repo, uc.registry)
	uc.Answer = NewAnswerUseCase(repo, uc.registry)
	uc.Risk = NewRiskUseCase(repo, uc.catalog)
	uc.Measure = NewMeasureUseCase(repo)
	uc.Control = NewControlUseCase(repo)
	uc.Plan = NewPlanUseCase(repo, uc.registry)
	uc.Team = NewTeamUseCase(repo)

	return uc
}

// Registry exposes the question library to transport layers
func (uc *UseCases) Registry() *model.ToolRegistry {
	return uc.registry
}

// Catalog exposes the external risk catalog to transport layers. It
// returns nil when no catalog is configured.
func (uc *UseCases) Catalog() interfaces.Catalog {
	return uc.catalog
}
