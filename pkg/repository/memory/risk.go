package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

type riskRepository struct {
	mu     sync.RWMutex
	risks  map[int64]*model.Risk
	nextID int64

	measures *measureRepository
	controls *controlRecordRepository
}

func newRiskRepository(measures *measureRepository, controls *controlRecordRepository) *riskRepository {
	return &riskRepository{
		risks:    make(map[int64]*model.Risk),
		nextID:   1,
		measures: measures,
		controls: controls,
	}
}

func copyRisk(r *model.Risk) *model.Risk {
	copied := *r
	copied.Acceptable = copyPtr(r.Acceptable)
	copied.RiskPriority = copyPtr(r.RiskPriority)
	copied.CatalogID = copyPtr(r.CatalogID)
	copied.EstimatedBudget = copyPtr(r.EstimatedBudget)
	copied.DueDate = copyPtr(r.DueDate)
	copied.KinneyProbability = copyPtr(r.KinneyProbability)
	copied.KinneyFrequency = copyPtr(r.KinneyFrequency)
	copied.KinneySeverity = copyPtr(r.KinneySeverity)
	copied.KinneyScore = copyPtr(r.KinneyScore)
	copied.MatrixProbability = copyPtr(r.MatrixProbability)
	copied.MatrixSeverity = copyPtr(r.MatrixSeverity)
	copied.MatrixScore = copyPtr(r.MatrixScore)
	return &copied
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyRisk(risk)
	created.ID = r.nextID
	created.ScoringMethod = risk.ScoringMethod.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now
	created.RecomputeScores()
	r.nextID++

	r.risks[created.ID] = created
	return copyRisk(created), nil
}

func (r *riskRepository) Get(ctx context.Context, id int64) (*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risk, exists := r.risks[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
	}

	return copyRisk(risk), nil
}

func (r *riskRepository) ListByCase(ctx context.Context, caseID int64) ([]*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var risks []*model.Risk
	for _, risk := range r.risks {
		if risk.CaseID == caseID {
			risks = append(risks, copyRisk(risk))
		}
	}
	sort.Slice(risks, func(i, j int) bool { return risks[i].ID < risks[j].ID })

	return risks, nil
}

func (r *riskRepository) Update(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.risks[risk.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", risk.ID))
	}

	updated := copyRisk(risk)
	updated.CaseID = existing.CaseID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	updated.RecomputeScores()

	r.risks[updated.ID] = updated
	return copyRisk(updated), nil
}

func (r *riskRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	if _, exists := r.risks[id]; !exists {
		r.mu.Unlock()
		return goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
	}
	delete(r.risks, id)
	r.mu.Unlock()

	r.measures.deleteByRisk(id)
	r.controls.deleteByRisk(id)
	return nil
}

func (r *riskRepository) idsByCase(caseID int64) []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []int64
	for id, risk := range r.risks {
		if risk.CaseID == caseID {
			ids = append(ids, id)
		}
	}
	return ids
}

func (r *riskRepository) deleteByCase(caseID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, risk := range r.risks {
		if risk.CaseID == caseID {
			delete(r.risks, id)
		}
	}
}
