package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

type measureRepository struct {
	mu       sync.RWMutex
	measures map[model.MeasureID]*model.Measure
}

func newMeasureRepository() *measureRepository {
	return &measureRepository{
		measures: make(map[model.MeasureID]*model.Measure),
	}
}

func copyMeasure(m *model.Measure) *model.Measure {
	copied := *m
	copied.AnswerID = copyPtr(m.AnswerID)
	copied.RiskID = copyPtr(m.RiskID)
	copied.PlannedStart = copyPtr(m.PlannedStart)
	copied.PlannedEnd = copyPtr(m.PlannedEnd)
	return &copied
}

func sortMeasures(measures []*model.Measure) {
	sort.Slice(measures, func(i, j int) bool {
		if !measures[i].CreatedAt.Equal(measures[j].CreatedAt) {
			return measures[i].CreatedAt.Before(measures[j].CreatedAt)
		}
		return measures[i].ID < measures[j].ID
	})
}

func (r *measureRepository) Create(ctx context.Context, measure *model.Measure) (*model.Measure, error) {
	if err := measure.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyMeasure(measure)
	if created.ID == "" {
		created.ID = model.NewMeasureID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.measures[created.ID] = created
	return copyMeasure(created), nil
}

func (r *measureRepository) Get(ctx context.Context, id model.MeasureID) (*model.Measure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	measure, exists := r.measures[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "measure not found", goerr.V("id", id))
	}

	return copyMeasure(measure), nil
}

func (r *measureRepository) ListByAnswer(ctx context.Context, answerID string) ([]*model.Measure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var measures []*model.Measure
	for _, m := range r.measures {
		if m.AnswerID != nil && *m.AnswerID == answerID {
			measures = append(measures, copyMeasure(m))
		}
	}
	sortMeasures(measures)

	return measures, nil
}

func (r *measureRepository) ListByRisk(ctx context.Context, riskID int64) ([]*model.Measure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var measures []*model.Measure
	for _, m := range r.measures {
		if m.RiskID != nil && *m.RiskID == riskID {
			measures = append(measures, copyMeasure(m))
		}
	}
	sortMeasures(measures)

	return measures, nil
}

func (r *measureRepository) ListByCase(ctx context.Context, caseID int64) ([]*model.Measure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var measures []*model.Measure
	for _, m := range r.measures {
		if m.CaseID == caseID {
			measures = append(measures, copyMeasure(m))
		}
	}
	sortMeasures(measures)

	return measures, nil
}

func (r *measureRepository) Update(ctx context.Context, measure *model.Measure) (*model.Measure, error) {
	if err := measure.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.measures[measure.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "measure not found", goerr.V("id", measure.ID))
	}

	updated := copyMeasure(measure)
	updated.CaseID = existing.CaseID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.measures[updated.ID] = updated
	return copyMeasure(updated), nil
}

func (r *measureRepository) Delete(ctx context.Context, id model.MeasureID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.measures[id]; !exists {
		return goerr.Wrap(ErrNotFound, "measure not found", goerr.V("id", id))
	}

	delete(r.measures, id)
	return nil
}

func (r *measureRepository) deleteByRisk(riskID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, m := range r.measures {
		if m.RiskID != nil && *m.RiskID == riskID {
			delete(r.measures, id)
		}
	}
}

func (r *measureRepository) deleteByCase(caseID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, m := range r.measures {
		if m.CaseID == caseID {
			delete(r.measures, id)
		}
	}
}
