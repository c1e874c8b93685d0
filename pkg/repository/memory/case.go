package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

type caseRepository struct {
	mu     sync.RWMutex
	cases  map[int64]*model.Case
	nextID int64

	// owned entities, for cascade delete
	answers  *answerRepository
	risks    *riskRepository
	measures *measureRepository
	controls *controlRecordRepository
	team     *teamMemberRepository
}

func newCaseRepository(answers *answerRepository, risks *riskRepository, measures *measureRepository, controls *controlRecordRepository, team *teamMemberRepository) *caseRepository {
	return &caseRepository{
		cases:    make(map[int64]*model.Case),
		nextID:   1,
		answers:  answers,
		risks:    risks,
		measures: measures,
		controls: controls,
		team:     team,
	}
}

func copyCase(c *model.Case) *model.Case {
	copied := *c
	copied.ToolID = copyPtr(c.ToolID)
	copied.CompletedAt = copyPtr(c.CompletedAt)
	return &copied
}

func (r *caseRepository) Create(ctx context.Context, c *model.Case) (*model.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyCase(c)
	created.ID = r.nextID
	created.Status = c.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.cases[created.ID] = created
	return copyCase(created), nil
}

func (r *caseRepository) Get(ctx context.Context, id int64) (*model.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.cases[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", id))
	}

	return copyCase(c), nil
}

func (r *caseRepository) List(ctx context.Context) ([]*model.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cases := make([]*model.Case, 0, len(r.cases))
	for _, c := range r.cases {
		cases = append(cases, copyCase(c))
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].ID < cases[j].ID })

	return cases, nil
}

func (r *caseRepository) ListByFacility(ctx context.Context, facilityID int64) ([]*model.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var cases []*model.Case
	for _, c := range r.cases {
		if c.FacilityID == facilityID {
			cases = append(cases, copyCase(c))
		}
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].ID < cases[j].ID })

	return cases, nil
}

func (r *caseRepository) Update(ctx context.Context, c *model.Case) (*model.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.cases[c.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", c.ID))
	}

	updated := copyCase(c)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.cases[updated.ID] = updated
	return copyCase(updated), nil
}

func (r *caseRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	if _, exists := r.cases[id]; !exists {
		r.mu.Unlock()
		return goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", id))
	}
	delete(r.cases, id)
	r.mu.Unlock()

	// Cascade: answers, risks (with their measures and control records),
	// remaining case measures, team members
	r.answers.deleteByCase(id)
	for _, riskID := range r.risks.idsByCase(id) {
		r.controls.deleteByRisk(riskID)
	}
	r.risks.deleteByCase(id)
	r.measures.deleteByCase(id)
	r.team.deleteByCase(id)

	return nil
}
