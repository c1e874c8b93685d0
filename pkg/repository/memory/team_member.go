package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

type teamMemberRepository struct {
	mu      sync.RWMutex
	members map[model.TeamMemberID]*model.TeamMember
}

func newTeamMemberRepository() *teamMemberRepository {
	return &teamMemberRepository{
		members: make(map[model.TeamMemberID]*model.TeamMember),
	}
}

func copyTeamMember(m *model.TeamMember) *model.TeamMember {
	copied := *m
	return &copied
}

func (r *teamMemberRepository) Create(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyTeamMember(member)
	if created.ID == "" {
		created.ID = model.NewTeamMemberID()
	}
	created.CreatedAt = time.Now().UTC()

	r.members[created.ID] = created
	return copyTeamMember(created), nil
}

func (r *teamMemberRepository) ListByCase(ctx context.Context, caseID int64) ([]*model.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var members []*model.TeamMember
	for _, m := range r.members {
		if m.CaseID == caseID {
			members = append(members, copyTeamMember(m))
		}
	}
	sort.Slice(members, func(i, j int) bool {
		if !members[i].CreatedAt.Equal(members[j].CreatedAt) {
			return members[i].CreatedAt.Before(members[j].CreatedAt)
		}
		return members[i].ID < members[j].ID
	})

	return members, nil
}

func (r *teamMemberRepository) Delete(ctx context.Context, id model.TeamMemberID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.members[id]; !exists {
		return goerr.Wrap(ErrNotFound, "team member not found", goerr.V("id", id))
	}

	delete(r.members, id)
	return nil
}

func (r *teamMemberRepository) deleteByCase(caseID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, m := range r.members {
		if m.CaseID == caseID {
			delete(r.members, id)
		}
	}
}
