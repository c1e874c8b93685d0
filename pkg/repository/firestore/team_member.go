package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type teamMemberDocument struct {
	ID        string    `firestore:"id"`
	CaseID    int64     `firestore:"case_id"`
	Role      string    `firestore:"role"`
	Name      string    `firestore:"name"`
	Title     string    `firestore:"title"`
	CreatedAt time.Time `firestore:"created_at"`
}

func toTeamMemberDocument(m *model.TeamMember) *teamMemberDocument {
	return &teamMemberDocument{
		ID:        m.ID.String(),
		CaseID:    m.CaseID,
		Role:      m.Role.String(),
		Name:      m.Name,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
	}
}

func (d *teamMemberDocument) toModel() *model.TeamMember {
	return &model.TeamMember{
		ID:        model.TeamMemberID(d.ID),
		CaseID:    d.CaseID,
		Role:      types.TeamRole(d.Role),
		Name:      d.Name,
		Title:     d.Title,
		CreatedAt: d.CreatedAt,
	}
}

type teamMemberRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTeamMemberRepository(client *firestore.Client) *teamMemberRepository {
	return &teamMemberRepository{client: client}
}

func (r *teamMemberRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_team_members"
	}
	return "team_members"
}

func (r *teamMemberRepository) Create(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error) {
	stored := *member
	if stored.ID == "" {
		stored.ID = model.NewTeamMemberID()
	}
	stored.CreatedAt = time.Now().UTC()

	docRef := r.client.Collection(r.collection()).Doc(stored.ID.String())
	if _, err := docRef.Set(ctx, toTeamMemberDocument(&stored)); err != nil {
		return nil, goerr.Wrap(err, "failed to create team member",
			goerr.V("case_id", member.CaseID))
	}

	return &stored, nil
}

func (r *teamMemberRepository) ListByCase(ctx context.Context, caseID int64) ([]*model.TeamMember, error) {
	q := r.client.Collection(r.collection()).
		Where("case_id", "==", caseID).
		OrderBy("created_at", firestore.Asc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var members []*model.TeamMember
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate team members",
				goerr.V("case_id", caseID))
		}

		var memberDoc teamMemberDocument
		if err := doc.DataTo(&memberDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal team member")
		}
		members = append(members, memberDoc.toModel())
	}

	return members, nil
}

func (r *teamMemberRepository) Delete(ctx context.Context, id model.TeamMemberID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "team member not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get team member", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete team member", goerr.V("id", id))
	}

	return nil
}

func (r *teamMemberRepository) deleteByCase(ctx context.Context, caseID int64) error {
	iter := r.client.Collection(r.collection()).Where("case_id", "==", caseID).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate team members",
				goerr.V("case_id", caseID))
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete team member")
		}
	}

	return nil
}
