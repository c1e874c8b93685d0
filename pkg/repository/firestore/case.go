package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type caseDocument struct {
	ID            int64      `firestore:"id"`
	FacilityID    int64      `firestore:"facility_id"`
	ToolID        *string    `firestore:"tool_id"`
	ScoringMethod string     `firestore:"scoring_method"`
	WorkflowType  string     `firestore:"workflow_type"`
	Status        string     `firestore:"status"`
	FinalComments string     `firestore:"final_comments"`
	Participants  string     `firestore:"participants"`
	CreatedAt     time.Time  `firestore:"created_at"`
	UpdatedAt     time.Time  `firestore:"updated_at"`
	CompletedAt   *time.Time `firestore:"completed_at"`
}

func toCaseDocument(c *model.Case) *caseDocument {
	doc := &caseDocument{
		ID:            c.ID,
		FacilityID:    c.FacilityID,
		ScoringMethod: c.ScoringMethod.String(),
		WorkflowType:  c.WorkflowType.String(),
		Status:        c.Status.String(),
		FinalComments: c.FinalComments,
		Participants:  c.Participants,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		CompletedAt:   c.CompletedAt,
	}
	if c.ToolID != nil {
		toolID := c.ToolID.String()
		doc.ToolID = &toolID
	}
	return doc
}

func (d *caseDocument) toModel() *model.Case {
	c := &model.Case{
		ID:            d.ID,
		FacilityID:    d.FacilityID,
		ScoringMethod: types.ScoringMethod(d.ScoringMethod),
		WorkflowType:  types.WorkflowType(d.WorkflowType),
		Status:        types.CaseStatus(d.Status),
		FinalComments: d.FinalComments,
		Participants:  d.Participants,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		CompletedAt:   d.CompletedAt,
	}
	if d.ToolID != nil {
		toolID := types.ToolID(*d.ToolID)
		c.ToolID = &toolID
	}
	return c
}

type caseRepository struct {
	client           *firestore.Client
	collectionPrefix string

	answers  *answerRepository
	risks    *riskRepository
	measures *measureRepository
	controls *controlRecordRepository
	team     *teamMemberRepository
}

func newCaseRepository(client *firestore.Client, answers *answerRepository, risks *riskRepository, measures *measureRepository, controls *controlRecordRepository, team *teamMemberRepository) *caseRepository {
	return &caseRepository{
		client:   client,
		answers:  answers,
		risks:    risks,
		measures: measures,
		controls: controls,
		team:     team,
	}
}

func (r *caseRepository) collection(name string) string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_" + name
	}
	return name
}

func (r *caseRepository) Create(ctx context.Context, c *model.Case) (*model.Case, error) {
	id, err := getNextID(ctx, r.client, r.collection("counters"), "case_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := *c
	stored.ID = id
	stored.Status = c.Status.Normalize()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	docRef := r.client.Collection(r.collection("cases")).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, toCaseDocument(&stored)); err != nil {
		return nil, goerr.Wrap(err, "failed to create case")
	}

	return &stored, nil
}

func (r *caseRepository) Get(ctx context.Context, id int64) (*model.Case, error) {
	docRef := r.client.Collection(r.collection("cases")).Doc(fmt.Sprintf("%d", id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get case", goerr.V("id", id))
	}

	var caseDoc caseDocument
	if err := doc.DataTo(&caseDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal case", goerr.V("id", id))
	}

	return caseDoc.toModel(), nil
}

func (r *caseRepository) List(ctx context.Context) ([]*model.Case, error) {
	iter := r.client.Collection(r.collection("cases")).OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var cases []*model.Case
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate cases")
		}

		var caseDoc caseDocument
		if err := doc.DataTo(&caseDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal case")
		}
		cases = append(cases, caseDoc.toModel())
	}

	return cases, nil
}

func (r *caseRepository) ListByFacility(ctx context.Context, facilityID int64) ([]*model.Case, error) {
	iter := r.client.Collection(r.collection("cases")).
		Where("facility_id", "==", facilityID).
		OrderBy("id", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var cases []*model.Case
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate cases",
				goerr.V("facility_id", facilityID))
		}

		var caseDoc caseDocument
		if err := doc.DataTo(&caseDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal case")
		}
		cases = append(cases, caseDoc.toModel())
	}

	return cases, nil
}

func (r *caseRepository) Update(ctx context.Context, c *model.Case) (*model.Case, error) {
	existing, err := r.Get(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	stored := *c
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()

	docRef := r.client.Collection(r.collection("cases")).Doc(fmt.Sprintf("%d", c.ID))
	if _, err := docRef.Set(ctx, toCaseDocument(&stored)); err != nil {
		return nil, goerr.Wrap(err, "failed to update case", goerr.V("id", c.ID))
	}

	return &stored, nil
}

func (r *caseRepository) Delete(ctx context.Context, id int64) error {
	docRef := r.client.Collection(r.collection("cases")).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get case", goerr.V("id", id))
	}

	// Cascade: risks own measures and control records of their own
	risks, err := r.risks.ListByCase(ctx, id)
	if err != nil {
		return err
	}
	for _, risk := range risks {
		if err := r.risks.Delete(ctx, risk.ID); err != nil {
			return err
		}
	}

	if err := r.answers.deleteByCase(ctx, id); err != nil {
		return err
	}
	if err := r.measures.deleteByCase(ctx, id); err != nil {
		return err
	}
	if err := r.team.deleteByCase(ctx, id); err != nil {
		return err
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete case", goerr.V("id", id))
	}

	return nil
}
