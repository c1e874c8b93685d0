package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type measureDocument struct {
	ID     string `firestore:"id"`
	CaseID int64  `firestore:"case_id"`

	AnswerID *string `firestore:"answer_id"`
	RiskID   *int64  `firestore:"risk_id"`

	Description       string     `firestore:"description"`
	RequiredExpertise string     `firestore:"required_expertise"`
	ResponsiblePerson string     `firestore:"responsible_person"`
	Budget            string     `firestore:"budget"`
	PlannedStart      *time.Time `firestore:"planned_start"`
	PlannedEnd        *time.Time `firestore:"planned_end"`

	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func toMeasureDocument(m *model.Measure) *measureDocument {
	return &measureDocument{
		ID:                m.ID.String(),
		CaseID:            m.CaseID,
		AnswerID:          m.AnswerID,
		RiskID:            m.RiskID,
		Description:       m.Description,
		RequiredExpertise: m.RequiredExpertise,
		ResponsiblePerson: m.ResponsiblePerson,
		Budget:            m.Budget,
		PlannedStart:      m.PlannedStart,
		PlannedEnd:        m.PlannedEnd,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func (d *measureDocument) toModel() *model.Measure {
	return &model.Measure{
		ID:                model.MeasureID(d.ID),
		CaseID:            d.CaseID,
		AnswerID:          d.AnswerID,
		RiskID:            d.RiskID,
		Description:       d.Description,
		RequiredExpertise: d.RequiredExpertise,
		ResponsiblePerson: d.ResponsiblePerson,
		Budget:            d.Budget,
		PlannedStart:      d.PlannedStart,
		PlannedEnd:        d.PlannedEnd,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

type measureRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMeasureRepository(client *firestore.Client) *measureRepository {
	return &measureRepository{client: client}
}

func (r *measureRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_measures"
	}
	return "measures"
}

func (r *measureRepository) Create(ctx context.Context, measure *model.Measure) (*model.Measure, error) {
	if err := measure.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := *measure
	if stored.ID == "" {
		stored.ID = model.NewMeasureID()
	}
	stored.CreatedAt = now
	stored.UpdatedAt = now

	docRef := r.client.Collection(r.collection()).Doc(stored.ID.String())
	if _, err := docRef.Set(ctx, toMeasureDocument(&stored)); err != nil {
		return nil, goerr.Wrap(err, "failed to create measure")
	}

	return &stored, nil
}

func (r *measureRepository) Get(ctx context.Context, id model.MeasureID) (*model.Measure, error) {
	doc, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "measure not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get measure", goerr.V("id", id))
	}

	var measureDoc measureDocument
	if err := doc.DataTo(&measureDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal measure", goerr.V("id", id))
	}

	return measureDoc.toModel(), nil
}

func (r *measureRepository) list(ctx context.Context, q firestore.Query) ([]*model.Measure, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var measures []*model.Measure
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate measures")
		}

		var measureDoc measureDocument
		if err := doc.DataTo(&measureDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal measure")
		}
		measures = append(measures, measureDoc.toModel())
	}

	return measures, nil
}

func (r *measureRepository) ListByAnswer(ctx context.Context, answerID string) ([]*model.Measure, error) {
	q := r.client.Collection(r.collection()).
		Where("answer_id", "==", answerID).
		OrderBy("created_at", firestore.Asc)
	return r.list(ctx, q)
}

func (r *measureRepository) ListByRisk(ctx context.Context, riskID int64) ([]*model.Measure, error) {
	q := r.client.Collection(r.collection()).
		Where("risk_id", "==", riskID).
		OrderBy("created_at", firestore.Asc)
	return r.list(ctx, q)
}

func (r *measureRepository) ListByCase(ctx context.Context, caseID int64) ([]*model.Measure, error) {
	q := r.client.Collection(r.collection()).
		Where("case_id", "==", caseID).
		OrderBy("created_at", firestore.Asc)
	return r.list(ctx, q)
}

func (r *measureRepository) Update(ctx context.Context, measure *model.Measure) (*model.Measure, error) {
	if err := measure.Validate(); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, measure.ID)
	if err != nil {
		return nil, err
	}

	stored := *measure
	stored.CaseID = existing.CaseID
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()

	docRef := r.client.Collection(r.collection()).Doc(measure.ID.String())
	if _, err := docRef.Set(ctx, toMeasureDocument(&stored)); err != nil {
		return nil, goerr.Wrap(err, "failed to update measure", goerr.V("id", measure.ID))
	}

	return &stored, nil
}

func (r *measureRepository) Delete(ctx context.Context, id model.MeasureID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "measure not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get measure", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete measure", goerr.V("id", id))
	}

	return nil
}

func (r *measureRepository) deleteWhere(ctx context.Context, q firestore.Query) error {
	iter := q.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate measures")
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete measure")
		}
	}

	return nil
}

func (r *measureRepository) deleteByRisk(ctx context.Context, riskID int64) error {
	return r.deleteWhere(ctx, r.client.Collection(r.collection()).Where("risk_id", "==", riskID))
}

func (r *measureRepository) deleteByCase(ctx context.Context, caseID int64) error {
	return r.deleteWhere(ctx, r.client.Collection(r.collection()).Where("case_id", "==", caseID))
}
