package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"google.golang.org/api/iterator"
)

type controlRecordDocument struct {
	ID     string `firestore:"id"`
	RiskID int64  `firestore:"risk_id"`
	Seq    int64  `firestore:"seq"`

	ControlDate time.Time `firestore:"control_date"`
	Auditor     string    `firestore:"auditor"`
	Note        string    `firestore:"note"`

	ScoringMethod     string   `firestore:"scoring_method"`
	KinneyProbability *float64 `firestore:"kinney_probability"`
	KinneyFrequency   *float64 `firestore:"kinney_frequency"`
	KinneySeverity    *int     `firestore:"kinney_severity"`
	MatrixProbability *int     `firestore:"matrix_probability"`
	MatrixSeverity    *int     `firestore:"matrix_severity"`

	ResidualScore *int `firestore:"residual_score"`

	CreatedAt time.Time `firestore:"created_at"`
}

func toControlRecordDocument(c *model.ControlRecord) *controlRecordDocument {
	return &controlRecordDocument{
		ID:                c.ID.String(),
		RiskID:            c.RiskID,
		Seq:               c.Seq,
		ControlDate:       c.ControlDate,
		Auditor:           c.Auditor,
		Note:              c.Note,
		ScoringMethod:     c.ScoringMethod.String(),
		KinneyProbability: c.KinneyProbability,
		KinneyFrequency:   c.KinneyFrequency,
		KinneySeverity:    c.KinneySeverity,
		MatrixProbability: c.MatrixProbability,
		MatrixSeverity:    c.MatrixSeverity,
		ResidualScore:     c.ResidualScore,
		CreatedAt:         c.CreatedAt,
	}
}

func (d *controlRecordDocument) toModel() *model.ControlRecord {
	return &model.ControlRecord{
		ID:                model.ControlRecordID(d.ID),
		RiskID:            d.RiskID,
		Seq:               d.Seq,
		ControlDate:       d.ControlDate,
		Auditor:           d.Auditor,
		Note:              d.Note,
		ScoringMethod:     types.ScoringMethod(d.ScoringMethod),
		KinneyProbability: d.KinneyProbability,
		KinneyFrequency:   d.KinneyFrequency,
		KinneySeverity:    d.KinneySeverity,
		MatrixProbability: d.MatrixProbability,
		MatrixSeverity:    d.MatrixSeverity,
		ResidualScore:     d.ResidualScore,
		CreatedAt:         d.CreatedAt,
	}
}

type controlRecordRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newControlRecordRepository(client *firestore.Client) *controlRecordRepository {
	return &controlRecordRepository{client: client}
}

func (r *controlRecordRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_control_records"
	}
	return "control_records"
}

func (r *controlRecordRepository) Append(ctx context.Context, record *model.ControlRecord) (*model.ControlRecord, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	seq, err := getNextID(ctx, r.client, r.collection(), "control_seq")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to assign control record sequence")
	}

	stored := *record
	if stored.ID == "" {
		stored.ID = model.NewControlRecordID()
	}
	stored.Seq = seq
	stored.CreatedAt = time.Now().UTC()
	stored.RecomputeResidual()

	docRef := r.client.Collection(r.collection()).Doc(stored.ID.String())
	if _, err := docRef.Set(ctx, toControlRecordDocument(&stored)); err != nil {
		return nil, goerr.Wrap(err, "failed to append control record",
			goerr.V("risk_id", record.RiskID))
	}

	return &stored, nil
}

func (r *controlRecordRepository) ListByRisk(ctx context.Context, riskID int64) ([]*model.ControlRecord, error) {
	q := r.client.Collection(r.collection()).
		Where("risk_id", "==", riskID).
		OrderBy("control_date", firestore.Desc).
		OrderBy("seq", firestore.Desc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var records []*model.ControlRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate control records",
				goerr.V("risk_id", riskID))
		}

		var recordDoc controlRecordDocument
		if err := doc.DataTo(&recordDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal control record")
		}
		records = append(records, recordDoc.toModel())
	}

	return records, nil
}

func (r *controlRecordRepository) deleteByRisk(ctx context.Context, riskID int64) error {
	iter := r.client.Collection(r.collection()).Where("risk_id", "==", riskID).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate control records",
				goerr.V("risk_id", riskID))
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete control record")
		}
	}

	return nil
}
