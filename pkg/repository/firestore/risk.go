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

type riskDocument struct {
	ID     int64 `firestore:"id"`
	CaseID int64 `firestore:"case_id"`

	Description  string  `firestore:"description"`
	Acceptable   *bool   `firestore:"acceptable"`
	Evidence     string  `firestore:"evidence"`
	RiskPriority *string `firestore:"risk_priority"`

	Category        string `firestore:"category"`
	SubCategory     string `firestore:"sub_category"`
	HazardSource    string `firestore:"hazard_source"`
	LegalBasis      string `firestore:"legal_basis"`
	AffectedPersons string `firestore:"affected_persons"`
	MeasureText     string `firestore:"measure_text"`
	CatalogID       *int   `firestore:"catalog_id"`

	MitigationStrategy string     `firestore:"mitigation_strategy"`
	EstimatedBudget    *float64   `firestore:"estimated_budget"`
	ResponsiblePerson  string     `firestore:"responsible_person"`
	DueDate            *time.Time `firestore:"due_date"`

	ScoringMethod     string   `firestore:"scoring_method"`
	KinneyProbability *float64 `firestore:"kinney_probability"`
	KinneyFrequency   *float64 `firestore:"kinney_frequency"`
	KinneySeverity    *int     `firestore:"kinney_severity"`
	KinneyScore       *int     `firestore:"kinney_score"`
	MatrixProbability *int     `firestore:"matrix_probability"`
	MatrixSeverity    *int     `firestore:"matrix_severity"`
	MatrixScore       *int     `firestore:"matrix_score"`

	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func toRiskDocument(r *model.Risk) *riskDocument {
	doc := &riskDocument{
		ID:                 r.ID,
		CaseID:             r.CaseID,
		Description:        r.Description,
		Acceptable:         r.Acceptable,
		Evidence:           r.Evidence,
		Category:           r.Category,
		SubCategory:        r.SubCategory,
		HazardSource:       r.HazardSource,
		LegalBasis:         r.LegalBasis,
		AffectedPersons:    r.AffectedPersons,
		MeasureText:        r.MeasureText,
		CatalogID:          r.CatalogID,
		MitigationStrategy: r.MitigationStrategy.String(),
		EstimatedBudget:    r.EstimatedBudget,
		ResponsiblePerson:  r.ResponsiblePerson,
		DueDate:            r.DueDate,
		ScoringMethod:      r.ScoringMethod.String(),
		KinneyProbability:  r.KinneyProbability,
		KinneyFrequency:    r.KinneyFrequency,
		KinneySeverity:     r.KinneySeverity,
		KinneyScore:        r.KinneyScore,
		MatrixProbability:  r.MatrixProbability,
		MatrixSeverity:     r.MatrixSeverity,
		MatrixScore:        r.MatrixScore,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if r.RiskPriority != nil {
		prio := r.RiskPriority.String()
		doc.RiskPriority = &prio
	}
	return doc
}

func (d *riskDocument) toModel() *model.Risk {
	r := &model.Risk{
		ID:                 d.ID,
		CaseID:             d.CaseID,
		Description:        d.Description,
		Acceptable:         d.Acceptable,
		Evidence:           d.Evidence,
		Category:           d.Category,
		SubCategory:        d.SubCategory,
		HazardSource:       d.HazardSource,
		LegalBasis:         d.LegalBasis,
		AffectedPersons:    d.AffectedPersons,
		MeasureText:        d.MeasureText,
		CatalogID:          d.CatalogID,
		MitigationStrategy: types.MitigationStrategy(d.MitigationStrategy),
		EstimatedBudget:    d.EstimatedBudget,
		ResponsiblePerson:  d.ResponsiblePerson,
		DueDate:            d.DueDate,
		ScoringMethod:      types.ScoringMethod(d.ScoringMethod),
		KinneyProbability:  d.KinneyProbability,
		KinneyFrequency:    d.KinneyFrequency,
		KinneySeverity:     d.KinneySeverity,
		KinneyScore:        d.KinneyScore,
		MatrixProbability:  d.MatrixProbability,
		MatrixSeverity:     d.MatrixSeverity,
		MatrixScore:        d.MatrixScore,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
	if d.RiskPriority != nil {
		prio := types.RiskPriority(*d.RiskPriority)
		r.RiskPriority = &prio
	}
	return r
}

type riskRepository struct {
	client           *firestore.Client
	collectionPrefix string

	measures *measureRepository
	controls *controlRecordRepository
}

func newRiskRepository(client *firestore.Client, measures *measureRepository, controls *controlRecordRepository) *riskRepository {
	return &riskRepository{client: client, measures: measures, controls: controls}
}

func (r *riskRepository) collection(name string) string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_" + name
	}
	return name
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	id, err := getNextID(ctx, r.client, r.collection("counters"), "risk_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := *risk
	stored.ID = id
	stored.ScoringMethod = risk.ScoringMethod.Normalize()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.RecomputeScores()

	docRef := r.client.Collection(r.collection("risks")).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, toRiskDocument(&stored)); err != nil {
		return nil, goerr.Wrap(err, "failed to create risk")
	}

	return &stored, nil
}

func (r *riskRepository) Get(ctx context.Context, id int64) (*model.Risk, error) {
	doc, err := r.client.Collection(r.collection("risks")).Doc(fmt.Sprintf("%d", id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V("id", id))
	}

	var riskDoc riskDocument
	if err := doc.DataTo(&riskDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal risk", goerr.V("id", id))
	}

	return riskDoc.toModel(), nil
}

func (r *riskRepository) ListByCase(ctx context.Context, caseID int64) ([]*model.Risk, error) {
	iter := r.client.Collection(r.collection("risks")).
		Where("case_id", "==", caseID).
		OrderBy("id", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var risks []*model.Risk
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate risks", goerr.V("case_id", caseID))
		}

		var riskDoc riskDocument
		if err := doc.DataTo(&riskDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk")
		}
		risks = append(risks, riskDoc.toModel())
	}

	return risks, nil
}

func (r *riskRepository) Update(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	existing, err := r.Get(ctx, risk.ID)
	if err != nil {
		return nil, err
	}

	stored := *risk
	stored.CaseID = existing.CaseID
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()
	stored.RecomputeScores()

	docRef := r.client.Collection(r.collection("risks")).Doc(fmt.Sprintf("%d", risk.ID))
	if _, err := docRef.Set(ctx, toRiskDocument(&stored)); err != nil {
		return nil, goerr.Wrap(err, "failed to update risk", goerr.V("id", risk.ID))
	}

	return &stored, nil
}

func (r *riskRepository) Delete(ctx context.Context, id int64) error {
	docRef := r.client.Collection(r.collection("risks")).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get risk", goerr.V("id", id))
	}

	if err := r.measures.deleteByRisk(ctx, id); err != nil {
		return err
	}
	if err := r.controls.deleteByRisk(ctx, id); err != nil {
		return err
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete risk", goerr.V("id", id))
	}

	return nil
}
