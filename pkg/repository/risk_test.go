package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }
func bp(v bool) *bool       { return &v }

func runRiskRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	newCase := func(t *testing.T, repo interfaces.Repository) *model.Case {
		t.Helper()
		created, err := repo.Case().Create(context.Background(), &model.Case{FacilityID: 1})
		gt.NoError(t, err).Required()
		return created
	}

	t.Run("Create computes cached scores from raw inputs", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		c := newCase(t, repo)

		created, err := repo.Risk().Create(ctx, &model.Risk{
			CaseID:            c.ID,
			Description:       "Forklift traffic crosses pedestrian walkway",
			ScoringMethod:     types.ScoringMethodFineKinney,
			KinneyProbability: fp(3),
			KinneyFrequency:   fp(6),
			KinneySeverity:    ip(15),
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(int64(0))
		gt.Value(t, created.KinneyScore).NotNil()
		gt.Value(t, *created.KinneyScore).Equal(270)
		gt.Value(t, created.MatrixScore).Nil()
	})

	t.Run("Create leaves unscored risk without cached score", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		c := newCase(t, repo)

		created, err := repo.Risk().Create(ctx, &model.Risk{
			CaseID:      c.ID,
			Description: "Uninspected pressure vessel",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.KinneyScore).Nil()
		gt.Value(t, created.MatrixScore).Nil()
		gt.Bool(t, created.Scored()).False()
	})

	t.Run("Create preserves catalog provenance verbatim", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		c := newCase(t, repo)

		created, err := repo.Risk().Create(ctx, &model.Risk{
			CaseID:          c.ID,
			Description:     "Elektrik panosu önünde malzeme istiflenmesi",
			Category:        "Elektrik",
			SubCategory:     "Pano Güvenliği",
			HazardSource:    "Pano önünün kapalı olması",
			LegalBasis:      "Elektrik İç Tesisleri Yönetmeliği",
			AffectedPersons: "Tüm çalışanlar",
			CatalogID:       ip(42),
		})
		gt.NoError(t, err).Required()

		retrieved, err := repo.Risk().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Category).Equal("Elektrik")
		gt.Value(t, *retrieved.CatalogID).Equal(42)
	})

	t.Run("Get returns ErrNotFound for non-existent risk", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Risk().Get(ctx, time.Now().UnixNano())
		assertNotFound(t, err)
	})

	t.Run("Update recomputes scores and keeps CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		c := newCase(t, repo)

		created, err := repo.Risk().Create(ctx, &model.Risk{
			CaseID:            c.ID,
			Description:       "Slippery loading dock",
			ScoringMethod:     types.ScoringMethodLMatrix,
			MatrixProbability: ip(2),
			MatrixSeverity:    ip(3),
		})
		gt.NoError(t, err).Required()
		gt.Value(t, *created.MatrixScore).Equal(6)

		created.MatrixProbability = ip(4)
		created.MatrixSeverity = ip(5)
		created.Acceptable = bp(false)
		created.MitigationStrategy = types.StrategyEngineering

		updated, err := repo.Risk().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, *updated.MatrixScore).Equal(20)
		gt.Bool(t, updated.RequiresAction()).True()
		gt.Bool(t, updated.CreatedAt.Equal(created.CreatedAt)).True()
	})

	t.Run("Update clearing an input clears the cached score", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		c := newCase(t, repo)

		created, err := repo.Risk().Create(ctx, &model.Risk{
			CaseID:            c.ID,
			Description:       "Chemical storage without ventilation",
			ScoringMethod:     types.ScoringMethodFineKinney,
			KinneyProbability: fp(6),
			KinneyFrequency:   fp(3),
			KinneySeverity:    ip(7),
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.KinneyScore).NotNil()

		created.KinneyFrequency = nil
		updated, err := repo.Risk().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.KinneyScore).Nil()
	})

	t.Run("Update returns ErrNotFound for non-existent risk", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Risk().Update(ctx, &model.Risk{ID: time.Now().UnixNano()})
		assertNotFound(t, err)
	})

	t.Run("ListByCase returns only risks of the case", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		c1 := newCase(t, repo)
		c2 := newCase(t, repo)

		_, err := repo.Risk().Create(ctx, &model.Risk{CaseID: c1.ID, Description: "A"})
		gt.NoError(t, err).Required()
		_, err = repo.Risk().Create(ctx, &model.Risk{CaseID: c1.ID, Description: "B"})
		gt.NoError(t, err).Required()
		_, err = repo.Risk().Create(ctx, &model.Risk{CaseID: c2.ID, Description: "C"})
		gt.NoError(t, err).Required()

		risks, err := repo.Risk().ListByCase(ctx, c1.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(2)
	})

	t.Run("Delete cascades to measures and control records", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		c := newCase(t, repo)

		risk, err := repo.Risk().Create(ctx, &model.Risk{
			CaseID:      c.ID,
			Description: "Unguarded conveyor belt",
			Acceptable:  bp(false),
		})
		gt.NoError(t, err).Required()

		measure, err := repo.Measure().Create(ctx, &model.Measure{
			CaseID:      c.ID,
			RiskID:      &risk.ID,
			Description: "Install fixed guard",
		})
		gt.NoError(t, err).Required()

		_, err = repo.ControlRecord().Append(ctx, &model.ControlRecord{
			RiskID:      risk.ID,
			ControlDate: time.Now().UTC(),
			Auditor:     "Safety expert",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Risk().Delete(ctx, risk.ID)).Required()

		_, err = repo.Risk().Get(ctx, risk.ID)
		assertNotFound(t, err)

		_, err = repo.Measure().Get(ctx, measure.ID)
		assertNotFound(t, err)

		records, err := repo.ControlRecord().ListByRisk(ctx, risk.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(0)
	})
}

func TestRiskRepository_Memory(t *testing.T) {
	runRiskRepositoryTest(t, newMemoryRepo)
}

func TestRiskRepository_Firestore(t *testing.T) {
	runRiskRepositoryTest(t, newFirestoreRepo)
}
