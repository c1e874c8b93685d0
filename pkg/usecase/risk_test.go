package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

func TestCreateRisk(t *testing.T) {
	ctx := context.Background()

	t.Run("Fine-Kinney inputs produce score and label", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)

		created, err := uc.Risk.CreateRisk(ctx, c.ID, usecase.RiskInput{
			Description:       "İskelede korkuluk eksikliği",
			KinneyProbability: fp(3),
			KinneyFrequency:   fp(6),
			KinneySeverity:    ip(15),
		})
		gt.NoError(t, err).Required()

		gt.Value(t, *created.KinneyScore).Equal(270)
		gt.Value(t, created.Level().Label).Equal("Esaslı")
	})

	t.Run("L-Matrix boundary score 20 is intolerable", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodLMatrix)

		created, err := uc.Risk.CreateRisk(ctx, c.ID, usecase.RiskInput{
			Description:       "Basınçlı kap periyodik kontrolü yapılmamış",
			ScoringMethod:     types.ScoringMethodLMatrix,
			MatrixProbability: ip(4),
			MatrixSeverity:    ip(5),
		})
		gt.NoError(t, err).Required()

		gt.Value(t, *created.MatrixScore).Equal(20)
		gt.Value(t, created.Level().Label).Equal("Tolerans gösterilemez")
	})

	t.Run("missing input yields nil score, never zero", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)

		created, err := uc.Risk.CreateRisk(ctx, c.ID, usecase.RiskInput{
			Description:       "Frekans girilmemiş tehlike",
			KinneyProbability: fp(3),
			KinneySeverity:    ip(15),
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.KinneyScore).Nil()
		gt.Value(t, created.Level().Label).Equal("-")
	})

	t.Run("empty method inherits the case's method", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodLMatrix)

		created, err := uc.Risk.CreateRisk(ctx, c.ID, usecase.RiskInput{
			Description: "Yöntemi belirtilmemiş tehlike",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ScoringMethod).Equal(types.ScoringMethodLMatrix)
	})

	t.Run("matrix input outside 1-5 is rejected", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodLMatrix)

		_, err := uc.Risk.CreateRisk(ctx, c.ID, usecase.RiskInput{
			Description:       "Geçersiz olasılık",
			ScoringMethod:     types.ScoringMethodLMatrix,
			MatrixProbability: ip(6),
			MatrixSeverity:    ip(3),
		})
		gt.Error(t, err)
	})

	t.Run("missing description is rejected", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)

		_, err := uc.Risk.CreateRisk(ctx, c.ID, usecase.RiskInput{})
		gt.Error(t, err)
	})
}

func TestCreateRiskFromCatalog(t *testing.T) {
	ctx := context.Background()

	catalogEntry := &model.CatalogEntry{
		ID:              42,
		Group:           "Elektrik",
		Topic:           "Pano Güvenliği",
		Hazard:          "Pano önünün kapalı olması",
		Risk:            "Elektrik çarpması",
		LegalBasis:      "Elektrik İç Tesisleri Yönetmeliği",
		Measure:         "Pano önü her zaman açık tutulmalı",
		AffectedPersons: "Tüm çalışanlar",
	}

	t.Run("copies entry verbatim and seeds one measure", func(t *testing.T) {
		uc := newUseCases(t, usecase.WithCatalog(newFixtureCatalog(catalogEntry)))
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)

		created, err := uc.Risk.CreateRiskFromCatalog(ctx, c.ID, 42)
		gt.NoError(t, err).Required()

		gt.Value(t, created.Description).Equal("Elektrik çarpması")
		gt.Value(t, created.Category).Equal("Elektrik")
		gt.Value(t, created.SubCategory).Equal("Pano Güvenliği")
		gt.Value(t, created.HazardSource).Equal("Pano önünün kapalı olması")
		gt.Value(t, created.LegalBasis).Equal("Elektrik İç Tesisleri Yönetmeliği")
		gt.Value(t, created.MeasureText).Equal("Pano önü her zaman açık tutulmalı")
		gt.Value(t, *created.CatalogID).Equal(42)

		measures, err := uc.Measure.ListMeasuresByCase(ctx, c.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, measures).Length(1)
		gt.Value(t, measures[0].Description).Equal("Pano önü her zaman açık tutulmalı")
		gt.Value(t, *measures[0].RiskID).Equal(created.ID)
	})

	t.Run("unknown catalog id mutates nothing", func(t *testing.T) {
		uc := newUseCases(t, usecase.WithCatalog(newFixtureCatalog(catalogEntry)))
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)

		_, err := uc.Risk.CreateRiskFromCatalog(ctx, c.ID, 999)
		gt.Error(t, err)

		risks, err := uc.Risk.ListRisks(ctx, c.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(0)
	})

	t.Run("without a catalog the operation is unavailable", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)

		_, err := uc.Risk.CreateRiskFromCatalog(ctx, c.ID, 42)
		gt.Error(t, err).Is(usecase.ErrCatalogUnavailable)
	})
}

func TestUpdateRisk(t *testing.T) {
	ctx := context.Background()

	t.Run("update recomputes the cached score", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)

		created, err := uc.Risk.CreateRisk(ctx, c.ID, usecase.RiskInput{
			Description:       "Gürültü maruziyeti",
			KinneyProbability: fp(6),
			KinneyFrequency:   fp(6),
			KinneySeverity:    ip(3),
		})
		gt.NoError(t, err).Required()
		gt.Value(t, *created.KinneyScore).Equal(108)

		updated, err := uc.Risk.UpdateRisk(ctx, created.ID, usecase.RiskInput{
			Description:       "Gürültü maruziyeti",
			Acceptable:        bp(false),
			KinneyProbability: fp(1),
			KinneyFrequency:   fp(6),
			KinneySeverity:    ip(3),
		})
		gt.NoError(t, err).Required()
		gt.Value(t, *updated.KinneyScore).Equal(18)
		gt.Value(t, updated.Level().Label).Equal("Önemsiz")
	})

	t.Run("risk of a completed case is read-only", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)

		created, err := uc.Risk.CreateRisk(ctx, c.ID, usecase.RiskInput{Description: "Kapanışta kalan risk"})
		gt.NoError(t, err).Required()

		_, err = uc.Case.FinalizeCase(ctx, c.ID, "", "")
		gt.NoError(t, err).Required()

		_, err = uc.Risk.UpdateRisk(ctx, created.ID, usecase.RiskInput{Description: "Değişiklik"})
		gt.Error(t, err).Is(usecase.ErrCaseCompleted)

		err = uc.Risk.DeleteRisk(ctx, created.ID)
		gt.Error(t, err).Is(usecase.ErrCaseCompleted)
	})
}
