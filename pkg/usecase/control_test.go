package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

func TestAppendControlRecord(t *testing.T) {
	ctx := context.Background()

	newScoredRisk := func(t *testing.T, uc *usecase.UseCases) *model.Risk {
		t.Helper()
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)
		risk, err := uc.Risk.CreateRisk(ctx, c.ID, usecase.RiskInput{
			Description:       "Toz patlaması tehlikesi",
			KinneyProbability: fp(6),
			KinneyFrequency:   fp(6),
			KinneySeverity:    ip(15),
		})
		gt.NoError(t, err).Required()
		return risk
	}

	t.Run("defaults to the parent risk's method", func(t *testing.T) {
		uc := newUseCases(t)
		risk := newScoredRisk(t, uc)

		record, err := uc.Control.AppendControlRecord(ctx, risk.ID, usecase.ControlRecordInput{
			ControlDate:       time.Now().UTC(),
			Auditor:           "İSG uzmanı",
			Note:              "Toz toplama sistemi devrede",
			KinneyProbability: fp(1),
			KinneyFrequency:   fp(6),
			KinneySeverity:    ip(15),
		})
		gt.NoError(t, err).Required()

		gt.Value(t, record.ScoringMethod).Equal(types.ScoringMethodFineKinney)
		gt.Value(t, *record.ResidualScore).Equal(90)
		gt.Value(t, record.Level().Label).Equal("Önemli")
	})

	t.Run("explicit method overrides the parent's", func(t *testing.T) {
		uc := newUseCases(t)
		risk := newScoredRisk(t, uc)

		record, err := uc.Control.AppendControlRecord(ctx, risk.ID, usecase.ControlRecordInput{
			ControlDate:       time.Now().UTC(),
			Auditor:           "İSG uzmanı",
			ScoringMethod:     types.ScoringMethodLMatrix,
			MatrixProbability: ip(1),
			MatrixSeverity:    ip(2),
		})
		gt.NoError(t, err).Required()

		gt.Value(t, record.ScoringMethod).Equal(types.ScoringMethodLMatrix)
		gt.Value(t, *record.ResidualScore).Equal(2)
		gt.Value(t, record.Level().Label).Equal("Önemsiz")
	})

	t.Run("append never touches the parent risk's scores", func(t *testing.T) {
		uc := newUseCases(t)
		risk := newScoredRisk(t, uc)
		original := *risk.KinneyScore

		_, err := uc.Control.AppendControlRecord(ctx, risk.ID, usecase.ControlRecordInput{
			ControlDate:       time.Now().UTC(),
			Auditor:           "İSG uzmanı",
			KinneyProbability: fp(0.5),
			KinneyFrequency:   fp(2),
			KinneySeverity:    ip(3),
		})
		gt.NoError(t, err).Required()

		reloaded, err := uc.Risk.GetRisk(ctx, risk.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, *reloaded.KinneyScore).Equal(original)
	})

	t.Run("missing auditor is rejected before scoring", func(t *testing.T) {
		uc := newUseCases(t)
		risk := newScoredRisk(t, uc)

		_, err := uc.Control.AppendControlRecord(ctx, risk.ID, usecase.ControlRecordInput{
			ControlDate: time.Now().UTC(),
		})
		gt.Error(t, err).Is(model.ErrControlAuditorRequired)
	})

	t.Run("missing control date is rejected", func(t *testing.T) {
		uc := newUseCases(t)
		risk := newScoredRisk(t, uc)

		_, err := uc.Control.AppendControlRecord(ctx, risk.ID, usecase.ControlRecordInput{
			Auditor: "İSG uzmanı",
		})
		gt.Error(t, err).Is(model.ErrControlDateRequired)
	})

	t.Run("append on non-existent risk", func(t *testing.T) {
		uc := newUseCases(t)

		_, err := uc.Control.AppendControlRecord(ctx, 9999, usecase.ControlRecordInput{
			ControlDate: time.Now().UTC(),
			Auditor:     "İSG uzmanı",
		})
		gt.Error(t, err).Is(usecase.ErrRiskNotFound)
	})
}

func TestListControlRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the ledger newest first", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)
		risk, err := uc.Risk.CreateRisk(ctx, c.ID, usecase.RiskInput{Description: "Takip edilen risk"})
		gt.NoError(t, err).Required()

		january := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		june := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

		_, err = uc.Control.AppendControlRecord(ctx, risk.ID, usecase.ControlRecordInput{
			ControlDate: january, Auditor: "Birinci denetçi",
		})
		gt.NoError(t, err).Required()
		_, err = uc.Control.AppendControlRecord(ctx, risk.ID, usecase.ControlRecordInput{
			ControlDate: june, Auditor: "İkinci denetçi",
		})
		gt.NoError(t, err).Required()

		records, err := uc.Control.ListControlRecords(ctx, risk.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(2)
		gt.Value(t, records[0].Auditor).Equal("İkinci denetçi")
		gt.Value(t, records[1].Auditor).Equal("Birinci denetçi")
	})
}
