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

func TestCreateMeasureForRisk(t *testing.T) {
	ctx := context.Background()

	t.Run("measure inherits the case of its parent risk", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)

		risk, err := uc.Risk.CreateRisk(ctx, c.ID, usecase.RiskInput{
			Description: "Forklift şarj alanında havalandırma yok",
		})
		gt.NoError(t, err).Required()

		start := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		measure, err := uc.Measure.CreateMeasureForRisk(ctx, risk.ID, usecase.MeasureInput{
			Description:       "Şarj alanına cebri havalandırma kurulacak",
			ResponsiblePerson: "Tesis Müdürü",
			PlannedStart:      &start,
		})
		gt.NoError(t, err).Required()

		gt.Value(t, measure.CaseID).Equal(c.ID)
		gt.Value(t, *measure.RiskID).Equal(risk.ID)
		gt.Value(t, measure.AnswerID).Nil()
		gt.Value(t, measure.PlannedStart.Equal(start)).Equal(true)

		got, err := uc.Measure.GetMeasure(ctx, measure.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Description).Equal("Şarj alanına cebri havalandırma kurulacak")
	})

	t.Run("unknown risk is rejected", func(t *testing.T) {
		uc := newUseCases(t)

		_, err := uc.Measure.CreateMeasureForRisk(ctx, 9999, usecase.MeasureInput{})
		gt.Error(t, err).Is(usecase.ErrRiskNotFound)
	})

	t.Run("completed case rejects new measures", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)

		risk, err := uc.Risk.CreateRisk(ctx, c.ID, usecase.RiskInput{Description: "Açık kalan risk"})
		gt.NoError(t, err).Required()
		_, err = uc.Case.FinalizeCase(ctx, c.ID, "", "")
		gt.NoError(t, err).Required()

		_, err = uc.Measure.CreateMeasureForRisk(ctx, risk.ID, usecase.MeasureInput{})
		gt.Error(t, err).Is(usecase.ErrCaseCompleted)
	})
}

func TestDeleteMeasure(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted measure is gone", func(t *testing.T) {
		uc := newUseCases(t)
		c := newDraftCase(t, uc)

		answer, err := uc.Answer.UpsertAnswer(ctx, c.ID, "depolama-soru-1", rp(types.ResponseNo), "", nil)
		gt.NoError(t, err).Required()
		measure, err := uc.Measure.CreateMeasureForAnswer(ctx, c.ID, answer.ID, usecase.MeasureInput{
			Description: "Zemin çizgileri yenilenecek",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.Measure.DeleteMeasure(ctx, measure.ID)).Required()

		_, err = uc.Measure.GetMeasure(ctx, measure.ID)
		gt.Error(t, err).Is(usecase.ErrMeasureNotFound)
	})

	t.Run("unknown measure id", func(t *testing.T) {
		uc := newUseCases(t)

		err := uc.Measure.DeleteMeasure(ctx, model.NewMeasureID())
		gt.Error(t, err).Is(usecase.ErrMeasureNotFound)
	})
}
