package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

func TestUpsertAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("creates then replaces the same question's answer", func(t *testing.T) {
		uc := newUseCases(t)
		c := newDraftCase(t, uc)

		first, err := uc.Answer.UpsertAnswer(ctx, c.ID, "depolama-soru-1", rp(types.ResponseYes), "", nil)
		gt.NoError(t, err).Required()

		second, err := uc.Answer.UpsertAnswer(ctx, c.ID, "depolama-soru-1", rp(types.ResponseNo), "raf sabitlemesi eksik", pp(types.RiskPriorityHigh))
		gt.NoError(t, err).Required()

		gt.Value(t, second.ID).Equal(first.ID)
		gt.Value(t, *second.Response).Equal(types.ResponseNo)
		gt.Value(t, *second.RiskPriority).Equal(types.RiskPriorityHigh)

		answers, err := uc.Answer.ListAnswers(ctx, c.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, answers).Length(1)
	})

	t.Run("question outside the case's tool is rejected", func(t *testing.T) {
		uc := newUseCases(t)
		c := newDraftCase(t, uc)

		_, err := uc.Answer.UpsertAnswer(ctx, c.ID, "baska-aracin-sorusu", rp(types.ResponseYes), "", nil)
		gt.Error(t, err).Is(usecase.ErrQuestionNotInTool)
	})

	t.Run("fast-track case takes no answers", func(t *testing.T) {
		uc := newUseCases(t)
		c := newFastTrackCase(t, uc, types.ScoringMethodFineKinney)

		_, err := uc.Answer.UpsertAnswer(ctx, c.ID, "depolama-soru-1", rp(types.ResponseYes), "", nil)
		gt.Error(t, err).Is(usecase.ErrQuestionNotInTool)
	})

	t.Run("invalid response enum keeps the stored answer", func(t *testing.T) {
		uc := newUseCases(t)
		c := newDraftCase(t, uc)

		_, err := uc.Answer.UpsertAnswer(ctx, c.ID, "depolama-soru-1", rp(types.ResponseYes), "", nil)
		gt.NoError(t, err).Required()

		_, err = uc.Answer.UpsertAnswer(ctx, c.ID, "depolama-soru-1", rp(types.Response("MAYBE")), "", nil)
		gt.Error(t, err).Is(usecase.ErrInvalidResponse)

		stored, err := uc.Answer.GetAnswer(ctx, c.ID, "depolama-soru-1")
		gt.NoError(t, err).Required()
		gt.Value(t, *stored.Response).Equal(types.ResponseYes)
	})

	t.Run("invalid priority enum is rejected", func(t *testing.T) {
		uc := newUseCases(t)
		c := newDraftCase(t, uc)

		_, err := uc.Answer.UpsertAnswer(ctx, c.ID, "depolama-soru-1", rp(types.ResponseNo), "", pp(types.RiskPriority("URGENT")))
		gt.Error(t, err).Is(usecase.ErrInvalidPriority)
	})

	t.Run("completed case is read-only", func(t *testing.T) {
		uc := newUseCases(t)
		c := newDraftCase(t, uc)

		_, err := uc.Case.FinalizeCase(ctx, c.ID, "", "")
		gt.NoError(t, err).Required()

		_, err = uc.Answer.UpsertAnswer(ctx, c.ID, "depolama-soru-1", rp(types.ResponseYes), "", nil)
		gt.Error(t, err).Is(usecase.ErrCaseCompleted)
	})

	t.Run("nil response stores an unanswered placeholder", func(t *testing.T) {
		uc := newUseCases(t)
		c := newDraftCase(t, uc)

		created, err := uc.Answer.UpsertAnswer(ctx, c.ID, "trafik-soru-1", nil, "ölçüm bekleniyor", nil)
		gt.NoError(t, err).Required()
		gt.Value(t, created.Response).Nil()
		gt.Bool(t, created.Answered()).False()
	})
}

func TestDeleteAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("delete removes the pair", func(t *testing.T) {
		uc := newUseCases(t)
		c := newDraftCase(t, uc)

		_, err := uc.Answer.UpsertAnswer(ctx, c.ID, "depolama-soru-2", rp(types.ResponseNotApplicable), "", nil)
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.Answer.DeleteAnswer(ctx, c.ID, "depolama-soru-2")).Required()

		_, err = uc.Answer.GetAnswer(ctx, c.ID, "depolama-soru-2")
		gt.Error(t, err).Is(usecase.ErrAnswerNotFound)
	})
}
