package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

type upsertAnswerRequest struct {
	Response     *types.Response     `json:"response"`
	Notes        string              `json:"notes"`
	RiskPriority *types.RiskPriority `json:"risk_priority"`
}

func upsertAnswerHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}
		questionID := types.QuestionID(chi.URLParam(r, "questionID"))

		var req upsertAnswerRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(ctx, w, err)
			return
		}

		answer, err := uc.Answer.UpsertAnswer(ctx, caseID, questionID, req.Response, req.Notes, req.RiskPriority)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, toAnswerResponse(answer))
	}
}

func getAnswerHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}
		questionID := types.QuestionID(chi.URLParam(r, "questionID"))

		answer, err := uc.Answer.GetAnswer(ctx, caseID, questionID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, toAnswerResponse(answer))
	}
}

func listAnswersHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		answers, err := uc.Answer.ListAnswers(ctx, caseID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		result := make([]answerResponse, 0, len(answers))
		for _, a := range answers {
			result = append(result, toAnswerResponse(a))
		}
		respondJSON(ctx, w, http.StatusOK, result)
	}
}

func deleteAnswerHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}
		questionID := types.QuestionID(chi.URLParam(r, "questionID"))

		if err := uc.Answer.DeleteAnswer(ctx, caseID, questionID); err != nil {
			handleError(ctx, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
