package http

import (
	"net/http"

	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

func actionPlanHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		entries, err := uc.Plan.ActionPlan(ctx, caseID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		result := make([]actionPlanEntryResponse, 0, len(entries))
		for _, entry := range entries {
			result = append(result, toActionPlanEntryResponse(entry))
		}
		respondJSON(ctx, w, http.StatusOK, result)
	}
}

func riskSummaryHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		summary, err := uc.Plan.SummarizeRisks(ctx, caseID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, riskSummaryResponse{
			Total:    summary.Total,
			Unscored: summary.Unscored,
			ByLabel:  summary.ByLabel,
		})
	}
}
