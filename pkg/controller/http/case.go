package http

import (
	"net/http"

	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

type createCaseRequest struct {
	FacilityID    int64               `json:"facility_id"`
	ToolID        *types.ToolID       `json:"tool_id"`
	ScoringMethod types.ScoringMethod `json:"scoring_method"`
}

func createCaseHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req createCaseRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(ctx, w, err)
			return
		}

		var created *model.Case
		var err error
		if req.ToolID != nil {
			created, err = uc.Case.CreateStructuredCase(ctx, req.FacilityID, *req.ToolID, req.ScoringMethod)
		} else {
			created, err = uc.Case.CreateFastTrackCase(ctx, req.FacilityID, req.ScoringMethod)
		}
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusCreated, toCaseResponse(created))
	}
}

func listCasesHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var cases []*model.Case
		var err error
		if raw := r.URL.Query().Get("facility_id"); raw != "" {
			facilityID, parseErr := intQuery(r, "facility_id", 0)
			if parseErr != nil {
				badRequest(ctx, w, parseErr)
				return
			}
			cases, err = uc.Case.ListCasesByFacility(ctx, int64(facilityID))
		} else {
			cases, err = uc.Case.ListCases(ctx)
		}
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		result := make([]caseResponse, 0, len(cases))
		for _, c := range cases {
			result = append(result, toCaseResponse(c))
		}
		respondJSON(ctx, w, http.StatusOK, result)
	}
}

func getCaseHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		found, err := uc.Case.GetCase(ctx, caseID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, toCaseResponse(found))
	}
}

func deleteCaseHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		if err := uc.Case.DeleteCase(ctx, caseID); err != nil {
			handleError(ctx, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type finalizeCaseRequest struct {
	FinalComments string `json:"final_comments"`
	Participants  string `json:"participants"`
}

func finalizeCaseHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		var req finalizeCaseRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(ctx, w, err)
			return
		}

		completed, err := uc.Case.FinalizeCase(ctx, caseID, req.FinalComments, req.Participants)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, toCaseResponse(completed))
	}
}

func caseProgressHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Percentage int `json:"percentage"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		percentage, err := uc.Case.Progress(ctx, caseID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, response{Percentage: percentage})
	}
}
