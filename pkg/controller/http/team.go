package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

type addTeamMemberRequest struct {
	Role  types.TeamRole `json:"role"`
	Name  string         `json:"name"`
	Title string         `json:"title"`
}

func addTeamMemberHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		var req addTeamMemberRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(ctx, w, err)
			return
		}

		member, err := uc.Team.AddTeamMember(ctx, caseID, req.Role, req.Name, req.Title)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusCreated, toTeamMemberResponse(member))
	}
}

func signatureBlockHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		members, err := uc.Team.SignatureBlock(ctx, caseID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		result := make([]teamMemberResponse, 0, len(members))
		for _, member := range members {
			result = append(result, toTeamMemberResponse(member))
		}
		respondJSON(ctx, w, http.StatusOK, result)
	}
}

func removeTeamMemberHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		memberID := model.TeamMemberID(chi.URLParam(r, "memberID"))
		if err := uc.Team.RemoveTeamMember(ctx, memberID); err != nil {
			handleError(ctx, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
