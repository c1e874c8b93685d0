package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

func listToolsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type toolSummary struct {
		ID            types.ToolID `json:"id"`
		Name          string       `json:"name"`
		Description   string       `json:"description"`
		QuestionCount int          `json:"question_count"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tools := uc.Registry().List()
		result := make([]toolSummary, 0, len(tools))
		for _, tool := range tools {
			result = append(result, toolSummary{
				ID:            tool.ID,
				Name:          tool.Name,
				Description:   tool.Description,
				QuestionCount: tool.QuestionCount(),
			})
		}
		respondJSON(ctx, w, http.StatusOK, result)
	}
}

func getToolHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		toolID := types.ToolID(chi.URLParam(r, "toolID"))
		tool, err := uc.Registry().Get(toolID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, toToolResponse(tool))
	}
}
