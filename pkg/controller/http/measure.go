package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

type measureRequest struct {
	Description       string     `json:"description"`
	RequiredExpertise string     `json:"required_expertise"`
	ResponsiblePerson string     `json:"responsible_person"`
	Budget            string     `json:"budget"`
	PlannedStart      *time.Time `json:"planned_start"`
	PlannedEnd        *time.Time `json:"planned_end"`
}

func (req *measureRequest) toInput() usecase.MeasureInput {
	return usecase.MeasureInput{
		Description:       req.Description,
		RequiredExpertise: req.RequiredExpertise,
		ResponsiblePerson: req.ResponsiblePerson,
		Budget:            req.Budget,
		PlannedStart:      req.PlannedStart,
		PlannedEnd:        req.PlannedEnd,
	}
}

func createAnswerMeasureHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}
		questionID := types.QuestionID(chi.URLParam(r, "questionID"))

		var req measureRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(ctx, w, err)
			return
		}

		answerID := model.AnswerKey(caseID, questionID)
		created, err := uc.Measure.CreateMeasureForAnswer(ctx, caseID, answerID, req.toInput())
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusCreated, toMeasureResponse(created))
	}
}

func createRiskMeasureHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		riskID, err := int64Param(r, "riskID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		var req measureRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(ctx, w, err)
			return
		}

		created, err := uc.Measure.CreateMeasureForRisk(ctx, riskID, req.toInput())
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusCreated, toMeasureResponse(created))
	}
}

func listMeasuresHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		measures, err := uc.Measure.ListMeasuresByCase(ctx, caseID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, toMeasureResponses(measures))
	}
}

func getMeasureHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		measureID := model.MeasureID(chi.URLParam(r, "measureID"))
		measure, err := uc.Measure.GetMeasure(ctx, measureID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, toMeasureResponse(measure))
	}
}

func updateMeasureHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		measureID := model.MeasureID(chi.URLParam(r, "measureID"))

		var req measureRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(ctx, w, err)
			return
		}

		updated, err := uc.Measure.UpdateMeasure(ctx, measureID, req.toInput())
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, toMeasureResponse(updated))
	}
}

func deleteMeasureHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		measureID := model.MeasureID(chi.URLParam(r, "measureID"))
		if err := uc.Measure.DeleteMeasure(ctx, measureID); err != nil {
			handleError(ctx, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
