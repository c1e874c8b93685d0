package http

import (
	"net/http"
	"time"

	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

type controlRecordRequest struct {
	ControlDate time.Time `json:"control_date"`
	Auditor     string    `json:"auditor"`
	Note        string    `json:"note"`

	ScoringMethod     types.ScoringMethod `json:"scoring_method"`
	KinneyProbability *float64            `json:"kinney_probability"`
	KinneyFrequency   *float64            `json:"kinney_frequency"`
	KinneySeverity    *int                `json:"kinney_severity"`
	MatrixProbability *int                `json:"matrix_probability"`
	MatrixSeverity    *int                `json:"matrix_severity"`
}

func appendControlRecordHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		riskID, err := int64Param(r, "riskID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		var req controlRecordRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(ctx, w, err)
			return
		}

		record, err := uc.Control.AppendControlRecord(ctx, riskID, usecase.ControlRecordInput{
			ControlDate:       req.ControlDate,
			Auditor:           req.Auditor,
			Note:              req.Note,
			ScoringMethod:     req.ScoringMethod,
			KinneyProbability: req.KinneyProbability,
			KinneyFrequency:   req.KinneyFrequency,
			KinneySeverity:    req.KinneySeverity,
			MatrixProbability: req.MatrixProbability,
			MatrixSeverity:    req.MatrixSeverity,
		})
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusCreated, toControlRecordResponse(record))
	}
}

func listControlRecordsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		riskID, err := int64Param(r, "riskID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		records, err := uc.Control.ListControlRecords(ctx, riskID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		result := make([]controlRecordResponse, 0, len(records))
		for _, record := range records {
			result = append(result, toControlRecordResponse(record))
		}
		respondJSON(ctx, w, http.StatusOK, result)
	}
}
