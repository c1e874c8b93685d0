package http

import (
	"net/http"
	"time"

	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

type riskRequest struct {
	Description  string              `json:"description"`
	Acceptable   *bool               `json:"acceptable"`
	Evidence     string              `json:"evidence"`
	RiskPriority *types.RiskPriority `json:"risk_priority"`

	Category        string `json:"category"`
	SubCategory     string `json:"sub_category"`
	HazardSource    string `json:"hazard_source"`
	LegalBasis      string `json:"legal_basis"`
	AffectedPersons string `json:"affected_persons"`
	MeasureText     string `json:"measure_text"`

	MitigationStrategy types.MitigationStrategy `json:"mitigation_strategy"`
	EstimatedBudget    *float64                 `json:"estimated_budget"`
	ResponsiblePerson  string                   `json:"responsible_person"`
	DueDate            *time.Time               `json:"due_date"`

	ScoringMethod     types.ScoringMethod `json:"scoring_method"`
	KinneyProbability *float64            `json:"kinney_probability"`
	KinneyFrequency   *float64            `json:"kinney_frequency"`
	KinneySeverity    *int                `json:"kinney_severity"`
	MatrixProbability *int                `json:"matrix_probability"`
	MatrixSeverity    *int                `json:"matrix_severity"`
}

func (req *riskRequest) toInput() usecase.RiskInput {
	return usecase.RiskInput{
		Description:        req.Description,
		Acceptable:         req.Acceptable,
		Evidence:           req.Evidence,
		RiskPriority:       req.RiskPriority,
		Category:           req.Category,
		SubCategory:        req.SubCategory,
		HazardSource:       req.HazardSource,
		LegalBasis:         req.LegalBasis,
		AffectedPersons:    req.AffectedPersons,
		MeasureText:        req.MeasureText,
		MitigationStrategy: req.MitigationStrategy,
		EstimatedBudget:    req.EstimatedBudget,
		ResponsiblePerson:  req.ResponsiblePerson,
		DueDate:            req.DueDate,
		ScoringMethod:      req.ScoringMethod,
		KinneyProbability:  req.KinneyProbability,
		KinneyFrequency:    req.KinneyFrequency,
		KinneySeverity:     req.KinneySeverity,
		MatrixProbability:  req.MatrixProbability,
		MatrixSeverity:     req.MatrixSeverity,
	}
}

func createRiskHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		var req riskRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(ctx, w, err)
			return
		}

		created, err := uc.Risk.CreateRisk(ctx, caseID, req.toInput())
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusCreated, toRiskResponse(created))
	}
}

type createRiskFromCatalogRequest struct {
	CatalogID int `json:"catalog_id"`
}

func createRiskFromCatalogHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		var req createRiskFromCatalogRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(ctx, w, err)
			return
		}

		created, err := uc.Risk.CreateRiskFromCatalog(ctx, caseID, req.CatalogID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusCreated, toRiskResponse(created))
	}
}

func listRisksHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caseID, err := int64Param(r, "caseID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		risks, err := uc.Risk.ListRisks(ctx, caseID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		result := make([]riskResponse, 0, len(risks))
		for _, risk := range risks {
			result = append(result, toRiskResponse(risk))
		}
		respondJSON(ctx, w, http.StatusOK, result)
	}
}

func getRiskHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		riskID, err := int64Param(r, "riskID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		risk, err := uc.Risk.GetRisk(ctx, riskID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, toRiskResponse(risk))
	}
}

func updateRiskHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		riskID, err := int64Param(r, "riskID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		var req riskRequest
		if err := decodeBody(r, &req); err != nil {
			badRequest(ctx, w, err)
			return
		}

		updated, err := uc.Risk.UpdateRisk(ctx, riskID, req.toInput())
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, toRiskResponse(updated))
	}
}

func deleteRiskHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		riskID, err := int64Param(r, "riskID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		if err := uc.Risk.DeleteRisk(ctx, riskID); err != nil {
			handleError(ctx, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
