package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/scoring"
	"github.com/osgb-lab/riskdesk/pkg/service/catalog"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
	"github.com/osgb-lab/riskdesk/pkg/utils/errutil"
	"github.com/osgb-lab/riskdesk/pkg/utils/safe"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

// handleError translates a use case error into an HTTP status and logs it
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	errutil.HandleHTTP(ctx, w, err, statusOf(err))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrCaseNotFound),
		errors.Is(err, usecase.ErrAnswerNotFound),
		errors.Is(err, usecase.ErrRiskNotFound),
		errors.Is(err, usecase.ErrMeasureNotFound),
		errors.Is(err, usecase.ErrUnknownTool),
		errors.Is(err, model.ErrToolNotFound),
		errors.Is(err, catalog.ErrEntryNotFound):
		return http.StatusNotFound

	case errors.Is(err, usecase.ErrCaseAlreadyCompleted),
		errors.Is(err, usecase.ErrCaseCompleted):
		return http.StatusConflict

	case errors.Is(err, usecase.ErrInvalidArgument),
		errors.Is(err, usecase.ErrInvalidResponse),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrInvalidMethod),
		errors.Is(err, usecase.ErrInvalidStrategy),
		errors.Is(err, usecase.ErrQuestionNotInTool),
		errors.Is(err, model.ErrMeasureParent),
		errors.Is(err, model.ErrControlAuditorRequired),
		errors.Is(err, model.ErrControlDateRequired),
		errors.Is(err, scoring.ErrInputRange):
		return http.StatusBadRequest

	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// badRequest rejects a request before it reaches the use case layer
func badRequest(ctx context.Context, w http.ResponseWriter, err error) {
	errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "failed to decode request body")
	}
	return nil
}

func int64Param(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid numeric path parameter", goerr.V("name", name), goerr.V("value", raw))
	}
	return id, nil
}

func intParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid numeric path parameter", goerr.V("name", name), goerr.V("value", raw))
	}
	return id, nil
}

func intQuery(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid numeric query parameter", goerr.V("name", name), goerr.V("value", raw))
	}
	return v, nil
}
