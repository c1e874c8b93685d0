package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

func requireCatalog(uc *usecase.UseCases) (interfaces.Catalog, error) {
	catalog := uc.Catalog()
	if catalog == nil {
		return nil, goerr.Wrap(usecase.ErrCatalogUnavailable, "catalog endpoint called without a catalog")
	}
	return catalog, nil
}

func searchCatalogHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		catalog, err := requireCatalog(uc)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		limit, err := intQuery(r, "limit", 0)
		if err != nil {
			badRequest(ctx, w, err)
			return
		}
		offset, err := intQuery(r, "offset", 0)
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		page, err := catalog.Search(ctx, interfaces.CatalogQuery{
			Query:    r.URL.Query().Get("q"),
			Category: r.URL.Query().Get("category"),
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, toCatalogPageResponse(page))
	}
}

func catalogCategoriesHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Categories []string `json:"categories"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		catalog, err := requireCatalog(uc)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		categories, err := catalog.Categories(ctx)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, response{Categories: categories})
	}
}

func getCatalogEntryHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		catalog, err := requireCatalog(uc)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		entryID, err := intParam(r, "entryID")
		if err != nil {
			badRequest(ctx, w, err)
			return
		}

		entry, err := catalog.Get(ctx, entryID)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		respondJSON(ctx, w, http.StatusOK, toCatalogEntryResponse(entry))
	}
}

func reloadCatalogHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		catalog, err := requireCatalog(uc)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		if err := catalog.Reload(ctx); err != nil {
			handleError(ctx, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
