package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
	"github.com/osgb-lab/riskdesk/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

// New builds the JSON API router over the given use cases
func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/tools", func(r chi.Router) {
			r.Get("/", listToolsHandler(uc))
			r.Get("/{toolID}", getToolHandler(uc))
		})

		r.Route("/cases", func(r chi.Router) {
			r.Post("/", createCaseHandler(uc))
			r.Get("/", listCasesHandler(uc))

			r.Route("/{caseID}", func(r chi.Router) {
				r.Get("/", getCaseHandler(uc))
				r.Delete("/", deleteCaseHandler(uc))
				r.Post("/finalize", finalizeCaseHandler(uc))
				r.Get("/progress", caseProgressHandler(uc))

				r.Route("/answers", func(r chi.Router) {
					r.Get("/", listAnswersHandler(uc))
					r.Put("/{questionID}", upsertAnswerHandler(uc))
					r.Get("/{questionID}", getAnswerHandler(uc))
					r.Delete("/{questionID}", deleteAnswerHandler(uc))
					r.Post("/{questionID}/measures", createAnswerMeasureHandler(uc))
				})

				r.Route("/risks", func(r chi.Router) {
					r.Get("/", listRisksHandler(uc))
					r.Post("/", createRiskHandler(uc))
					r.Post("/from-catalog", createRiskFromCatalogHandler(uc))
				})

				r.Get("/measures", listMeasuresHandler(uc))
				r.Get("/action-plan", actionPlanHandler(uc))
				r.Get("/risk-summary", riskSummaryHandler(uc))

				r.Route("/team", func(r chi.Router) {
					r.Get("/", signatureBlockHandler(uc))
					r.Post("/", addTeamMemberHandler(uc))
				})
			})
		})

		r.Route("/risks/{riskID}", func(r chi.Router) {
			r.Get("/", getRiskHandler(uc))
			r.Put("/", updateRiskHandler(uc))
			r.Delete("/", deleteRiskHandler(uc))

			r.Route("/controls", func(r chi.Router) {
				r.Get("/", listControlRecordsHandler(uc))
				r.Post("/", appendControlRecordHandler(uc))
			})

			r.Post("/measures", createRiskMeasureHandler(uc))
		})

		r.Route("/measures/{measureID}", func(r chi.Router) {
			r.Get("/", getMeasureHandler(uc))
			r.Put("/", updateMeasureHandler(uc))
			r.Delete("/", deleteMeasureHandler(uc))
		})

		r.Delete("/team-members/{memberID}", removeTeamMemberHandler(uc))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", searchCatalogHandler(uc))
			r.Get("/categories", catalogCategoriesHandler(uc))
			r.Get("/{entryID}", getCatalogEntryHandler(uc))
			r.Post("/reload", reloadCatalogHandler(uc))
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
