package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sitesense/internal/logger"
	"sitesense/internal/metrics"
)

// NewRouter mounts every route behind request id, logging, metrics, panic recovery and a
// per-request timeout.
func NewRouter(h *Handler, m *metrics.Metrics, gatherer prometheus.Gatherer, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.Middleware(h.Log))
	r.Use(m.Middleware)
	r.Use(middleware.Recoverer)
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Get("/ping", h.PingHandler)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.ListJobsHandler)
		r.Post("/", h.CreateJobHandler)
	})

	r.Route("/subcontractors", func(r chi.Router) {
		r.Get("/", h.ListSubcontractorsHandler)
		r.Post("/", h.CreateSubcontractorHandler)
		r.Put("/", h.UpdateSubcontractorHandler)
		r.Get("/compliance", h.ComplianceReportHandler)
		r.Get("/{id}", h.GetSubcontractorHandler)
	})

	r.Route("/bid-packages", func(r chi.Router) {
		r.Get("/", h.ListBidPackagesHandler)
		r.Post("/", h.CreateBidPackageHandler)
		r.Put("/", h.UpdateBidPackageHandler)
		r.Delete("/", h.DeleteBidPackageHandler)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetBidPackageHandler)

			r.Get("/invites", h.ListInvitesHandler)
			r.Post("/invites", h.CreateInvitesHandler)
			r.Delete("/invites", h.DeleteInviteHandler)

			r.Get("/bids", h.ListBidsHandler)
			r.Post("/bids", h.SubmitBidHandler)
			r.Put("/bids", h.UpdateBidHandler)

			r.Get("/rfis", h.ListRFIsHandler)
			r.Post("/rfis", h.CreateRFIHandler)
		})
	})

	return r
}
