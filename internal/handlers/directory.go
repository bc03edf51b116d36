package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sitesense/models"
)

func (h *Handler) ListJobsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := requireQuery(r, "user_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	jobs, err := h.Svc.ListJobs(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, jobs)
}

func (h *Handler) CreateJobHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJobRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	var missing []string
	if req.UserID == "" {
		missing = append(missing, "user_id")
	}
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if err := missingFields(missing); err != nil {
		h.fail(w, r, err)
		return
	}

	job, err := h.Svc.CreateJob(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, job)
}

func (h *Handler) ListSubcontractorsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := requireQuery(r, "user_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	subs, err := h.Svc.ListSubcontractors(r.Context(), userID, r.URL.Query().Get("trade"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, subs)
}

func (h *Handler) GetSubcontractorHandler(w http.ResponseWriter, r *http.Request) {
	sub, err := h.Svc.GetSubcontractor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, sub)
}

func (h *Handler) CreateSubcontractorHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSubcontractorRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	var missing []string
	if req.UserID == "" {
		missing = append(missing, "user_id")
	}
	if req.CompanyName == "" {
		missing = append(missing, "company_name")
	}
	if err := missingFields(missing); err != nil {
		h.fail(w, r, err)
		return
	}

	sub, err := h.Svc.CreateSubcontractor(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, sub)
}

func (h *Handler) UpdateSubcontractorHandler(w http.ResponseWriter, r *http.Request) {
	var u models.SubcontractorUpdate
	if err := decodeBody(w, r, &u); err != nil {
		h.fail(w, r, err)
		return
	}
	if u.ID == "" {
		h.fail(w, r, missingFields([]string{"id"}))
		return
	}

	sub, err := h.Svc.UpdateSubcontractor(r.Context(), u)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, sub)
}

// ComplianceReportHandler scores every subcontractor of the user as of now.
func (h *Handler) ComplianceReportHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := requireQuery(r, "user_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	report, err := h.Svc.ComplianceReport(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, report)
}
