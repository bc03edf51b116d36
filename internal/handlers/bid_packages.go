package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sitesense/models"
)

func (h *Handler) ListBidPackagesHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := requireQuery(r, "user_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	packages, err := h.Svc.ListBidPackages(r.Context(), models.BidPackageFilter{
		UserID: userID,
		JobID:  r.URL.Query().Get("job_id"),
		Status: models.PackageStatus(r.URL.Query().Get("status")),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, packages)
}

func (h *Handler) GetBidPackageHandler(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.Svc.GetBidPackage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, pkg)
}

func (h *Handler) CreateBidPackageHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBidPackageRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := validateCreateBidPackageRequest(&req); err != nil {
		h.fail(w, r, err)
		return
	}

	pkg, err := h.Svc.CreateBidPackage(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, pkg)
}

func validateCreateBidPackageRequest(req *models.CreateBidPackageRequest) error {
	var missing []string
	if req.UserID == "" {
		missing = append(missing, "user_id")
	}
	if req.JobID == "" {
		missing = append(missing, "job_id")
	}
	if req.Name == "" {
		missing = append(missing, "name")
	}
	return missingFields(missing)
}

func (h *Handler) UpdateBidPackageHandler(w http.ResponseWriter, r *http.Request) {
	var u models.BidPackageUpdate
	if err := decodeBody(w, r, &u); err != nil {
		h.fail(w, r, err)
		return
	}
	if u.ID == "" {
		h.fail(w, r, missingFields([]string{"id"}))
		return
	}

	pkg, err := h.Svc.UpdateBidPackage(r.Context(), u)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, pkg)
}

func (h *Handler) DeleteBidPackageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := requireQuery(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.Svc.DeleteBidPackage(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, nil)
}
