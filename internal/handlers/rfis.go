package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sitesense/models"
)

func (h *Handler) ListRFIsHandler(w http.ResponseWriter, r *http.Request) {
	rfis, err := h.Svc.ListRFIs(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, rfis)
}

func (h *Handler) CreateRFIHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRFIRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.Question == "" {
		h.fail(w, r, missingFields([]string{"question"}))
		return
	}

	rfi, err := h.Svc.CreateRFI(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, rfi)
}
