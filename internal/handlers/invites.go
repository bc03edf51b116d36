package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sitesense/models"
)

func (h *Handler) ListInvitesHandler(w http.ResponseWriter, r *http.Request) {
	invites, err := h.Svc.ListInvites(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, invites)
}

func (h *Handler) CreateInvitesHandler(w http.ResponseWriter, r *http.Request) {
	var req models.InviteRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if len(req.SubcontractorIDs) == 0 {
		h.fail(w, r, missingFields([]string{"subcontractor_ids"}))
		return
	}

	created, err := h.Svc.InviteSubcontractors(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, map[string]int{"created": created})
}

func (h *Handler) DeleteInviteHandler(w http.ResponseWriter, r *http.Request) {
	inviteID, err := requireQuery(r, "invite_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.Svc.DeleteInvite(r.Context(), chi.URLParam(r, "id"), inviteID); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, nil)
}
