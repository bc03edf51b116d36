package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sitesense/models"
)

func (h *Handler) ListBidsHandler(w http.ResponseWriter, r *http.Request) {
	bids, err := h.Svc.ListBids(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, bids)
}

func (h *Handler) SubmitBidHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitBidRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := validateSubmitBidRequest(&req); err != nil {
		h.fail(w, r, err)
		return
	}

	bid, err := h.Svc.SubmitBid(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, bid)
}

func validateSubmitBidRequest(req *models.SubmitBidRequest) error {
	var missing []string
	if req.SubcontractorID == "" {
		missing = append(missing, "subcontractor_id")
	}
	if req.BaseBid == nil {
		missing = append(missing, "base_bid")
	}
	return missingFields(missing)
}

// UpdateBidHandler sets score, notes or status. Status "selected" awards the package.
func (h *Handler) UpdateBidHandler(w http.ResponseWriter, r *http.Request) {
	var u models.BidUpdate
	if err := decodeBody(w, r, &u); err != nil {
		h.fail(w, r, err)
		return
	}
	if u.BidID == "" {
		h.fail(w, r, missingFields([]string{"bid_id"}))
		return
	}

	bid, err := h.Svc.UpdateBid(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, bid)
}
