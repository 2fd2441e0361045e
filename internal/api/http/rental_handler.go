package http

import (
	"context"
	"net/http"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	ItemID     int32  `json:"item_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	PaymentRef string `json:"payment_ref"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())

	var req createRentalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ItemID <= 0 || req.StartDate == "" || req.EndDate == "" {
		writeBadRequest(w, "item id, start date and end date are required")
		return
	}

	rental, err := h.rentalSvc.Create(r.Context(), userID, req.ItemID, req.StartDate, req.EndDate, req.PaymentRef)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "rental request submitted",
		"rental":  rental,
	})
}

// applyTransition shares the lookup and response shape of the three
// transition endpoints; the status rules live in the rental service's
// transition table.
func (h *RentalHandler) applyTransition(w http.ResponseWriter, r *http.Request,
	apply func(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error)) {
	userID, _ := UserIDFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid rental id")
		return
	}

	rental, err := apply(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"rental":  rental,
	})
}

func (h *RentalHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.rentalSvc.Accept)
}

func (h *RentalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.rentalSvc.Reject)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.rentalSvc.Complete)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid rental id")
		return
	}

	rental, err := h.rentalSvc.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "rental": rental})
}

func (h *RentalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())
	rentals, err := h.rentalSvc.ListAsRenter(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "rentals": rentals})
}

func (h *RentalHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())
	rentals, err := h.rentalSvc.ListAsOwner(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "rentals": rentals})
}
