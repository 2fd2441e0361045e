package http

import (
	"net/http"

	"clothshare-backend/internal/service"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

type createReviewRequest struct {
	RentalID int32  `json:"rental_id"`
	Rating   int32  `json:"rating"`
	Comment  string `json:"comment"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())

	var req createReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.RentalID <= 0 {
		writeBadRequest(w, "rental id is required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeBadRequest(w, "rating must be between 1 and 5")
		return
	}

	review, err := h.reviewSvc.Create(r.Context(), userID, req.RentalID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "review": review})
}
