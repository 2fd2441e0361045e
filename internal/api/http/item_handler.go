package http

import (
	"net/http"
	"strconv"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/repository"
	"clothshare-backend/internal/service"

	"github.com/gorilla/mux"
)

type ItemHandler struct {
	itemSvc   service.ItemService
	reviewSvc service.ReviewService
}

func NewItemHandler(itemSvc service.ItemService, reviewSvc service.ReviewService) *ItemHandler {
	return &ItemHandler{itemSvc: itemSvc, reviewSvc: reviewSvc}
}

type createItemRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	Size            string   `json:"size"`
	Color           string   `json:"color"`
	Brand           string   `json:"brand"`
	Condition       string   `json:"condition"`
	DailyPrice      float64  `json:"daily_price"`
	SecurityDeposit float64  `json:"security_deposit"`
	WeeklyDiscount  int32    `json:"weekly_discount"`
	Images          []string `json:"images"`
}

type updateItemRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	Subcategory     *string  `json:"subcategory"`
	Size            *string  `json:"size"`
	Color           *string  `json:"color"`
	Brand           *string  `json:"brand"`
	Condition       *string  `json:"condition"`
	DailyPrice      *float64 `json:"daily_price"`
	SecurityDeposit *float64 `json:"security_deposit"`
	WeeklyDiscount  *int32   `json:"weekly_discount"`
	Images          []string `json:"images"`
}

func pathID(r *http.Request, name string) (int32, bool) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())

	var req createItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" || req.DailyPrice <= 0 {
		writeBadRequest(w, "title and a positive daily price are required")
		return
	}

	item := &domain.Item{
		OwnerID:         userID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Size:            req.Size,
		Color:           req.Color,
		Brand:           req.Brand,
		Condition:       req.Condition,
		DailyPrice:      req.DailyPrice,
		SecurityDeposit: req.SecurityDeposit,
		WeeklyDiscount:  req.WeeklyDiscount,
		Images:          req.Images,
	}
	if err := h.itemSvc.Create(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "item": item})
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid item id")
		return
	}

	item, reviews, err := h.itemSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "item": item, "reviews": reviews})
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid item id")
		return
	}

	var req updateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.itemSvc.Update(r.Context(), userID, id, service.ItemPatch{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Size:            req.Size,
		Color:           req.Color,
		Brand:           req.Brand,
		Condition:       req.Condition,
		DailyPrice:      req.DailyPrice,
		SecurityDeposit: req.SecurityDeposit,
		WeeklyDiscount:  req.WeeklyDiscount,
		Images:          req.Images,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "item": item})
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid item id")
		return
	}

	if err := h.itemSvc.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "item deleted"})
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.ItemFilter{
		Category: q.Get("category"),
		Size:     q.Get("size"),
		Search:   q.Get("search"),
	}
	if v := q.Get("minPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = p
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = p
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			filter.Limit = int32(n)
		}
	}

	items, err := h.itemSvc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "items": items})
}

func (h *ItemHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())
	items, err := h.itemSvc.ListMine(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "items": items})
}

func (h *ItemHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid item id")
		return
	}

	reviews, err := h.reviewSvc.ListByItem(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "reviews": reviews})
}
