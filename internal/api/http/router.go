package http

import (
	"net/http"

	"clothshare-backend/internal/security"
	"clothshare-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all API routes. Routes under the protected subrouter
// require a valid access token.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	itemSvc service.ItemService,
	rentalSvc service.RentalService,
	reviewSvc service.ReviewService,
	paymentSvc service.PaymentService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	itemHandler := NewItemHandler(itemSvc, reviewSvc)
	rentalHandler := NewRentalHandler(rentalSvc)
	reviewHandler := NewReviewHandler(reviewSvc)
	paymentHandler := NewPaymentHandler(paymentSvc)

	r := mux.NewRouter()
	r.Use(CORSMiddleware, LoggingMiddleware)

	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}).Methods(http.MethodGet, http.MethodOptions)

	// Public routes.
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/auth/refresh", authHandler.Refresh).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/items", itemHandler.List).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/items/{id:[0-9]+}", itemHandler.Get).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/items/{id:[0-9]+}/reviews", itemHandler.ListReviews).Methods(http.MethodGet, http.MethodOptions)

	// Protected routes.
	p := r.PathPrefix("/api").Subrouter()
	p.Use(AuthMiddleware(tokens))

	p.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet, http.MethodOptions)
	p.HandleFunc("/auth/profile", authHandler.UpdateProfile).Methods(http.MethodPut, http.MethodOptions)

	p.HandleFunc("/items", itemHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	p.HandleFunc("/items/user/my-items", itemHandler.ListMine).Methods(http.MethodGet, http.MethodOptions)
	p.HandleFunc("/items/{id:[0-9]+}", itemHandler.Update).Methods(http.MethodPut, http.MethodOptions)
	p.HandleFunc("/items/{id:[0-9]+}", itemHandler.Delete).Methods(http.MethodDelete, http.MethodOptions)

	p.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	p.HandleFunc("/rentals/my-rentals", rentalHandler.ListMine).Methods(http.MethodGet, http.MethodOptions)
	p.HandleFunc("/rentals/requests", rentalHandler.ListRequests).Methods(http.MethodGet, http.MethodOptions)
	p.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet, http.MethodOptions)
	p.HandleFunc("/rentals/{id:[0-9]+}/accept", rentalHandler.Accept).Methods(http.MethodPut, http.MethodOptions)
	p.HandleFunc("/rentals/{id:[0-9]+}/reject", rentalHandler.Reject).Methods(http.MethodPut, http.MethodOptions)
	p.HandleFunc("/rentals/{id:[0-9]+}/complete", rentalHandler.Complete).Methods(http.MethodPut, http.MethodOptions)

	p.HandleFunc("/reviews", reviewHandler.Create).Methods(http.MethodPost, http.MethodOptions)

	p.HandleFunc("/payments/order", paymentHandler.CreateOrder).Methods(http.MethodPost, http.MethodOptions)

	return r
}
