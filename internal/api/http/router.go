package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"moto-rental-backend/internal/security"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Plans         *PlanHandler
	Motos         *MotoHandler
	Drivers       *DriverHandler
	Rentals       *RentalHandler
	Notifications *NotificationHandler
}

// NewRouter builds the REST surface. Mutating fleet routes go through
// the auth middleware; with a nil token manager everything is open.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RecoveryMiddleware, LoggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/plans", h.Plans.List).Methods(http.MethodGet)

	auth := AuthMiddleware(tokens)

	motos := r.PathPrefix("/motos").Subrouter()
	motos.HandleFunc("", h.Motos.List).Methods(http.MethodGet)
	motos.HandleFunc("/{identifier}", h.Motos.Get).Methods(http.MethodGet)
	protected := motos.NewRoute().Subrouter()
	protected.Use(auth)
	protected.HandleFunc("", h.Motos.Register).Methods(http.MethodPost)
	protected.HandleFunc("/{identifier}/license-plate", h.Motos.ChangePlate).Methods(http.MethodPut)
	protected.HandleFunc("/{identifier}", h.Motos.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/drivers", h.Drivers.Register).Methods(http.MethodPost)
	r.HandleFunc("/drivers/{id}", h.Drivers.Get).Methods(http.MethodGet)
	r.HandleFunc("/drivers/{id}/cnh-image", h.Drivers.UpdateCNHImage).Methods(http.MethodPut)

	r.HandleFunc("/rentals", h.Rentals.Create).Methods(http.MethodPost)
	r.HandleFunc("/rentals/{id}", h.Rentals.Get).Methods(http.MethodGet)
	r.HandleFunc("/rentals/{id}/simulation", h.Rentals.Simulate).Methods(http.MethodPost)
	r.HandleFunc("/rentals/{id}/return", h.Rentals.Settle).Methods(http.MethodPut)
	r.HandleFunc("/rentals/{id}/value", h.Rentals.FinalValue).Methods(http.MethodGet)

	r.HandleFunc("/notifications", h.Notifications.List).Methods(http.MethodGet)

	return r
}
