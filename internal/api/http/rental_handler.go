package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"moto-rental-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type createRentalRequest struct {
	DriverID string `json:"driver_id"`
	MotoID   string `json:"moto_id"`
	PlanDays int32  `json:"plan_days"`
}

type returnDateRequest struct {
	ReturnDate time.Time `json:"return_date"`
}

type rentalValueResponse struct {
	TotalCostCents int64 `json:"total_cost_cents"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.DriverID == "" || req.MotoID == "" {
		writeError(w, http.StatusBadRequest, "driver_id and moto_id are required")
		return
	}

	rental, err := h.rentals.CreateRental(r.Context(), req.DriverID, req.MotoID, req.PlanDays)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentals.GetRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// Simulate answers "what would this cost if returned on date X" without
// touching the stored record.
func (h *RentalHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req returnDateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	value, err := h.rentals.SimulateReturnValue(r.Context(), mux.Vars(r)["id"], req.ReturnDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentalValueResponse{TotalCostCents: value})
}

func (h *RentalHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req returnDateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rental, err := h.rentals.SettleRental(r.Context(), mux.Vars(r)["id"], req.ReturnDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) FinalValue(w http.ResponseWriter, r *http.Request) {
	value, err := h.rentals.GetFinalValue(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentalValueResponse{TotalCostCents: value})
}
