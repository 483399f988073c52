package http

import (
	"net/http"

	"moto-rental-backend/internal/pricing"
)

type PlanHandler struct {
	catalog *pricing.Catalog
}

func NewPlanHandler(catalog *pricing.Catalog) *PlanHandler {
	return &PlanHandler{catalog: catalog}
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.All())
}
