package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/service"
)

type DriverHandler struct {
	drivers service.DriverService
}

func NewDriverHandler(drivers service.DriverService) *DriverHandler {
	return &DriverHandler{drivers: drivers}
}

type registerDriverRequest struct {
	Name      string `json:"name"`
	CNPJ      string `json:"cnpj"`
	BirthDate string `json:"birth_date"`
	CNH       string `json:"cnh"`
	CNHType   string `json:"cnh_type"`
	CNHImage  string `json:"cnh_image,omitempty"`
}

type cnhImageRequest struct {
	CNHImage string `json:"cnh_image"`
}

func (h *DriverHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerDriverRequest
	if !decodeBody(w, r, &req) {
		return
	}

	driver, err := h.drivers.RegisterDriver(r.Context(), &domain.DeliveryDriver{
		Name:      req.Name,
		CNPJ:      req.CNPJ,
		BirthDate: req.BirthDate,
		CNH:       req.CNH,
		CNHType:   req.CNHType,
		CNHImage:  req.CNHImage,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, driver)
}

func (h *DriverHandler) Get(w http.ResponseWriter, r *http.Request) {
	driver, err := h.drivers.GetDriverByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}

func (h *DriverHandler) UpdateCNHImage(w http.ResponseWriter, r *http.Request) {
	var req cnhImageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CNHImage == "" {
		writeError(w, http.StatusBadRequest, "cnh_image is required")
		return
	}

	if err := h.drivers.UpdateCNHImage(r.Context(), mux.Vars(r)["id"], req.CNHImage); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
