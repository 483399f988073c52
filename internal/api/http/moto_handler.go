package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/service"
)

type MotoHandler struct {
	motos service.MotoService
}

func NewMotoHandler(motos service.MotoService) *MotoHandler {
	return &MotoHandler{motos: motos}
}

type registerMotoRequest struct {
	Identifier   string `json:"identifier"`
	Year         int32  `json:"year"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
}

type changePlateRequest struct {
	LicensePlate string `json:"license_plate"`
}

func (h *MotoHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerMotoRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Identifier == "" || req.Model == "" || req.LicensePlate == "" {
		writeError(w, http.StatusBadRequest, "identifier, model and license_plate are required")
		return
	}

	moto, err := h.motos.RegisterMoto(r.Context(), &domain.Moto{
		Identifier:   req.Identifier,
		Year:         req.Year,
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, moto)
}

func (h *MotoHandler) List(w http.ResponseWriter, r *http.Request) {
	motos, err := h.motos.ListMotos(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if motos == nil {
		motos = []domain.Moto{}
	}
	writeJSON(w, http.StatusOK, motos)
}

func (h *MotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	moto, err := h.motos.GetMotoByIdentifier(r.Context(), mux.Vars(r)["identifier"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, moto)
}

func (h *MotoHandler) ChangePlate(w http.ResponseWriter, r *http.Request) {
	var req changePlateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.LicensePlate == "" {
		writeError(w, http.StatusBadRequest, "license_plate is required")
		return
	}

	if err := h.motos.ChangeLicensePlate(r.Context(), mux.Vars(r)["identifier"], req.LicensePlate); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *MotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.motos.DeleteMoto(r.Context(), mux.Vars(r)["identifier"]); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
