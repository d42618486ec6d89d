package handlers

import (
	"errors"
	"net/http"

	"dronefleet-service/internal/apperr"
	"dronefleet-service/internal/domain"
	"dronefleet-service/internal/logx"
)

// OperatorHandler serves HTTP endpoints for certified operators.
type OperatorHandler struct {
	log logx.Logger
	uc  operatorUsecase
}

// NewOperatorHandler wires an operatorUsecase into HTTP handlers.
func NewOperatorHandler(log logx.Logger, uc operatorUsecase) *OperatorHandler {
	return &OperatorHandler{log: log, uc: uc}
}

// List handles GET /operators.
func (h *OperatorHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	list, err := h.uc.List(ctx)
	if err != nil {
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.log, w, r, http.StatusOK, operatorsToResponse(list))
}

// Create handles POST /operators.
func (h *OperatorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOperatorRequest
	if ok := decodeJSON(h.log, w, r, &req); !ok {
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.CertificationID == "" || req.ContactNumber == "" {
		writeError(h.log, w, r, http.StatusBadRequest, "all fields are required")
		return
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	created, err := h.uc.Create(ctx, &domain.Operator{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		CertificationID: req.CertificationID,
		ContactNumber:   req.ContactNumber,
	})
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusCreated, operatorToResponse(*created))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.log, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PUT /operators/{id} with any subset of the four fields.
func (h *OperatorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateOperatorRequest
	if ok := decodeJSON(h.log, w, r, &req); !ok {
		return
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	updated, err := h.uc.UpdatePartial(ctx, req.toModel(id))
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusOK, operatorToResponse(*updated))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.log, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.log, w, r, http.StatusNotFound, "operator not found or no fields provided")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /operators/{id} and returns the deleted row.
// Deliveries referencing the operator keep their dangling id; that is
// the documented contract, not a bug.
func (h *OperatorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	deleted, err := h.uc.Delete(ctx, id)
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusOK, operatorToResponse(*deleted))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.log, w, r, http.StatusNotFound, "operator not found")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}
