package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dronefleet-service/internal/apperr"
	"dronefleet-service/internal/domain"
	"dronefleet-service/internal/logx"
)

// Package rows have no persisted status; the wire value is fixed per
// operation.
const (
	packageStatusPending = "Pending"
	packageStatusDeleted = "Deleted"
)

// PackageHandler serves HTTP endpoints for packages.
type PackageHandler struct {
	log logx.Logger
	uc  packageUsecase
}

// NewPackageHandler wires a packageUsecase into HTTP handlers.
func NewPackageHandler(log logx.Logger, uc packageUsecase) *PackageHandler {
	return &PackageHandler{log: log, uc: uc}
}

// List handles GET /packages.
func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	list, err := h.uc.List(ctx)
	if err != nil {
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.log, w, r, http.StatusOK, packagesToResponse(list))
}

// Create handles POST /packages. Dimensions arrive as "LxWxH cm" and
// weight as "N kg"; both are parsed before the store is touched.
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPackageRequest
	if ok := decodeJSON(h.log, w, r, &req); !ok {
		return
	}
	if req.Priority == "" || req.Dimensions == "" || req.Weight.Empty() ||
		req.SenderAddressID == 0 || req.ReceiverAddressID == 0 {
		writeError(h.log, w, r, http.StatusBadRequest, "all fields are required")
		return
	}

	dims, err := domain.ParseDimensions(req.Dimensions)
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "dimensions must be in format LxWxH")
		return
	}
	weight, err := domain.ParseWeight(req.Weight.raw)
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "malformed weight")
		return
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	created, err := h.uc.Create(ctx, &domain.Package{
		Priority:          domain.Priority(req.Priority),
		Dims:              dims,
		WeightKg:          weight,
		SenderAddressID:   req.SenderAddressID,
		ReceiverAddressID: req.ReceiverAddressID,
	})
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusCreated, packageToResponse(*created, packageStatusPending))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.log, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.log, w, r, http.StatusConflict, "referenced address does not exist")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}

// refFromURL extracts the numeric key from a display id path segment.
func refFromURL(r *http.Request) (int64, error) {
	ref, err := domain.ParsePackageRef(chi.URLParam(r, "id"))
	if err != nil {
		return 0, err
	}
	return ref.Int64(), nil
}

// Update handles PUT /packages/{id} with any subset of stored fields.
func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := refFromURL(r)
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "invalid package id")
		return
	}
	var req updatePackageRequest
	if ok := decodeJSON(h.log, w, r, &req); !ok {
		return
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	updated, err := h.uc.UpdatePartial(ctx, req.toModel(id))
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusOK, packageToResponse(*updated, packageStatusPending))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.log, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.log, w, r, http.StatusConflict, "referenced address does not exist")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.log, w, r, http.StatusNotFound, "package not found")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /packages/{id} and returns the row as it was,
// marked Deleted.
func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := refFromURL(r)
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "invalid package id")
		return
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	deleted, err := h.uc.Delete(ctx, id)
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusOK, packageToResponse(*deleted, packageStatusDeleted))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.log, w, r, http.StatusNotFound, "package not found")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}
