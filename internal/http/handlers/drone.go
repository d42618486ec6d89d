package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"dronefleet-service/internal/apperr"
	"dronefleet-service/internal/domain"
	"dronefleet-service/internal/logx"
)

// DroneHandler serves HTTP endpoints for the drone fleet.
type DroneHandler struct {
	log logx.Logger
	uc  droneUsecase
}

// NewDroneHandler wires a droneUsecase into HTTP handlers.
func NewDroneHandler(log logx.Logger, uc droneUsecase) *DroneHandler {
	return &DroneHandler{log: log, uc: uc}
}

// List handles GET /drones.
func (h *DroneHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	list, err := h.uc.List(ctx)
	if err != nil {
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.log, w, r, http.StatusOK, dronesToResponse(list))
}

// Create handles POST /drones.
func (h *DroneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDroneRequest
	if ok := decodeJSON(h.log, w, r, &req); !ok {
		return
	}
	if req.Model == "" || req.MaxLoadKg == nil || req.BatteryCapacity == nil ||
		req.Status == "" || req.Battery == nil {
		writeError(h.log, w, r, http.StatusBadRequest, "all fields are required")
		return
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	created, err := h.uc.Create(ctx, &domain.Drone{
		Model:           req.Model,
		MaxLoadKg:       *req.MaxLoadKg,
		BatteryCapacity: *req.BatteryCapacity,
		Status:          domain.DroneStatus(req.Status),
		Battery:         *req.Battery,
	})
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusCreated, droneToResponse(*created))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.log, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PUT /drones/{id}: status and battery only.
func (h *DroneHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateDroneRequest
	if ok := decodeJSON(h.log, w, r, &req); !ok {
		return
	}
	if req.Status == "" || req.Battery == nil {
		writeError(h.log, w, r, http.StatusBadRequest, "status and battery are required")
		return
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	updated, err := h.uc.UpdateStatusBattery(ctx, id, domain.DroneStatus(req.Status), *req.Battery)
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusOK, droneToResponse(*updated))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.log, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.log, w, r, http.StatusNotFound, "drone not found")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /drones/{id}.
func (h *DroneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	err = h.uc.Delete(ctx, id)
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Drone %d deleted successfully", id),
		})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.log, w, r, http.StatusNotFound, "drone not found")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}
