package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dronefleet-service/internal/apperr"
	"dronefleet-service/internal/domain"
	"dronefleet-service/internal/logx"
)

// DeliveryHandler serves HTTP endpoints for deliveries.
type DeliveryHandler struct {
	log logx.Logger
	uc  deliveryUsecase
}

// NewDeliveryHandler wires a deliveryUsecase into HTTP handlers.
func NewDeliveryHandler(log logx.Logger, uc deliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{log: log, uc: uc}
}

// List handles GET /deliveries. An optional ?status= query narrows the
// result to one delivery status.
func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	var status *domain.DeliveryStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.DeliveryStatus(raw)
		status = &s
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	list, err := h.uc.List(ctx, status)
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusOK, deliveriesToResponse(list))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.log, w, r, http.StatusBadRequest, "unknown delivery status")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Create handles POST /deliveries. Status defaults to Scheduled when
// the body omits it.
func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDeliveryRequest
	if ok := decodeJSON(h.log, w, r, &req); !ok {
		return
	}
	if req.DroneID == 0 || req.OperatorID == 0 || req.StartTime == nil {
		writeError(h.log, w, r, http.StatusBadRequest, "droneid, operatorid and starttime are required")
		return
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	created, err := h.uc.Create(ctx, &domain.Delivery{
		DroneID:    req.DroneID,
		OperatorID: req.OperatorID,
		StartTime:  *req.StartTime,
		EndTime:    req.EndTime,
		Status:     domain.DeliveryStatus(req.DeliveryStatus),
	})
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusCreated, deliveryToResponse(*created))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.log, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.log, w, r, http.StatusConflict, "referenced drone or operator does not exist")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}

func deliveryIDFromURL(r *http.Request) (int64, error) {
	return domain.ParseDeliveryRef(chi.URLParam(r, "id"))
}

// Update handles PUT /deliveries/{id} and changes only the status.
func (h *DeliveryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := deliveryIDFromURL(r)
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "invalid delivery id")
		return
	}
	var req updateDeliveryRequest
	if ok := decodeJSON(h.log, w, r, &req); !ok {
		return
	}
	if req.Status == "" {
		writeError(h.log, w, r, http.StatusBadRequest, "status is required")
		return
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	updated, err := h.uc.UpdateStatus(ctx, id, domain.DeliveryStatus(req.Status))
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusOK, deliveryToResponse(*updated))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.log, w, r, http.StatusBadRequest, "unknown delivery status")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.log, w, r, http.StatusNotFound, "delivery not found")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /deliveries/{id}. Package links are removed in
// the same call.
func (h *DeliveryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := deliveryIDFromURL(r)
	if err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "invalid delivery id")
		return
	}

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	err = h.uc.Delete(ctx, id)
	switch {
	case err == nil:
		writeJSON(h.log, w, r, http.StatusOK, messageResponse{Message: "Delivery deleted successfully"})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.log, w, r, http.StatusNotFound, "delivery not found")
	default:
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
	}
}
