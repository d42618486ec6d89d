package handlers

import (
	"net/http"

	"dronefleet-service/internal/logx"
)

// AddressHandler serves the read-only address listing.
type AddressHandler struct {
	log logx.Logger
	uc  addressUsecase
}

func NewAddressHandler(log logx.Logger, uc addressUsecase) *AddressHandler {
	return &AddressHandler{log: log, uc: uc}
}

// List handles GET /addresses.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	list, err := h.uc.List(ctx)
	if err != nil {
		writeError(h.log, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.log, w, r, http.StatusOK, addressesToResponse(list))
}
