package handler

import (
	"log/slog"
	"net/http"

	"litmark/internal/domain/services"
	"litmark/internal/httputil"
)

// ChipHandler handles chip (bookmark) HTTP requests
type ChipHandler struct {
	chipService services.ChipService
	logger      *slog.Logger
}

// NewChipHandler creates a new chip handler
func NewChipHandler(chipService services.ChipService, logger *slog.Logger) *ChipHandler {
	return &ChipHandler{
		chipService: chipService,
		logger:      logger,
	}
}

// List lists the caller's chips
// GET /api/chip
func (h *ChipHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	chips, err := h.chipService.List(r.Context(), claims.UserID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, chips)
}

// Get retrieves a single chip
// GET /api/chip/{id}
func (h *ChipHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	chip, err := h.chipService.Get(r.Context(), id, claims.UserID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, chip)
}

// Create creates a new chip
// POST /api/chip
func (h *ChipHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	var req services.CreateChipRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = claims.UserID
	req.CreatedBy = claims.Username

	chip, err := h.chipService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, map[string]interface{}{"chip_Id": chip.ID})
}

// Update patches a chip
// PATCH /api/chip/{id}
func (h *ChipHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateChipRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UpdatedBy = claims.Username

	chip, err := h.chipService.Update(r.Context(), id, claims.UserID, &req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, chip)
}

// Delete soft-deletes a chip
// DELETE /api/chip/{id}
func (h *ChipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.chipService.Delete(r.Context(), id, claims.UserID, claims.Username); err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondMessage(w, http.StatusOK, "Chip deleted successfully")
}
