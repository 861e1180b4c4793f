package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"litmark/internal/domain/services"
	"litmark/internal/httputil"
)

// maxUploadSize bounds multipart request bodies (8 MiB).
const maxUploadSize = 8 << 20

// imageFileField is the multipart field name carrying an uploaded image.
const imageFileField = "litmark_image"

// UserHandler handles user HTTP requests
type UserHandler struct {
	userService services.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Create creates a user from a multipart form with an optional profile image
// POST /api/user
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	req := &services.CreateUserRequest{
		Username:  r.FormValue("username"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
		Role:      r.FormValue("role"),
		CreatedBy: claims.Username,
	}

	file, header, err := r.FormFile(imageFileField)
	if err == nil {
		defer file.Close()
		req.Image = &services.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid image file")
		return
	}

	user, err := h.userService.Create(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusCreated, user)
}

// Get retrieves a user
// GET /api/user/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, user)
}

// Update patches a user
// PATCH /api/user/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateUserRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UpdatedBy = claims.Username

	user, err := h.userService.Update(r.Context(), id, &req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, user)
}

// Delete soft-deletes a user
// DELETE /api/user/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.Delete(r.Context(), id, claims.Username); err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondMessage(w, http.StatusOK, "User deleted successfully")
}
