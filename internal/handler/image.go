package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"litmark/internal/domain/services"
	"litmark/internal/httputil"
)

// ImageHandler handles image HTTP requests
type ImageHandler struct {
	imageService services.ImageService
	logger       *slog.Logger
}

// NewImageHandler creates a new image handler
func NewImageHandler(imageService services.ImageService, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		logger:       logger,
	}
}

// List lists all non-deleted images
// GET /api/image
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.imageService.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, images)
}

// Upload stores a new image from a multipart form
// POST /api/image
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile(imageFileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			httputil.RespondError(w, http.StatusBadRequest, "Image file is required")
			return
		}
		httputil.RespondError(w, http.StatusBadRequest, "Invalid image file")
		return
	}
	defer file.Close()

	image, err := h.imageService.Upload(r.Context(), &services.UploadImageRequest{
		Type:      r.FormValue("type"),
		Name:      r.FormValue("name"),
		CreatedBy: claims.Username,
		Upload: &services.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		},
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusCreated, image)
}
