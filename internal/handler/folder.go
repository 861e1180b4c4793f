package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"litmark/internal/domain"
	"litmark/internal/domain/models"
	"litmark/internal/domain/services"
	"litmark/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folderService services.FolderService
	imageService  services.ImageService
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService services.FolderService, imageService services.ImageService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		imageService:  imageService,
		logger:        logger,
	}
}

// List lists root folders, or sorts/scopes via query parameters
// GET /api/folder?sort=date|alphabet&order=asc|desc&folder_id=
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)
	query := r.URL.Query()

	var parentID *int64
	if raw := query.Get("folder_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httputil.RespondError(w, http.StatusBadRequest, "folder_id must be a positive integer")
			return
		}
		parentID = &id
	}

	var err error
	var folders interface{}
	if sort := query.Get("sort"); sort != "" {
		folders, err = h.folderService.Sort(r.Context(), claims.UserID, parentID, sort, query.Get("order"))
	} else if parentID != nil {
		folders, err = h.folderService.ListChildren(r.Context(), claims.UserID, *parentID)
	} else {
		folders, err = h.folderService.ListRoot(r.Context(), claims.UserID)
	}
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, folders)
}

// Get retrieves a folder with its immediate children
// GET /api/folder/{id}
func (h *FolderHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	contents, err := h.folderService.Get(r.Context(), id, claims.UserID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, contents)
}

// Create creates a new folder. Accepts a JSON body, or a multipart form with
// an optional image file that is uploaded and attached to the folder.
// POST /api/folder
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	var req services.CreateFolderRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := h.parseMultipartCreate(r, claims.Username, &req); err != nil {
			handleError(w, r, err)
			return
		}
	} else {
		if err := httputil.ParseJSON(w, r, &req); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	req.UserID = claims.UserID
	req.CreatedBy = claims.Username

	folder, err := h.folderService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, map[string]interface{}{"folder_Id": folder.ID})
}

func (h *FolderHandler) parseMultipartCreate(r *http.Request, username string, req *services.CreateFolderRequest) error {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return &domain.ValidationError{Message: "Invalid multipart form"}
	}

	req.Name = r.FormValue("name")
	if raw := r.FormValue("folder_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return &domain.ValidationError{Message: "folder_id must be a positive integer"}
		}
		req.ParentID = &id
	}

	file, header, err := r.FormFile(imageFileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil
		}
		return &domain.ValidationError{Message: "Invalid image file"}
	}
	defer file.Close()

	image, err := h.imageService.Upload(r.Context(), &services.UploadImageRequest{
		Type:      models.ImageTypeFolder,
		CreatedBy: username,
		Upload: &services.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		},
	})
	if err != nil {
		return err
	}
	req.ImageID = &image.ID

	return nil
}

// Update patches a folder
// PATCH /api/folder/{id}
func (h *FolderHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UpdatedBy = claims.Username

	folder, err := h.folderService.Update(r.Context(), id, claims.UserID, &req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, folder)
}

// Delete soft-deletes a folder
// DELETE /api/folder/{id}
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)

	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.folderService.Delete(r.Context(), id, claims.UserID, claims.Username); err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondMessage(w, http.StatusOK, "Folder deleted successfully")
}
