package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"litmark/internal/auth"
	"litmark/internal/domain"
	"litmark/internal/domain/models"
	"litmark/internal/domain/services"
	"litmark/internal/middleware"
)

// stubFolderService lets each test script the service layer.
type stubFolderService struct {
	listRoot func(ctx context.Context, userID int64) ([]models.Folder, error)
	get      func(ctx context.Context, id, userID int64) (*models.FolderContents, error)
	create   func(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error)
	del      func(ctx context.Context, id, userID int64, deletedBy string) error
}

func (s *stubFolderService) ListRoot(ctx context.Context, userID int64) ([]models.Folder, error) {
	return s.listRoot(ctx, userID)
}

func (s *stubFolderService) ListChildren(ctx context.Context, userID, parentID int64) ([]models.Folder, error) {
	return nil, fmt.Errorf("unexpected ListChildren call")
}

func (s *stubFolderService) Sort(ctx context.Context, userID int64, parentID *int64, field, order string) ([]models.Folder, error) {
	return nil, fmt.Errorf("unexpected Sort call")
}

func (s *stubFolderService) Get(ctx context.Context, id, userID int64) (*models.FolderContents, error) {
	return s.get(ctx, id, userID)
}

func (s *stubFolderService) Create(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	return s.create(ctx, req)
}

func (s *stubFolderService) Update(ctx context.Context, id, userID int64, req *services.UpdateFolderRequest) (*models.Folder, error) {
	return nil, fmt.Errorf("unexpected Update call")
}

func (s *stubFolderService) Delete(ctx context.Context, id, userID int64, deletedBy string) error {
	return s.del(ctx, id, userID, deletedBy)
}

// stubImageService scripts the upload path for multipart folder creation.
type stubImageService struct {
	upload func(ctx context.Context, req *services.UploadImageRequest) (*models.Image, error)
}

func (s *stubImageService) Upload(ctx context.Context, req *services.UploadImageRequest) (*models.Image, error) {
	return s.upload(ctx, req)
}

func (s *stubImageService) List(ctx context.Context) ([]models.Image, error) {
	return nil, fmt.Errorf("unexpected List call")
}

func (s *stubImageService) GetOrCreateDefault(ctx context.Context) (*models.Image, error) {
	return nil, fmt.Errorf("unexpected GetOrCreateDefault call")
}

// newFolderServer wires the folder routes the same way the server does,
// including the auth and route-fallback middleware, and returns a bearer
// token for user 7.
func newFolderServer(t *testing.T, svc services.FolderService, images services.ImageService) (http.Handler, string) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Minute)
	token, err := tokens.Generate(&models.User{ID: 7, Username: "alice", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	h := NewFolderHandler(svc, images, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/folder", h.List)
	mux.HandleFunc("GET /api/folder/{id}", h.Get)
	mux.HandleFunc("POST /api/folder", h.Create)
	mux.HandleFunc("DELETE /api/folder/{id}", h.Delete)
	mux.HandleFunc("/", NotFound)

	chain := middleware.Auth(tokens)(mux)
	chain = middleware.KnownRoutes(mux, http.HandlerFunc(NotFound))(chain)

	return chain, "Bearer " + token
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestCreateFolder(t *testing.T) {
	svc := &stubFolderService{
		create: func(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
			if req.UserID != 7 || req.CreatedBy != "alice" {
				t.Fatalf("caller identity not applied: %+v", req)
			}
			return &models.Folder{ID: 12, Name: req.Name, UserID: req.UserID}, nil
		},
	}
	server, token := newFolderServer(t, svc, &stubImageService{})

	req := httptest.NewRequest(http.MethodPost, "/api/folder", strings.NewReader(`{"name": "Reading"}`))
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("success = false: %s", rec.Body.String())
	}
	var data struct {
		FolderID int64 `json:"folder_Id"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if data.FolderID != 12 {
		t.Fatalf("folder_Id = %d, want 12", data.FolderID)
	}
}

func TestGetFolder_NotFound(t *testing.T) {
	svc := &stubFolderService{
		get: func(ctx context.Context, id, userID int64) (*models.FolderContents, error) {
			return nil, fmt.Errorf("folder %d: %w", id, domain.ErrNotFound)
		},
	}
	server, token := newFolderServer(t, svc, &stubImageService{})

	req := httptest.NewRequest(http.MethodGet, "/api/folder/99", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Fatal("success = true on 404")
	}
	if env.Message == "" {
		t.Fatal("empty error message")
	}
}

func TestGetFolder_BadID(t *testing.T) {
	server, token := newFolderServer(t, &stubFolderService{}, &stubImageService{})

	req := httptest.NewRequest(http.MethodGet, "/api/folder/abc", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListFolders(t *testing.T) {
	svc := &stubFolderService{
		listRoot: func(ctx context.Context, userID int64) ([]models.Folder, error) {
			return []models.Folder{{ID: 1, Name: "Reading", UserID: userID}}, nil
		},
	}
	server, token := newFolderServer(t, svc, &stubImageService{})

	req := httptest.NewRequest(http.MethodGet, "/api/folder", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	var folders []models.Folder
	if err := json.Unmarshal(env.Data, &folders); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if len(folders) != 1 || folders[0].Name != "Reading" {
		t.Fatalf("unexpected folders: %+v", folders)
	}
}

func TestDeleteFolder(t *testing.T) {
	svc := &stubFolderService{
		del: func(ctx context.Context, id, userID int64, deletedBy string) error {
			if id != 3 || userID != 7 || deletedBy != "alice" {
				t.Fatalf("unexpected delete args: id=%d user=%d by=%q", id, userID, deletedBy)
			}
			return nil
		},
	}
	server, token := newFolderServer(t, svc, &stubImageService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/folder/3", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if !env.Success || env.Message != "Folder deleted successfully" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}

func TestCreateFolder_Multipart(t *testing.T) {
	uploaded := 0
	images := &stubImageService{
		upload: func(ctx context.Context, req *services.UploadImageRequest) (*models.Image, error) {
			if req.Type != models.ImageTypeFolder {
				t.Fatalf("image type = %q, want folder", req.Type)
			}
			if req.Upload == nil || req.Upload.Filename != "cover.png" {
				t.Fatalf("unexpected upload: %+v", req.Upload)
			}
			uploaded++
			return &models.Image{ID: 31, URL: "https://store.test/cover.png", Type: req.Type}, nil
		},
	}
	svc := &stubFolderService{
		create: func(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
			if req.Name != "Work" {
				t.Fatalf("name = %q, want Work", req.Name)
			}
			if req.ImageID == nil || *req.ImageID != 31 {
				t.Fatalf("uploaded image not attached: %v", req.ImageID)
			}
			return &models.Folder{ID: 12, Name: req.Name, ImageID: req.ImageID, UserID: req.UserID}, nil
		},
	}
	server, token := newFolderServer(t, svc, images)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("name", "Work"); err != nil {
		t.Fatalf("WriteField error: %v", err)
	}
	part, err := form.CreateFormFile("litmark_image", "cover.png")
	if err != nil {
		t.Fatalf("CreateFormFile error: %v", err)
	}
	if _, err := part.Write([]byte("png-bytes")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/folder", &buf)
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if uploaded != 1 {
		t.Fatalf("upload called %d times, want 1", uploaded)
	}
	env := decodeEnvelope(t, rec)
	var data struct {
		FolderID int64 `json:"folder_Id"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if data.FolderID != 12 {
		t.Fatalf("folder_Id = %d, want 12", data.FolderID)
	}
}

func TestCreateFolder_MultipartWithoutFile(t *testing.T) {
	svc := &stubFolderService{
		create: func(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
			if req.ImageID != nil {
				t.Fatalf("unexpected image id: %v", req.ImageID)
			}
			return &models.Folder{ID: 13, Name: req.Name, UserID: req.UserID}, nil
		},
	}
	server, token := newFolderServer(t, svc, &stubImageService{})

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("name", "Reading"); err != nil {
		t.Fatalf("WriteField error: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/folder", &buf)
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestUnknownRoute_WithoutToken(t *testing.T) {
	server, _ := newFolderServer(t, &stubFolderService{}, &stubImageService{})

	req := httptest.NewRequest(http.MethodGet, "/api/nothing", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	// Unmatched paths answer the fixed 404 even without credentials
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Message != "Resource not found" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	server, token := newFolderServer(t, &stubFolderService{}, &stubImageService{})

	req := httptest.NewRequest(http.MethodGet, "/api/nothing", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Message != "Resource not found" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}
