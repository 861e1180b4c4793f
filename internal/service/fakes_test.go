package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"litmark/internal/domain"
	"litmark/internal/domain/models"
)

// In-memory repository fakes shared by the service tests.

type fakeFolderRepo struct {
	nextID  int64
	folders map[int64]*models.Folder
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: map[int64]*models.Folder{}}
}

func (r *fakeFolderRepo) Create(ctx context.Context, folder *models.Folder) error {
	r.nextID++
	folder.ID = r.nextID
	folder.CreatedAt = time.Now()
	folder.UpdatedAt = folder.CreatedAt
	copied := *folder
	r.folders[folder.ID] = &copied
	return nil
}

func (r *fakeFolderRepo) GetByID(ctx context.Context, id, userID int64) (*models.Folder, error) {
	folder, ok := r.folders[id]
	if !ok || folder.IsDeleted || folder.UserID != userID {
		return nil, fmt.Errorf("folder %d: %w", id, domain.ErrNotFound)
	}
	copied := *folder
	return &copied, nil
}

func (r *fakeFolderRepo) ListByParent(ctx context.Context, userID int64, parentID *int64, orderBy string, desc bool) ([]models.Folder, error) {
	result := []models.Folder{}
	for _, folder := range r.folders {
		if folder.IsDeleted || folder.UserID != userID {
			continue
		}
		switch {
		case parentID == nil && folder.ParentID != nil:
			continue
		case parentID != nil && (folder.ParentID == nil || *folder.ParentID != *parentID):
			continue
		}
		result = append(result, *folder)
	}
	sort.Slice(result, func(i, j int) bool {
		var less bool
		if orderBy == "name" {
			less = result[i].Name < result[j].Name
		} else {
			less = result[i].ID < result[j].ID
		}
		if desc {
			return !less
		}
		return less
	})
	return result, nil
}

func (r *fakeFolderRepo) Update(ctx context.Context, folder *models.Folder) error {
	current, ok := r.folders[folder.ID]
	if !ok || current.IsDeleted {
		return fmt.Errorf("folder %d: %w", folder.ID, domain.ErrNotFound)
	}
	copied := *folder
	copied.UpdatedAt = time.Now()
	r.folders[folder.ID] = &copied
	return nil
}

func (r *fakeFolderRepo) SoftDelete(ctx context.Context, id, userID int64, deletedBy string) error {
	folder, ok := r.folders[id]
	if !ok || folder.IsDeleted || folder.UserID != userID {
		return fmt.Errorf("folder %d: %w", id, domain.ErrNotFound)
	}
	folder.IsDeleted = true
	folder.UpdatedBy = deletedBy
	return nil
}

type fakeChipRepo struct {
	nextID int64
	chips  map[int64]*models.Chip
}

func newFakeChipRepo() *fakeChipRepo {
	return &fakeChipRepo{chips: map[int64]*models.Chip{}}
}

func (r *fakeChipRepo) Create(ctx context.Context, chip *models.Chip) error {
	r.nextID++
	chip.ID = r.nextID
	chip.CreatedAt = time.Now()
	chip.UpdatedAt = chip.CreatedAt
	copied := *chip
	r.chips[chip.ID] = &copied
	return nil
}

func (r *fakeChipRepo) GetByID(ctx context.Context, id, userID int64) (*models.Chip, error) {
	chip, ok := r.chips[id]
	if !ok || chip.IsDeleted || chip.UserID != userID {
		return nil, fmt.Errorf("chip %d: %w", id, domain.ErrNotFound)
	}
	copied := *chip
	return &copied, nil
}

func (r *fakeChipRepo) ListByUser(ctx context.Context, userID int64) ([]models.Chip, error) {
	result := []models.Chip{}
	for _, chip := range r.chips {
		if !chip.IsDeleted && chip.UserID == userID {
			result = append(result, *chip)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeChipRepo) ListByFolder(ctx context.Context, userID, folderID int64) ([]models.Chip, error) {
	result := []models.Chip{}
	for _, chip := range r.chips {
		if !chip.IsDeleted && chip.UserID == userID && chip.FolderID == folderID {
			result = append(result, *chip)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeChipRepo) Update(ctx context.Context, chip *models.Chip) error {
	current, ok := r.chips[chip.ID]
	if !ok || current.IsDeleted {
		return fmt.Errorf("chip %d: %w", chip.ID, domain.ErrNotFound)
	}
	copied := *chip
	r.chips[chip.ID] = &copied
	return nil
}

func (r *fakeChipRepo) SoftDelete(ctx context.Context, id, userID int64, deletedBy string) error {
	chip, ok := r.chips[id]
	if !ok || chip.IsDeleted || chip.UserID != userID {
		return fmt.Errorf("chip %d: %w", id, domain.ErrNotFound)
	}
	chip.IsDeleted = true
	chip.UpdatedBy = deletedBy
	return nil
}

type fakeImageRepo struct {
	nextID int64
	images map[int64]*models.Image
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: map[int64]*models.Image{}}
}

func (r *fakeImageRepo) Create(ctx context.Context, image *models.Image) error {
	r.nextID++
	image.ID = r.nextID
	image.CreatedAt = time.Now()
	image.UpdatedAt = image.CreatedAt
	copied := *image
	r.images[image.ID] = &copied
	return nil
}

func (r *fakeImageRepo) GetByID(ctx context.Context, id int64) (*models.Image, error) {
	image, ok := r.images[id]
	if !ok || image.IsDeleted {
		return nil, fmt.Errorf("image %d: %w", id, domain.ErrNotFound)
	}
	copied := *image
	return &copied, nil
}

func (r *fakeImageRepo) GetByURL(ctx context.Context, url string) (*models.Image, error) {
	var found *models.Image
	for _, image := range r.images {
		if image.IsDeleted || image.URL != url {
			continue
		}
		if found == nil || image.ID < found.ID {
			found = image
		}
	}
	if found == nil {
		return nil, fmt.Errorf("image %q: %w", url, domain.ErrNotFound)
	}
	copied := *found
	return &copied, nil
}

func (r *fakeImageRepo) List(ctx context.Context) ([]models.Image, error) {
	result := []models.Image{}
	for _, image := range r.images {
		if !image.IsDeleted {
			result = append(result, *image)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email && !existing.IsDeleted {
			return fmt.Errorf("email %q: %w", user.Email, domain.ErrConflict)
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok || user.IsDeleted {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	copied := *user
	copied.Password = ""
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email && !user.IsDeleted {
			copied := *user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	current, ok := r.users[user.ID]
	if !ok || current.IsDeleted {
		return fmt.Errorf("user %d: %w", user.ID, domain.ErrNotFound)
	}
	// Preserve the stored hash; Update never touches credentials
	copied := *user
	copied.Password = current.Password
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) SoftDelete(ctx context.Context, id int64, deletedBy string) error {
	user, ok := r.users[id]
	if !ok || user.IsDeleted {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	user.IsDeleted = true
	user.UpdatedBy = deletedBy
	return nil
}

type fakeTokenRepo struct {
	nextID int64
	tokens map[string]*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*models.RefreshToken{}}
}

func (r *fakeTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	r.nextID++
	token.ID = r.nextID
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *fakeTokenRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	stored, ok := r.tokens[token]
	if !ok {
		return nil, fmt.Errorf("refresh token: %w", domain.ErrNotFound)
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeTokenRepo) Rotate(ctx context.Context, oldToken string, next *models.RefreshToken) error {
	if _, ok := r.tokens[oldToken]; !ok {
		return fmt.Errorf("refresh token: %w", domain.ErrNotFound)
	}
	delete(r.tokens, oldToken)
	return r.Create(ctx, next)
}

func (r *fakeTokenRepo) DeleteByUser(ctx context.Context, userID int64) error {
	for token, stored := range r.tokens {
		if stored.UserID == userID {
			delete(r.tokens, token)
		}
	}
	return nil
}

// fakeStore is an ObjectStore that records uploads without any network.
type fakeStore struct {
	uploads []string
}

func (s *fakeStore) Put(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	s.uploads = append(s.uploads, filename)
	return "https://store.test/" + filename, nil
}
