package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/models"
)

var (
	ErrImageNotFound = errors.New("image not found")
	ErrNotImageOwner = errors.New("not the image owner")
)

// ImageStore is where image bytes actually land: local disk or S3. The core
// never looks inside an image; it only passes the resulting URL around.
type ImageStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (url string, err error)
	Remove(ctx context.Context, key string) error
}

// ImageService assigns ids to uploads and remembers which profile owns
// which image so deletes can be checked.
type ImageService struct {
	mu     sync.RWMutex
	store  ImageStore
	images map[string]*imageRecord // imageID -> record
	log    *zap.Logger
}

type imageRecord struct {
	ID        string
	Key       string
	ProfileID string
}

func NewImageService(store ImageStore, log *zap.Logger) *ImageService {
	return &ImageService{
		store:  store,
		images: make(map[string]*imageRecord),
		log:    log,
	}
}

func (s *ImageService) Upload(ctx context.Context, profileID, filename string, file io.Reader, size int64, contentType string) (*models.ImageUploadResponse, error) {
	imageID := uuid.New().String()

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := imageID + ext

	url, err := s.store.Put(ctx, key, file, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	s.mu.Lock()
	s.images[imageID] = &imageRecord{ID: imageID, Key: key, ProfileID: profileID}
	s.mu.Unlock()

	s.log.Info("image uploaded",
		zap.String("profile_id", profileID),
		zap.String("image_id", imageID))

	return &models.ImageUploadResponse{
		ID:       imageID,
		URL:      url,
		Filename: key,
	}, nil
}

func (s *ImageService) Delete(ctx context.Context, profileID, imageID string) error {
	s.mu.Lock()
	record, exists := s.images[imageID]
	if !exists {
		s.mu.Unlock()
		return ErrImageNotFound
	}
	if record.ProfileID != profileID {
		s.mu.Unlock()
		return ErrNotImageOwner
	}
	delete(s.images, imageID)
	s.mu.Unlock()

	if err := s.store.Remove(ctx, record.Key); err != nil {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// LocalImageStore keeps uploads on disk under uploadDir, served back at
// /uploads/<key>.
type LocalImageStore struct {
	uploadDir string
}

func NewLocalImageStore(uploadDir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, err
	}
	return &LocalImageStore{uploadDir: uploadDir}, nil
}

func (s *LocalImageStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	filePath := filepath.Join(s.uploadDir, key)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("save file: %w", err)
	}

	return "/uploads/" + key, nil
}

func (s *LocalImageStore) Remove(ctx context.Context, key string) error {
	if err := os.Remove(filepath.Join(s.uploadDir, key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
