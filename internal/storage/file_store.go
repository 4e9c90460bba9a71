package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/models"
)

// FileStore persists each profile's collections as JSON files under a data
// directory (items_<profile>.json, favs_<profile>.json, profile_<profile>.json).
// Writes go to a temp file first and are renamed into place so readers never
// observe a partial write.
type FileStore struct {
	mu      sync.RWMutex
	dataDir string
	log     *zap.Logger
}

func NewFileStore(dataDir string, log *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dataDir: dataDir, log: log}, nil
}

func (s *FileStore) LoadItems(ctx context.Context, profileID string) ([]models.ClothingItem, error) {
	items := []models.ClothingItem{}
	if !s.load(s.path("items", profileID), &items) || items == nil {
		return []models.ClothingItem{}, nil
	}
	return items, nil
}

func (s *FileStore) SaveItems(ctx context.Context, profileID string, items []models.ClothingItem) error {
	if items == nil {
		items = []models.ClothingItem{}
	}
	return s.save(s.path("items", profileID), items)
}

func (s *FileStore) LoadFavorites(ctx context.Context, profileID string) ([]models.Favorite, error) {
	favs := []models.Favorite{}
	if !s.load(s.path("favs", profileID), &favs) || favs == nil {
		return []models.Favorite{}, nil
	}
	return favs, nil
}

func (s *FileStore) SaveFavorites(ctx context.Context, profileID string, favs []models.Favorite) error {
	if favs == nil {
		favs = []models.Favorite{}
	}
	return s.save(s.path("favs", profileID), favs)
}

func (s *FileStore) LoadProfile(ctx context.Context, profileID string) (*models.Profile, error) {
	var prof models.Profile
	if !s.load(s.path("profile", profileID), &prof) || prof.ID == "" {
		return nil, ErrProfileNotFound
	}
	return &prof, nil
}

func (s *FileStore) SaveProfile(ctx context.Context, profile *models.Profile) error {
	return s.save(s.path("profile", profile.ID), profile)
}

func (s *FileStore) Close(ctx context.Context) error { return nil }

func (s *FileStore) path(kind, profileID string) string {
	// Profile ids are slugs, but sanitize anyway so a stored id can never
	// escape the data directory.
	safe := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' {
			return r
		}
		return '_'
	}, profileID)
	return filepath.Join(s.dataDir, kind+"_"+safe+".json")
}

// load decodes the file into out, reporting whether anything usable was
// read. Missing or corrupt files leave out untouched: stored state that
// cannot be parsed is treated as empty, never as a failure.
func (s *FileStore) load(path string, out interface{}) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(out); err != nil {
		s.log.Warn("discarding corrupt store file", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

func (s *FileStore) save(path string, data interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tempFile := path + ".tmp"
	file, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		file.Close()
		os.Remove(tempFile)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, path)
}
