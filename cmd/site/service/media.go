package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/midwaymobile/storage-site/cmd/site/mediastore"
	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/common/logger"
)

// FileURLPrefix is where stored media bytes are served from
const FileURLPrefix = "/api/v1/media/file/"

// MediaService is the upload gateway in front of the media tag store:
// it writes file bytes into the content directory, hands fresh ids to
// the store, and maps stored ids to retrieval URLs
type MediaService struct {
	store      *mediastore.Store
	contentDir string
	log        *logger.Logger
}

// NewMediaService creates a new media service
func NewMediaService(store *mediastore.Store, contentDir string, log *logger.Logger) (*MediaService, error) {
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create content directory: %w", err)
	}

	return &MediaService{
		store:      store,
		contentDir: contentDir,
		log:        log,
	}, nil
}

// Upload stores the file bytes under a fresh id, then records the
// entry with its requested tags. The file is on disk before the store
// learns the id.
func (s *MediaService) Upload(originalName string, content io.Reader, tags []string) (models.MediaEntry, error) {
	id := uuid.New().String() + sanitizeExt(originalName)
	path := filepath.Join(s.contentDir, id)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return models.MediaEntry{}, fmt.Errorf("failed to create media file: %w", err)
	}

	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		os.Remove(path)
		return models.MediaEntry{}, fmt.Errorf("failed to write media file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return models.MediaEntry{}, fmt.Errorf("failed to close media file: %w", err)
	}

	entry, err := s.store.RecordUpload(id, originalName, tags)
	if err != nil {
		os.Remove(path)
		return models.MediaEntry{}, err
	}

	s.log.Info("media uploaded", "file_id", id, "original_name", originalName, "tags", entry.Tags)
	return s.toAPI(entry), nil
}

// List returns stored entries, optionally filtered by a single tag
func (s *MediaService) List(tagFilter string) []models.MediaEntry {
	entries := s.store.List(tagFilter)
	out := make([]models.MediaEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, s.toAPI(entry))
	}
	return out
}

// SetTags replaces an entry's tags wholesale
func (s *MediaService) SetTags(id string, tags []string) (models.MediaEntry, error) {
	entry, err := s.store.SetTags(id, tags)
	if err != nil {
		return models.MediaEntry{}, err
	}

	s.log.Info("media tags replaced", "file_id", id, "tags", entry.Tags)
	return s.toAPI(entry), nil
}

// Delete removes the entry and best-effort unlinks the file bytes.
// A dangling file (or a dangling entry, had the unlink happened first)
// is tolerated; the store keeps no referential integrity with disk.
func (s *MediaService) Delete(id string) {
	s.store.Remove(id)

	path, err := s.contentPath(id)
	if err != nil {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("failed to remove media file", "file_id", id, "error", err)
	}

	s.log.Info("media deleted", "file_id", id)
}

// ContentPath resolves a stored file id to its on-disk path for
// streaming. Rejects ids that try to escape the content directory.
func (s *MediaService) ContentPath(id string) (string, error) {
	path, err := s.contentPath(id)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("media file %s: %w", id, mediastore.ErrNotFound)
	}
	return path, nil
}

// SiteMedia builds the unauthenticated projection for the public site
func (s *MediaService) SiteMedia() models.SiteMedia {
	site := models.SiteMedia{
		Services: make(map[string]string),
	}

	if entry, ok := s.store.FindActive(mediastore.TagLogo); ok {
		site.LogoURL = FileURLPrefix + entry.ID
	}
	if entry, ok := s.store.FindActive(mediastore.TagHero); ok {
		site.HeroURL = FileURLPrefix + entry.ID
	}
	for slug, id := range s.store.ServiceMediaMap() {
		site.Services[slug] = FileURLPrefix + id
	}

	return site
}

func (s *MediaService) contentPath(id string) (string, error) {
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return "", &mediastore.ValidationError{Field: "id", Reason: "malformed file id"}
	}
	return filepath.Join(s.contentDir, id), nil
}

func (s *MediaService) toAPI(entry mediastore.Entry) models.MediaEntry {
	return models.MediaEntry{
		ID:           entry.ID,
		OriginalName: entry.OriginalName,
		Tags:         entry.Tags,
		URL:          FileURLPrefix + entry.ID,
	}
}

// sanitizeExt keeps a short, safe filename extension so served files
// get sensible content types; anything suspicious is dropped
func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
