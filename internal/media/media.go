// Package media stores uploaded attachments on the local filesystem.
// Files are written under a subdirectory per attachment kind with
// uuid-based names; the relative path is what gets persisted.
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Subdirectories per attachment kind.
const (
	DirUserPhotos  = "user_photos"
	DirMaterials   = "materials"
	DirSignedVotes = "signed_votes"
)

// Store writes attachment files under Root and builds public URLs from
// BaseURL.
type Store struct {
	Root    string
	BaseURL string
}

// NewStore creates a Store rooted at dir. The directory is created if it
// does not exist.
func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media dir: %w", err)
	}
	return &Store{Root: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

// SaveBase64 decodes data and writes it to subdir, keeping the extension of
// the client-supplied name. Returns the relative path to persist.
func (s *Store) SaveBase64(subdir, name, data string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("invalid base64 payload: %w", err)
	}
	return s.Save(subdir, name, raw)
}

// Save writes raw bytes to subdir under a uuid name and returns the
// relative path.
func (s *Store) Save(subdir, name string, raw []byte) (string, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		ext = ".bin"
	}

	if err := os.MkdirAll(filepath.Join(s.Root, subdir), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media subdir: %w", err)
	}

	rel := path.Join(subdir, uuid.NewString()+ext)
	if err := os.WriteFile(filepath.Join(s.Root, filepath.FromSlash(rel)), raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	return rel, nil
}

// URL returns the absolute URL for a stored relative path.
func (s *Store) URL(rel string) string {
	return s.BaseURL + "/" + rel
}
