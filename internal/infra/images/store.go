// Package images stores uploaded product images on the local filesystem.
package images

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// one megabyte in bytes, used for size-based preset resolution
const megabyte = 1 << 20

var allowedExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

type fsStore struct {
	dir     string
	baseURL string
}

// NewFSStore creates a filesystem-backed image store rooted at the
// configured uploads directory. The directory is created if missing.
func NewFSStore(cfg *config.Config) (service.ImageStore, error) {
	dir := cfg.Storage.UploadsDir
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create uploads directory")
	}

	return &fsStore{dir: dir, baseURL: "/uploads"}, nil
}

// Save writes the upload under a generated unique name and returns its
// public reference together with the compression parameters selected
// for it. The file content is stored as uploaded.
func (s *fsStore) Save(filename string, size int64, r io.Reader, preset service.CompressionPreset) (*service.StoredImage, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, errors.Errorf("unsupported image type %q", ext)
	}

	opts := ResolveOptions(preset, size)

	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create image file")
	}

	written, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)

		return nil, errors.Wrap(err, "write image file")
	}

	return &service.StoredImage{
		URL:     s.baseURL + "/" + name,
		Size:    written,
		Options: opts,
	}, nil
}

// ResolveOptions maps a preset to concrete compression parameters.
// The auto preset picks by file size so large uploads get stronger
// compression targets.
func ResolveOptions(preset service.CompressionPreset, size int64) service.CompressionOptions {
	switch preset {
	case service.PresetHigh:
		return service.CompressionOptions{Quality: 70, MaxWidth: 800, MaxHeight: 800}
	case service.PresetMedium:
		return service.CompressionOptions{Quality: 85, MaxWidth: 1000, MaxHeight: 1000}
	case service.PresetLow:
		return service.CompressionOptions{Quality: 95, MaxWidth: 1200, MaxHeight: 1200}
	default:
		switch {
		case size > 3*megabyte:
			return service.CompressionOptions{Quality: 75, MaxWidth: 800, MaxHeight: 800}
		case size > megabyte:
			return service.CompressionOptions{Quality: 85, MaxWidth: 1000, MaxHeight: 1000}
		default:
			return service.CompressionOptions{Quality: 90, MaxWidth: 1200, MaxHeight: 1200}
		}
	}
}
