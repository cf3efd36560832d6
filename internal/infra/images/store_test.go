package images

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) service.ImageStore {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.UploadsDir = t.TempDir()

	store, err := NewFSStore(cfg)
	require.NoError(t, err)

	return store
}

func TestFSStore_Save(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.UploadsDir = t.TempDir()

	store, err := NewFSStore(cfg)
	require.NoError(t, err)

	content := "not-really-a-jpeg"
	img, err := store.Save("mug.jpg", int64(len(content)), strings.NewReader(content), service.PresetMedium)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(img.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(img.URL, ".jpg"))
	assert.Equal(t, int64(len(content)), img.Size)
	assert.Equal(t, 85, img.Options.Quality)

	// The file content is stored as uploaded.
	name := strings.TrimPrefix(img.URL, "/uploads/")
	data, err := os.ReadFile(filepath.Join(cfg.Storage.UploadsDir, name))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestFSStore_Save_UniqueNames(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Save("photo.png", 4, strings.NewReader("aaaa"), service.PresetLow)
	require.NoError(t, err)
	second, err := store.Save("photo.png", 4, strings.NewReader("bbbb"), service.PresetLow)
	require.NoError(t, err)

	assert.NotEqual(t, first.URL, second.URL)
}

func TestFSStore_Save_RejectsUnsupportedType(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("archive.zip", 4, strings.NewReader("zzzz"), service.PresetAuto)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image type")
}

func TestResolveOptions(t *testing.T) {
	tests := []struct {
		name    string
		preset  service.CompressionPreset
		size    int64
		quality int
		maxDim  int
	}{
		{"high preset", service.PresetHigh, 0, 70, 800},
		{"medium preset", service.PresetMedium, 0, 85, 1000},
		{"low preset", service.PresetLow, 0, 95, 1200},
		{"auto large", service.PresetAuto, 4 * megabyte, 75, 800},
		{"auto medium", service.PresetAuto, 2 * megabyte, 85, 1000},
		{"auto small", service.PresetAuto, 200 * 1024, 90, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := ResolveOptions(tt.preset, tt.size)
			assert.Equal(t, tt.quality, opts.Quality)
			assert.Equal(t, tt.maxDim, opts.MaxWidth)
			assert.Equal(t, tt.maxDim, opts.MaxHeight)
		})
	}
}
