package service

import "io"

// CompressionPreset names an upload quality preset. The preset selects the
// target quality and dimensions recorded with the stored file; actual
// recompression is delegated outside this system and the file is stored
// as uploaded.
type CompressionPreset string

const (
	PresetHigh   CompressionPreset = "high"
	PresetMedium CompressionPreset = "medium"
	PresetLow    CompressionPreset = "low"
	PresetAuto   CompressionPreset = "auto"
)

// CompressionOptions are the parameters a preset resolves to.
type CompressionOptions struct {
	Quality   int
	MaxWidth  int
	MaxHeight int
}

// StoredImage describes an upload after it has been written to storage.
type StoredImage struct {
	// URL is the public path the image is served under.
	URL string
	// Size is the stored size in bytes.
	Size int64
	// Options are the compression parameters selected for the upload.
	Options CompressionOptions
}

// ImageStore defines the contract for persisting uploaded product images.
type ImageStore interface {
	// Save writes an upload to storage under a unique name derived from
	// the original filename and returns its public reference. The preset
	// picks compression parameters; "auto" resolves by file size.
	Save(filename string, size int64, r io.Reader, preset CompressionPreset) (*StoredImage, error)
}
