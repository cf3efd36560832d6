package qrcode

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{QRCode: &config.QRCodeConfig{
				Size:                 256,
				ErrorCorrectionLevel: tt.errorCorrectionLevel,
			}}
			service := NewQRCodeService(cfg)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{
		Size:                 256,
		ErrorCorrectionLevel: "M",
		BaseURL:              "https://store.example.com/",
	}}
	service := NewQRCodeService(cfg)

	qrBytes, err := service.GenerateTrackingQR("17")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_Defaults(t *testing.T) {
	service := NewQRCodeService(&config.Config{})

	qrBytes, err := service.GenerateTrackingQR("1")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
