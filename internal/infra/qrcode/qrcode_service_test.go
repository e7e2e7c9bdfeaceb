package qrcode

import (
	"testing"

	"creatorhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	assert.NotNil(t, NewFromConfig(&config.Config{}))
	assert.NotNil(t, NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}}))
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateProfileQR("https://creatorhub.example/alice")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateProfileQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateProfileQR("https://creatorhub.example/bob")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateProfileQR_Empty(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateProfileQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseProfileQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name     string
		baseURL  string
		qrData   string
		expected string
		wantErr  bool
	}{
		{"Root profile", "https://creatorhub.example", "https://creatorhub.example/alice", "alice", false},
		{"Trailing slash", "https://creatorhub.example", "https://creatorhub.example/alice/", "alice", false},
		{"Base path", "https://example.com/links", "https://example.com/links/my-shop_1", "my-shop_1", false},
		{"Case-insensitive host", "https://creatorhub.example", "https://CreatorHub.example/alice", "alice", false},
		{"Foreign host", "https://creatorhub.example", "https://evil.example/alice", "", true},
		{"Nested path", "https://creatorhub.example", "https://creatorhub.example/api/alice", "", true},
		{"Invalid username", "https://creatorhub.example", "https://creatorhub.example/Al", "", true},
		{"Not a URL", "https://creatorhub.example", "%%%", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username, err := service.ParseProfileQR(tt.baseURL, tt.qrData)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, username)
		})
	}
}
