package qrcode

import (
	"net/url"
	"strings"

	"creatorhub/config"
	"creatorhub/internal/domain/entity"
	"creatorhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig builds the service from the qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateProfileQR encodes a public profile URL as a PNG QR code.
func (s *qrcodeService) GenerateProfileQR(profileURL string) ([]byte, error) {
	if profileURL == "" {
		return nil, errors.New("profile URL is required")
	}

	qrCode, err := qrcode.New(profileURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProfileQR extracts the username from a scanned profile URL belonging to baseURL.
func (s *qrcodeService) ParseProfileQR(baseURL, qrData string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse base URL")
	}

	scanned, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code data")
	}

	if !strings.EqualFold(scanned.Host, base.Host) {
		return "", errors.Errorf("QR code points to foreign host: %s", scanned.Host)
	}

	prefix := strings.TrimRight(base.Path, "/") + "/"
	if !strings.HasPrefix(scanned.Path, prefix) {
		return "", errors.Errorf("QR code path is not a profile: %s", scanned.Path)
	}

	username := strings.Trim(strings.TrimPrefix(scanned.Path, prefix), "/")
	if strings.Contains(username, "/") || !entity.IsValidUsername(username) {
		return "", errors.Errorf("invalid username in QR code: %q", username)
	}

	return username, nil
}
