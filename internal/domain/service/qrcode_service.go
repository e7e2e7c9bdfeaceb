package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProfileQR encodes a public profile URL as a PNG QR code.
	GenerateProfileQR(profileURL string) ([]byte, error)

	// ParseProfileQR extracts the username from a scanned profile URL belonging to baseURL.
	ParseProfileQR(baseURL, qrData string) (string, error)
}
