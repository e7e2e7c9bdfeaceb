// Package constants holds configuration values shared across layers.
package constants

// Deployment environments.
const (
	EnvLocal = "local"
	EnvProd  = "prod"
)

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Token verifier modes accepted in configuration.
const (
	AuthModeJWKS = "jwks"
	AuthModeHMAC = "hmac"
)

// MaxUploadSize is the largest accepted image upload in bytes.
const MaxUploadSize = 4 << 20
