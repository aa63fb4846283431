// Package config loads runtime settings for the finkeeper CLI.
//
// Values are layered: defaults first, then a JSON file (selected with -c or
// -config), then command-line flags. Later sources take precedence.
package config

import "time"

// Backend selects where the vault document is persisted.
type Backend string

const (
	BackendFile Backend = "file"
	BackendS3   Backend = "s3"
)

// Config holds runtime settings for the finkeeper CLI.
type Config struct {
	// VaultPath is the local vault file (file backend).
	VaultPath string
	// DefaultCurrency is used for new vaults and synthesized accounts.
	DefaultCurrency string
	// HistoryDepth bounds the undo stack.
	HistoryDepth int
	// Identity, when set, is recorded in createdBy on new transactions.
	Identity string
	// Backend picks the persistence gateway.
	Backend Backend
	// RequestTimeout bounds one storage request (S3 backend).
	RequestTimeout time.Duration

	// S3 connection settings, used when Backend is BackendS3.
	S3Endpoint    string
	S3Region      string
	S3Bucket      string
	S3AccessKeyID string
	S3SecretKey   string
	S3Prefix      string
	S3Key         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.VaultPath = "vault.json"
	c.DefaultCurrency = "USD"
	c.HistoryDepth = 50
	c.Backend = BackendFile
	c.RequestTimeout = 10 * time.Second
	c.S3Region = "us-east-1"
	c.S3Key = "vault.json"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
