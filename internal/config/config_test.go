package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "vault.json", cfg.VaultPath)
	assert.Equal(t, "USD", cfg.DefaultCurrency)
	assert.Equal(t, 50, cfg.HistoryDepth)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "vault.json", cfg.S3Key)
}
