package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_Overlay(t *testing.T) {
	path := writeConfigFile(t, `{
		"vault_path": "/data/vault.json",
		"default_currency": "MXN",
		"history_depth": 10,
		"backend": "s3",
		"request_timeout": "30s",
		"s3_bucket": "vaults",
		"s3_access_key_id": "AKIA",
		"s3_secret_key": "secret"
	}`)

	origArgs := os.Args
	os.Args = []string{"finkeeper", "-c", path}
	defer func() { os.Args = origArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "/data/vault.json", cfg.VaultPath)
	require.Equal(t, "MXN", cfg.DefaultCurrency)
	require.Equal(t, 10, cfg.HistoryDepth)
	require.Equal(t, BackendS3, cfg.Backend)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "vaults", cfg.S3Bucket)
	require.Equal(t, "AKIA", cfg.S3AccessKeyID)
	require.Equal(t, "secret", cfg.S3SecretKey)

	// values absent from the file keep their defaults
	require.Equal(t, "us-east-1", cfg.S3Region)
	require.Equal(t, "vault.json", cfg.S3Key)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"finkeeper"}
	defer func() { os.Args = origArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "vault.json", cfg.VaultPath)
}

func TestParseJson_BrokenFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	origArgs := os.Args
	os.Args = []string{"finkeeper", "-config", path}
	defer func() { os.Args = origArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}
