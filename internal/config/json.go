package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/finkeeper/internal/flagx"
	"github.com/dmitrijs2005/finkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so timeouts can be given either as strings like "10s" or
// as integer nanoseconds. Zero values mean "not set" and leave the current
// Config value alone.
type JsonConfig struct {
	VaultPath       string         `json:"vault_path"`
	DefaultCurrency string         `json:"default_currency"`
	HistoryDepth    int            `json:"history_depth"`
	Identity        string         `json:"identity"`
	Backend         string         `json:"backend"`
	RequestTimeout  timex.Duration `json:"request_timeout"`

	S3Endpoint    string `json:"s3_endpoint"`
	S3Region      string `json:"s3_region"`
	S3Bucket      string `json:"s3_bucket"`
	S3AccessKeyID string `json:"s3_access_key_id"`
	S3SecretKey   string `json:"s3_secret_key"`
	S3Prefix      string `json:"s3_prefix"`
	S3Key         string `json:"s3_key"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. With no such flag nothing is loaded. Read or unmarshal
// errors panic; the config file was explicitly requested, so a broken one
// should not be silently ignored.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.VaultPath != "" {
		cfg.VaultPath = jc.VaultPath
	}
	if jc.DefaultCurrency != "" {
		cfg.DefaultCurrency = jc.DefaultCurrency
	}
	if jc.HistoryDepth > 0 {
		cfg.HistoryDepth = jc.HistoryDepth
	}
	if jc.Identity != "" {
		cfg.Identity = jc.Identity
	}
	if jc.Backend != "" {
		cfg.Backend = Backend(jc.Backend)
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.S3Endpoint != "" {
		cfg.S3Endpoint = jc.S3Endpoint
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3AccessKeyID != "" {
		cfg.S3AccessKeyID = jc.S3AccessKeyID
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
	if jc.S3Prefix != "" {
		cfg.S3Prefix = jc.S3Prefix
	}
	if jc.S3Key != "" {
		cfg.S3Key = jc.S3Key
	}
}
