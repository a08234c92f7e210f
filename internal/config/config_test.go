package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("TEMPORAL_ADDRESS")
	os.Unsetenv("HTTP_LISTEN_ADDR")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("DSP_PROTOCOL")
	os.Unsetenv("POLL_INTERVAL")
	os.Unsetenv("MAX_WAIT")
	os.Unsetenv("EDR_WAIT_ATTEMPTS")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:7233", cfg.TemporalAddress)
	assert.Equal(t, ":8090", cfg.HTTPListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "dataspace-protocol-http:2025-1", cfg.Protocol)
	assert.Equal(t, "HttpData-PULL", cfg.TransferType)
	assert.Equal(t, "httpData", cfg.DestinationType)
	assert.Equal(t, time.Second, cfg.PollInterval)
	assert.Equal(t, 5*time.Minute, cfg.MaxWait)
	assert.Equal(t, 1, cfg.EDRWaitAttempts)
}

func TestLoad_AllEnvVars(t *testing.T) {
	t.Setenv("CONTROL_PLANE_URL", "http://controlplane:8181")
	t.Setenv("CONTROL_PLANE_API_KEY", "key-1")
	t.Setenv("CERT_DATABASE_URL", "postgres://localhost:5432/certs")
	t.Setenv("TEMPORAL_ADDRESS", "temporal.example.com:7233")
	t.Setenv("HTTP_LISTEN_ADDR", ":7071")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("POLL_INTERVAL", "250ms")
	t.Setenv("MAX_WAIT", "30s")
	t.Setenv("EDR_WAIT_ATTEMPTS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://controlplane:8181", cfg.ControlPlaneURL)
	assert.Equal(t, "key-1", cfg.ControlPlaneAPIKey)
	assert.Equal(t, "postgres://localhost:5432/certs", cfg.CertDatabaseURL)
	assert.Equal(t, "temporal.example.com:7233", cfg.TemporalAddress)
	assert.Equal(t, ":7071", cfg.HTTPListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.MaxWait)
	assert.Equal(t, 5, cfg.EDRWaitAttempts)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POLL_INTERVAL")
}

func TestValidate_MissingControlPlaneURL(t *testing.T) {
	cfg := &Config{TemporalAddress: "localhost:7233"}
	err := cfg.Validate("connector-api")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONTROL_PLANE_URL")
}

func TestValidate_TLS_MismatchedCertKey(t *testing.T) {
	cfg := &Config{
		ControlPlaneURL: "http://controlplane:8181",
		TemporalAddress: "localhost:7233",
		TemporalTLSCert: "/path/to/cert.pem",
	}
	err := cfg.Validate("connector-api")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEMPORAL_TLS_CERT")
}

func TestValidate_VaultNeedsCredentials(t *testing.T) {
	cfg := &Config{
		ControlPlaneURL: "http://controlplane:8181",
		TemporalAddress: "localhost:7233",
		VaultURL:        "http://vault:8200",
	}
	err := cfg.Validate("worker")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VAULT_TOKEN")
}

func TestValidate_AllPresent(t *testing.T) {
	cfg := &Config{
		ControlPlaneURL: "http://controlplane:8181",
		TemporalAddress: "localhost:7233",
		VaultURL:        "http://vault:8200",
		VaultToken:      "root",
	}
	require.NoError(t, cfg.Validate("connector-api"))
	require.NoError(t, cfg.Validate("worker"))
}
