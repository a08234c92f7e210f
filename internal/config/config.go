package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ControlPlaneURL    string
	ControlPlaneAPIKey string
	CertDatabaseURL    string
	TemporalAddress    string
	HTTPListenAddr     string
	MetricsAddr        string
	LogLevel           string
	ServiceName        string

	TemporalTLSCert       string
	TemporalTLSKey        string
	TemporalTLSCACert     string
	TemporalTLSServerName string

	VaultURL          string
	VaultToken        string
	VaultSecretsPath  string
	VaultTokenURL     string
	VaultClientID     string
	VaultClientSecret string

	DataPlaneControlURL string
	Protocol            string
	TransferType        string
	DestinationType     string
	PollInterval        time.Duration
	MaxWait             time.Duration
	EDRWaitAttempts     int

	// CertExchangeToken authorizes the public certificate exchange routes.
	CertExchangeToken string
}

func Load() (*Config, error) {
	pollInterval, err := getEnvDuration("POLL_INTERVAL", time.Second)
	if err != nil {
		return nil, err
	}
	maxWait, err := getEnvDuration("MAX_WAIT", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	edrAttempts, err := getEnvInt("EDR_WAIT_ATTEMPTS", 1)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ControlPlaneURL:    getEnv("CONTROL_PLANE_URL", ""),
		ControlPlaneAPIKey: getEnv("CONTROL_PLANE_API_KEY", ""),
		CertDatabaseURL:    getEnv("CERT_DATABASE_URL", ""),
		TemporalAddress:    getEnv("TEMPORAL_ADDRESS", "localhost:7233"),
		HTTPListenAddr:     getEnv("HTTP_LISTEN_ADDR", ":8090"),
		MetricsAddr:        getEnv("METRICS_ADDR", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		ServiceName:        getEnv("SERVICE_NAME", ""),

		TemporalTLSCert:       getEnv("TEMPORAL_TLS_CERT", ""),
		TemporalTLSKey:        getEnv("TEMPORAL_TLS_KEY", ""),
		TemporalTLSCACert:     getEnv("TEMPORAL_TLS_CA_CERT", ""),
		TemporalTLSServerName: getEnv("TEMPORAL_TLS_SERVER_NAME", ""),

		VaultURL:          getEnv("VAULT_URL", ""),
		VaultToken:        getEnv("VAULT_TOKEN", ""),
		VaultSecretsPath:  getEnv("VAULT_SECRETS_PATH", "v1/secret"),
		VaultTokenURL:     getEnv("VAULT_OAUTH_TOKEN_URL", ""),
		VaultClientID:     getEnv("VAULT_OAUTH_CLIENT_ID", ""),
		VaultClientSecret: getEnv("VAULT_OAUTH_CLIENT_SECRET", ""),

		DataPlaneControlURL: getEnv("DATA_PLANE_CONTROL_URL", ""),
		Protocol:            getEnv("DSP_PROTOCOL", "dataspace-protocol-http:2025-1"),
		TransferType:        getEnv("TRANSFER_TYPE", "HttpData-PULL"),
		DestinationType:     getEnv("DESTINATION_TYPE", "httpData"),
		PollInterval:        pollInterval,
		MaxWait:             maxWait,
		EDRWaitAttempts:     edrAttempts,

		CertExchangeToken: getEnv("CERT_EXCHANGE_TOKEN", ""),
	}

	return cfg, nil
}

// Validate checks the fields the given component cannot run without.
func (c *Config) Validate(component string) error {
	if c.ControlPlaneURL == "" {
		return fmt.Errorf("%s: CONTROL_PLANE_URL is required", component)
	}
	switch component {
	case "connector-api", "worker":
		if c.TemporalAddress == "" {
			return fmt.Errorf("%s: TEMPORAL_ADDRESS is required", component)
		}
	}
	if (c.TemporalTLSCert == "") != (c.TemporalTLSKey == "") {
		return fmt.Errorf("%s: TEMPORAL_TLS_CERT and TEMPORAL_TLS_KEY must be set together", component)
	}
	if c.VaultURL != "" && c.VaultToken == "" && c.VaultTokenURL == "" {
		return fmt.Errorf("%s: VAULT_TOKEN or VAULT_OAUTH_TOKEN_URL is required when VAULT_URL is set", component)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
