// Package vault stores participant secrets in a HashiCorp Vault KV v2
// engine. Authentication is either a static token or OAuth client
// credentials exchanged for a vault token through the JWT auth method.
package vault

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	tokenHeader  = "X-Vault-Token"
	dataPath     = "data"
	metadataPath = "metadata"
	entryName    = "content"
	jwtLoginRole = "participant"
)

// ErrSecretNotFound is returned when the vault has no secret at the key.
var ErrSecretNotFound = errors.New("secret not found")

// Settings configures the vault connection. Token wins over the OAuth
// fields when both are set.
type Settings struct {
	URL          string
	Token        string
	SecretsPath  string
	TokenURL     string
	ClientID     string
	ClientSecret string
}

type Client struct {
	settings   Settings
	httpClient *http.Client
}

func NewClient(settings Settings) *Client {
	if settings.SecretsPath == "" {
		settings.SecretsPath = "v1/secret"
	}
	return &Client{settings: settings, httpClient: &http.Client{}}
}

// StoreSecret writes the secret under the participant's folder.
func (c *Client) StoreSecret(ctx context.Context, participantContextID, alias, value string) error {
	payload := map[string]any{
		dataPath: map[string]string{entryName: value},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal secret: %w", err)
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.secretURL(dataPath, participantContextID, alias), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("store secret request: %w", err)
	}
	req.Header.Set(tokenHeader, token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("store secret: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("store secret %s: status %d: %s", alias, resp.StatusCode, string(respBody))
	}
	return nil
}

// ResolveSecret reads the secret back, or ErrSecretNotFound when the key
// does not exist.
func (c *Client) ResolveSecret(ctx context.Context, participantContextID, alias string) (string, error) {
	token, err := c.token(ctx)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.secretURL(dataPath, participantContextID, alias), nil)
	if err != nil {
		return "", fmt.Errorf("resolve secret request: %w", err)
	}
	req.Header.Set(tokenHeader, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("resolve secret: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("resolve secret %s: %w", alias, ErrSecretNotFound)
	}
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("resolve secret %s: status %d: %s", alias, resp.StatusCode, string(body))
	}

	var result struct {
		Data struct {
			Data map[string]string `json:"data"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode secret: %w", err)
	}
	return result.Data.Data[entryName], nil
}

// DeleteSecret removes the secret and all its versions. A missing key is
// not an error.
func (c *Client) DeleteSecret(ctx context.Context, participantContextID, alias string) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.secretURL(metadataPath, participantContextID, alias), nil)
	if err != nil {
		return fmt.Errorf("delete secret request: %w", err)
	}
	req.Header.Set(tokenHeader, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete secret: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete secret %s: status %d: %s", alias, resp.StatusCode, string(body))
	}
	return nil
}

// token returns the static token, or exchanges OAuth client credentials for
// a vault token through the JWT auth method.
func (c *Client) token(ctx context.Context) (string, error) {
	if c.settings.Token != "" {
		return c.settings.Token, nil
	}

	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(map[string]string{
		"role": jwtLoginRole,
		"jwt":  accessToken,
	})
	if err != nil {
		return "", fmt.Errorf("marshal login payload: %w", err)
	}

	loginURL := fmt.Sprintf("%s/v1/auth/jwt/login", strings.TrimRight(c.settings.URL, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("vault login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("vault login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("vault login: status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Auth struct {
			ClientToken string `json:"client_token"`
		} `json:"auth"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode vault login: %w", err)
	}
	return result.Auth.ClientToken, nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.settings.ClientID)
	form.Set("client_secret", c.settings.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.settings.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("access token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("get access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("get access token: status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode access token: %w", err)
	}
	return result.AccessToken, nil
}

// secretURL builds the KV v2 URL for a secret. The alias is escaped except
// for slashes, which keep subdirectories addressable.
func (c *Client) secretURL(entryType, participantContextID, alias string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(alias), "%2F", "/")
	return fmt.Sprintf("%s/%s/%s/%s/%s",
		strings.TrimRight(c.settings.URL, "/"),
		strings.Trim(c.settings.SecretsPath, "/"),
		entryType,
		participantContextID,
		escaped)
}
