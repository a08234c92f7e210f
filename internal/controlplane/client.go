// Package controlplane is the HTTP client for the connector control plane
// management API. Each core collaborator interface is served by a typed view
// over one shared transport.
package controlplane

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const participantContextHeader = "X-Participant-Context-Id"

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{baseURL: baseURL, apiKey: apiKey, httpClient: &http.Client{}}
}

func (c *Client) Negotiations() *NegotiationAPI  { return &NegotiationAPI{client: c} }
func (c *Client) Transfers() *TransferAPI        { return &TransferAPI{client: c} }
func (c *Client) Credentials() *CredentialAPI    { return &CredentialAPI{client: c} }
func (c *Client) Catalog() *CatalogAPI           { return &CatalogAPI{client: c} }
func (c *Client) Participants() *ParticipantAPI  { return &ParticipantAPI{client: c} }
func (c *Client) Configs() *ConfigAPI            { return &ConfigAPI{client: c} }
func (c *Client) DataPlanes() *DataPlaneAPI      { return &DataPlaneAPI{client: c} }
func (c *Client) Assets() *AssetAPI              { return &AssetAPI{client: c} }
func (c *Client) Policies() *PolicyAPI           { return &PolicyAPI{client: c} }
func (c *Client) ContractDefinitions() *ContractDefinitionAPI {
	return &ContractDefinitionAPI{client: c}
}

func (c *Client) postJSON(ctx context.Context, url, participantContextID string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if participantContextID != "" {
		req.Header.Set(participantContextHeader, participantContextID)
	}
	return c.send(req, out)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
