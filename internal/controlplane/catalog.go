package controlplane

import (
	"context"
	"encoding/json"
	"fmt"
)

// CatalogAPI fetches counter-party catalogs through the control plane.
type CatalogAPI struct {
	client *Client
}

// Request forwards a catalog request to the control plane. The query spec is
// passed through untouched and the catalog comes back as raw JSON-LD.
func (a *CatalogAPI) Request(ctx context.Context, participantContextID, counterPartyID, counterPartyAddress, protocol string, query json.RawMessage) (json.RawMessage, error) {
	payload := map[string]any{
		"counter_party_id":      counterPartyID,
		"counter_party_address": counterPartyAddress,
		"protocol":              protocol,
	}
	if len(query) > 0 {
		payload["query_spec"] = query
	}
	var catalog json.RawMessage
	url := fmt.Sprintf("%s/v3/catalog/request", a.client.baseURL)
	if err := a.client.postJSON(ctx, url, participantContextID, payload, &catalog); err != nil {
		return nil, fmt.Errorf("request catalog: %w", err)
	}
	return catalog, nil
}
