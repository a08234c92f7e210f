package request

import "encoding/json"

// RequestData starts a data-request pipeline run against a provider.
type RequestData struct {
	CounterPartyID string `json:"counter_party_id" validate:"required"`
	OfferID        string `json:"offer_id" validate:"required"`
	PolicyType     string `json:"policy_type,omitempty"`
}

// RequestCatalog fetches a provider's catalog, optionally filtered.
type RequestCatalog struct {
	CounterPartyID string          `json:"counter_party_id" validate:"required"`
	QuerySpec      json.RawMessage `json:"query_spec,omitempty"`
}

// UploadCert stores a certificate blob with its metadata. Content is
// base64 in transit (encoding/json []byte convention).
type UploadCert struct {
	ID          string         `json:"id,omitempty"`
	ContentType string         `json:"content_type" validate:"required"`
	Properties  map[string]any `json:"properties,omitempty"`
	Content     []byte         `json:"content" validate:"required"`
}
