package model

// Property keys used in EDC data addresses and asset selectors.
const (
	PropertyID               = "https://w3id.org/edc/v0.0.1/ns/id"
	PropertyBaseURL          = "https://w3id.org/edc/v0.0.1/ns/baseUrl"
	PropertyProxyPath        = "https://w3id.org/edc/v0.0.1/ns/proxyPath"
	PropertyProxyQueryParams = "https://w3id.org/edc/v0.0.1/ns/proxyQueryParams"
	PropertyEndpoint         = "https://w3id.org/edc/v0.0.1/ns/endpoint"
	PropertyAuthorization    = "https://w3id.org/edc/v0.0.1/ns/authorization"
	PropertyAuthType         = "https://w3id.org/edc/v0.0.1/ns/authType"
)

// DataAddress describes where data lives or should be delivered: a type tag
// plus an open property bag.
type DataAddress struct {
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties,omitempty"`
}
