package model

// CredentialType tags the kind of endpoint credential issued by a data plane.
type CredentialType string

// CredentialTypeHTTPPull is the HTTP pull endpoint credential kind.
const CredentialTypeHTTPPull CredentialType = "https://w3id.org/idsa/v4.1/HTTP"

// HTTPPullCredential carries the fields of an HTTP pull credential. The
// Authorization value is sent verbatim as the Authorization header; any
// scheme prefix must already be part of it.
type HTTPPullCredential struct {
	Endpoint      string `json:"endpoint"`
	Authorization string `json:"authorization"`
	AuthType      string `json:"auth_type,omitempty"`
}

// EndpointCredential is the credential issued for an active transfer. It is
// a tagged union: HTTPPull is populated only when Type is
// CredentialTypeHTTPPull; any other type is unsupported for download.
// Properties retains the raw bag as published by the data plane, for callers
// that only need transfer metadata.
type EndpointCredential struct {
	Type       CredentialType      `json:"type"`
	HTTPPull   *HTTPPullCredential `json:"http_pull,omitempty"`
	Properties map[string]any      `json:"properties,omitempty"`
}

// EndpointCredentialFromProperties builds the tagged union from a raw EDR
// property bag.
func EndpointCredentialFromProperties(credentialType string, properties map[string]any) EndpointCredential {
	cred := EndpointCredential{
		Type:       CredentialType(credentialType),
		Properties: properties,
	}
	if cred.Type == CredentialTypeHTTPPull {
		cred.HTTPPull = &HTTPPullCredential{
			Endpoint:      stringProperty(properties, PropertyEndpoint),
			Authorization: stringProperty(properties, PropertyAuthorization),
			AuthType:      stringProperty(properties, PropertyAuthType),
		}
	}
	return cred
}

func stringProperty(properties map[string]any, key string) string {
	if v, ok := properties[key].(string); ok {
		return v
	}
	return ""
}
