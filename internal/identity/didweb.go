// Package identity resolves did:web identifiers to DID documents.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Think-iT-Labs/jad/internal/model"
)

const didWebPrefix = "did:web:"

// Resolver fetches did:web documents over HTTPS following the did:web method
// rules: the method-specific id maps to a host plus optional path, with
// colons as path separators and percent-encoded colons allowed for ports.
type Resolver struct {
	httpClient *http.Client
	scheme     string
}

func NewResolver() *Resolver {
	return &Resolver{httpClient: &http.Client{}, scheme: "https"}
}

func (r *Resolver) Resolve(ctx context.Context, did string) (*model.DIDDocument, error) {
	docURL, err := DocumentURL(r.scheme, did)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, docURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build did request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch did document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch did document %s: status %d: %s", did, resp.StatusCode, string(body))
	}

	var doc model.DIDDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode did document: %w", err)
	}
	return &doc, nil
}

// DocumentURL maps a did:web identifier to the URL of its DID document.
// A bare host resolves to /.well-known/did.json; a host with path segments
// resolves to <path>/did.json.
func DocumentURL(scheme, did string) (string, error) {
	if !strings.HasPrefix(did, didWebPrefix) {
		return "", fmt.Errorf("unsupported did method: %s", did)
	}

	id := strings.TrimPrefix(did, didWebPrefix)
	if id == "" {
		return "", fmt.Errorf("empty did:web identifier")
	}

	segments := strings.Split(id, ":")
	for i, segment := range segments {
		decoded, err := url.PathUnescape(segment)
		if err != nil {
			return "", fmt.Errorf("decode did segment %q: %w", segment, err)
		}
		segments[i] = decoded
	}

	host := segments[0]
	path := segments[1:]
	if len(path) == 0 {
		return fmt.Sprintf("%s://%s/.well-known/did.json", scheme, host), nil
	}
	return fmt.Sprintf("%s://%s/%s/did.json", scheme, host, strings.Join(path, "/")), nil
}
