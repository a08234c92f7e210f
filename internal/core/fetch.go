package core

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// DataFetcher downloads data from the endpoint named by a resolved
// credential.
type DataFetcher struct {
	client *http.Client
}

func NewDataFetcher(client *http.Client) *DataFetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &DataFetcher{client: client}
}

// Fetch issues an authorized GET against an HTTP pull credential and returns
// the response body. The credential's authorization value is sent verbatim;
// no scheme prefix is added. Non-2xx responses fail with DownloadError, any
// non-HTTP credential type with UnsupportedEndpointTypeError.
func (f *DataFetcher) Fetch(ctx context.Context, credential model.EndpointCredential) ([]byte, error) {
	if credential.Type != model.CredentialTypeHTTPPull || credential.HTTPPull == nil {
		return nil, &UnsupportedEndpointTypeError{Type: credential.Type}
	}
	if credential.HTTPPull.Endpoint == "" {
		return nil, ErrMissingEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, credential.HTTPPull.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}
	req.Header.Set("Authorization", credential.HTTPPull.Authorization)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download from %s: %w", credential.HTTPPull.Endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read download body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &DownloadError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
