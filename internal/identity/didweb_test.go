package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Think-iT-Labs/jad/internal/model"
)

func TestDocumentURL(t *testing.T) {
	cases := []struct {
		did  string
		want string
	}{
		{"did:web:provider.example.com", "https://provider.example.com/.well-known/did.json"},
		{"did:web:provider.example.com:participants:alice", "https://provider.example.com/participants/alice/did.json"},
		{"did:web:localhost%3A8080", "https://localhost:8080/.well-known/did.json"},
		{"did:web:localhost%3A8080:alice", "https://localhost:8080/alice/did.json"},
	}
	for _, tc := range cases {
		got, err := DocumentURL("https", tc.did)
		require.NoError(t, err, tc.did)
		assert.Equal(t, tc.want, got)
	}
}

func TestDocumentURL_UnsupportedMethod(t *testing.T) {
	_, err := DocumentURL("https", "did:key:z6Mk")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported did method")
}

func TestResolver_Resolve_WellKnown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/.well-known/did.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(model.DIDDocument{
			ID: "did:web:provider",
			Services: []model.DIDService{
				{Type: model.ServiceTypeProtocolEndpoint, ServiceEndpoint: "http://provider/protocol"},
			},
		})
	}))
	defer srv.Close()

	resolver := NewResolver()
	resolver.scheme = "http"

	host := strings.TrimPrefix(srv.URL, "http://")
	did := "did:web:" + strings.ReplaceAll(host, ":", "%3A")

	doc, err := resolver.Resolve(context.Background(), did)
	require.NoError(t, err)
	require.Len(t, doc.Services, 1)
	assert.Equal(t, "http://provider/protocol", doc.Services[0].ServiceEndpoint)
}

func TestResolver_Resolve_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no such participant"))
	}))
	defer srv.Close()

	resolver := NewResolver()
	resolver.scheme = "http"

	host := strings.TrimPrefix(srv.URL, "http://")
	did := "did:web:" + strings.ReplaceAll(host, ":", "%3A")

	_, err := resolver.Resolve(context.Background(), did)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
