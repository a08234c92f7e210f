package core

import (
	"context"
	"encoding/json"
	"fmt"
)

// CatalogClient requests a counter-party's catalog over the dataspace
// protocol.
type CatalogClient interface {
	Request(ctx context.Context, participantContextID, counterPartyID, counterPartyAddress, protocol string, query json.RawMessage) (json.RawMessage, error)
}

// CatalogService resolves a counter-party's protocol endpoint and fetches
// its catalog.
type CatalogService struct {
	client    CatalogClient
	addresses *AddressResolver
	protocol  string
}

func NewCatalogService(client CatalogClient, addresses *AddressResolver, opts Options) *CatalogService {
	return &CatalogService{client: client, addresses: addresses, protocol: opts.Protocol}
}

func (s *CatalogService) Request(ctx context.Context, participantContextID, counterPartyDID string, query json.RawMessage) (json.RawMessage, error) {
	address, err := s.addresses.ResolveProtocolEndpoint(ctx, counterPartyDID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.client.Request(ctx, participantContextID, counterPartyDID, address, s.protocol, query)
	if err != nil {
		return nil, fmt.Errorf("request catalog from %s: %w", counterPartyDID, err)
	}
	return catalog, nil
}
