package core

import (
	"context"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// IdentityResolver resolves a participant identifier to its DID document.
type IdentityResolver interface {
	Resolve(ctx context.Context, did string) (*model.DIDDocument, error)
}

// AddressResolver resolves a counter-party DID to the protocol endpoint at
// which it accepts negotiation and transfer messages.
type AddressResolver struct {
	resolver IdentityResolver
}

func NewAddressResolver(resolver IdentityResolver) *AddressResolver {
	return &AddressResolver{resolver: resolver}
}

// ResolveProtocolEndpoint resolves the DID document and returns the endpoint
// of its first ProtocolEndpoint service entry. The result is never cached.
func (r *AddressResolver) ResolveProtocolEndpoint(ctx context.Context, did string) (string, error) {
	doc, err := r.resolver.Resolve(ctx, did)
	if err != nil {
		return "", &ResolutionError{DID: did, Cause: err}
	}
	for _, svc := range doc.Services {
		if svc.Type == model.ServiceTypeProtocolEndpoint {
			return svc.ServiceEndpoint, nil
		}
	}
	return "", &EndpointNotFoundError{DID: did}
}
