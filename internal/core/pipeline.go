package core

import (
	"context"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// RequestPipeline composes negotiation, transfer, credential resolution and
// download into one sequential flow. The first failing stage short-circuits
// the rest and its error is returned unchanged.
type RequestPipeline struct {
	negotiations *NegotiationCoordinator
	transfers    *TransferCoordinator
	credentials  *EndpointResolver
	fetcher      *DataFetcher
}

func NewRequestPipeline(negotiations *NegotiationCoordinator, transfers *TransferCoordinator, credentials *EndpointResolver, fetcher *DataFetcher) *RequestPipeline {
	return &RequestPipeline{
		negotiations: negotiations,
		transfers:    transfers,
		credentials:  credentials,
		fetcher:      fetcher,
	}
}

// GetData runs the full pipeline and returns the downloaded bytes.
func (p *RequestPipeline) GetData(ctx context.Context, participant *model.ParticipantContext, request model.DataRequest) ([]byte, error) {
	credential, err := p.resolveCredential(ctx, participant, request)
	if err != nil {
		return nil, err
	}
	return p.fetcher.Fetch(ctx, *credential)
}

// SetupTransfer runs the pipeline up to credential resolution and returns
// the credential's raw property bag, for callers that need the transfer
// metadata but not the payload.
func (p *RequestPipeline) SetupTransfer(ctx context.Context, participant *model.ParticipantContext, request model.DataRequest) (map[string]any, error) {
	credential, err := p.resolveCredential(ctx, participant, request)
	if err != nil {
		return nil, err
	}
	return credential.Properties, nil
}

func (p *RequestPipeline) resolveCredential(ctx context.Context, participant *model.ParticipantContext, request model.DataRequest) (*model.EndpointCredential, error) {
	agreement, err := p.negotiations.Negotiate(ctx, participant, request)
	if err != nil {
		return nil, err
	}
	process, err := p.transfers.Transfer(ctx, participant, agreement)
	if err != nil {
		return nil, err
	}
	return p.credentials.ResolveCredential(ctx, process.ID)
}
