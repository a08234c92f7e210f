package core

import (
	"context"
	"fmt"
	"time"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// NegotiationClient is the narrow interface to the contract negotiation
// service.
type NegotiationClient interface {
	Initiate(ctx context.Context, participant *model.ParticipantContext, request model.ContractRequest) (string, error)
	State(ctx context.Context, negotiationID string) (model.NegotiationState, error)
	Agreement(ctx context.Context, negotiationID string) (*model.Agreement, error)
}

// NegotiationCoordinator drives a contract negotiation to a terminal state
// and retrieves the resulting agreement.
type NegotiationCoordinator struct {
	client    NegotiationClient
	addresses *AddressResolver
	protocol  string
	interval  time.Duration
	maxWait   time.Duration
}

func NewNegotiationCoordinator(client NegotiationClient, addresses *AddressResolver, opts Options) *NegotiationCoordinator {
	return &NegotiationCoordinator{
		client:    client,
		addresses: addresses,
		protocol:  opts.Protocol,
		interval:  opts.WatchInterval,
		maxWait:   opts.MaxWait,
	}
}

// Negotiate initiates a negotiation with the request's counter-party and
// waits for it to finalize. A terminated negotiation fails with
// NegotiationTerminatedError; it is never retried here.
func (c *NegotiationCoordinator) Negotiate(ctx context.Context, participant *model.ParticipantContext, request model.DataRequest) (*model.Agreement, error) {
	address, err := c.addresses.ResolveProtocolEndpoint(ctx, request.CounterPartyID)
	if err != nil {
		return nil, err
	}

	offerID, err := model.ParseOfferID(request.OfferID)
	if err != nil {
		return nil, err
	}

	policy, ok := model.PolicyTemplate(request.PolicyType)
	if !ok {
		// Unknown variants fall back to the default template.
		policy = model.MembershipPolicy()
	}
	policy.Type = model.PolicyTypeOffer
	policy.Target = offerID.AssetID
	policy.Assigner = request.CounterPartyID

	negotiationID, err := c.client.Initiate(ctx, participant, model.ContractRequest{
		Protocol:            c.protocol,
		CounterPartyAddress: address,
		Offer: model.ContractOffer{
			ID:      request.OfferID,
			AssetID: offerID.AssetID,
			Policy:  policy,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("initiate negotiation: %w", err)
	}

	state, err := WaitForState(ctx, func(ctx context.Context) (model.NegotiationState, error) {
		return c.client.State(ctx, negotiationID)
	}, []model.NegotiationState{model.NegotiationFinalized, model.NegotiationTerminated}, c.interval, c.maxWait)
	if err != nil {
		return nil, err
	}
	if state == model.NegotiationTerminated {
		return nil, &NegotiationTerminatedError{NegotiationID: negotiationID}
	}

	agreement, err := c.client.Agreement(ctx, negotiationID)
	if err != nil {
		return nil, fmt.Errorf("get agreement for negotiation %s: %w", negotiationID, err)
	}
	return agreement, nil
}
