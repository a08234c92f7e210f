package core

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Think-iT-Labs/jad/internal/model"
)

func offerID(definitionID, assetID string) string {
	enc := base64.URLEncoding
	return fmt.Sprintf("%s:%s:%s",
		enc.EncodeToString([]byte(definitionID)),
		enc.EncodeToString([]byte(assetID)),
		enc.EncodeToString([]byte("r1")))
}

func newNegotiationFixture(resolver *mockIdentityResolver, client *mockNegotiationClient) *NegotiationCoordinator {
	return NewNegotiationCoordinator(client, NewAddressResolver(resolver), fastOpts())
}

func TestNegotiateFinalized(t *testing.T) {
	resolver := new(mockIdentityResolver)
	resolver.On("Resolve", mock.Anything, "did:web:provider").Return(protocolDoc("https://provider/api/dsp"), nil)

	client := new(mockNegotiationClient)
	client.On("Initiate", mock.Anything, mock.Anything, mock.MatchedBy(func(rq model.ContractRequest) bool {
		return rq.Protocol == DefaultProtocol &&
			rq.CounterPartyAddress == "https://provider/api/dsp" &&
			rq.Offer.AssetID == "asset-1" &&
			rq.Offer.Policy.Target == "asset-1" &&
			rq.Offer.Policy.Assigner == "did:web:provider" &&
			rq.Offer.Policy.Type == model.PolicyTypeOffer
	})).Return("neg-1", nil)
	client.On("State", mock.Anything, "neg-1").Return(model.NegotiationRequested, nil).Twice()
	client.On("State", mock.Anything, "neg-1").Return(model.NegotiationFinalized, nil).Once()
	client.On("Agreement", mock.Anything, "neg-1").Return(&model.Agreement{ID: "agr-1", ProviderID: "did:web:provider", AssetID: "asset-1"}, nil)

	agreement, err := newNegotiationFixture(resolver, client).Negotiate(context.Background(), testParticipant(), model.DataRequest{
		CounterPartyID: "did:web:provider",
		OfferID:        offerID("def-1", "asset-1"),
	})

	require.NoError(t, err)
	assert.Equal(t, "agr-1", agreement.ID)
	client.AssertExpectations(t)
}

func TestNegotiateTerminated(t *testing.T) {
	resolver := new(mockIdentityResolver)
	resolver.On("Resolve", mock.Anything, "did:web:provider").Return(protocolDoc("https://provider/api/dsp"), nil)

	client := new(mockNegotiationClient)
	client.On("Initiate", mock.Anything, mock.Anything, mock.Anything).Return("neg-2", nil)
	client.On("State", mock.Anything, "neg-2").Return(model.NegotiationRequested, nil).Twice()
	client.On("State", mock.Anything, "neg-2").Return(model.NegotiationTerminated, nil).Once()

	_, err := newNegotiationFixture(resolver, client).Negotiate(context.Background(), testParticipant(), model.DataRequest{
		CounterPartyID: "did:web:provider",
		OfferID:        offerID("def-1", "asset-1"),
	})

	var terminated *NegotiationTerminatedError
	require.ErrorAs(t, err, &terminated)
	assert.Equal(t, "neg-2", terminated.NegotiationID)
	client.AssertNotCalled(t, "Agreement", mock.Anything, mock.Anything)
}

func TestNegotiateUnknownPolicyVariantFallsBackToMembership(t *testing.T) {
	resolver := new(mockIdentityResolver)
	resolver.On("Resolve", mock.Anything, "did:web:provider").Return(protocolDoc("https://provider/api/dsp"), nil)

	client := new(mockNegotiationClient)
	client.On("Initiate", mock.Anything, mock.Anything, mock.MatchedBy(func(rq model.ContractRequest) bool {
		perms := rq.Offer.Policy.Permissions
		return len(perms) == 1 && len(perms[0].Constraints) == 1 && perms[0].Constraints[0].Left == "MembershipCredential"
	})).Return("neg-3", nil)
	client.On("State", mock.Anything, "neg-3").Return(model.NegotiationFinalized, nil)
	client.On("Agreement", mock.Anything, "neg-3").Return(&model.Agreement{ID: "agr-3"}, nil)

	_, err := newNegotiationFixture(resolver, client).Negotiate(context.Background(), testParticipant(), model.DataRequest{
		CounterPartyID: "did:web:provider",
		OfferID:        offerID("def-1", "asset-1"),
		PolicyType:     "no-such-template",
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestNegotiateMalformedOfferID(t *testing.T) {
	resolver := new(mockIdentityResolver)
	resolver.On("Resolve", mock.Anything, "did:web:provider").Return(protocolDoc("https://provider/api/dsp"), nil)

	client := new(mockNegotiationClient)

	_, err := newNegotiationFixture(resolver, client).Negotiate(context.Background(), testParticipant(), model.DataRequest{
		CounterPartyID: "did:web:provider",
		OfferID:        "not-an-offer-id",
	})

	require.Error(t, err)
	client.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything, mock.Anything)
}
