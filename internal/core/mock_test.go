package core

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// ---------- Identity ----------

type mockIdentityResolver struct {
	mock.Mock
}

func (m *mockIdentityResolver) Resolve(ctx context.Context, did string) (*model.DIDDocument, error) {
	args := m.Called(ctx, did)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DIDDocument), args.Error(1)
}

// ---------- Negotiation ----------

type mockNegotiationClient struct {
	mock.Mock
}

func (m *mockNegotiationClient) Initiate(ctx context.Context, participant *model.ParticipantContext, request model.ContractRequest) (string, error) {
	args := m.Called(ctx, participant, request)
	return args.String(0), args.Error(1)
}

func (m *mockNegotiationClient) State(ctx context.Context, negotiationID string) (model.NegotiationState, error) {
	args := m.Called(ctx, negotiationID)
	return args.Get(0).(model.NegotiationState), args.Error(1)
}

func (m *mockNegotiationClient) Agreement(ctx context.Context, negotiationID string) (*model.Agreement, error) {
	args := m.Called(ctx, negotiationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Agreement), args.Error(1)
}

// ---------- Transfer ----------

type mockTransferClient struct {
	mock.Mock
}

func (m *mockTransferClient) Initiate(ctx context.Context, participant *model.ParticipantContext, request model.TransferRequest) (*model.TransferProcess, error) {
	args := m.Called(ctx, participant, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TransferProcess), args.Error(1)
}

func (m *mockTransferClient) State(ctx context.Context, transferID string) (model.TransferState, error) {
	args := m.Called(ctx, transferID)
	return args.Get(0).(model.TransferState), args.Error(1)
}

func (m *mockTransferClient) Get(ctx context.Context, transferID string) (*model.TransferProcess, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TransferProcess), args.Error(1)
}

// ---------- EDR ----------

type mockCredentialStore struct {
	mock.Mock
}

func (m *mockCredentialStore) ResolveByTransfer(ctx context.Context, transferID string) (*model.EndpointCredential, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EndpointCredential), args.Error(1)
}

// ---------- Catalog ----------

type mockCatalogClient struct {
	mock.Mock
}

func (m *mockCatalogClient) Request(ctx context.Context, participantContextID, counterPartyID, counterPartyAddress, protocol string, query json.RawMessage) (json.RawMessage, error) {
	args := m.Called(ctx, participantContextID, counterPartyID, counterPartyAddress, protocol, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// ---------- Onboarding collaborators ----------

type mockParticipantStore struct {
	mock.Mock
}

func (m *mockParticipantStore) Create(ctx context.Context, participant model.ParticipantContext) error {
	return m.Called(ctx, participant).Error(0)
}

func (m *mockParticipantStore) Get(ctx context.Context, participantContextID string) (*model.ParticipantContext, error) {
	args := m.Called(ctx, participantContextID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParticipantContext), args.Error(1)
}

type mockConfigStore struct {
	mock.Mock
}

func (m *mockConfigStore) Save(ctx context.Context, participantContextID string, entries map[string]string) error {
	return m.Called(ctx, participantContextID, entries).Error(0)
}

type mockSecretStore struct {
	mock.Mock
}

func (m *mockSecretStore) StoreSecret(ctx context.Context, participantContextID, alias, value string) error {
	return m.Called(ctx, participantContextID, alias, value).Error(0)
}

type mockDataPlaneRegistry struct {
	mock.Mock
}

func (m *mockDataPlaneRegistry) Register(ctx context.Context, instance model.DataPlaneInstance) error {
	return m.Called(ctx, instance).Error(0)
}

type mockAssetStore struct {
	mock.Mock
}

func (m *mockAssetStore) Create(ctx context.Context, asset model.Asset) (*model.Asset, error) {
	args := m.Called(ctx, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

type mockPolicyStore struct {
	mock.Mock
}

func (m *mockPolicyStore) Create(ctx context.Context, definition model.PolicyDefinition) (*model.PolicyDefinition, error) {
	args := m.Called(ctx, definition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PolicyDefinition), args.Error(1)
}

type mockContractDefinitionStore struct {
	mock.Mock
}

func (m *mockContractDefinitionStore) Create(ctx context.Context, definition model.ContractDefinition) (*model.ContractDefinition, error) {
	args := m.Called(ctx, definition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContractDefinition), args.Error(1)
}

// passthroughTx runs the function directly; the boundary itself is owned by
// an external collaborator in production.
type passthroughTx struct{}

func (passthroughTx) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fastOpts returns Options tuned so watch loops spin in microseconds.
func fastOpts() Options {
	opts := DefaultOptions()
	opts.WatchInterval = 1
	return opts
}

func testParticipant() *model.ParticipantContext {
	return &model.ParticipantContext{
		ParticipantContextID: "consumer",
		Identity:             "did:web:consumer",
		State:                model.ParticipantStateActivated,
	}
}

func protocolDoc(endpoint string) *model.DIDDocument {
	return &model.DIDDocument{
		ID: "did:web:provider",
		Services: []model.DIDService{
			{Type: "CredentialService", ServiceEndpoint: "https://provider/credentials"},
			{Type: model.ServiceTypeProtocolEndpoint, ServiceEndpoint: endpoint},
		},
	}
}
