package handler

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// mockOnboarder implements Onboarder for handler tests.
type mockOnboarder struct {
	mock.Mock
}

func (m *mockOnboarder) Onboard(ctx context.Context, manifest model.ParticipantManifest) (string, error) {
	args := m.Called(ctx, manifest)
	return args.String(0), args.Error(1)
}

// mockParticipantStore implements core.ParticipantStore.
type mockParticipantStore struct {
	mock.Mock
}

func (m *mockParticipantStore) Create(ctx context.Context, participant model.ParticipantContext) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *mockParticipantStore) Get(ctx context.Context, participantContextID string) (*model.ParticipantContext, error) {
	args := m.Called(ctx, participantContextID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParticipantContext), args.Error(1)
}

// mockDataRequester implements DataRequester.
type mockDataRequester struct {
	mock.Mock
}

func (m *mockDataRequester) RequestData(ctx context.Context, participantContextID string, req model.DataRequest) ([]byte, error) {
	args := m.Called(ctx, participantContextID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockDataRequester) SetupTransfer(ctx context.Context, participantContextID string, req model.DataRequest) (map[string]any, error) {
	args := m.Called(ctx, participantContextID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// mockCatalogRequester implements CatalogRequester.
type mockCatalogRequester struct {
	mock.Mock
}

func (m *mockCatalogRequester) Request(ctx context.Context, participantContextID, counterPartyDID string, query json.RawMessage) (json.RawMessage, error) {
	args := m.Called(ctx, participantContextID, counterPartyDID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// mockCertStore implements CertStore.
type mockCertStore struct {
	mock.Mock
}

func (m *mockCertStore) Store(ctx context.Context, metadata model.CertMetadata, content []byte) error {
	args := m.Called(ctx, metadata, content)
	return args.Error(0)
}

func (m *mockCertStore) GetMetadata(ctx context.Context, id string) (*model.CertMetadata, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CertMetadata), args.Error(1)
}

func (m *mockCertStore) Retrieve(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockCertStore) QueryMetadata(ctx context.Context, limit, offset int) ([]model.CertMetadata, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CertMetadata), args.Error(1)
}

func (m *mockCertStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
