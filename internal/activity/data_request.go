package activity

import (
	"context"

	"github.com/Think-iT-Labs/jad/internal/core"
	"github.com/Think-iT-Labs/jad/internal/model"
)

// DataRequest exposes the data-request pipeline stages as individually
// executable activities so a workflow can chain them with durable history
// between stages.
type DataRequest struct {
	services *core.Services
}

func NewDataRequest(services *core.Services) *DataRequest {
	return &DataRequest{services: services}
}

// GetParticipant loads the participant context the request runs under.
func (a *DataRequest) GetParticipant(ctx context.Context, participantContextID string) (*model.ParticipantContext, error) {
	return a.services.Participants.Get(ctx, participantContextID)
}

type NegotiateParams struct {
	Participant model.ParticipantContext `json:"participant"`
	Request     model.DataRequest        `json:"request"`
}

// Negotiate runs a contract negotiation to its terminal state and returns
// the agreement.
func (a *DataRequest) Negotiate(ctx context.Context, params NegotiateParams) (*model.Agreement, error) {
	return a.services.Negotiation.Negotiate(ctx, &params.Participant, params.Request)
}

type StartTransferParams struct {
	Participant model.ParticipantContext `json:"participant"`
	Agreement   model.Agreement          `json:"agreement"`
}

// StartTransfer opens a transfer process under the agreement and waits for
// it to start.
func (a *DataRequest) StartTransfer(ctx context.Context, params StartTransferParams) (*model.TransferProcess, error) {
	return a.services.Transfer.Transfer(ctx, &params.Participant, &params.Agreement)
}

// ResolveCredential looks up the endpoint credential issued for a started
// transfer.
func (a *DataRequest) ResolveCredential(ctx context.Context, transferID string) (*model.EndpointCredential, error) {
	return a.services.Credentials.ResolveCredential(ctx, transferID)
}

// FetchData downloads the payload the credential points at.
func (a *DataRequest) FetchData(ctx context.Context, credential model.EndpointCredential) ([]byte, error) {
	return a.services.Fetcher.Fetch(ctx, credential)
}
