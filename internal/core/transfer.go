package core

import (
	"context"
	"fmt"
	"time"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// TransferClient is the narrow interface to the transfer process service.
type TransferClient interface {
	Initiate(ctx context.Context, participant *model.ParticipantContext, request model.TransferRequest) (*model.TransferProcess, error)
	State(ctx context.Context, transferID string) (model.TransferState, error)
	Get(ctx context.Context, transferID string) (*model.TransferProcess, error)
}

// TransferCoordinator drives a transfer process to a terminal state and
// retrieves the transfer details.
type TransferCoordinator struct {
	addresses       *AddressResolver
	transfers       TransferClient
	protocol        string
	transferType    string
	destinationType string
	interval        time.Duration
	maxWait         time.Duration
}

func NewTransferCoordinator(transfers TransferClient, addresses *AddressResolver, opts Options) *TransferCoordinator {
	return &TransferCoordinator{
		addresses:       addresses,
		transfers:       transfers,
		protocol:        opts.Protocol,
		transferType:    opts.TransferType,
		destinationType: opts.DestinationType,
		interval:        opts.WatchInterval,
		maxWait:         opts.MaxWait,
	}
}

// Transfer starts a transfer process under the agreement and waits until it
// is started. The provider address is resolved independently of the
// negotiation stage since the provider endpoint may have changed.
func (c *TransferCoordinator) Transfer(ctx context.Context, participant *model.ParticipantContext, agreement *model.Agreement) (*model.TransferProcess, error) {
	address, err := c.addresses.ResolveProtocolEndpoint(ctx, agreement.ProviderID)
	if err != nil {
		return nil, err
	}

	process, err := c.transfers.Initiate(ctx, participant, model.TransferRequest{
		ContractID:          agreement.ID,
		CounterPartyAddress: address,
		Protocol:            c.protocol,
		TransferType:        c.transferType,
		DataDestination:     model.DataAddress{Type: c.destinationType},
	})
	if err != nil {
		return nil, fmt.Errorf("could not start transfer process: %w", err)
	}

	state, err := WaitForState(ctx, func(ctx context.Context) (model.TransferState, error) {
		return c.transfers.State(ctx, process.ID)
	}, []model.TransferState{model.TransferStarted, model.TransferTerminated}, c.interval, c.maxWait)
	if err != nil {
		return nil, err
	}

	details, detailsErr := c.transfers.Get(ctx, process.ID)
	if state == model.TransferTerminated {
		detail := "provider terminated"
		if detailsErr == nil && details.ErrorDetail != "" {
			detail = details.ErrorDetail
		}
		return nil, &TransferTerminatedError{TransferID: process.ID, Detail: detail}
	}
	if detailsErr != nil {
		return nil, fmt.Errorf("get transfer process %s: %w", process.ID, detailsErr)
	}
	return details, nil
}
