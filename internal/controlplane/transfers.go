package controlplane

import (
	"context"
	"fmt"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// TransferAPI drives transfer processes through the control plane.
type TransferAPI struct {
	client *Client
}

func (a *TransferAPI) Initiate(ctx context.Context, participant *model.ParticipantContext, request model.TransferRequest) (*model.TransferProcess, error) {
	var process model.TransferProcess
	url := fmt.Sprintf("%s/v3/transferprocesses", a.client.baseURL)
	if err := a.client.postJSON(ctx, url, participant.ParticipantContextID, request, &process); err != nil {
		return nil, fmt.Errorf("initiate transfer: %w", err)
	}
	return &process, nil
}

func (a *TransferAPI) State(ctx context.Context, transferID string) (model.TransferState, error) {
	var result struct {
		State model.TransferState `json:"state"`
	}
	url := fmt.Sprintf("%s/v3/transferprocesses/%s/state", a.client.baseURL, transferID)
	if err := a.client.getJSON(ctx, url, &result); err != nil {
		return "", fmt.Errorf("transfer %s state: %w", transferID, err)
	}
	return result.State, nil
}

func (a *TransferAPI) Get(ctx context.Context, transferID string) (*model.TransferProcess, error) {
	var process model.TransferProcess
	url := fmt.Sprintf("%s/v3/transferprocesses/%s", a.client.baseURL, transferID)
	if err := a.client.getJSON(ctx, url, &process); err != nil {
		return nil, fmt.Errorf("get transfer %s: %w", transferID, err)
	}
	return &process, nil
}

// CredentialAPI reads endpoint data references published by data planes.
type CredentialAPI struct {
	client *Client
}

// ResolveByTransfer fetches the endpoint data reference for a started
// transfer. The data plane publishes it asynchronously, so a 404 here is a
// normal transient outcome shortly after the transfer starts.
func (a *CredentialAPI) ResolveByTransfer(ctx context.Context, transferID string) (*model.EndpointCredential, error) {
	var address struct {
		Type       string         `json:"type"`
		Properties map[string]any `json:"properties"`
	}
	url := fmt.Sprintf("%s/v3/edrs/%s/dataaddress", a.client.baseURL, transferID)
	if err := a.client.getJSON(ctx, url, &address); err != nil {
		return nil, fmt.Errorf("resolve edr for transfer %s: %w", transferID, err)
	}
	credential := model.EndpointCredentialFromProperties(address.Type, address.Properties)
	return &credential, nil
}
