package controlplane

import (
	"context"
	"fmt"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// NegotiationAPI drives contract negotiations through the control plane.
type NegotiationAPI struct {
	client *Client
}

// Initiate starts a contract negotiation on behalf of the participant and
// returns the negotiation id assigned by the control plane.
func (a *NegotiationAPI) Initiate(ctx context.Context, participant *model.ParticipantContext, request model.ContractRequest) (string, error) {
	var result struct {
		ID string `json:"id"`
	}
	url := fmt.Sprintf("%s/v3/contractnegotiations", a.client.baseURL)
	if err := a.client.postJSON(ctx, url, participant.ParticipantContextID, request, &result); err != nil {
		return "", fmt.Errorf("initiate negotiation: %w", err)
	}
	return result.ID, nil
}

func (a *NegotiationAPI) State(ctx context.Context, negotiationID string) (model.NegotiationState, error) {
	var result struct {
		State model.NegotiationState `json:"state"`
	}
	url := fmt.Sprintf("%s/v3/contractnegotiations/%s/state", a.client.baseURL, negotiationID)
	if err := a.client.getJSON(ctx, url, &result); err != nil {
		return "", fmt.Errorf("negotiation %s state: %w", negotiationID, err)
	}
	return result.State, nil
}

func (a *NegotiationAPI) Agreement(ctx context.Context, negotiationID string) (*model.Agreement, error) {
	var agreement model.Agreement
	url := fmt.Sprintf("%s/v3/contractnegotiations/%s/agreement", a.client.baseURL, negotiationID)
	if err := a.client.getJSON(ctx, url, &agreement); err != nil {
		return nil, fmt.Errorf("negotiation %s agreement: %w", negotiationID, err)
	}
	return &agreement, nil
}
