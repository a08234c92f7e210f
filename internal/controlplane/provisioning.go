package controlplane

import (
	"context"
	"fmt"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// ParticipantAPI manages participant context records.
type ParticipantAPI struct {
	client *Client
}

func (a *ParticipantAPI) Create(ctx context.Context, participant model.ParticipantContext) error {
	url := fmt.Sprintf("%s/v3/participants", a.client.baseURL)
	if err := a.client.postJSON(ctx, url, participant.ParticipantContextID, participant, nil); err != nil {
		return fmt.Errorf("create participant %s: %w", participant.ParticipantContextID, err)
	}
	return nil
}

func (a *ParticipantAPI) Get(ctx context.Context, participantContextID string) (*model.ParticipantContext, error) {
	var participant model.ParticipantContext
	url := fmt.Sprintf("%s/v3/participants/%s", a.client.baseURL, participantContextID)
	if err := a.client.getJSON(ctx, url, &participant); err != nil {
		return nil, fmt.Errorf("get participant %s: %w", participantContextID, err)
	}
	return &participant, nil
}

// ConfigAPI persists per-participant configuration entries.
type ConfigAPI struct {
	client *Client
}

// Save applies the whole entry map in one call.
func (a *ConfigAPI) Save(ctx context.Context, participantContextID string, entries map[string]string) error {
	url := fmt.Sprintf("%s/v3/participants/%s/config", a.client.baseURL, participantContextID)
	if err := a.client.postJSON(ctx, url, participantContextID, entries, nil); err != nil {
		return fmt.Errorf("save config for %s: %w", participantContextID, err)
	}
	return nil
}

// DataPlaneAPI registers data plane instances with the selector.
type DataPlaneAPI struct {
	client *Client
}

func (a *DataPlaneAPI) Register(ctx context.Context, instance model.DataPlaneInstance) error {
	url := fmt.Sprintf("%s/v3/dataplanes", a.client.baseURL)
	if err := a.client.postJSON(ctx, url, instance.ParticipantContextID, instance, nil); err != nil {
		return fmt.Errorf("register data plane for %s: %w", instance.ParticipantContextID, err)
	}
	return nil
}

// AssetAPI creates assets.
type AssetAPI struct {
	client *Client
}

func (a *AssetAPI) Create(ctx context.Context, asset model.Asset) (*model.Asset, error) {
	var created model.Asset
	url := fmt.Sprintf("%s/v3/assets", a.client.baseURL)
	if err := a.client.postJSON(ctx, url, asset.ParticipantContextID, asset, &created); err != nil {
		return nil, fmt.Errorf("create asset %s: %w", asset.ID, err)
	}
	return &created, nil
}

// PolicyAPI creates policy definitions.
type PolicyAPI struct {
	client *Client
}

func (a *PolicyAPI) Create(ctx context.Context, definition model.PolicyDefinition) (*model.PolicyDefinition, error) {
	var created model.PolicyDefinition
	url := fmt.Sprintf("%s/v3/policydefinitions", a.client.baseURL)
	if err := a.client.postJSON(ctx, url, definition.ParticipantContextID, definition, &created); err != nil {
		return nil, fmt.Errorf("create policy definition %s: %w", definition.ID, err)
	}
	return &created, nil
}

// ContractDefinitionAPI creates contract definitions.
type ContractDefinitionAPI struct {
	client *Client
}

func (a *ContractDefinitionAPI) Create(ctx context.Context, definition model.ContractDefinition) (*model.ContractDefinition, error) {
	var created model.ContractDefinition
	url := fmt.Sprintf("%s/v3/contractdefinitions", a.client.baseURL)
	if err := a.client.postJSON(ctx, url, definition.ParticipantContextID, definition, &created); err != nil {
		return nil, fmt.Errorf("create contract definition %s: %w", definition.ID, err)
	}
	return &created, nil
}
