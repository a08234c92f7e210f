package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// Participant configuration keys persisted during onboarding.
const (
	ConfigTokenURL          = "edc.iam.sts.oauth.token.url"
	ConfigClientID          = "edc.iam.sts.oauth.client.id"
	ConfigClientSecretAlias = "edc.iam.sts.oauth.client.secret.alias"
	ConfigIssuerID          = "edc.iam.issuer.id"
	ConfigParticipantID     = "edc.participant.id"
	ConfigVaultConfig       = "vaultConfig"
)

const (
	defaultAssetDescription = "This asset requires the Membership credential to access"
	defaultAssetBaseURL     = "https://jsonplaceholder.typicode.com/todos"
	defaultAssetSourceType  = "HttpData"
)

// ParticipantStore creates and looks up participant context records.
type ParticipantStore interface {
	Create(ctx context.Context, participant model.ParticipantContext) error
	Get(ctx context.Context, participantContextID string) (*model.ParticipantContext, error)
}

// ConfigStore persists per-participant configuration entries.
type ConfigStore interface {
	Save(ctx context.Context, participantContextID string, entries map[string]string) error
}

// SecretStore stores participant-scoped secrets.
type SecretStore interface {
	StoreSecret(ctx context.Context, participantContextID, alias, value string) error
}

// DataPlaneRegistry registers data plane instances with the selector.
type DataPlaneRegistry interface {
	Register(ctx context.Context, instance model.DataPlaneInstance) error
}

// AssetStore creates assets.
type AssetStore interface {
	Create(ctx context.Context, asset model.Asset) (*model.Asset, error)
}

// PolicyStore creates policy definitions.
type PolicyStore interface {
	Create(ctx context.Context, definition model.PolicyDefinition) (*model.PolicyDefinition, error)
}

// ContractDefinitionStore creates contract definitions.
type ContractDefinitionStore interface {
	Create(ctx context.Context, definition model.ContractDefinition) (*model.ContractDefinition, error)
}

// TransactionContext runs a function inside one commit/rollback boundary as
// seen by the collaborator providing it. It cannot roll back cross-service
// side effects made inside fn.
type TransactionContext interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

// OnboardingService chains the creation steps that onboard a new
// participant: context record, configuration, client secret, data plane
// registration, default asset, policy, and contract definition. The chain is
// strictly ordered and aborts on the first failure; already-created
// resources are not compensated.
type OnboardingService struct {
	tx           TransactionContext
	participants ParticipantStore
	configs      ConfigStore
	secrets      SecretStore
	dataplanes   DataPlaneRegistry
	assets       AssetStore
	policies     PolicyStore
	contracts    ContractDefinitionStore

	transferType        string
	dataPlaneControlURL string
}

func NewOnboardingService(tx TransactionContext, participants ParticipantStore, configs ConfigStore, secrets SecretStore,
	dataplanes DataPlaneRegistry, assets AssetStore, policies PolicyStore, contracts ContractDefinitionStore, opts Options) *OnboardingService {
	return &OnboardingService{
		tx:                  tx,
		participants:        participants,
		configs:             configs,
		secrets:             secrets,
		dataplanes:          dataplanes,
		assets:              assets,
		policies:            policies,
		contracts:           contracts,
		transferType:        opts.TransferType,
		dataPlaneControlURL: opts.DataPlaneControlURL,
	}
}

// Onboard runs the onboarding chain for the manifest and returns the
// participant context id (generated when the manifest carries none). A
// failure is reported as an OnboardingError naming the failed step.
func (s *OnboardingService) Onboard(ctx context.Context, manifest model.ParticipantManifest) (string, error) {
	participantContextID := manifest.ParticipantContextID
	if participantContextID == "" {
		participantContextID = uuid.NewString()
		manifest.ParticipantContextID = participantContextID
	}

	state := model.ParticipantStateCreated
	if manifest.IsActive {
		state = model.ParticipantStateActivated
	}

	vaultConfig, err := json.Marshal(manifest.VaultConfig)
	if err != nil {
		return "", fmt.Errorf("marshal vault config: %w", err)
	}

	entries := map[string]string{
		ConfigTokenURL:          manifest.TokenURL,
		ConfigClientID:          manifest.ClientID,
		ConfigClientSecretAlias: manifest.ClientSecretAlias(),
		ConfigIssuerID:          manifest.ParticipantID,
		ConfigParticipantID:     manifest.ParticipantID,
		ConfigVaultConfig:       string(vaultConfig),
	}

	err = s.tx.Execute(ctx, func(ctx context.Context) error {
		if err := s.participants.Create(ctx, model.ParticipantContext{
			ParticipantContextID: participantContextID,
			Identity:             manifest.ParticipantID,
			State:                state,
		}); err != nil {
			return &OnboardingError{Step: StepParticipantContext, Cause: err}
		}

		if err := s.configs.Save(ctx, participantContextID, entries); err != nil {
			return &OnboardingError{Step: StepConfiguration, Cause: err}
		}

		if err := s.secrets.StoreSecret(ctx, participantContextID, manifest.ClientSecretAlias(), manifest.ClientSecret); err != nil {
			return &OnboardingError{Step: StepClientSecret, Cause: err}
		}

		if err := s.dataplanes.Register(ctx, model.DataPlaneInstance{
			ParticipantContextID: participantContextID,
			AllowedSourceType:    defaultAssetSourceType,
			AllowedTransferType:  s.transferType,
			URL:                  s.dataPlaneControlURL,
		}); err != nil {
			return &OnboardingError{Step: StepDataPlane, Cause: err}
		}

		assetID := uuid.NewString()
		if _, err := s.assets.Create(ctx, model.Asset{
			ID:                   assetID,
			ParticipantContextID: participantContextID,
			Properties:           map[string]string{"description": defaultAssetDescription},
			DataAddress: model.DataAddress{
				Type: defaultAssetSourceType,
				Properties: map[string]string{
					model.PropertyBaseURL:          defaultAssetBaseURL,
					model.PropertyProxyPath:        "true",
					model.PropertyProxyQueryParams: "true",
				},
			},
		}); err != nil {
			return &OnboardingError{Step: StepAsset, Cause: err}
		}

		policy, err := s.policies.Create(ctx, model.PolicyDefinition{
			ID:                   uuid.NewString(),
			ParticipantContextID: participantContextID,
			Policy:               model.MembershipPolicy(),
		})
		if err != nil {
			return &OnboardingError{Step: StepPolicyDefinition, Cause: err}
		}

		if _, err := s.contracts.Create(ctx, model.ContractDefinition{
			ID:                   uuid.NewString(),
			ParticipantContextID: participantContextID,
			AccessPolicyID:       policy.ID,
			ContractPolicyID:     policy.ID,
			AssetsSelector: []model.Criterion{
				{OperandLeft: model.PropertyID, Operator: "=", OperandRight: assetID},
			},
		}); err != nil {
			return &OnboardingError{Step: StepContractDefinition, Cause: err}
		}

		return nil
	})
	if err != nil {
		return "", err
	}
	return participantContextID, nil
}
