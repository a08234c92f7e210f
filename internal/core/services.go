package core

import "net/http"

// Dependencies bundles the external collaborators the core is composed
// from. All wiring happens at the composition root; the core holds no
// durable state of its own.
type Dependencies struct {
	Identity     IdentityResolver
	Negotiations NegotiationClient
	Transfers    TransferClient
	Credentials  CredentialStore
	Catalog      CatalogClient
	HTTPClient   *http.Client

	Tx           TransactionContext
	Participants ParticipantStore
	Configs      ConfigStore
	Secrets      SecretStore
	DataPlanes   DataPlaneRegistry
	Assets       AssetStore
	Policies     PolicyStore
	Contracts    ContractDefinitionStore
}

type Services struct {
	Address      *AddressResolver
	Negotiation  *NegotiationCoordinator
	Transfer     *TransferCoordinator
	Credentials  *EndpointResolver
	Fetcher      *DataFetcher
	Pipeline     *RequestPipeline
	Catalog      *CatalogService
	Onboarding   *OnboardingService
	Participants ParticipantStore
}

func NewServices(deps Dependencies, opts Options) *Services {
	addresses := NewAddressResolver(deps.Identity)
	negotiation := NewNegotiationCoordinator(deps.Negotiations, addresses, opts)
	transfer := NewTransferCoordinator(deps.Transfers, addresses, opts)
	credentials := NewEndpointResolver(deps.Credentials, opts)
	fetcher := NewDataFetcher(deps.HTTPClient)

	return &Services{
		Address:      addresses,
		Negotiation:  negotiation,
		Transfer:     transfer,
		Credentials:  credentials,
		Fetcher:      fetcher,
		Pipeline:     NewRequestPipeline(negotiation, transfer, credentials, fetcher),
		Catalog:      NewCatalogService(deps.Catalog, addresses, opts),
		Onboarding:   NewOnboardingService(deps.Tx, deps.Participants, deps.Configs, deps.Secrets, deps.DataPlanes, deps.Assets, deps.Policies, deps.Contracts, opts),
		Participants: deps.Participants,
	}
}
