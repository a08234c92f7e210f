package model

// NegotiationState is the observable state of a contract negotiation. The
// intermediate states are owned by the negotiation service; only Finalized
// and Terminated are terminal.
type NegotiationState string

const (
	NegotiationInitial    NegotiationState = "INITIAL"
	NegotiationRequesting NegotiationState = "REQUESTING"
	NegotiationRequested  NegotiationState = "REQUESTED"
	NegotiationOffered    NegotiationState = "OFFERED"
	NegotiationAccepted   NegotiationState = "ACCEPTED"
	NegotiationAgreed     NegotiationState = "AGREED"
	NegotiationVerified   NegotiationState = "VERIFIED"
	NegotiationFinalized  NegotiationState = "FINALIZED"
	NegotiationTerminated NegotiationState = "TERMINATED"
)

// ContractRequest starts a contract negotiation with a counter-party.
type ContractRequest struct {
	Protocol            string        `json:"protocol"`
	CounterPartyAddress string        `json:"counter_party_address"`
	Offer               ContractOffer `json:"offer"`
}

// ContractOffer is the offer presented during negotiation.
type ContractOffer struct {
	ID      string `json:"id"`
	AssetID string `json:"asset_id"`
	Policy  Policy `json:"policy"`
}

// Agreement is the finalized outcome of a contract negotiation.
type Agreement struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id"`
	AssetID    string `json:"asset_id"`
}
