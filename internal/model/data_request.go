package model

// DataRequest is the input to one data-request pipeline invocation.
// CounterPartyID is the provider's DID, OfferID references the contract
// offer to negotiate, and PolicyType optionally selects a policy template
// (defaults to the membership template when empty).
type DataRequest struct {
	CounterPartyID string `json:"counter_party_id"`
	OfferID        string `json:"offer_id"`
	PolicyType     string `json:"policy_type,omitempty"`
}
