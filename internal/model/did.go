package model

// ServiceTypeProtocolEndpoint is the DID service type advertising the
// address at which a participant accepts dataspace protocol messages.
const ServiceTypeProtocolEndpoint = "ProtocolEndpoint"

// DIDService is one service entry of a DID document.
type DIDService struct {
	ID              string `json:"id,omitempty"`
	Type            string `json:"type"`
	ServiceEndpoint string `json:"serviceEndpoint"`
}

// DIDDocument is the subset of a resolved DID document this service needs.
type DIDDocument struct {
	ID       string       `json:"id"`
	Services []DIDService `json:"service"`
}
