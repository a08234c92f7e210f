package model

// DataPlaneInstance registers a data plane for a participant with the
// selector.
type DataPlaneInstance struct {
	ParticipantContextID string `json:"participant_context_id"`
	AllowedSourceType    string `json:"allowed_source_type"`
	AllowedTransferType  string `json:"allowed_transfer_type"`
	URL                  string `json:"url"`
}
