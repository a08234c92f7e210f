package model

// Asset is a data offering owned by a participant.
type Asset struct {
	ID                   string            `json:"id"`
	ParticipantContextID string            `json:"participant_context_id"`
	Properties           map[string]string `json:"properties,omitempty"`
	DataAddress          DataAddress       `json:"data_address"`
}

// PolicyDefinition binds a policy to a participant.
type PolicyDefinition struct {
	ID                   string `json:"id"`
	ParticipantContextID string `json:"participant_context_id"`
	Policy               Policy `json:"policy"`
}

// Criterion is one predicate of an asset selector.
type Criterion struct {
	OperandLeft  string `json:"operand_left"`
	Operator     string `json:"operator"`
	OperandRight string `json:"operand_right"`
}

// ContractDefinition links access and contract policies to a set of assets.
type ContractDefinition struct {
	ID                   string      `json:"id"`
	ParticipantContextID string      `json:"participant_context_id"`
	AccessPolicyID       string      `json:"access_policy_id"`
	ContractPolicyID     string      `json:"contract_policy_id"`
	AssetsSelector       []Criterion `json:"assets_selector"`
}
