package model

// VaultConfig is the per-participant HashiCorp Vault access configuration
// carried by the onboarding manifest and persisted (as JSON) into the
// participant configuration.
type VaultConfig struct {
	URL         string `json:"url" validate:"required,url"`
	SecretsPath string `json:"secrets_path,omitempty"`
	FolderPath  string `json:"folder_path,omitempty"`
	// Token authenticates directly when set; otherwise the OAuth
	// client-credentials below are exchanged for a vault token.
	Token        string `json:"token,omitempty"`
	TokenURL     string `json:"token_url,omitempty"`
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}

// ParticipantManifest is the recipe for onboarding a new participant.
type ParticipantManifest struct {
	ParticipantContextID string      `json:"participant_context_id"`
	ParticipantID        string      `json:"participant_id" validate:"required"`
	IsActive             bool        `json:"is_active"`
	TokenURL             string      `json:"token_url" validate:"required,url"`
	ClientID             string      `json:"client_id" validate:"required"`
	ClientSecret         string      `json:"client_secret" validate:"required"`
	VaultConfig          VaultConfig `json:"vault_config" validate:"required"`
}

// ClientSecretAlias is the vault alias under which the client secret is
// stored for this participant.
func (m ParticipantManifest) ClientSecretAlias() string {
	return m.ParticipantContextID + ".clientSecret"
}
