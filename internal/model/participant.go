package model

// ParticipantState is the lifecycle state of a participant context.
type ParticipantState string

const (
	ParticipantStateCreated   ParticipantState = "CREATED"
	ParticipantStateActivated ParticipantState = "ACTIVATED"
)

// ParticipantContext is the identity record for one dataspace participant.
// It is created by onboarding and never mutated by the data-request pipeline.
type ParticipantContext struct {
	ParticipantContextID string           `json:"participant_context_id"`
	Identity             string           `json:"identity"`
	State                ParticipantState `json:"state"`
}
