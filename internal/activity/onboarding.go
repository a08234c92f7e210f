package activity

import (
	"context"

	"github.com/Think-iT-Labs/jad/internal/core"
	"github.com/Think-iT-Labs/jad/internal/model"
)

// Onboarding wraps the provisioning saga. The whole saga runs as one
// activity so its transaction boundary stays intact; splitting the steps
// into separate activities would commit each one independently.
type Onboarding struct {
	services *core.Services
}

func NewOnboarding(services *core.Services) *Onboarding {
	return &Onboarding{services: services}
}

// OnboardParticipant runs the onboarding chain and returns the participant
// context id.
func (a *Onboarding) OnboardParticipant(ctx context.Context, manifest model.ParticipantManifest) (string, error) {
	return a.services.Onboarding.Onboard(ctx, manifest)
}
