package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// OnboardParticipantWorkflow provisions a participant. The saga runs as a
// single activity so all steps share one transaction boundary, and it is
// not retried since partially created control-plane resources are not
// compensated.
func OnboardParticipantWorkflow(ctx workflow.Context, manifest model.ParticipantManifest) (string, error) {
	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	var participantContextID string
	err := workflow.ExecuteActivity(ctx, "OnboardParticipant", manifest).Get(ctx, &participantContextID)
	if err != nil {
		return "", err
	}
	return participantContextID, nil
}
