package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Think-iT-Labs/jad/internal/activity"
	"github.com/Think-iT-Labs/jad/internal/model"
)

// TaskQueue is the Temporal task queue shared by the API and the worker.
const TaskQueue = "connector-tasks"

// DataRequestInput identifies the consuming participant and the request to
// run on its behalf.
type DataRequestInput struct {
	ParticipantContextID string            `json:"participant_context_id"`
	Request              model.DataRequest `json:"request"`
}

// DataRequestResult carries the downloaded payload.
type DataRequestResult struct {
	Data []byte `json:"data"`
}

// TransferSetupResult carries the raw credential properties of a started
// transfer, for callers that want the endpoint but not the payload.
type TransferSetupResult struct {
	Properties map[string]any `json:"properties"`
}

// pipelineActivityOptions covers the polling stages, which can run up to
// the watcher max wait. Stages are not retried: rerunning a failed stage
// would open a second negotiation or transfer on the provider side.
func pipelineActivityOptions() workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
}

// DataRequestWorkflow runs the full pipeline: negotiate, transfer, resolve
// the endpoint credential, download. The first failing stage fails the
// workflow and no later stage executes.
func DataRequestWorkflow(ctx workflow.Context, input DataRequestInput) (*DataRequestResult, error) {
	ctx = workflow.WithActivityOptions(ctx, pipelineActivityOptions())

	credential, err := resolveCredential(ctx, input)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = workflow.ExecuteActivity(ctx, "FetchData", *credential).Get(ctx, &data)
	if err != nil {
		return nil, err
	}

	return &DataRequestResult{Data: data}, nil
}

// TransferSetupWorkflow runs the pipeline up to credential resolution and
// returns the credential's property bag.
func TransferSetupWorkflow(ctx workflow.Context, input DataRequestInput) (*TransferSetupResult, error) {
	ctx = workflow.WithActivityOptions(ctx, pipelineActivityOptions())

	credential, err := resolveCredential(ctx, input)
	if err != nil {
		return nil, err
	}

	return &TransferSetupResult{Properties: credential.Properties}, nil
}

func resolveCredential(ctx workflow.Context, input DataRequestInput) (*model.EndpointCredential, error) {
	var participant model.ParticipantContext
	err := workflow.ExecuteActivity(ctx, "GetParticipant", input.ParticipantContextID).Get(ctx, &participant)
	if err != nil {
		return nil, err
	}

	var agreement model.Agreement
	err = workflow.ExecuteActivity(ctx, "Negotiate", activity.NegotiateParams{
		Participant: participant,
		Request:     input.Request,
	}).Get(ctx, &agreement)
	if err != nil {
		return nil, err
	}

	var process model.TransferProcess
	err = workflow.ExecuteActivity(ctx, "StartTransfer", activity.StartTransferParams{
		Participant: participant,
		Agreement:   agreement,
	}).Get(ctx, &process)
	if err != nil {
		return nil, err
	}

	var credential model.EndpointCredential
	err = workflow.ExecuteActivity(ctx, "ResolveCredential", process.ID).Get(ctx, &credential)
	if err != nil {
		return nil, err
	}
	return &credential, nil
}
