package api

import (
	"context"

	"github.com/google/uuid"
	temporalclient "go.temporal.io/sdk/client"

	"github.com/Think-iT-Labs/jad/internal/model"
	"github.com/Think-iT-Labs/jad/internal/workflow"
)

// workflowRunner executes the connector workflows through Temporal and
// waits for their results, so handler callers get a synchronous answer
// while the orchestration itself runs durably on the worker.
type workflowRunner struct {
	tc temporalclient.Client
}

func (wr *workflowRunner) Onboard(ctx context.Context, manifest model.ParticipantManifest) (string, error) {
	opts := temporalclient.StartWorkflowOptions{
		ID:        "onboard-" + uuid.NewString(),
		TaskQueue: workflow.TaskQueue,
	}
	run, err := wr.tc.ExecuteWorkflow(ctx, opts, workflow.OnboardParticipantWorkflow, manifest)
	if err != nil {
		return "", err
	}
	var participantContextID string
	if err := run.Get(ctx, &participantContextID); err != nil {
		return "", err
	}
	return participantContextID, nil
}

func (wr *workflowRunner) RequestData(ctx context.Context, participantContextID string, req model.DataRequest) ([]byte, error) {
	opts := temporalclient.StartWorkflowOptions{
		ID:        "data-request-" + uuid.NewString(),
		TaskQueue: workflow.TaskQueue,
	}
	input := workflow.DataRequestInput{ParticipantContextID: participantContextID, Request: req}
	run, err := wr.tc.ExecuteWorkflow(ctx, opts, workflow.DataRequestWorkflow, input)
	if err != nil {
		return nil, err
	}
	var result workflow.DataRequestResult
	if err := run.Get(ctx, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (wr *workflowRunner) SetupTransfer(ctx context.Context, participantContextID string, req model.DataRequest) (map[string]any, error) {
	opts := temporalclient.StartWorkflowOptions{
		ID:        "transfer-setup-" + uuid.NewString(),
		TaskQueue: workflow.TaskQueue,
	}
	input := workflow.DataRequestInput{ParticipantContextID: participantContextID, Request: req}
	run, err := wr.tc.ExecuteWorkflow(ctx, opts, workflow.TransferSetupWorkflow, input)
	if err != nil {
		return nil, err
	}
	var result workflow.TransferSetupResult
	if err := run.Get(ctx, &result); err != nil {
		return nil, err
	}
	return result.Properties, nil
}
