package core

import (
	"errors"
	"fmt"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// ErrWatchTimeout is returned when a state watch exceeds its maximum wait
// without the observed process reaching a terminal state.
var ErrWatchTimeout = errors.New("timed out waiting for terminal state")

// ErrMissingEndpoint is returned when an HTTP pull credential carries no
// endpoint.
var ErrMissingEndpoint = errors.New("endpoint not found in credential")

// ResolutionError indicates that identity resolution for a counter-party
// failed.
type ResolutionError struct {
	DID   string
	Cause error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve address for did %s: %v", e.DID, e.Cause)
}

func (e *ResolutionError) Unwrap() error { return e.Cause }

// EndpointNotFoundError indicates a resolved DID document contains no
// ProtocolEndpoint service entry.
type EndpointNotFoundError struct {
	DID string
}

func (e *EndpointNotFoundError) Error() string {
	return fmt.Sprintf("no ProtocolEndpoint service found in DID document for %s", e.DID)
}

// NegotiationTerminatedError indicates the counter-party terminated the
// contract negotiation.
type NegotiationTerminatedError struct {
	NegotiationID string
}

func (e *NegotiationTerminatedError) Error() string {
	return fmt.Sprintf("contract negotiation %s terminated", e.NegotiationID)
}

// TransferTerminatedError indicates the transfer process terminated before
// starting. Detail carries the provider-supplied error detail when present.
type TransferTerminatedError struct {
	TransferID string
	Detail     string
}

func (e *TransferTerminatedError) Error() string {
	return fmt.Sprintf("transfer process %s terminated: %s", e.TransferID, e.Detail)
}

// CredentialUnresolvedError indicates no endpoint credential was available
// for a started transfer.
type CredentialUnresolvedError struct {
	TransferID string
	Cause      error
}

func (e *CredentialUnresolvedError) Error() string {
	return fmt.Sprintf("could not resolve credential for transfer process %s: %v", e.TransferID, e.Cause)
}

func (e *CredentialUnresolvedError) Unwrap() error { return e.Cause }

// UnsupportedEndpointTypeError indicates a credential type the fetcher
// cannot download from.
type UnsupportedEndpointTypeError struct {
	Type model.CredentialType
}

func (e *UnsupportedEndpointTypeError) Error() string {
	return fmt.Sprintf("credential type not supported: %s", e.Type)
}

// DownloadError indicates the data plane answered the download request with
// a non-2xx status.
type DownloadError struct {
	Status int
	Body   string
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("data plane request failed: status %d: %s", e.Status, e.Body)
}

// Onboarding step names, in execution order.
const (
	StepParticipantContext = "participant-context"
	StepConfiguration      = "configuration"
	StepClientSecret       = "client-secret"
	StepDataPlane          = "data-plane"
	StepAsset              = "asset"
	StepPolicyDefinition   = "policy-definition"
	StepContractDefinition = "contract-definition"
)

// OnboardingError reports which onboarding step failed and why. Steps
// already completed are left in place.
type OnboardingError struct {
	Step  string
	Cause error
}

func (e *OnboardingError) Error() string {
	return fmt.Sprintf("onboarding failed at step %s: %v", e.Step, e.Cause)
}

func (e *OnboardingError) Unwrap() error { return e.Cause }
