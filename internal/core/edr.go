package core

import (
	"context"
	"time"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// CredentialStore resolves the endpoint credential published by the data
// plane for a transfer process.
type CredentialStore interface {
	ResolveByTransfer(ctx context.Context, transferID string) (*model.EndpointCredential, error)
}

// EndpointResolver looks up the endpoint credential once a transfer is
// started. The data plane publishes the credential asynchronously, so a
// single immediate lookup can race it; Attempts > 1 enables a bounded retry
// with the watch interval between attempts.
type EndpointResolver struct {
	store    CredentialStore
	attempts int
	interval time.Duration
}

func NewEndpointResolver(store CredentialStore, opts Options) *EndpointResolver {
	attempts := opts.EDRWaitAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &EndpointResolver{store: store, attempts: attempts, interval: opts.WatchInterval}
}

// ResolveCredential returns the credential for the transfer, or
// CredentialUnresolvedError once the attempt budget is exhausted.
func (r *EndpointResolver) ResolveCredential(ctx context.Context, transferID string) (*model.EndpointCredential, error) {
	interval := r.interval
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	var lastErr error
	for attempt := 0; attempt < r.attempts; attempt++ {
		if attempt > 0 {
			pause := time.NewTimer(interval)
			select {
			case <-ctx.Done():
				pause.Stop()
				return nil, ctx.Err()
			case <-pause.C:
			}
		}
		cred, err := r.store.ResolveByTransfer(ctx, transferID)
		if err == nil {
			return cred, nil
		}
		lastErr = err
	}
	return nil, &CredentialUnresolvedError{TransferID: transferID, Cause: lastErr}
}
