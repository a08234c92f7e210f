package main

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Think-iT-Labs/jad/internal/config"
	"github.com/Think-iT-Labs/jad/internal/controlplane"
	"github.com/Think-iT-Labs/jad/internal/core"
	"github.com/Think-iT-Labs/jad/internal/db"
	"github.com/Think-iT-Labs/jad/internal/identity"
	"github.com/Think-iT-Labs/jad/internal/vault"
)

// buildServices wires the core orchestration against the control plane,
// the did:web resolver and the vault.
func buildServices(cfg *config.Config, pool *pgxpool.Pool) *core.Services {
	cp := controlplane.NewClient(cfg.ControlPlaneURL, cfg.ControlPlaneAPIKey)
	secrets := vault.NewClient(vault.Settings{
		URL:          cfg.VaultURL,
		Token:        cfg.VaultToken,
		SecretsPath:  cfg.VaultSecretsPath,
		TokenURL:     cfg.VaultTokenURL,
		ClientID:     cfg.VaultClientID,
		ClientSecret: cfg.VaultClientSecret,
	})

	deps := core.Dependencies{
		Identity:     identity.NewResolver(),
		Negotiations: cp.Negotiations(),
		Transfers:    cp.Transfers(),
		Credentials:  cp.Credentials(),
		Catalog:      cp.Catalog(),
		HTTPClient:   &http.Client{},

		Tx:           db.NewTxRunner(pool),
		Participants: cp.Participants(),
		Configs:      cp.Configs(),
		Secrets:      secrets,
		DataPlanes:   cp.DataPlanes(),
		Assets:       cp.Assets(),
		Policies:     cp.Policies(),
		Contracts:    cp.ContractDefinitions(),
	}

	opts := core.Options{
		Protocol:            cfg.Protocol,
		TransferType:        cfg.TransferType,
		DestinationType:     cfg.DestinationType,
		DataPlaneControlURL: cfg.DataPlaneControlURL,
		WatchInterval:       cfg.PollInterval,
		MaxWait:             cfg.MaxWait,
		EDRWaitAttempts:     cfg.EDRWaitAttempts,
	}

	return core.NewServices(deps, opts)
}
