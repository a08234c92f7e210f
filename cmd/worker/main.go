package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	temporalclient "go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/Think-iT-Labs/jad/internal/activity"
	"github.com/Think-iT-Labs/jad/internal/config"
	"github.com/Think-iT-Labs/jad/internal/db"
	"github.com/Think-iT-Labs/jad/internal/logging"
	"github.com/Think-iT-Labs/jad/internal/metrics"
	"github.com/Think-iT-Labs/jad/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate("worker"); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	certPool, err := db.NewCertPool(ctx, cfg.CertDatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to cert database")
	}
	if certPool != nil {
		defer certPool.Close()
	}

	tlsConfig, err := cfg.TemporalTLS()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure temporal TLS")
	}
	dialOpts := temporalclient.Options{HostPort: cfg.TemporalAddress}
	if tlsConfig != nil {
		dialOpts.ConnectionOptions = temporalclient.ConnectionOptions{TLS: tlsConfig}
		logger.Info().Msg("temporal mTLS enabled")
	}
	tc, err := temporalclient.Dial(dialOpts)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to temporal")
	}
	defer tc.Close()

	services := buildServices(cfg, certPool)

	w := worker.New(tc, workflow.TaskQueue, worker.Options{})

	// Register activities
	w.RegisterActivity(activity.NewDataRequest(services))
	w.RegisterActivity(activity.NewOnboarding(services))

	// Register workflows
	w.RegisterWorkflow(workflow.DataRequestWorkflow)
	w.RegisterWorkflow(workflow.TransferSetupWorkflow)
	w.RegisterWorkflow(workflow.OnboardParticipantWorkflow)

	if cfg.MetricsAddr != "" {
		if certPool != nil {
			metrics.RegisterPgxPoolMetrics(certPool)
		}
		metricsSrv := metrics.NewServer(cfg.MetricsAddr)
		go func() {
			logger.Info().Str("addr", cfg.MetricsAddr).Msg("starting metrics server")
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	logger.Info().Str("task_queue", workflow.TaskQueue).Msg("starting worker")
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Fatal().Err(err).Msg("worker failed")
	}
}
