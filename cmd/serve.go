package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/toeic-drill.net/internal/adapter/catalog"
	"gitlab.com/toeic-drill.net/internal/adapter/webhook"
	"gitlab.com/toeic-drill.net/internal/core/services/endpoint"
	"gitlab.com/toeic-drill.net/internal/core/services/practice"
	"gitlab.com/toeic-drill.net/internal/core/services/relay"
	"gitlab.com/toeic-drill.net/internal/core/services/submission"
	http2 "gitlab.com/toeic-drill.net/internal/http"
	"gitlab.com/toeic-drill.net/internal/schedulerengine"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the relay and practice HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	sysCfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("Starting service", "name", serviceName, "settingsBackend", sysCfg.StoreConfig.Backend)

	ctxBg := context.Background()

	// SECONDARY PORTS
	settingsRepo, err := openSettings(ctxBg, sysCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open settings: %w", err)
	}
	defer settingsRepo.Close()
	webhookClient := webhook.NewClient(sysCfg.RelayConfig, logger)
	problemCatalog := catalog.NewFileCatalog(sysCfg.CatalogConfig.ProblemsDir, logger)

	//services
	endpointStore := endpoint.NewEndpointStore(ctxBg, settingsRepo, logger)
	relaySvc := relay.NewRelayService(webhookClient, logger)
	submissionSvc := submission.NewSubmissionService(relaySvc, logger)
	practiceSvc := practice.NewPracticeService(problemCatalog, relaySvc, submissionSvc, endpointStore, logger)
	serviceProvider := http2.NewServiceProvider(relaySvc, practiceSvc, submissionSvc, endpointStore)

	//server
	httpServer := http2.NewServer(sysCfg.HTTPConfig, serviceName, *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		return err
	}
	serveErr := httpServer.Start(ctxBg)

	scheduler := schedulerengine.NewSchedulerEngine(sysCfg.AttemptCfg, submissionSvc, logger)
	if err := scheduler.Start(); err != nil {
		return err
	}

	select {
	case <-quit:
	case err := <-serveErr:
		if err != nil {
			scheduler.Stop()
			return err
		}
	}
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	scheduler.Stop()
	if err := httpServer.Stop(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	submissionSvc.Wait()

	logger.Info("successfully shutdown server")
	return nil
}
