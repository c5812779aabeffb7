package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/toeic-drill.net/internal/adapter/excel"
	"gitlab.com/toeic-drill.net/internal/adapter/webhook"
	"gitlab.com/toeic-drill.net/internal/core/services/endpoint"
	"gitlab.com/toeic-drill.net/internal/core/services/relay"
	"gitlab.com/toeic-drill.net/internal/domain"
	"gitlab.com/toeic-drill.net/internal/static/errs"
)

var (
	exportPart  string
	exportLevel string
	exportOut   string
)

func newResultsCmd() *cobra.Command {
	resultsCmd := &cobra.Command{
		Use:   "results",
		Short: "Work with results recorded by the webhook",
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch recorded results and write them to an xlsx file",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	exportCmd.Flags().StringVar(&exportPart, "part", string(domain.PartFive), "part5, part6 or part7")
	exportCmd.Flags().StringVar(&exportLevel, "level", string(domain.Difficulty600), "600, 700 or 800")
	exportCmd.Flags().StringVar(&exportOut, "out", "results.xlsx", "output file")

	resultsCmd.AddCommand(exportCmd)
	return resultsCmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	part := domain.Part(exportPart)
	level := domain.Difficulty(exportLevel)
	if !part.Valid() || !level.Valid() {
		return fmt.Errorf("unknown part %q or level %q", exportPart, exportLevel)
	}

	sysCfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	repo, err := openSettings(ctx, sysCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open settings: %w", err)
	}
	defer repo.Close()

	endpointURL := endpoint.NewEndpointStore(ctx, repo, logger).Get()
	if endpointURL == "" {
		return errs.ErrEndpointNotConfigured
	}

	relaySvc := relay.NewRelayService(webhook.NewClient(sysCfg.RelayConfig, logger), logger)
	set, err := relaySvc.FetchResults(ctx, endpointURL, part, level)
	if err != nil {
		return fmt.Errorf("failed to fetch results: %w", err)
	}

	if err := excel.ExportResults(excel.DefaultExportConfig(exportOut), set.Data); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d results to %s\n", len(set.Data), exportOut)
	return nil
}
