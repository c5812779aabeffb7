package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/toeic-drill.net/internal/core/services/endpoint"
)

func newEndpointCmd() *cobra.Command {
	endpointCmd := &cobra.Command{
		Use:   "endpoint",
		Short: "Show or change the configured webhook URL",
	}

	endpointCmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the configured URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEndpointStore(func(ctx context.Context, store *endpoint.EndpointStore) error {
				fmt.Fprintln(cmd.OutOrStdout(), store.Get())
				return nil
			})
		},
	})

	endpointCmd.AddCommand(&cobra.Command{
		Use:   "set <url>",
		Short: "Persist a new URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := endpoint.ValidateURL(args[0]); err != nil {
				return fmt.Errorf("%w: must start with %s", err, endpoint.URLPrefix)
			}
			return withEndpointStore(func(ctx context.Context, store *endpoint.EndpointStore) error {
				return store.Set(ctx, args[0])
			})
		},
	})

	endpointCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the configured URL",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withEndpointStore(func(ctx context.Context, store *endpoint.EndpointStore) error {
				return store.Set(ctx, "")
			})
		},
	})

	return endpointCmd
}

func withEndpointStore(fn func(ctx context.Context, store *endpoint.EndpointStore) error) error {
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

	return fn(ctx, endpoint.NewEndpointStore(ctx, repo, logger))
}
