package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gitlab.com/toeic-drill.net/internal/adapter/logging"
	"gitlab.com/toeic-drill.net/internal/adapter/redis/settingsport"
	"gitlab.com/toeic-drill.net/internal/adapter/sqlstore"
	"gitlab.com/toeic-drill.net/internal/config"
	"gitlab.com/toeic-drill.net/internal/core/ports/secondary"
	logger2 "gitlab.com/toeic-drill.net/internal/global/logger"
)

const serviceName = "toeic-drill"

var (
	envName    string
	configPath string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           serviceName,
		Short:         "TOEIC reading drills with results relayed to a spreadsheet webhook",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&envName, "env", "", "load <env>.env before reading the environment")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional TOML config file")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newEndpointCmd())
	rootCmd.AddCommand(newResultsCmd())

	return rootCmd
}

// InitReader loads <env>.env into the process environment. A missing
// file is reported and skipped; variables already set are kept.
func InitReader(environment string) {
	if environment == "" {
		return
	}
	if err := godotenv.Load(environment + ".env"); err != nil {
		logger2.Warn("Env file not loaded", "file", environment+".env", "error", err)
	}
}

// loadConfig reads the env file and the optional TOML file, then installs
// the process-wide logger at the configured level.
func loadConfig() (*config.AppConfig, *logging.ZapLogger, error) {
	InitReader(envName)

	fileCfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	sysCfg := config.NewSystemConfig(fileCfg)

	logger := logging.NewZapLogger(sysCfg.DebugMode)
	logger2.Use(logger)
	return sysCfg, logger, nil
}

// openSettings opens the configured settings backend
func openSettings(ctx context.Context, sysCfg *config.AppConfig, logger *logging.ZapLogger) (secondary.SettingsRepository, error) {
	switch sysCfg.StoreConfig.Backend {
	case config.BackendSQLite:
		return sqlstore.OpenSQLite(ctx, sysCfg.StoreConfig.SQLitePath, logger)
	case config.BackendPostgres:
		return sqlstore.OpenPostgres(ctx, sysCfg.PostgresConfig.Url, logger)
	case config.BackendRedis:
		return settingsport.Connect(ctx, sysCfg.RedisConfig, logger)
	default:
		return nil, fmt.Errorf("unknown settings backend %q", sysCfg.StoreConfig.Backend)
	}
}
