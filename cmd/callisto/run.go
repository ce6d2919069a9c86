package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"densityhq/callisto/pkg/api/handlers"
	"densityhq/callisto/pkg/audit"
	"densityhq/callisto/pkg/audit/recorder"
	"densityhq/callisto/pkg/audit/retention"
	"densityhq/callisto/pkg/audit/storage"
	"densityhq/callisto/pkg/cli"
	"densityhq/callisto/pkg/config"
	"densityhq/callisto/pkg/params"
	"densityhq/callisto/pkg/server"
	"densityhq/callisto/pkg/settings"
	"densityhq/callisto/pkg/telemetry/logging"
	"densityhq/callisto/pkg/telemetry/metrics"
	"densityhq/callisto/pkg/validation"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the validation server",
	Long: `Start the Callisto validation server with the specified configuration.

The server listens on the configured address and serves the parameter
validation API, backed by the audit recorder and settings store.

Examples:
  # Start with default config
  callisto run

  # Start with custom config
  callisto run --config /etc/callisto/config.yaml

  # Override listen address
  callisto run --listen 0.0.0.0:8080

  # Validate config without starting server
  callisto run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	if _, err := logging.Setup(logging.Config{
		Level:     cfg.Telemetry.Logging.Level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
	}); err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	if runFlags.dryRun {
		fmt.Println("Configuration valid")
		return nil
	}

	fmt.Printf("Callisto v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)

	ctx, cancel := context.WithCancel(cli.SetupSignalHandler(cmd.Context()))
	defer cancel()

	deps := handlers.Deps{
		Validator:   validation.NewValidator(),
		DefaultMode: params.Mode(cfg.Validation.DefaultMode),
		Debounce:    cfg.Validation.Debounce,
	}

	// Audit subsystem
	var auditStore audit.Store
	if cfg.Audit.Enabled {
		slog.Info("initializing audit recording", "backend", cfg.Audit.Backend)

		var err error
		switch cfg.Audit.Backend {
		case "sqlite":
			auditStore, err = storage.NewSQLiteStore(&storage.SQLiteConfig{
				Path:         cfg.Audit.SQLite.Path,
				MaxOpenConns: cfg.Audit.SQLite.MaxOpenConns,
				MaxIdleConns: cfg.Audit.SQLite.MaxIdleConns,
				WALMode:      cfg.Audit.SQLite.WALMode,
				BusyTimeout:  cfg.Audit.SQLite.BusyTimeout,
			})
			if err != nil {
				return fmt.Errorf("failed to create audit store: %w", err)
			}
		case "memory":
			auditStore = storage.NewMemoryStore()
		default:
			return cli.NewConfigError("audit.backend",
				fmt.Sprintf("unsupported backend: %s", cfg.Audit.Backend))
		}
		defer auditStore.Close()

		auditRecorder := recorder.NewRecorder(auditStore, recorder.DefaultConfig())
		defer auditRecorder.Close()
		deps.Recorder = auditRecorder

		if cfg.Audit.Retention.PruneSchedule != "" {
			pruner := retention.NewPruner(auditStore, &retention.Config{
				RetentionDays: cfg.Audit.Retention.Days,
				MaxRecords:    cfg.Audit.Retention.MaxRecords,
				PruneSchedule: cfg.Audit.Retention.PruneSchedule,
			})
			if err := pruner.Start(ctx); err != nil {
				slog.Warn("failed to start retention scheduler", "error", err)
			} else {
				defer pruner.Stop()
				if next := pruner.NextPruning(); next != nil {
					slog.Debug("audit retention scheduler started", "next_pruning", next)
				}
			}
		}

		fmt.Println("Audit store initialized")
	}

	// Settings store
	if cfg.Settings.Path != "" {
		settingsCfg := settings.DefaultStoreConfig()
		settingsCfg.Path = cfg.Settings.Path

		settingsStore, err := settings.NewStore(settingsCfg)
		if err != nil {
			return fmt.Errorf("failed to open settings store: %w", err)
		}
		defer settingsStore.Close()
		deps.Settings = settingsStore
	}

	// Metrics
	if cfg.Telemetry.Metrics.Enabled {
		deps.Metrics = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	srv := server.NewServer(cfg, deps, server.VersionInfo{
		Version:   Version,
		Commit:    GitCommit,
		BuildTime: BuildDate,
	})
	if auditStore != nil {
		srv.RegisterCheck("audit", auditStore.Ping)
	}

	// Config hot reload
	if cfg.Watch {
		watcher, err := config.NewWatcher(cfgFile, slog.Default())
		if err != nil {
			slog.Warn("failed to create config watcher", "error", err)
		} else {
			defer watcher.Stop()
			if err := watcher.Watch(ctx, func() error {
				return config.ReloadConfig(cfgFile)
			}); err != nil {
				slog.Warn("failed to start config watcher", "error", err)
			}
		}
	}

	fmt.Printf("Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("Health endpoint: http://%s/health\n", cfg.Server.ListenAddress)
	if cfg.Telemetry.Metrics.Enabled {
		fmt.Printf("Metrics endpoint: http://%s%s\n",
			cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Println("Server stopped")
	return nil
}
