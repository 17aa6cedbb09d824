package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-agent/internal/adapter"
	"github.com/MKhiriev/go-pass-agent/internal/agent"
	"github.com/MKhiriev/go-pass-agent/internal/config"
	"github.com/MKhiriev/go-pass-agent/internal/crypto"
	"github.com/MKhiriev/go-pass-agent/internal/ipc"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/service"
	"github.com/MKhiriev/go-pass-agent/internal/store"
	"github.com/MKhiriev/go-pass-agent/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gopass-agent: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.GetAgentConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, logFile, err := logger.NewAgentLogger(cfg.Storage.LogPath())
	if err != nil {
		log.Warn().Err(err).Msg("logging to stderr")
	}
	defer logFile.Close()

	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", build.Version).
		Str("date", build.Date).
		Str("commit", build.Commit).
		Msg("starting agent")
	log.Debug().Any("config", config.Effective(cfg)).Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	provider, err := adapter.NewHTTPSyncProvider(cfg.Provider, log)
	if err != nil {
		return fmt.Errorf("error creating sync provider: %w", err)
	}

	services := service.NewServices(storages.Vault, provider, crypto.NewKeyChainService(), log)

	err = agent.New(cfg, storages, services, log, agent.WithVersion(build.Version)).Run(ctx)
	if errors.Is(err, ipc.ErrAlreadyRunning) {
		// the front end races to spawn agents; losing is fine
		log.Info().Msg("another agent holds the lock, exiting")
		return nil
	}
	return err
}
