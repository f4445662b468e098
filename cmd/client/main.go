// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pod-sync/internal/client"
	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-pod-sync-client", cfg.App.LogPath)
	log.Info().Str("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).BuildVersion()).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	app, err := client.NewApp(ctx, *cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "init client app error: %v\n", err)
		os.Exit(1)
	}

	err = app.Execute(ctx, flag.Args(), os.Stdout)
	if closeErr := app.Close(); closeErr != nil {
		log.Warn().Err(closeErr).Msg("error closing client app")
	}

	if err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrMissingArgument) {
			fmt.Fprintln(os.Stderr, client.Usage())
		}
		os.Exit(1)
	}
}
