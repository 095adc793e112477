package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/book-library/internal/app"
	"github.com/MKhiriev/book-library/internal/config"
	"github.com/MKhiriev/book-library/internal/container"
	"github.com/MKhiriev/book-library/internal/handler"
	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/MKhiriev/book-library/internal/server"
	"github.com/MKhiriev/book-library/internal/telemetry"
	"github.com/MKhiriev/book-library/internal/webapi"
	"github.com/MKhiriev/book-library/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	startedAt := time.Now()

	log := logger.NewLogger("book-library-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	version := cfg.App.Version
	if version == "" {
		version = build.BuildVersion()
	}

	tracing, err := telemetry.NewProvider(context.Background(), telemetry.Config{
		ServiceName:    cfg.App.Name,
		ServiceVersion: version,
		Exporter:       cfg.Tracing.Exporter,
		Endpoint:       cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		SamplingRate:   cfg.Tracing.SamplingRate,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating tracer provider")
	}

	c, err := app.NewContainer(cfg, build, startedAt, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating dependency container")
	}
	resolver := container.NewDependencyResolver(c)

	api := webapi.NewConfiguration(log)
	if err = app.RegisterWebAPI(api, resolver); err != nil {
		log.Fatal().Err(err).Msg("error registering web api")
	}

	handlers, err := handler.NewHandlers(api, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log,
		func(context.Context) error { return resolver.Close() },
		tracing.Shutdown,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
