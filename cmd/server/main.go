package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-invoice-maker/internal/config"
	myHTTP "github.com/MKhiriev/go-invoice-maker/internal/handler/http"
	"github.com/MKhiriev/go-invoice-maker/internal/logger"
	"github.com/MKhiriev/go-invoice-maker/internal/pdf"
	"github.com/MKhiriev/go-invoice-maker/internal/server"
	"github.com/MKhiriev/go-invoice-maker/internal/service"
	"github.com/MKhiriev/go-invoice-maker/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("invoice-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	repositories, err := store.NewRepositories(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	services := service.NewServices(repositories, cfg.App, log)
	renderer := pdf.NewRenderer(cfg.App.CompanyURL, cfg.App.LogoFile)
	handler := myHTTP.NewHandler(services, renderer, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
