// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-invoice-maker/internal/config"
	myHTTP "github.com/MKhiriev/go-invoice-maker/internal/handler/http"
	"github.com/MKhiriev/go-invoice-maker/internal/logger"
)

// Server is the lifecycle contract of the transport server.
//
// RunServer blocks until a stop signal arrives and the graceful shutdown
// completes.
type Server interface {
	RunServer()
}

type server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(handler *myHTTP.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServerAddress
	}

	return &server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler.Init(),
			ReadHeaderTimeout: cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		logger: logger,
	}, nil
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		if err := s.httpServer.Shutdown(context.Background()); err != nil {
			s.logger.Error().Msgf("HTTP server Shutdown: %v", err)
		}

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("Launching HTTP server")
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Msgf("HTTP server ListenAndServe: %v", err)
		}
	}()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}
