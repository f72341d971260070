package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-comment-board/internal/config"
	myHTTP "github.com/MKhiriev/go-comment-board/internal/handler/http"
	"github.com/MKhiriev/go-comment-board/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler *myHTTP.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handler.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v", err)
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

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

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
