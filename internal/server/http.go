package server

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-comment-board/internal/config"
	"github.com/MKhiriev/go-comment-board/internal/logger"
)

type httpServer struct {
	server *http.Server

	logger *logger.Logger
}

func newHTTPServer(routes http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      routes,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		h.logger.Error().Msgf("HTTP server ListenAndServe: %v", err)
	}
}

func (h *httpServer) Shutdown() {
	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Error().Msgf("HTTP server Shutdown: %v", err)
	}
}
