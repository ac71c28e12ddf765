package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-web-sdk-demo/internal/config"
	"github.com/MKhiriev/go-web-sdk-demo/internal/handler"
	"github.com/MKhiriev/go-web-sdk-demo/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done, then shuts the HTTP server down and waits for
// in-flight requests to finish.
func (s *server) run(ctx context.Context) {
	serverStopped := make(chan struct{})

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		s.httpServer.RunServer()
		close(serverStopped)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-serverStopped
		s.logger.Info().Msg("server Shutdown gracefully")
	case <-serverStopped:
		s.logger.Error().Msg("HTTP server stopped unexpectedly")
	}
}
