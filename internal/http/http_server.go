package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/toeic-drill.net/internal/config"
	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/services/endpoint"
	"gitlab.com/toeic-drill.net/internal/core/services/practice"
	"gitlab.com/toeic-drill.net/internal/core/services/relay"
	"gitlab.com/toeic-drill.net/internal/core/services/submission"
	practicehdl "gitlab.com/toeic-drill.net/internal/handlers/practice"
	relayhdl "gitlab.com/toeic-drill.net/internal/handlers/relay"
	settingshdl "gitlab.com/toeic-drill.net/internal/handlers/settings"
)

type ServiceProvider struct {
	relayService    relay.IRelayService
	practiceService practice.IPracticeService
	submissions     submission.ISubmissionService
	endpointStore   endpoint.IEndpointStore
}

func NewServiceProvider(
	relayService relay.IRelayService,
	practiceService practice.IPracticeService,
	submissions submission.ISubmissionService,
	endpointStore endpoint.IEndpointStore,
) *ServiceProvider {
	return &ServiceProvider{
		relayService:    relayService,
		practiceService: practiceService,
		submissions:     submissions,
		endpointStore:   endpointStore,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Config          *config.HTTPConfig
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(cfg *config.HTTPConfig, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Config:          cfg,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	relayhdl.NewRelayHandler(s.ServiceProvider.relayService, s.logger).RegisterRoutes(r)
	practicehdl.
		NewPracticeHandler(s.ServiceProvider.practiceService, s.ServiceProvider.submissions, s.logger).
		RegisterRoutes(r)
	settingshdl.NewSettingsHandler(s.ServiceProvider.endpointStore, s.logger).RegisterRoutes(r)
	s.router = r
	return nil
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens in the background. errCh receives a listen failure, if any.
func (s *Server) Start(ctx context.Context) <-chan error {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Config.Port),
		Handler:      s.router,
		ReadTimeout:  s.Config.ReadTimeout,
		WriteTimeout: s.Config.WriteTimeout,
		IdleTimeout:  s.Config.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "service", s.ServiceName, "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
