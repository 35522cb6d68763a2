package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/handlers/dashboard"
	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/de-tools/dummy-atlas/pkg/services/dataset"
	"github.com/de-tools/dummy-atlas/pkg/services/profiles"

	atlasmiddleware "github.com/de-tools/dummy-atlas/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          http.Handler
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Builder  dataset.Builder
	Registry profiles.Registry
	Defaults domain.Params
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	logger := config.Dependencies.Logger
	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func ConfigureRouter(config Config) http.Handler {
	deps := config.Dependencies
	h := dashboard.NewHandler(deps.Builder, deps.Registry, deps.Defaults)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(atlasmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Get("/", h.Dashboard)
	router.Get("/chart", h.Chart)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", h.ListCategories)
		r.Get("/dataset", h.GetDataset)
		r.Get("/dataset.csv", h.DownloadCSV)
		r.Get("/dataset.xlsx", h.DownloadXLSX)
	})

	return router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
