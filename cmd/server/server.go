package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"peerweb/trader-api/internal/config"
	"peerweb/trader-api/internal/infrastructure/crontab"
	"peerweb/trader-api/internal/infrastructure/logger"
	"peerweb/trader-api/internal/infrastructure/observability"
	"peerweb/trader-api/internal/interfaces/httpserver"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	_ "net/http/pprof"
)

type Application struct {
	httpServer *httpserver.HTTPServer
	crontab    *crontab.Crontab
	config     *config.Config
}

func init() {
	logger.GetLogger()
	config.Load()
}

// @title PeerWeb Trader API
// @version 1.0
// @description Retro-futuristic peer-to-peer trading API with a conversational assistant, inventory management, and trader trust ratings.
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func (application *Application) Start() {
	background := context.Background()
	ctx, cancel := context.WithCancel(background)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		err := http.ListenAndServe("0.0.0.0:6060", nil)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(fmt.Sprintf(":%d", application.config.MetricsPort), mux)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := application.crontab.Run(ctx)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := application.httpServer.Run()
		if err != nil {
			cancel()
		}
		return err
	})

	if err := eg.Wait(); err != nil {
		panic(err)
	}
}

func main() {
	ctx := context.Background()
	log := logger.GetLogger()

	cfg := config.GetGlobal()
	if cfg == nil {
		log.Fatal().Msg("config not loaded")
	}

	if _, err := logger.New(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Warn().Err(err).Msg("invalid log configuration, keeping defaults")
	}

	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	dataInitializer, err := CreateDataInitializer()
	if err != nil {
		log.Fatal().Err(err).Msg("create data initializer")
	}

	otelShutdown, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	if err := dataInitializer.Install(ctx); err != nil {
		log.Fatal().Err(err).Msg("install data")
	}

	application.Start()
}
