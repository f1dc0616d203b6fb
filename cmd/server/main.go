package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"herald/internal/config"
	"herald/internal/core/culture"
	"herald/internal/core/event"
	"herald/internal/core/report"
	"herald/internal/domain"
	"herald/internal/logger"
	"herald/internal/transport/rest"
	"herald/internal/transport/ws"
	"herald/internal/workers"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	bus := event.New(log)

	cultureService, err := culture.NewService(bus, log, cfg.DefaultCulture, cfg.SupportedCultures)
	if err != nil {
		log.Error("failed to init culture service", "error", err)
		os.Exit(1)
	}

	reporter := report.NewReporter(bus, log, cfg.ErrorReportLimit, cfg.ErrorReportRetention)
	defer reporter.Close()

	wsWebHub := ws.NewHub(ctx, log)
	wsWebHandler := ws.NewWebHandler(wsWebHub, log, cfg.JWTSecret, cfg.AllowedOrigins)

	subs := ws.RegisterSubscribers(bus, wsWebHub)
	defer event.UnsubscribeAll(subs)

	cultureLog := culture.Watch(bus, func(evt domain.EventCultureChanged) {
		log.Debug("culture: subscribers notified", "current", evt.Current)
	})
	defer cultureLog.Unsubscribe()

	router := rest.NewRouter(cfg, &rest.RouterDeps{
		Bus: bus,
		Log: log,

		WsWeb:   wsWebHandler,
		Culture: rest.NewCultureHandler(cultureService),
		Message: rest.NewMessageHandler(bus),
		Report:  rest.NewReportHandler(reporter),
	})

	srv := rest.NewServer(router, cfg.Address)

	scheduler := workers.NewScheduler(log)
	manager := workers.NewManager(log, scheduler, bus, reporter, workers.ManagerOptions{
		HeartbeatInterval: cfg.HeartbeatInterval,
	})

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		wsWebHub.Run()
		return nil
	})

	g.Go(func() error {
		<-manager.Start(gCtx)
		return nil
	})

	g.Go(func() error {
		log.Info("http: starting server", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("http: server shutdown error", "error", err)
		}
		wsWebHub.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("http: server error", "error", err)
	}

	log.Info("server stopped")
}
