package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/iggarsaudev/career-hub/internal/adapter/http"
	"github.com/iggarsaudev/career-hub/internal/auth"
	"github.com/iggarsaudev/career-hub/internal/bootstrap"
	"github.com/iggarsaudev/career-hub/internal/config"
)

func main() {
	cfg, err := config.Load()
	log := bootstrap.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Error(context.Background(), "load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := bootstrap.Build(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}
	defer svc.Close()

	authSvc, tokens, err := bootstrap.Auth(cfg)
	if err != nil {
		log.Error(ctx, "auth setup failed", "error", err)
		os.Exit(1)
	}
	if !cfg.AdminConfigured() {
		log.Warn(ctx, "no admin credentials configured, admin routes will reject every login")
	}

	app := httpadapter.NewApp()
	h := httpadapter.NewHandler(svc.Generator, svc.Site, authSvc, log, cfg.RenderTimeout())
	httpadapter.Register(app, h, httpadapter.NewHealthHandler(svc.Readiness), auth.Middleware(tokens))

	errc := make(chan error, 1)
	go func() {
		log.Info(ctx, "http server listening", "port", cfg.Port, "content_source", cfg.ContentSource, "cv_store", cfg.CVStore)
		errc <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		if err != nil {
			log.Error(ctx, "server stopped", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error(shutdownCtx, "shutdown failed", "error", err)
		}
		log.Info(shutdownCtx, "server stopped")
	}
}
