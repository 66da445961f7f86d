package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"petstore/internal/adapters/storage"
	"petstore/internal/config"
	"petstore/internal/platform/logger"
	"petstore/internal/router"

	"golang.org/x/sync/errgroup"
)

// @title Petstore API
// @version 1.0
// @description Catálogo en memoria de mascotas: GET /pet/{id} y POST /pet.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "petstore: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("close store", map[string]any{"err": err.Error()})
		}
	}()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{Repo: repo, Logger: log}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{
			"addr":  srv.Addr,
			"store": string(cfg.Store.Driver),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newLogger(c config.LogConfig) (logger.Logger, error) {
	lvl, err := logger.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	return logger.New(logger.Options{Level: lvl, Format: format, App: c.App}), nil
}
