// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// A small HTTP service configured entirely from the environment: the
// listen address, log level and shutdown grace period all resolve
// through envbind before anything else starts.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/z5labs/envbind"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Addr string `env:"default=:8080"`

	LogLevel string `env:"default=info"`

	ShutdownGrace time.Duration `env:"default=10s"`

	// API_TOKEN or API_TOKEN_FILE, e.g. a mounted secret
	APIToken *string `env:"from_file"`
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func main() {
	var cfg Config
	err := envbind.Bind(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	err = run(cfg, log)
	if err != nil {
		log.Error("service encountered unexpected error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Hello, world")
	})

	s := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening for connections",
			zap.String("addr", cfg.Addr),
			zap.Bool("api_token_set", cfg.APIToken != nil),
		)

		err := s.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()

		log.Info("shutting down", zap.Duration("grace", cfg.ShutdownGrace))

		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer cancel()
		return s.Shutdown(sctx)
	})
	return g.Wait()
}
