package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/wordsmith/internal/api"
	"github.com/dgallion1/wordsmith/internal/automation"
	"github.com/dgallion1/wordsmith/internal/config"
	"github.com/dgallion1/wordsmith/internal/history"
	"github.com/dgallion1/wordsmith/internal/locker"
	"github.com/dgallion1/wordsmith/internal/mcpserv"
	"github.com/dgallion1/wordsmith/internal/pathres"
	"github.com/dgallion1/wordsmith/internal/tools"
)

const version = "0.3.0"

func main() {
	stdio := flag.Bool("stdio", false, "serve the tool catalog over MCP on stdin/stdout instead of HTTP")
	flag.Parse()

	// In stdio mode stdout carries the protocol, so logs go to stderr.
	logOut := os.Stdout
	if *stdio {
		logOut = os.Stderr
	}
	log := slog.New(slog.NewJSONHandler(logOut, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	soffice := automation.Probe(cfg.SofficePath, cfg.SofficeTimeout)
	if !soffice.Available() {
		log.Warn("soffice not found; pdf/doc/html conversion tools will report missing_dependency")
	}

	var store *history.Store
	if cfg.HistoryDBPath != "" {
		var err error
		store, err = history.Open(cfg.HistoryDBPath)
		if err != nil {
			log.Error("open history store", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		if n, err := store.Prune(cfg.HistoryTTL); err != nil {
			log.Warn("prune history", "error", err)
		} else if n > 0 {
			log.Info("pruned history", "removed", n)
		}
	}

	svc := &tools.Service{
		Resolver: pathres.New(cfg.EditPath),
		Locker:   locker.New(),
		Soffice:  soffice,
		History:  store,
		Log:      log,
	}

	if *stdio {
		log.Info("starting wordsmith mcp server", "version", version, "base_dir", cfg.EditPath)
		if err := mcpserv.Serve(svc, version); err != nil {
			log.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		return
	}

	srv := api.NewServer(svc, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting wordsmith", "version", version, "port", cfg.Port, "base_dir", cfg.EditPath)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
