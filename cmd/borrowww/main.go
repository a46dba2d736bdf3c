// Command borrowww serves www.borrowww.com.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/borrowww/web/internal/config"
	"github.com/borrowww/web/internal/content"
	xlog "github.com/borrowww/web/internal/log"
	"github.com/borrowww/web/internal/pages"
	"github.com/borrowww/web/internal/site"
	"github.com/borrowww/web/internal/web"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("borrowww %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	if err := run(*configPath); err != nil {
		logger := xlog.L()
		logger.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	xlog.Configure(xlog.Config{
		Level:   cfg.LogLevel,
		Service: "borrowww-web",
		Version: version,
	})
	logger := xlog.WithComponent("main")

	guides, err := content.Guides()
	if err != nil {
		return err
	}

	registry := site.BuildRegistry(cfg.BaseURL, guides, pages.WithErrorHandler(web.RenderError))
	server, err := web.NewServer(cfg, registry)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", cfg.ListenAddr).
			Str("base_url", cfg.BaseURL).
			Int("pages", len(registry.Entries())).
			Msg("listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
