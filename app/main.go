package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/rss-duo/app/api"
	"github.com/lysyi3m/rss-duo/app/cfg"
	"github.com/lysyi3m/rss-duo/app/feed"
	"github.com/lysyi3m/rss-duo/app/tui"
)

func main() {
	config, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if config == nil {
		// Help was shown
		return
	}

	logFile, err := setupLogging(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	left, right := config.LeftSource(), config.RightSource()

	fetcher := feed.NewFetcher(&http.Client{}, config.UserAgent, config.Timeout)
	parser := feed.NewParser()
	loader := feed.NewLoader(fetcher, parser, left, right)

	slog.Info("Starting RSS Duo",
		"version", config.Version,
		"left", left.URL,
		"right", right.URL,
		"timeout", config.Timeout,
		"serve", config.Serve)

	if config.Serve {
		if err := serve(config, loader); err != nil {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := tui.Run(loader, left, right); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging installs the default slog logger. The terminal UI owns
// stdout, so its logs go to the log file or nowhere.
func setupLogging(config *cfg.Cfg) (*os.File, error) {
	level := slog.LevelInfo
	if config.Debug {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stdout
	var file *os.File

	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, file = f, f
	} else if !config.Serve {
		out = io.Discard
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))

	return file, nil
}

func serve(config *cfg.Cfg, loader *feed.Loader) error {
	server := api.NewServer(api.NewHandler(loader, config.Version))

	httpServer := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: config.Timeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", config.Port)
		slog.Info("API endpoints available",
			"news", fmt.Sprintf("http://localhost:%s/api/news", config.Port),
			"health", fmt.Sprintf("http://localhost:%s/health", config.Port))

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig)
	case runErr = <-serverErrChan:
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	return runErr
}
