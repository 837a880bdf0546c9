package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/orient/orientgo/internal/api"
	"github.com/orient/orientgo/internal/auth"
	"github.com/orient/orientgo/web"
)

type serverConfig struct {
	Addr       string `yaml:"addr"`
	TrustProxy bool   `yaml:"trust_proxy"`
	Auth       struct {
		Enabled bool   `yaml:"enabled"`
		Token   string `yaml:"token"`
	} `yaml:"auth"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	authCfg := auth.Config{Enabled: cfg.Auth.Enabled, Token: cfg.Auth.Token}
	srv := api.NewServer(cfg.Addr, logger, authCfg, cfg.TrustProxy, web.Content)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.Addr, "auth_enabled", authCfg.Enabled, "trust_proxy", cfg.TrustProxy)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// loadConfig reads the optional YAML config file named by ORIENTGO_CONFIG,
// then applies environment variable overrides on top.
func loadConfig(logger *slog.Logger) (serverConfig, error) {
	cfg := serverConfig{Addr: ":8080"}

	if path := os.Getenv("ORIENTGO_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		if cfg.Addr == "" {
			cfg.Addr = ":8080"
		}
		logger.Info("loaded config file", "path", path)
	}

	if v := os.Getenv("ORIENTGO_HTTP_ADDR"); v != "" {
		cfg.Addr = v
	}

	if v := os.Getenv("ORIENTGO_TRUST_PROXY"); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid ORIENTGO_TRUST_PROXY value, ignoring", "value", v)
		} else {
			cfg.TrustProxy = trust
		}
	}

	if v := os.Getenv("ORIENTGO_AUTH_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.New("ORIENTGO_AUTH_ENABLED must be a boolean value (true/false/1/0)")
		}
		cfg.Auth.Enabled = enabled
	}

	if v := os.Getenv("ORIENTGO_AUTH_TOKEN"); v != "" {
		cfg.Auth.Token = v
	}

	if cfg.Auth.Enabled {
		if cfg.Auth.Token == "" {
			return cfg, errors.New("an auth token is required when auth is enabled")
		}
		logger.Info("auth enabled")
	}

	return cfg, nil
}
