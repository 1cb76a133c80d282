// Package web wires configuration and lifecycle for the journal web command.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/sunghokang/judgement.archive/internal/platform/config"
	"github.com/sunghokang/judgement.archive/internal/platform/otel"
	"github.com/sunghokang/judgement.archive/internal/platform/timeouts"
	"github.com/sunghokang/judgement.archive/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"JUDGEMENT_ARCHIVE_HTTP_ADDR" envDefault:"localhost:8086"`
	AppName  string `env:"JUDGEMENT_ARCHIVE_APP_NAME"`
}

// ParseConfig loads environment configuration and applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "application display name")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the journal web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		AppName:  cfg.AppName,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
