package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Addr string `env:"JUDGEMENT_ARCHIVE_TEST_ADDR" envDefault:"localhost:9"`
	TTL  int    `env:"JUDGEMENT_ARCHIVE_TEST_TTL" envDefault:"30"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "localhost:9" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.TTL != 30 {
		t.Fatalf("expected default ttl 30, got %d", cfg.TTL)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("JUDGEMENT_ARCHIVE_TEST_ADDR", "0.0.0.0:8086")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "0.0.0.0:8086" {
		t.Fatalf("expected env addr, got %q", cfg.Addr)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("JUDGEMENT_ARCHIVE_TEST_TTL", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
