package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8086" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.AppName != "" {
		t.Fatalf("app name = %q, want empty default", cfg.AppName)
	}
}

func TestParseConfigEnvAndFlagOverride(t *testing.T) {
	t.Setenv("JUDGEMENT_ARCHIVE_HTTP_ADDR", "localhost:9999")
	t.Setenv("JUDGEMENT_ARCHIVE_APP_NAME", "Archive (staging)")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "localhost:7777"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:7777" {
		t.Fatalf("flag should override env, got %q", cfg.HTTPAddr)
	}
	if cfg.AppName != "Archive (staging)" {
		t.Fatalf("app name = %q", cfg.AppName)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(discard{})
	if _, err := ParseConfig(fs, []string{"-bogus"}); err == nil {
		t.Fatal("expected flag parse error")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
