package gallery

import (
	"context"
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8095" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8095")
	}
	if cfg.AssetBaseURL != "" {
		t.Fatalf("AssetBaseURL = %q, want empty", cfg.AssetBaseURL)
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("IMAGEBOX_GALLERY_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("IMAGEBOX_GALLERY_ASSET_BASE_URL", "https://cdn.example.com")

	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
	if cfg.AssetBaseURL != "https://cdn.example.com" {
		t.Fatalf("AssetBaseURL = %q", cfg.AssetBaseURL)
	}
}

func TestParseConfigOverrideHTTPAddr(t *testing.T) {
	t.Setenv("IMAGEBOX_GALLERY_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	fs.SetOutput(discard{})
	if _, err := ParseConfig(fs, []string{"-nope"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestRunRejectsEmptyAddress(t *testing.T) {
	t.Setenv("IMAGEBOX_OTEL_ENDPOINT", "")
	if err := Run(context.Background(), Config{}); err == nil {
		t.Fatal("expected init error for empty address")
	}
}

func TestRunStopsWhenContextCanceled(t *testing.T) {
	t.Setenv("IMAGEBOX_OTEL_ENDPOINT", "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, Config{HTTPAddr: "127.0.0.1:0"}); err != nil {
		t.Fatalf("Run() = %v, want nil after cancel", err)
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
