// Package gallery parses configuration for and runs the gallery command.
package gallery

import (
	"context"
	"flag"
	"fmt"

	platformcmd "github.com/louisbranch/imagebox/internal/platform/cmd"
	"github.com/louisbranch/imagebox/internal/services/gallery"
)

// Config holds the gallery command configuration.
type Config struct {
	HTTPAddr     string `env:"IMAGEBOX_GALLERY_HTTP_ADDR" envDefault:"localhost:8095"`
	AssetBaseURL string `env:"IMAGEBOX_GALLERY_ASSET_BASE_URL"`
}

// ParseConfig reads the environment and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.HTTPAddr, "http-addr", "", "HTTP listen address")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", "", "Image CDN base URL for srcset stories")
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the gallery server and blocks until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceGallery, func(ctx context.Context) error {
		server, err := gallery.NewServer(gallery.Config{
			HTTPAddr:     cfg.HTTPAddr,
			AssetBaseURL: cfg.AssetBaseURL,
		})
		if err != nil {
			return fmt.Errorf("init gallery server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve gallery: %w", err)
		}
		return nil
	})
}
