package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/f3rmion/wishcard/internal/assets"
	"github.com/f3rmion/wishcard/internal/compose"
	"github.com/f3rmion/wishcard/internal/config"
	"github.com/f3rmion/wishcard/internal/export"
	"github.com/f3rmion/wishcard/internal/fonts"
	"github.com/f3rmion/wishcard/internal/gallery"
	"github.com/f3rmion/wishcard/internal/logutil"
)

// textureTimeout bounds one remote texture download.
const textureTimeout = 15 * time.Second

// app holds the services a command needs, built from config.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	pipeline *export.Pipeline
	gallery  *gallery.Store // nil when history is disabled
}

// newApp builds the services, logging to stderr.
func newApp() (*app, error) {
	return buildApp(nil)
}

// buildApp builds the services. A nil logOut logs to stderr.
func buildApp(logOut io.Writer) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	var logger *slog.Logger
	if logOut == nil {
		logger, err = logutil.LoggerFromViper()
	} else {
		lc := logutil.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		}
		if viper.GetBool("verbose") && !viper.IsSet("log-level") {
			lc.Level = "debug"
		}
		logger, err = logutil.New(logOut, lc)
	}
	if err != nil {
		return nil, err
	}

	reg, err := fonts.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading fonts: %w", err)
	}
	for family, path := range cfg.Fonts.Families {
		if err := reg.LoadFile(family, path); err != nil {
			logger.Warn("skipping font family", "family", family, "path", path, "error", err)
		}
	}

	loaders := assets.Chain{assets.NewDirLoader(cfg.Assets.Dir)}
	if cfg.Assets.BaseURL != "" {
		loaders = append(loaders, assets.NewHTTPLoader(cfg.Assets.BaseURL, assets.NewHTTPClient(textureTimeout)))
	}
	compositor := compose.New(reg, compose.WithAssets(loaders), compose.WithLogger(logger))

	pipeline := export.NewPipeline(compositor, nil, export.Options{
		Width:       cfg.Render.Width,
		Format:      cfg.Render.Format,
		JPEGQuality: cfg.Render.JPEGQuality,
		Enhance:     cfg.Render.Enhance,
		Branding:    cfg.Branding.Text,
	}, logger)

	a := &app{cfg: cfg, logger: logger, pipeline: pipeline}
	if cfg.Gallery.Enabled && !viper.GetBool("no-history") {
		store, err := gallery.Open(cfg.Gallery.Path)
		if err != nil {
			logger.Warn("render history unavailable", "path", cfg.Gallery.Path, "error", err)
		} else {
			a.gallery = store
		}
	}

	logger.Debug("loaded config", "file", getConfigFile(), "width", cfg.Render.Width, "format", cfg.Render.Format)
	return a, nil
}

// sink returns where exports go: the output dir, recorded in the gallery
// when history is on.
func (a *app) sink(dir string) export.Sink {
	if dir == "" {
		dir = a.cfg.Output.Dir
	}
	var s export.Sink = export.DirSink{Dir: dir}
	if a.gallery != nil {
		s = export.GallerySink{Store: a.gallery, Then: s}
	}
	return s
}

// Close releases the gallery.
func (a *app) Close() {
	if a.gallery != nil {
		if err := a.gallery.Close(); err != nil {
			a.logger.Warn("closing gallery", "error", err)
		}
	}
}

// openLog opens the studio log file next to the config file.
func openLog(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
