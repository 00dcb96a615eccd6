package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/liftoff/internal/config"
	"github.com/five82/liftoff/internal/launch"
	"github.com/five82/liftoff/internal/prefs"
	"github.com/five82/liftoff/internal/spacex"
	"github.com/five82/liftoff/internal/state"
	"github.com/five82/liftoff/internal/ui"
)

// Options configure the liftoff application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/liftoff/prefs.toml
}

// Components are the collaborators derived from one config load.
type Components struct {
	Config   config.Config
	Client   *spacex.Client
	Enricher launch.Enricher
	Fetcher  *launch.Fetcher
}

// Build wires the API client, formatter and fetcher for cfg.
func Build(cfg config.Config) (Components, error) {
	client, err := spacex.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return Components{}, fmt.Errorf("init spacex client: %w", err)
	}
	enricher := launch.NewEnricher(launch.NewFormatter(cfg.Locale, cfg.Location))
	return Components{
		Config:   cfg,
		Client:   client,
		Enricher: enricher,
		Fetcher:  launch.NewFetcher(client, enricher),
	}, nil
}

// Load reads the config at path and builds components from it.
func Load(path string) (Components, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return Components{}, fmt.Errorf("load config: %w", err)
	}
	return Build(cfg)
}

// UIServices adapts the components for the UI.
func (c Components) UIServices() ui.Services {
	return ui.Services{
		Fetcher:  c.Fetcher,
		Prober:   c.Client,
		Enricher: c.Enricher,
		LogPath:  c.Config.LogFile,
	}
}

// Run boots the liftoff TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	comps, err := Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	return Start(ctx, comps, opts)
}

// Start runs the TUI over already loaded components. Reloads re-read
// opts.ConfigPath.
func Start(ctx context.Context, comps Components, opts Options) error {
	logger, closeLog, err := OpenLog(comps.Config)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()
	slog.SetDefault(logger)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		logger.Warn("using default prefs", "path", prefsPath, "error", err)
	}

	logger.Info("liftoff starting",
		"config", comps.Config.Path,
		"api_url", comps.Client.BaseURL(),
		"locale", comps.Enricher.Format.Locale(),
		"timezone", comps.Config.Timezone)

	reload := func() (ui.Services, error) {
		next, err := Load(opts.ConfigPath)
		if err != nil {
			return ui.Services{}, err
		}
		logger.Info("config reloaded", "api_url", next.Client.BaseURL(), "locale", next.Enricher.Format.Locale())
		return next.UIServices(), nil
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Machine:   state.NewMachine(),
		Services:  comps.UIServices(),
		Reload:    reload,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
	})
}
