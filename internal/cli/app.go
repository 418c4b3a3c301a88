// Package cli provides the droidkeys command line application.
package cli

import (
	"context"
	"os"

	"github.com/bnema/droidkeys/internal/cli/styles"
	"github.com/bnema/droidkeys/internal/domain/build"
	"github.com/bnema/droidkeys/internal/infrastructure/config"
	"github.com/bnema/droidkeys/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigFile    string
	ConfigManager *config.Manager
	Theme      *styles.Theme
	BuildInfo  build.Info

	ctx context.Context
}

// NewApp loads configuration and sets up logging. configPath, if set,
// replaces the XDG lookup.
func NewApp(configPath string) (*App, error) {
	mgr, err := newConfigManager(configPath)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config_file", mgr.GetConfigFile()).Msg("configuration loaded")

	return &App{
		Config:        cfg,
		ConfigFile:    mgr.GetConfigFile(),
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		ctx:           ctx,
	}, nil
}

func newConfigManager(configPath string) (*config.Manager, error) {
	if configPath != "" {
		return config.NewManagerForFile(configPath)
	}
	return config.NewManager()
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
