package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mandelsoft/vfs/pkg/memoryfs"

	"github.com/Pigges/json-extractor/app/config"
	actx "github.com/Pigges/json-extractor/app/context"
	"github.com/Pigges/json-extractor/cli"
)

// App is the application.
type App struct {
	name string
	ctx  *actx.Context
	cli  *cli.CLI
	// the logging level is set via the CLI, if the app was initialized with the
	// WithLogger option.
	logLevel *slog.LevelVar
}

// New initializes a new application. configFilePath is the default location
// of the configuration file, which can be overridden via the CLI.
func New(name, configFilePath string, opts ...Option) (*App, error) {
	defaultCtx := &actx.Context{
		Ctx:     context.Background(),
		FS:      memoryfs.New(),
		Env:     emptyEnv{},
		Logger:  slog.Default(),
		Version: "dev",
	}
	app := &App{name: name, ctx: defaultCtx}

	for _, opt := range opts {
		opt(app)
	}

	var err error
	ver := fmt.Sprintf("%s %s", app.name, app.ctx.Version)
	app.cli, err = cli.New(configFilePath, ver)
	if err != nil {
		return nil, err
	}

	return app, nil
}

// Run initializes the application environment and starts execution of the
// application.
func (app *App) Run(args []string) error {
	if err := app.cli.Parse(args); err != nil {
		return err
	}

	if app.logLevel != nil {
		app.logLevel.Set(app.cli.Log.Level)
		slog.SetLogLoggerLevel(app.cli.Log.Level)
	}

	if app.ctx.Config == nil {
		if err := app.loadConfig(); err != nil {
			return err
		}
	}

	app.cli.ApplyConfig(app.ctx.Config)

	if err := app.cli.Execute(app.ctx); err != nil {
		return err
	}

	return nil
}

// Command returns the full path of the command being run, e.g. "extract". It
// is empty if the command line arguments couldn't be parsed.
func (app *App) Command() string {
	return app.cli.Command()
}

func (app *App) loadConfig() error {
	cfg := config.NewConfig(app.ctx.FS, app.cli.ConfigFile)
	if err := cfg.Load(); err != nil {
		return err //nolint:wrapcheck // The error is already descriptive.
	}
	cfg.ApplyEnv(app.ctx.Env.Lookup)
	cfg.SetDefaults()

	app.ctx.Logger.Debug("loaded configuration",
		"path", cfg.Path(), "address", cfg.Server.Address.V,
		"default_secret", cfg.UsingDefaultSecret())
	app.ctx.Config = cfg

	return nil
}

type emptyEnv struct{}

func (emptyEnv) Lookup(string) (string, bool) { return "", false }
