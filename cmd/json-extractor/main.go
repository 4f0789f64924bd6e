package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/Pigges/json-extractor/app"
	actx "github.com/Pigges/json-extractor/app/context"
	aerrors "github.com/Pigges/json-extractor/app/errors"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	a, err := app.New("json-extractor",
		filepath.Join(xdg.ConfigHome, "json-extractor", "config.json"),
		app.WithVersion(version),
		app.WithEnv(osEnv{}),
		app.WithFDs(
			os.Stdin,
			colorable.NewColorable(os.Stdout),
			colorable.NewColorable(os.Stderr),
		),
		app.WithFS(osfs.New()),
		app.WithLogger(isatty.IsTerminal(os.Stderr.Fd())),
	)
	if err != nil {
		aerrors.Log(slog.Default(), err)
		os.Exit(1)
	}
	if err = a.Run(os.Args[1:]); err != nil {
		logger := slog.Default()
		if cmd := a.Command(); cmd != "" {
			logger = logger.With("command", cmd)
		}
		aerrors.Log(logger, err)
		os.Exit(1)
	}
}

type osEnv struct{}

var _ actx.Environment = osEnv{}

func (osEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}
