package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	actx "github.com/Pigges/json-extractor/app/context"
	"github.com/Pigges/json-extractor/web/server"
)

const shutdownTimeout = 10 * time.Second

// Serve starts the web server.
type Serve struct {
	Address string `arg:"" optional:"" help:"[host]:port to listen on. Defaults to :$PORT, the configured address, or :8080."`
}

// Run the serve command.
func (c *Serve) Run(appCtx *actx.Context) error {
	switch {
	case appCtx.Config.UsingDefaultSecret():
		appCtx.Logger.Warn("using the default secret key; set the SECRET_KEY environment variable")
	case appCtx.Config.Auth.SecretKey.V == "":
		appCtx.Logger.Warn("the secret key is empty; requests with an empty key parameter are authorized")
	}

	srv := server.New(appCtx, c.Address, appCtx.Config.Auth.SecretKey.V)

	// Gracefully shutdown the server if a process signal is received, or the
	// main context is done.
	// See https://dev.to/mokiat/proper-http-shutdown-in-go-3fji
	srvDone := make(chan error, 1)
	go func() {
		srvErr := srv.ListenAndServe()
		appCtx.Logger.Debug("web server shutdown")
		srvDone <- srvErr
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case s := <-sigCh:
		appCtx.Logger.Debug("process received signal", "signal", s)
	case <-appCtx.Ctx.Done():
		appCtx.Logger.Debug("app context is done")
	case srvErr := <-srvDone:
		if srvErr != nil && !errors.Is(srvErr, http.ErrServerClosed) {
			return fmt.Errorf("web server error: %w", srvErr)
		}
		return nil
	}

	// The app context may already be done at this point, so in-flight requests
	// get their own grace period.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(appCtx.Ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed shutting down web server: %w", err)
	}

	return nil
}
