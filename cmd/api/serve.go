package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pet-care-companion/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta la API HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.Close()

		opts := router.Options{
			Credentials: d.creds,
			Policies:    d.cfg.Reconcile.Policies(),
			Logger:      d.log,
			Metrics:     d.metrics,
		}
		if d.gateway != nil {
			opts.Gateway = d.gateway
		}

		srv := &http.Server{
			Addr:         ":" + d.cfg.Server.Port,
			Handler:      router.NewRouter(opts),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 2 * d.cfg.Remote.Timeout(),
		}

		errc := make(chan error, 1)
		go func() {
			d.log.Info("starting server",
				zap.String("addr", srv.Addr),
				zap.Bool("demo", d.cfg.Demo.Enabled),
				zap.String("remote", d.cfg.Remote.BaseURL),
			)
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		d.log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
