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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/file-translator/file-translator/internal/api"
)

const shutdownGrace = 30 * time.Second

func newServeCommand(v *viper.Viper, flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the translator page and API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, v, flags)
		},
	}
}

func runServe(cmd *cobra.Command, v *viper.Viper, flags *Flags) error {
	a, err := newApp(v, flags, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	router := api.NewRouter(a.controller, api.Options{
		CORSOrigins: a.cfg.CORSOrigins,
		Secrets:     a.secrets,
	}, a.log)

	// No read or write timeout: a translate request lasts as long as the
	// remote call.
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
