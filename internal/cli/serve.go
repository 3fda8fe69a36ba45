package cli

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

	adapthttp "nutrition/internal/adapter/http"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d, err := setup(ctx)
			if err != nil {
				return err
			}
			defer d.close()

			h := adapthttp.New(d.nutrition, d.search, d.history, d.cfg.WebDir, d.log).
				WithLatency(d.cfg.Latency).
				Handler()
			srv := &http.Server{Addr: d.cfg.Addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}

			errc := make(chan error, 1)
			go func() {
				d.log.Info("listening", zap.String("addr", d.cfg.Addr), zap.Duration("latency", d.cfg.Latency))
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

			d.log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
