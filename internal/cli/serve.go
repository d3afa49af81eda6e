package cli

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tilestitch/internal/server"
	"github.com/matzehuels/tilestitch/pkg/pipeline"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags   renderFlags
		addr    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve exposes the solver as an HTTP API:

  POST /v1/solve?format=json|txt|png|dot|svg|pdf   tile text in the body
  POST /v1/corners                                  tile text in the body
  GET  /healthz
  GET  /version`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.pipelineOptions(cmd, &flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, c.Logger, server.WithDefaults(opts), server.WithTimeout(timeout))
			return c.listen(ctx, &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: readHeaderTimeout,
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().DurationVar(&timeout, "timeout", server.DefaultTimeout, "per-request solve timeout")
	cmd.Flags().StringVar(&flags.mark, "mark", pipeline.DefaultMark, "default mark for txt responses")
	cmd.Flags().StringVar(&flags.motif, "motif", "", "motif file (default: sea monster)")
	cmd.Flags().IntVar(&flags.scale, "scale", pipeline.DefaultScale, "default pixel size of png responses")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

// listen serves until ctx is cancelled, then shuts down gracefully.
func (c *CLI) listen(ctx context.Context, hs *http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c.Logger.Info("listening", "addr", hs.Addr)
		if err := hs.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		c.Logger.Info("shutting down")
		return hs.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
