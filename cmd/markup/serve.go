package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/swdunlop/markup-go/hog"
	"github.com/swdunlop/markup-go/internal/server"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		maxBody int64
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendering over HTTP",
		Long: `Serve element, void, attribute, sanitizer and dataview rendering over HTTP:

  POST /element   {"tag": "a", "attrs": {"href": "#"}, "content": "x"}
  POST /void      {"tag": "input", "attrs": {"required": true}}
  POST /attrs     a JSON object, or YAML with Content-Type: application/yaml
  POST /sanitize  plain text
  POST /view      any JSON document
  GET  /tags
  GET  /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(server.MaxBody(maxBody), server.Inject(hog.RequestID())),
				ReadHeaderTimeout: 10 * time.Second,
			}
			errs := make(chan error, 1)
			go func() { errs <- srv.ListenAndServe() }()
			log.Info().Str(`addr`, addr).Msg(`serving`)

			select {
			case err := <-errs:
				return err
			case <-ctx.Done():
			}
			log.Info().Msg(`shutting down`)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8181", "Address to listen on")
	cmd.Flags().Int64Var(&maxBody, "max-body", 1<<20, "Maximum size of a request body in bytes")
	return cmd
}
