package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/f3rmion/wishcard/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the card API over HTTP",
	Long: `Serve prompt analysis, card generation, birthday packs and rendering
as a JSON API.

Routes:
  GET  /healthz
  GET  /v1/themes
  GET  /v1/history
  POST /v1/analyze
  POST /v1/cards
  POST /v1/pack
  POST /v1/render`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

const shutdownTimeout = 10 * time.Second

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	addr := serveAddr
	if addr == "" {
		addr = app.cfg.Server.Addr
	}

	e := server.New(server.NewHandler(app.pipeline, app.gallery, app.logger))

	errc := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return err
		}
	case <-cmd.Context().Done():
	}
	app.logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(ctx)
}
