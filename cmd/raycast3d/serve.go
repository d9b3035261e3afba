package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/raycast3d/internal/raycast3d"
	"github.com/lukaszgryglicki/raycast3d/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve POST /render, /healthz and /metrics over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, workers := serveOptions()
		srv := &http.Server{
			Addr:              addr,
			Handler:           server.New(workers),
			ReadHeaderTimeout: 10 * time.Second,
		}
		errCh := make(chan error, 1)
		go func() {
			raycast3d.Log.Info().Str("addr", addr).Msg("listening")
			errCh <- srv.ListenAndServe()
		}()
		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// serveOptions reads the listen address and per-request workers from flags or
// RAYCAST3D_SERVE_ADDR / RAYCAST3D_SERVE_WORKERS.
func serveOptions() (addr string, workers int) {
	return v.GetString("serve.addr"), v.GetInt("serve.workers")
}
