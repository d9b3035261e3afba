// Package server renders scenes over HTTP.
package server

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lukaszgryglicki/raycast3d/internal/raycast3d"
)

// MaxBodyBytes caps a scene upload.
const MaxBodyBytes = 4 << 20

// MaxPixels caps the raster a single request may ask for.
const MaxPixels = 4096 * 4096

type Server struct {
	router   *mux.Router
	registry *prometheus.Registry
	metrics  *raycast3d.Metrics
	workers  int
}

// New builds the router. workers is passed to every render (<= 0: all CPUs).
func New(workers int) *Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	s := &Server{
		router:   mux.NewRouter(),
		registry: reg,
		metrics:  raycast3d.NewMetrics(reg),
		workers:  workers,
	}
	s.router.HandleFunc("/render", s.handleRender).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

// handleRender takes a scene config (JSON by default, ?format=yaml|toml) and
// answers with the PNG.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	cfg, err := raycast3d.DecodeConfig(http.MaxBytesReader(w, r.Body, MaxBodyBytes), format)
	if err != nil {
		httpError(w, err)
		return
	}
	if len(cfg.Meshes) > 0 {
		http.Error(w, "meshes are not accepted over HTTP", http.StatusBadRequest)
		return
	}
	if uint64(cfg.Width)*uint64(cfg.Height) > MaxPixels {
		http.Error(w, "resolution too large", http.StatusBadRequest)
		return
	}
	mode, err := cfg.ShadingMode()
	if err != nil {
		httpError(w, err)
		return
	}
	scene, err := cfg.Scene()
	if err != nil {
		httpError(w, err)
		return
	}

	start := time.Now()
	img, err := raycast3d.Render(r.Context(), scene, raycast3d.RenderOptions{
		Workers: s.workers,
		Shading: mode,
		Metrics: s.metrics,
	})
	if err != nil {
		httpError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := raycast3d.EncodePNG(&buf, img); err != nil {
		httpError(w, err)
		return
	}
	raycast3d.Log.Debug().
		Uint32("width", scene.Width).
		Uint32("height", scene.Height).
		Int("primitives", len(scene.Primitives)).
		Dur("elapsed", time.Since(start)).
		Msg("served render")
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func httpError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	var tooBig *http.MaxBytesError
	switch {
	case errors.Is(err, raycast3d.ErrInvalidConfig),
		errors.Is(err, raycast3d.ErrInvalidScene),
		errors.Is(err, raycast3d.ErrDegenerateGeometry):
		code = http.StatusBadRequest
	case errors.As(err, &tooBig):
		code = http.StatusRequestEntityTooLarge
	}
	if code == http.StatusInternalServerError {
		raycast3d.Log.Error().Err(err).Msg("render request failed")
	}
	http.Error(w, err.Error(), code)
}
