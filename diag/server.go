// Package diag serves the running wall over HTTP: prometheus metrics, facet status
// and a PNG of what each facet currently shows.
package diag

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/facetwall/facetwall/engine"
	"github.com/facetwall/facetwall/log"
	"github.com/facetwall/facetwall/surface"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusSource reports the state of every facet.
type StatusSource interface {
	Status() []engine.FacetStatus
}

// Snapshotter exposes what a surface shows.
type Snapshotter interface {
	Snapshot() surface.Snapshot
}

// FrameSize is the size of rendered facets that have no picture yet.
var FrameSize = image.Pt(320, 180)

// Server is the diagnostics endpoint of a wall.
type Server struct {
	status   StatusSource
	surfaces []Snapshotter
	router   *mux.Router
}

// New builds the router. surfaces are indexed like the facets of status.
func New(status StatusSource, surfaces []Snapshotter) *Server {
	s := &Server{status: status, surfaces: surfaces, router: mux.NewRouter()}

	s.router.Use(logging)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	s.router.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/facets/{index:[0-9]+}", s.handleFacet).Methods(http.MethodGet)
	s.router.HandleFunc("/facets/{index:[0-9]+}/frame.png", s.handleFrame).Methods(http.MethodGet)

	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Infof("diagnostics listening on %s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.status.Status())
}

func (s *Server) handleFacet(w http.ResponseWriter, r *http.Request) {
	i, ok := s.index(w, r)
	if !ok {
		return
	}

	statuses := s.status.Status()
	if i >= len(statuses) {
		http.Error(w, "no such facet", http.StatusNotFound)
		return
	}
	writeJSON(w, statuses[i])
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	i, ok := s.index(w, r)
	if !ok {
		return
	}
	if i >= len(s.surfaces) {
		http.Error(w, "no such facet", http.StatusNotFound)
		return
	}

	img := surface.Composite(s.surfaces[i].Snapshot(), FrameSize)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, img); err != nil {
		log.Warnf("encode frame of facet %d: %v", i, err)
	}
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) (int, bool) {
	i, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || i < 0 {
		http.Error(w, "bad facet index", http.StatusBadRequest)
		return 0, false
	}
	return i, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("encode response: %v", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		log.With(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Debug("diagnostics request")
	})
}
