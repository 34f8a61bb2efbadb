// Package api exposes synthetic-data generation and training over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/errs"
	"github.com/srikesh3005/SynthoML/pkg/inference"
	"github.com/srikesh3005/SynthoML/pkg/training"
)

const apiVersion = "1.0.0"

// Config carries the server wiring.
type Config struct {
	// ModelPath is the container served by /generate and /model-info and
	// overwritten by background training.
	ModelPath string
	// UploadDir holds uploaded training datasets.
	UploadDir string
	// AllowedOrigins is the CORS whitelist.
	AllowedOrigins []string
}

// DefaultConfig builds a Config from the command line flags.
func DefaultConfig() Config {
	return Config{
		ModelPath:      ModelPathFlag.Value(),
		UploadDir:      UploadDirFlag.Value(),
		AllowedOrigins: AllowedOriginsFlag.Value(),
	}
}

// Server handles the HTTP API backed by the inference cache and the
// background training runner.
type Server struct {
	config  Config
	cache   *inference.Cache
	tracker *training.StatusTracker
	runner  *training.Runner
}

// NewServer wires the API around an inference cache and a training runner.
// The runner may be nil, which disables /upload-train.
func NewServer(config Config, cache *inference.Cache, tracker *training.StatusTracker, runner *training.Runner) *Server {
	return &Server{
		config:  config,
		cache:   cache,
		tracker: tracker,
		runner:  runner,
	}
}

// Handler returns the routed handler with CORS middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/model-info", s.handleModelInfo)
	mux.HandleFunc("/generate", s.handleGenerate)
	mux.HandleFunc("/upload-train", s.handleUploadTrain)
	mux.HandleFunc("/training-status", s.handleTrainingStatus)

	middleware := cors.New(cors.Options{
		AllowedOrigins:   s.config.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return middleware.Handler(mux)
}

// ListenAndServe blocks serving the API on the given address.
func (s *Server) ListenAndServe(addr string) error {
	log.Infof("API server listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// writeJSON renders a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("cannot encode response: %v", err)
	}
}

// writeError maps the error taxonomy onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errs.IsInvalidArgument(err):
		status = http.StatusBadRequest
	case errs.IsNotFound(err):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}
