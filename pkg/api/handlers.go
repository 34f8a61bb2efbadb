package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/errs"
)

const (
	defaultSamples = 1000
	maxSamples     = 100000

	defaultEpochs = 100
	minEpochs     = 10
	maxEpochs     = 1000
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "SynthoML Synthetic Data API",
		"version": apiVersion,
		"endpoints": map[string]string{
			"/health":          "Health check",
			"/generate":        "Generate synthetic data (POST with query param 'n')",
			"/model-info":      "Get model information",
			"/upload-train":    "Upload CSV and train model (POST)",
			"/training-status": "Get training status (GET)",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	info, err := s.cache.Info(s.config.ModelPath)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":       "unhealthy",
			"timestamp":    timestamp,
			"model_loaded": false,
			"error":        err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "healthy",
		"timestamp":    timestamp,
		"model_loaded": true,
		"library":      info.Library,
	})
}

func (s *Server) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.cache.Info(s.config.ModelPath)
	if err != nil {
		message := fmt.Sprintf("Failed to load model: %s", err)
		if errs.IsNotFound(err) {
			message = "No trained model found. Please upload and train a dataset first."
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"data":    nil,
			"message": message,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    info,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	n := defaultSamples
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, errs.NewInvalidArgument("invalid sample count %q", raw))
			return
		}
		n = parsed
	}
	if n < 1 || n > maxSamples {
		writeError(w, errs.NewInvalidArgument("number of samples must be in [1, %d], got %d", maxSamples, n))
		return
	}

	var seed *int64
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, errs.NewInvalidArgument("invalid seed %q", raw))
			return
		}
		seed = &parsed
	}

	log.Infof("generating %d samples (seed: %v)", n, seed)
	synthetic, err := s.cache.Generate(n, seed, s.config.ModelPath)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("synthetic_data_%drows_%s.csv", n, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := synthetic.Write(w); err != nil {
		log.Errorf("cannot stream synthetic CSV: %v", err)
	}
}

func (s *Server) handleTrainingStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Snapshot())
}
