package http

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	audienceService "github.com/reshetovitsme/audience-reach/internal/modules/audience/service"
	presetService "github.com/reshetovitsme/audience-reach/internal/modules/preset/service"
	"github.com/reshetovitsme/audience-reach/internal/shared/config"
	"github.com/reshetovitsme/audience-reach/internal/shared/errors"
	"github.com/samber/oops"
	sloghttp "github.com/samber/slog-http"
)

const maxBodyBytes = 1 << 20

// Server exposes the estimator over HTTP
type Server struct {
	cfg       *config.Config
	estimator *audienceService.Estimator
	presets   *presetService.Service
	logger    *slog.Logger
	server    *http.Server
}

// New creates a new HTTP server
func New(cfg *config.Config, estimator *audienceService.Estimator, presets *presetService.Service) *Server {
	return &Server{
		cfg:       cfg,
		estimator: estimator,
		presets:   presets,
		logger:    slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler builds the routed handler with logging and recovery middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/audience/estimate", s.handleEstimate)
	mux.HandleFunc("GET /api/v1/audience/segments", s.handleSegments)
	mux.HandleFunc("GET /api/v1/audience/global", s.handleGlobal)
	mux.HandleFunc("GET /api/v1/population", s.handlePopulation)
	mux.HandleFunc("GET /api/v1/presets", s.handleListPresets)
	mux.HandleFunc("GET /api/v1/presets/{name}", s.handleGetPreset)
	mux.HandleFunc("PUT /api/v1/presets/{name}", s.handleSavePreset)
	mux.HandleFunc("DELETE /api/v1/presets/{name}", s.handleDeletePreset)
	mux.HandleFunc("GET /api/v1/presets/{name}/estimate", s.handlePresetEstimate)
	mux.HandleFunc("GET /health", s.handleHealth)

	handler := sloghttp.Recovery(mux)
	return sloghttp.New(s.logger)(handler)
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Audience API starting", "addr", addr)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := s.server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return oops.With("addr", addr).Wrap(err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// decodeModel reads a FilterModel over the defaults, writing the error response on failure
func (s *Server) decodeModel(w http.ResponseWriter, r *http.Request) (domain.FilterModel, bool) {
	model := domain.NewFilterModel()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&model); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return model, false
	}

	if err := model.Validate(); err != nil {
		s.writeError(w, statusFor(err), "invalid filters", err)
		return model, false
	}
	return model, true
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	model, ok := s.decodeModel(w, r)
	if !ok {
		return
	}

	estimate := s.estimator.Estimate(model)
	s.logger.Debug("Audience estimated",
		"audience_type", estimate.AudienceType,
		"total_reach", estimate.TotalReach,
		"active_filters", estimate.ActiveFilters,
	)
	writeJSON(w, http.StatusOK, estimate)
}

func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Segments())
}

func (s *Server) handleGlobal(w http.ResponseWriter, r *http.Request) {
	channel := domain.ChannelDiscord
	if raw := r.URL.Query().Get("channel"); raw != "" {
		parsed, err := domain.ParseChannel(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid channel", err)
			return
		}
		channel = parsed
	}
	writeJSON(w, http.StatusOK, s.estimator.Global(channel))
}

func (s *Server) handlePopulation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, http.StatusOK, s.estimator.Stats())
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := s.presets.List()
	if err != nil {
		s.writeError(w, statusFor(err), "failed to list presets", err)
		return
	}
	writeJSON(w, http.StatusOK, presets)
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	preset, err := s.presets.Get(r.PathValue("name"))
	if err != nil {
		s.writeError(w, statusFor(err), "failed to get preset", err)
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

func (s *Server) handleSavePreset(w http.ResponseWriter, r *http.Request) {
	model, ok := s.decodeModel(w, r)
	if !ok {
		return
	}

	preset, err := s.presets.Save(r.PathValue("name"), model, 0)
	if err != nil {
		s.writeError(w, statusFor(err), "failed to save preset", err)
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	if err := s.presets.Delete(r.PathValue("name")); err != nil {
		s.writeError(w, statusFor(err), "failed to delete preset", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePresetEstimate(w http.ResponseWriter, r *http.Request) {
	preset, err := s.presets.Get(r.PathValue("name"))
	if err != nil {
		s.writeError(w, statusFor(err), "failed to get preset", err)
		return
	}
	writeJSON(w, http.StatusOK, s.estimator.Estimate(preset.Model))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error(message, "error", err)
	} else {
		s.logger.Warn(message, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": message, "detail": err.Error()})
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrInvalidFilter), stderrors.Is(err, errors.ErrInvalidPresetName):
		return http.StatusBadRequest
	case stderrors.Is(err, errors.ErrPresetNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error writing response", "error", err)
	}
}
