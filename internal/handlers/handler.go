// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/netposture/core/internal/analysis"
	"github.com/netposture/core/internal/metrics"
	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/parser"
	"github.com/netposture/core/internal/risk"
)

// DefaultMaxBodyBytes bounds request bodies carrying asset lists.
const DefaultMaxBodyBytes = 4 << 20

type Options struct {
	RiskConfig   risk.Config
	Analyzer     analysis.Analyzer
	Metrics      *metrics.Registry
	MaxBodyBytes int64
}

type Handler struct {
	riskConfig   risk.Config
	analyzer     analysis.Analyzer
	metrics      *metrics.Registry
	maxBodyBytes int64
}

func NewHandler(opts Options) *Handler {
	h := &Handler{
		riskConfig:   opts.RiskConfig,
		analyzer:     opts.Analyzer,
		metrics:      opts.Metrics,
		maxBodyBytes: opts.MaxBodyBytes,
	}
	if h.metrics == nil {
		h.metrics = metrics.NewRegistry()
	}
	if h.maxBodyBytes <= 0 {
		h.maxBodyBytes = DefaultMaxBodyBytes
	}
	return h
}

// decodeAssets reads the asset list from the body. YAML is accepted when the
// request says so, JSON otherwise.
func (h *Handler) decodeAssets(w http.ResponseWriter, r *http.Request) (*models.AssetList, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	defer r.Body.Close()

	if isYAML(r.Header.Get("Content-Type")) {
		return parser.ParseAssetsYAML(body)
	}
	return parser.ParseAssets(body)
}

func isYAML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return true
	}
	return false
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Warn().Err(err).Msg("rejecting request")

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, "Invalid assets: "+err.Error(), http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("error encoding response")
	}
}
