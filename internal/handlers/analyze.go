package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/netposture/core/internal/analysis"
	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/parser"
	"github.com/netposture/core/internal/risk"
)

type AnalyzeResponse struct {
	Analysis *models.AnalysisResult `json:"analysis"`
	Graph    *models.Graph          `json:"graph"`
}

// Analyze forwards the asset list to the external analyzer and attaches the
// locally computed score to its result.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if h.analyzer == nil {
		http.Error(w, "Analyzer is not configured", http.StatusServiceUnavailable)
		return
	}

	list, err := h.decodeAssets(w, r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	local := risk.Aggregate(list.Assets, h.riskConfig).LocalScore()

	result, err := h.analyzer.Analyze(r.Context(), analysis.Request{
		Assets:      list.Assets,
		ThreatModel: list.ThreatModel,
		LocalScore:  &local,
	})
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("analyzer failed")
		http.Error(w, "Analyzer failed", http.StatusBadGateway)
		return
	}

	result.LocalScore = &local

	graph := parser.BuildGraph(list.Assets)
	if len(list.Assets) == 0 {
		graph = parser.BuildFallbackGraph(&result.AttackGraph)
	}
	h.metrics.RecordGraph(len(graph.Nodes))

	writeJSON(w, r, http.StatusOK, AnalyzeResponse{Analysis: result, Graph: graph})
}
