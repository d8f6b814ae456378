package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/netposture/core/internal/coverage"
	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/parser"
	"github.com/netposture/core/internal/risk"
)

type AssessmentResponse struct {
	AssessmentID string                    `json:"assessment_id"`
	Coverage     []models.CategoryCoverage `json:"coverage"`
	Score        risk.Score                `json:"score"`
	LocalScore   models.LocalScore         `json:"local_score"`
	Graph        *models.Graph             `json:"graph"`
}

// Assess runs coverage, scoring and graph building over one asset list.
func (h *Handler) Assess(w http.ResponseWriter, r *http.Request) {
	list, err := h.decodeAssets(w, r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	results := coverage.Evaluate(list.Assets)
	score := risk.AggregateCoverage(list.Assets, results, h.riskConfig)
	graph := parser.SelectGraph(list)

	response := AssessmentResponse{
		AssessmentID: uuid.NewString(),
		Coverage:     results,
		Score:        score,
		LocalScore:   score.LocalScore(),
		Graph:        graph,
	}

	h.metrics.RecordAssessment(string(score.Rating), score.Value)
	h.metrics.RecordGraph(len(graph.Nodes))

	zerolog.Ctx(r.Context()).Info().
		Str("assessment_id", response.AssessmentID).
		Int("assets", len(list.Assets)).
		Int("score", score.Value).
		Str("rating", string(score.Rating)).
		Msg("assessment completed")

	writeJSON(w, r, http.StatusOK, response)
}

// Graph returns only the attack-surface graph.
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	list, err := h.decodeAssets(w, r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	graph := parser.SelectGraph(list)
	h.metrics.RecordGraph(len(graph.Nodes))

	writeJSON(w, r, http.StatusOK, graph)
}
