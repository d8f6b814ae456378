package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/topology"
)

type InnerGraphResponse struct {
	AssetID  string        `json:"asset_id"`
	Template bool          `json:"template"`
	Graph    *models.Graph `json:"graph"`
}

// Inner renders the internal decomposition of one asset from the posted list.
func (h *Handler) Inner(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetID")

	list, err := h.decodeAssets(w, r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	index := models.IndexOf(list.Assets, assetID)
	if index < 0 {
		http.Error(w, "Asset not found", http.StatusNotFound)
		return
	}

	graph, hasTemplate := topology.BuildInnerGraph(list.Assets, index)
	h.metrics.RecordGraph(len(graph.Nodes))

	writeJSON(w, r, http.StatusOK, InnerGraphResponse{
		AssetID:  assetID,
		Template: hasTemplate,
		Graph:    graph,
	})
}

// Neighbors renders the asset with its direct neighbors. An unknown id
// yields an empty graph.
func (h *Handler) Neighbors(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetID")

	list, err := h.decodeAssets(w, r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	graph := topology.BuildNeighborGraph(list.Assets, assetID)
	h.metrics.RecordGraph(len(graph.Nodes))

	writeJSON(w, r, http.StatusOK, graph)
}
