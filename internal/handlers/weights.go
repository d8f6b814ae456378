package handlers

import (
	"net/http"

	"github.com/netposture/core/internal/coverage"
	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/weights"
)

type NodeWeightResponse struct {
	Name           string          `json:"name"`
	Type           models.NodeType `json:"type,omitempty"`
	Normalized     string          `json:"normalized"`
	Weight         int             `json:"weight"`
	FstekCertified bool            `json:"fstek_certified"`
}

type EdgeWeightResponse struct {
	Link       string `json:"link"`
	Normalized string `json:"normalized"`
	Weight     int    `json:"weight"`
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, coverage.Catalog())
}

// NodeWeight resolves a name and structural type. Unknown types are accepted
// and fall through to the neutral weight.
func (h *Handler) NodeWeight(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	nodeType := models.NodeType(r.URL.Query().Get("type"))

	if name == "" && nodeType == "" {
		http.Error(w, "name or type is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, r, http.StatusOK, NodeWeightResponse{
		Name:           name,
		Type:           nodeType,
		Normalized:     weights.Normalize(name),
		Weight:         weights.NodeWeight(name, nodeType),
		FstekCertified: weights.HasFstekCertification(name),
	})
}

func (h *Handler) EdgeWeight(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("link")
	if link == "" {
		http.Error(w, "link is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, r, http.StatusOK, EdgeWeightResponse{
		Link:       link,
		Normalized: weights.Normalize(link),
		Weight:     weights.EdgeWeight(link),
	})
}
