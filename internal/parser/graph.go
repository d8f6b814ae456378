package parser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/weights"
)

// BuildGraph renders the attack-surface graph of an asset list: one node per
// asset, feature satellites and deduplicated connection edges.
func BuildGraph(assets []models.Asset) *models.Graph {
	graph := models.NewGraph()

	nodeIDs := models.NodeIDs(assets)
	featureSeq := 0

	for i, asset := range assets {
		nodeID := nodeIDs[i]
		assetWeight := weights.AssetWeight(asset)

		graph.Nodes = append(graph.Nodes, models.GraphNode{
			ID:       nodeID,
			Title:    assetTitle(asset, i),
			Subtitle: string(asset.Type),
			Weight:   models.IntPtr(assetWeight),
			Variant:  models.VariantAsset,
		})

		for _, f := range Features(asset) {
			featureSeq++
			featureID := fmt.Sprintf("%s-f-%d", nodeID, featureSeq)

			graph.Nodes = append(graph.Nodes, models.GraphNode{
				ID:       featureID,
				Title:    f.Title,
				Subtitle: f.Subtitle,
				Weight:   models.IntPtr(f.Weight),
				Variant:  f.Variant,
			})

			graph.Edges = append(graph.Edges, models.GraphEdge{
				ID:      nodeID + "->" + featureID,
				Source:  nodeID,
				Target:  featureID,
				Label:   "w=" + strconv.Itoa(f.Weight),
				Variant: models.EdgeVariant(f.Variant),
				Weight:  models.IntPtr(f.Weight),
			})
		}
	}

	graph.Edges = append(graph.Edges, connectionEdges(assets, nodeIDs)...)
	graph.HasEdges = len(graph.Edges) > 0

	return graph.Finalize()
}

func assetTitle(a models.Asset, index int) string {
	switch {
	case a.Name != "":
		return a.Name
	case a.ID != "":
		return a.ID
	default:
		return "Asset " + strconv.Itoa(index+1)
	}
}

type endpoint struct {
	nodeID string
	weight int
}

// connectionEdges emits one info edge per unordered pair of existing asset ids.
// Connections resolve to the first asset carrying an id, weighted with the
// highest weight among the assets sharing it.
func connectionEdges(assets []models.Asset, nodeIDs []string) []models.GraphEdge {
	byID := make(map[string]endpoint, len(assets))
	for i, a := range assets {
		if a.ID == "" {
			continue
		}
		w := weights.AssetWeight(a)
		current, ok := byID[a.ID]
		if !ok {
			byID[a.ID] = endpoint{nodeID: nodeIDs[i], weight: w}
			continue
		}
		if w > current.weight {
			current.weight = w
			byID[a.ID] = current
		}
	}

	edges := []models.GraphEdge{}
	seen := make(map[string]bool)

	for _, a := range assets {
		if a.ID == "" {
			continue
		}
		from := byID[a.ID]

		for _, targetID := range a.Connections {
			if targetID == a.ID {
				continue
			}
			to, ok := byID[targetID]
			if !ok {
				continue
			}

			first, second := a.ID, targetID
			if second < first {
				first, second = second, first
			}
			key := first + "::" + second
			if seen[key] {
				continue
			}
			seen[key] = true

			w := int(math.Round(float64(from.weight+to.weight) / 2))
			edges = append(edges, models.GraphEdge{
				ID:      "conn-" + key,
				Source:  from.nodeID,
				Target:  to.nodeID,
				Label:   "w=" + strconv.Itoa(w),
				Variant: models.VariantInfo,
				Weight:  models.IntPtr(w),
			})
		}
	}

	return edges
}

// BuildFallbackGraph translates a graph returned by the external analysis
// service into the local graph shape. Missing ids are replaced by positional
// ones so descriptors stay unique.
func BuildFallbackGraph(data *models.AttackGraphData) *models.Graph {
	graph := models.NewGraph()
	if data == nil {
		return graph.Finalize()
	}

	for i, n := range data.Nodes {
		id := n.ID
		if id == "" {
			id = "llm-node-" + strconv.Itoa(i)
		}

		title := n.Data.Label
		if title == "" {
			title = n.ID
		}
		if title == "" {
			title = "LLM node " + strconv.Itoa(i+1)
		}

		graph.Nodes = append(graph.Nodes, models.GraphNode{
			ID:      id,
			Title:   title,
			Variant: fallbackVariant(n.Type),
		})
	}

	for i, e := range data.Edges {
		id := e.ID
		if id == "" {
			id = "llm-edge-" + strconv.Itoa(i)
		}

		graph.Edges = append(graph.Edges, models.GraphEdge{
			ID:      id,
			Source:  e.Source,
			Target:  e.Target,
			Label:   e.Label,
			Variant: models.VariantControl,
		})
	}

	graph.HasEdges = len(graph.Edges) > 0
	return graph.Finalize()
}

func fallbackVariant(nodeType string) models.Variant {
	switch nodeType {
	case "threat":
		return models.VariantRisk
	case "vulnerable":
		return models.VariantInfo
	default:
		return models.VariantControl
	}
}

// SelectGraph returns the asset graph, or the fallback graph when the list
// carries no assets.
func SelectGraph(list *models.AssetList) *models.Graph {
	if list == nil {
		return BuildGraph(nil)
	}
	if len(list.Assets) == 0 && list.FallbackGraph != nil {
		return BuildFallbackGraph(list.FallbackGraph)
	}
	return BuildGraph(list.Assets)
}
