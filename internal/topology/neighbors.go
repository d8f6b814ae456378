package topology

import (
	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/weights"
)

// Neighbors returns the assets directly connected to id: its own declared
// connections first, then assets declaring a connection back, in list order.
// Unknown ids, dangling references and self references are ignored.
func Neighbors(assets []models.Asset, id string) []models.Asset {
	idx := neighborIndexes(assets, id)
	if len(idx) == 0 {
		return nil
	}

	out := make([]models.Asset, 0, len(idx))
	for _, i := range idx {
		out = append(out, assets[i])
	}
	return out
}

// neighborIndexes resolves the neighbors of id to positions in assets. A
// neighbor id shared by several assets resolves to the first of them.
func neighborIndexes(assets []models.Asset, id string) []int {
	center := models.IndexOf(assets, id)
	if center < 0 {
		return nil
	}

	seen := map[string]bool{id: true}
	var out []int

	add := func(neighborID string) {
		if seen[neighborID] {
			return
		}
		i := models.IndexOf(assets, neighborID)
		if i < 0 {
			return
		}
		seen[neighborID] = true
		out = append(out, i)
	}

	for _, target := range assets[center].Connections {
		add(target)
	}

	for _, a := range assets {
		for _, target := range a.Connections {
			if target == id {
				add(a.ID)
				break
			}
		}
	}

	return out
}

// BuildNeighborGraph renders the asset with its neighbors and the three
// communication channels to each of them. Node ids match the ones the
// attack-surface graph gives the same assets.
func BuildNeighborGraph(assets []models.Asset, id string) *models.Graph {
	graph := models.NewGraph()

	centerIdx := models.IndexOf(assets, id)
	if centerIdx < 0 {
		return graph.Finalize()
	}

	nodeIDs := models.NodeIDs(assets)
	center := assets[centerIdx]
	centerID := nodeIDs[centerIdx]
	graph.Nodes = append(graph.Nodes, neighborNode(center, centerID))

	for _, i := range neighborIndexes(assets, id) {
		n := assets[i]
		nodeID := nodeIDs[i]
		graph.Nodes = append(graph.Nodes, neighborNode(n, nodeID))

		for _, ch := range ClusterChannels(center.Type, n.Type) {
			graph.Edges = append(graph.Edges, models.GraphEdge{
				ID:      centerID + "-" + nodeID + "-" + string(ch.Level),
				Source:  centerID,
				Target:  nodeID,
				Label:   ch.Label,
				Variant: models.VariantInfo,
				Weight:  models.IntPtr(ch.Weight),
				Level:   ch.Level,
			})
		}
	}

	graph.HasEdges = len(graph.Edges) > 0
	return graph.Finalize()
}

func neighborNode(a models.Asset, nodeID string) models.GraphNode {
	title := a.Name
	if title == "" {
		title = a.ID
	}
	return models.GraphNode{
		ID:       nodeID,
		Title:    title,
		Subtitle: string(a.Type),
		Weight:   models.IntPtr(weights.AssetWeight(a)),
		Variant:  models.VariantAsset,
	}
}
