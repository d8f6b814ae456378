package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netposture/core/internal/models"
)

func TestBuildGraph(t *testing.T) {
	t.Run("empty list returns empty graph", func(t *testing.T) {
		graph := BuildGraph(nil)

		assert.NotNil(t, graph)
		assert.Empty(t, graph.Nodes)
		assert.Empty(t, graph.Edges)
		assert.False(t, graph.HasEdges)
		require.NotNil(t, graph.Stats)
		assert.Equal(t, 0, graph.Stats.TotalNodes)
	})

	t.Run("asset without features has no edges", func(t *testing.T) {
		graph := BuildGraph([]models.Asset{{ID: "a", Name: "Desk"}})

		require.Len(t, graph.Nodes, 1)
		assert.Equal(t, "asset-a", graph.Nodes[0].ID)
		assert.Equal(t, "Desk", graph.Nodes[0].Title)
		assert.Equal(t, models.VariantAsset, graph.Nodes[0].Variant)
		assert.Empty(t, graph.Edges)
		assert.False(t, graph.HasEdges)
	})

	t.Run("features become satellites", func(t *testing.T) {
		graph := BuildGraph([]models.Asset{{
			ID:        "pc1",
			Type:      models.NodeTypePC,
			Name:      "Workstation",
			OS:        "Windows 10",
			Antivirus: "Kaspersky",
		}})

		require.Len(t, graph.Nodes, 3)
		assert.Equal(t, 6, *graph.Nodes[0].Weight)
		assert.Equal(t, "asset-pc1-f-1", graph.Nodes[1].ID)
		assert.Equal(t, "Windows 10", graph.Nodes[1].Subtitle)
		assert.Equal(t, models.VariantInfo, graph.Nodes[1].Variant)
		assert.Equal(t, "asset-pc1-f-2", graph.Nodes[2].ID)
		assert.Equal(t, models.VariantControl, graph.Nodes[2].Variant)

		require.Len(t, graph.Edges, 2)
		assert.Equal(t, "asset-pc1", graph.Edges[0].Source)
		assert.Equal(t, "asset-pc1-f-1", graph.Edges[0].Target)
		assert.Equal(t, "w=5", graph.Edges[0].Label)
		assert.Equal(t, models.VariantInfo, graph.Edges[0].Variant)
		assert.Equal(t, "w=9", graph.Edges[1].Label)
		assert.Equal(t, models.VariantControl, graph.Edges[1].Variant)
		assert.True(t, graph.HasEdges)
	})

	t.Run("risk features produce risk edges", func(t *testing.T) {
		graph := BuildGraph([]models.Asset{{
			ID:             "db",
			Name:           "Database",
			SecurityPolicy: &models.SecurityPolicy{PasswordHashed: false},
		}})

		require.Len(t, graph.Edges, 2)
		for _, e := range graph.Edges {
			assert.Equal(t, models.VariantRisk, e.Variant)
			assert.Equal(t, "w=2", e.Label)
		}
		assert.Equal(t, "none", graph.Nodes[2].Subtitle)
	})

	t.Run("feature counter is shared across assets", func(t *testing.T) {
		graph := BuildGraph([]models.Asset{
			{ID: "a", OS: "Linux"},
			{ID: "b", OS: "Windows"},
		})

		ids := make([]string, 0, len(graph.Nodes))
		for _, n := range graph.Nodes {
			ids = append(ids, n.ID)
		}
		assert.Equal(t, []string{"asset-a", "asset-a-f-1", "asset-b", "asset-b-f-2"}, ids)
	})

	t.Run("node ids stay unique", func(t *testing.T) {
		graph := BuildGraph([]models.Asset{
			{ID: "a"},
			{ID: "a"},
			{ID: ""},
		})

		require.Len(t, graph.Nodes, 3)
		assert.Equal(t, "asset-a", graph.Nodes[0].ID)
		assert.Equal(t, "asset-a-1", graph.Nodes[1].ID)
		assert.Equal(t, "asset-2", graph.Nodes[2].ID)
		assert.Equal(t, "Asset 3", graph.Nodes[2].Title)
	})

	t.Run("mutual connections produce one edge", func(t *testing.T) {
		graph := BuildGraph([]models.Asset{
			{ID: "a", Name: "x", Weight: models.IntPtr(6), Connections: []string{"b"}},
			{ID: "b", Name: "y", Weight: models.IntPtr(9), Connections: []string{"a"}},
		})

		require.Len(t, graph.Edges, 1)
		edge := graph.Edges[0]
		assert.Equal(t, "conn-a::b", edge.ID)
		assert.Equal(t, "asset-a", edge.Source)
		assert.Equal(t, "asset-b", edge.Target)
		assert.Equal(t, models.VariantInfo, edge.Variant)
		assert.Equal(t, 8, *edge.Weight)
		assert.True(t, graph.HasEdges)
	})

	t.Run("pair key ignores direction", func(t *testing.T) {
		graph := BuildGraph([]models.Asset{
			{ID: "z", Name: "x", Connections: []string{"m"}},
			{ID: "m", Name: "y"},
		})

		require.Len(t, graph.Edges, 1)
		assert.Equal(t, "conn-m::z", graph.Edges[0].ID)
		assert.Equal(t, "asset-z", graph.Edges[0].Source)
	})

	t.Run("self loops and dangling ids are skipped", func(t *testing.T) {
		graph := BuildGraph([]models.Asset{
			{ID: "a", Name: "x", Connections: []string{"a", "ghost", ""}},
		})

		assert.Empty(t, graph.Edges)
		assert.False(t, graph.HasEdges)
	})

	t.Run("stats count variants", func(t *testing.T) {
		graph := BuildGraph([]models.Asset{
			{ID: "a", OS: "Linux", Connections: []string{"b"}},
			{ID: "b", SecurityPolicy: &models.SecurityPolicy{PasswordHashed: true}},
		})

		require.NotNil(t, graph.Stats)
		assert.Equal(t, 5, graph.Stats.TotalNodes)
		assert.Equal(t, 4, graph.Stats.TotalEdges)
		assert.Equal(t, 2, graph.Stats.NodesByVariant[models.VariantAsset])
		assert.Equal(t, 2, graph.Stats.EdgesByVariant[models.VariantInfo])
		assert.Equal(t, 1, graph.Stats.EdgesByVariant[models.VariantControl])
		assert.Equal(t, 1, graph.Stats.EdgesByVariant[models.VariantRisk])
	})
}

func TestBuildFallbackGraph(t *testing.T) {
	t.Run("nil data returns empty graph", func(t *testing.T) {
		graph := BuildFallbackGraph(nil)

		assert.Empty(t, graph.Nodes)
		assert.False(t, graph.HasEdges)
	})

	t.Run("maps node types to variants", func(t *testing.T) {
		graph := BuildFallbackGraph(&models.AttackGraphData{
			Nodes: []models.AttackGraphNode{
				{ID: "t", Type: "threat", Data: models.AttackNodeData{Label: "Attacker"}},
				{ID: "v", Type: "vulnerable", Data: models.AttackNodeData{Label: "Old router"}},
				{ID: "c", Type: "control"},
			},
			Edges: []models.AttackGraphEdge{
				{ID: "e1", Source: "t", Target: "v", Label: "exploit"},
			},
		})

		require.Len(t, graph.Nodes, 3)
		assert.Equal(t, models.VariantRisk, graph.Nodes[0].Variant)
		assert.Equal(t, models.VariantInfo, graph.Nodes[1].Variant)
		assert.Equal(t, models.VariantControl, graph.Nodes[2].Variant)
		assert.Equal(t, "c", graph.Nodes[2].Title)

		require.Len(t, graph.Edges, 1)
		assert.Equal(t, models.VariantControl, graph.Edges[0].Variant)
		assert.Equal(t, "exploit", graph.Edges[0].Label)
		assert.True(t, graph.HasEdges)
	})

	t.Run("fills in missing ids and titles", func(t *testing.T) {
		graph := BuildFallbackGraph(&models.AttackGraphData{
			Nodes: []models.AttackGraphNode{
				{Type: "threat"},
				{Type: "vulnerable"},
				{ID: "gw"},
			},
			Edges: []models.AttackGraphEdge{
				{Source: "llm-node-0", Target: "llm-node-1"},
				{Source: "llm-node-1", Target: "gw"},
			},
		})

		require.Len(t, graph.Nodes, 3)
		assert.Equal(t, "llm-node-0", graph.Nodes[0].ID)
		assert.Equal(t, "LLM node 1", graph.Nodes[0].Title)
		assert.Equal(t, "llm-node-1", graph.Nodes[1].ID)
		assert.Equal(t, "LLM node 2", graph.Nodes[1].Title)
		assert.Equal(t, "gw", graph.Nodes[2].Title)

		require.Len(t, graph.Edges, 2)
		assert.Equal(t, "llm-edge-0", graph.Edges[0].ID)
		assert.Equal(t, "llm-edge-1", graph.Edges[1].ID)
	})
}

func TestSelectGraph(t *testing.T) {
	fallback := &models.AttackGraphData{
		Nodes: []models.AttackGraphNode{{ID: "t", Type: "threat"}},
	}

	t.Run("uses fallback when no assets", func(t *testing.T) {
		graph := SelectGraph(&models.AssetList{Assets: []models.Asset{}, FallbackGraph: fallback})

		require.Len(t, graph.Nodes, 1)
		assert.Equal(t, "t", graph.Nodes[0].ID)
	})

	t.Run("prefers assets over fallback", func(t *testing.T) {
		graph := SelectGraph(&models.AssetList{
			Assets:        []models.Asset{{ID: "a"}},
			FallbackGraph: fallback,
		})

		require.Len(t, graph.Nodes, 1)
		assert.Equal(t, "asset-a", graph.Nodes[0].ID)
	})

	t.Run("nil list yields empty graph", func(t *testing.T) {
		graph := SelectGraph(nil)
		assert.Empty(t, graph.Nodes)
	})
}
