// Package models defines the core data structures shared by the assessment engine.
// It includes asset, graph, coverage and analysis definitions in plain serializable form.
package models

type Variant string

const (
	VariantAsset   Variant = "asset"
	VariantControl Variant = "control"
	VariantInfo    Variant = "info"
	VariantRisk    Variant = "risk"
)

// EdgeVariant maps a node variant onto the variant of the edge that points at it.
// Edges never carry the asset variant.
func EdgeVariant(v Variant) Variant {
	switch v {
	case VariantRisk:
		return VariantRisk
	case VariantInfo:
		return VariantInfo
	default:
		return VariantControl
	}
}

type CommunicationLevel string

const (
	LevelPhysical   CommunicationLevel = "physical"
	LevelLinguistic CommunicationLevel = "linguistic"
	LevelSemantic   CommunicationLevel = "semantic"
)

// CommunicationLevels is ordered from the wire up to business meaning.
var CommunicationLevels = []CommunicationLevel{LevelPhysical, LevelLinguistic, LevelSemantic}

type Graph struct {
	Nodes    []GraphNode `json:"nodes"`
	Edges    []GraphEdge `json:"edges"`
	HasEdges bool        `json:"has_edges"`
	Stats    *Stats      `json:"stats,omitempty"`
}

type GraphNode struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Weight   *int    `json:"weight,omitempty"`
	Variant  Variant `json:"variant"`
}

type GraphEdge struct {
	ID      string             `json:"id"`
	Source  string             `json:"source"`
	Target  string             `json:"target"`
	Label   string             `json:"label,omitempty"`
	Variant Variant            `json:"variant"`
	Weight  *int               `json:"weight,omitempty"`
	Level   CommunicationLevel `json:"level,omitempty"`
}

type Stats struct {
	TotalNodes     int             `json:"total_nodes"`
	TotalEdges     int             `json:"total_edges"`
	NodesByVariant map[Variant]int `json:"nodes_by_variant,omitempty"`
	EdgesByVariant map[Variant]int `json:"edges_by_variant,omitempty"`
}

func NewGraph() *Graph {
	return &Graph{
		Nodes: []GraphNode{},
		Edges: []GraphEdge{},
	}
}

// Finalize fills Stats from the current nodes and edges.
func (g *Graph) Finalize() *Graph {
	stats := &Stats{
		TotalNodes:     len(g.Nodes),
		TotalEdges:     len(g.Edges),
		NodesByVariant: make(map[Variant]int),
		EdgesByVariant: make(map[Variant]int),
	}

	for _, n := range g.Nodes {
		stats.NodesByVariant[n.Variant]++
	}

	for _, e := range g.Edges {
		stats.EdgesByVariant[e.Variant]++
	}

	g.Stats = stats
	return g
}

// IntPtr is a small helper for optional weights.
func IntPtr(v int) *int {
	return &v
}
