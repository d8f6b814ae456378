// Package topology describes what sits inside an asset and how neighboring
// assets talk to each other on each communication level.
package topology

import (
	"fmt"

	"github.com/netposture/core/internal/models"
)

var levelWeights = map[models.CommunicationLevel]int{
	models.LevelPhysical:   6,
	models.LevelLinguistic: 7,
	models.LevelSemantic:   8,
}

// LevelWeight returns the default weight of a communication level.
func LevelWeight(level models.CommunicationLevel) int {
	return levelWeights[level]
}

func rel(source, target string) models.InnerRelation {
	return models.InnerRelation{Source: source, Target: target}
}

func node(id, label string, variant models.Variant, weight int) models.InnerNode {
	return models.InnerNode{ID: id, Label: label, Variant: variant, Weight: weight}
}

const (
	asset   = models.VariantAsset
	control = models.VariantControl
	info    = models.VariantInfo
	risk    = models.VariantRisk
)

var templates = map[models.NodeType]models.InnerGraphTemplate{
	models.NodeTypePC: {
		Title: "PC structure",
		Nodes: []models.InnerNode{
			node("cpu", "CPU", asset, 9),
			node("gpu", "GPU", asset, 9),
			node("ram", "RAM", control, 8),
			node("mb", "Motherboard", control, 8),
			node("ssd", "SSD", control, 8),
			node("hdd", "HDD", info, 6),
			node("keyboard", "Keyboard", info, 5),
			node("mouse", "Mouse", info, 5),
			node("webcam", "Webcam", info, 5),
			node("mic", "Microphone", info, 5),
			node("monitor", "Monitor", info, 6),
			node("speakers", "Speakers", info, 5),
			node("headphones", "Headphones", info, 5),
			node("wifi", "Wi-Fi adapter", control, 7),
		},
		Relations: []models.InnerRelation{
			rel("cpu", "gpu"),
			rel("cpu", "ram"),
			rel("cpu", "mb"),
			rel("gpu", "mb"),
			rel("ram", "mb"),
			rel("ssd", "mb"),
			rel("hdd", "mb"),
			rel("keyboard", "mb"),
			rel("mouse", "mb"),
			rel("webcam", "mb"),
			rel("mic", "mb"),
			rel("monitor", "gpu"),
			rel("speakers", "mb"),
			rel("headphones", "mb"),
			rel("wifi", "mb"),
		},
	},
	models.NodeTypeRouter: {
		Title: "Router structure",
		Nodes: []models.InnerNode{
			node("cpu", "Routing CPU", asset, 9),
			node("asic", "Switch ASIC", asset, 8),
			node("ram", "RAM", control, 7),
			node("firmware", "Firmware", info, 6),
			node("wan", "WAN port", control, 7),
			node("lan", "LAN switch", control, 8),
			node("wifi", "Wi-Fi radio", info, 7),
		},
		Relations: []models.InnerRelation{
			rel("cpu", "asic"),
			rel("cpu", "ram"),
			rel("cpu", "firmware"),
			rel("cpu", "wan"),
			rel("cpu", "lan"),
			rel("lan", "wifi"),
		},
	},
	models.NodeTypeWifiAP: {
		Title: "Wi-Fi access point",
		Nodes: []models.InnerNode{
			node("radio", "Radio module", asset, 8),
			node("antenna", "Antennas", info, 6),
			node("cpu", "Controller", control, 8),
			node("lan", "Uplink", control, 7),
			node("firmware", "Firmware", info, 6),
		},
		Relations: []models.InnerRelation{
			rel("radio", "antenna"),
			rel("radio", "cpu"),
			rel("cpu", "lan"),
			rel("cpu", "firmware"),
		},
	},
	models.NodeTypeFirewall: {
		Title: "Firewall",
		Nodes: []models.InnerNode{
			node("cpu", "Inspection CPU", asset, 9),
			node("asic", "Content ASIC", control, 8),
			node("ips", "IPS engine", control, 8),
			node("policy", "Policy DB", info, 7),
			node("wan", "WAN interface", control, 7),
			node("lan", "LAN interface", control, 7),
		},
		Relations: []models.InnerRelation{
			rel("cpu", "asic"),
			rel("cpu", "ips"),
			rel("cpu", "policy"),
			rel("wan", "cpu"),
			rel("lan", "cpu"),
		},
	},
	models.NodeTypeSwitch: {
		Title: "Switch",
		Nodes: []models.InnerNode{
			node("asic", "Switch ASIC", asset, 8),
			node("mgmt", "Management CPU", control, 7),
			node("ports", "Access ports", info, 6),
			node("uplink", "Uplink ports", info, 6),
		},
		Relations: []models.InnerRelation{
			rel("asic", "mgmt"),
			rel("ports", "asic"),
			rel("uplink", "asic"),
		},
	},
	models.NodeTypePrinter: {
		Title: "Printer",
		Nodes: []models.InnerNode{
			node("controller", "Controller", asset, 7),
			node("engine", "Print engine", control, 7),
			node("scanner", "Scanner", info, 6),
			node("network", "Network module", info, 6),
		},
		Relations: []models.InnerRelation{
			rel("controller", "engine"),
			rel("controller", "scanner"),
			rel("network", "controller"),
		},
	},
	models.NodeTypeUser: {
		Title: "User workstation",
		Nodes: []models.InnerNode{
			node("persona", "User", asset, 6),
			node("credentials", "Credentials", risk, 5),
			node("device", "Endpoint", control, 7),
		},
		Relations: []models.InnerRelation{
			rel("persona", "credentials"),
			rel("persona", "device"),
			rel("device", "credentials"),
		},
	},
}

// InnerTemplate returns a copy of the decomposition template of a type.
func InnerTemplate(t models.NodeType) (models.InnerGraphTemplate, bool) {
	tpl, ok := templates[t]
	if !ok {
		return models.InnerGraphTemplate{}, false
	}

	out := models.InnerGraphTemplate{
		Title:     tpl.Title,
		Nodes:     append([]models.InnerNode(nil), tpl.Nodes...),
		Relations: make([]models.InnerRelation, len(tpl.Relations)),
	}
	for i, r := range tpl.Relations {
		if r.Weights != nil {
			weights := make(map[models.CommunicationLevel]int, len(r.Weights))
			for level, w := range r.Weights {
				weights[level] = w
			}
			r.Weights = weights
		}
		out.Relations[i] = r
	}
	return out, true
}

// ExpandRelations turns every relation into one edge per communication level.
func ExpandRelations(relations []models.InnerRelation) []models.InnerEdge {
	edges := make([]models.InnerEdge, 0, len(relations)*len(models.CommunicationLevels))
	for _, r := range relations {
		for _, level := range models.CommunicationLevels {
			w, ok := r.Weights[level]
			if !ok {
				w = LevelWeight(level)
			}
			edges = append(edges, models.InnerEdge{
				ID:     fmt.Sprintf("%s-%s-%s", r.Source, r.Target, level),
				Source: r.Source,
				Target: r.Target,
				Level:  level,
				Weight: w,
			})
		}
	}
	return edges
}

// BuildInnerGraph renders the decomposition of assets[index]. Node ids are
// prefixed with the asset's node id from models.NodeIDs so several
// decompositions can share a view with the attack-surface graph.
func BuildInnerGraph(assets []models.Asset, index int) (*models.Graph, bool) {
	if index < 0 || index >= len(assets) {
		return models.NewGraph().Finalize(), false
	}

	tpl, ok := InnerTemplate(assets[index].Type)
	if !ok {
		return models.NewGraph().Finalize(), false
	}

	prefix := models.NodeIDs(assets)[index] + "."
	graph := models.NewGraph()

	variants := make(map[string]models.Variant, len(tpl.Nodes))
	for _, n := range tpl.Nodes {
		variants[n.ID] = n.Variant
		graph.Nodes = append(graph.Nodes, models.GraphNode{
			ID:       prefix + n.ID,
			Title:    n.Label,
			Subtitle: tpl.Title,
			Weight:   models.IntPtr(n.Weight),
			Variant:  n.Variant,
		})
	}

	for _, e := range ExpandRelations(tpl.Relations) {
		graph.Edges = append(graph.Edges, models.GraphEdge{
			ID:      prefix + e.ID,
			Source:  prefix + e.Source,
			Target:  prefix + e.Target,
			Label:   fmt.Sprintf("%s w=%d", e.Level, e.Weight),
			Variant: models.EdgeVariant(variants[e.Target]),
			Weight:  models.IntPtr(e.Weight),
			Level:   e.Level,
		})
	}

	graph.HasEdges = len(graph.Edges) > 0
	return graph.Finalize(), true
}
