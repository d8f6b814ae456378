// Package models defines the core data structures shared by the assessment engine.
// It includes asset, graph, coverage and analysis definitions in plain serializable form.
package models

type InnerNode struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Variant Variant `json:"variant"`
	Weight  int     `json:"weight"`
}

// InnerRelation links two subcomponents. Weights overrides the default weight
// of individual communication levels.
type InnerRelation struct {
	Source  string                     `json:"source"`
	Target  string                     `json:"target"`
	Weights map[CommunicationLevel]int `json:"weights,omitempty"`
}

type InnerEdge struct {
	ID     string             `json:"id"`
	Source string             `json:"source"`
	Target string             `json:"target"`
	Level  CommunicationLevel `json:"level"`
	Weight int                `json:"weight"`
}

type InnerGraphTemplate struct {
	Title     string          `json:"title"`
	Nodes     []InnerNode     `json:"nodes"`
	Relations []InnerRelation `json:"relations"`
}

type ClusterChannel struct {
	Level  CommunicationLevel `json:"level"`
	Label  string             `json:"label"`
	Weight int                `json:"weight"`
}
