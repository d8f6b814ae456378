// Package models defines the core data structures shared by the assessment engine.
// It includes asset, graph, coverage and analysis definitions in plain serializable form.
package models

// ThreatModel describes the adversary handed to the external analysis service.
type ThreatModel struct {
	QuantumCapability  string `json:"quantum_capability" yaml:"quantum_capability"`
	BudgetUSD          int64  `json:"budget_usd" yaml:"budget_usd" validate:"min=0"`
	HasErrorCorrection bool   `json:"has_error_correction" yaml:"has_error_correction"`
	IsFstecCompliant   bool   `json:"is_fstec_compliant" yaml:"is_fstec_compliant"`
	HasLargePDStorage  bool   `json:"has_large_pd_storage" yaml:"has_large_pd_storage"`
}

// AttackGraphData is the graph shape produced by the external analysis service.
type AttackGraphData struct {
	Nodes []AttackGraphNode `json:"nodes" yaml:"nodes"`
	Edges []AttackGraphEdge `json:"edges" yaml:"edges"`
}

type AttackGraphNode struct {
	ID   string         `json:"id" yaml:"id"`
	Type string         `json:"type,omitempty" yaml:"type,omitempty"`
	Data AttackNodeData `json:"data" yaml:"data"`
}

type AttackNodeData struct {
	Label string `json:"label" yaml:"label"`
}

type AttackGraphEdge struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
}

type LocalScore struct {
	Value           int      `json:"value" yaml:"value"`
	WeightRatio     float64  `json:"weight_ratio" yaml:"weight_ratio"`
	ConnectionRatio float64  `json:"connection_ratio" yaml:"connection_ratio"`
	ControlDetails  []string `json:"control_details" yaml:"control_details"`
	Findings        []string `json:"findings,omitempty" yaml:"findings,omitempty"`
	FindingCodes    []string `json:"finding_codes,omitempty" yaml:"finding_codes,omitempty"`
}

type AnalysisResult struct {
	Score           int              `json:"score"`
	Summary         string           `json:"summary"`
	Recommendations []string         `json:"recommendations"`
	AttackGraph     AttackGraphData  `json:"attack_graph"`
	IdealGraph      *AttackGraphData `json:"ideal_graph,omitempty"`
	IdealNodes      []Asset          `json:"ideal_nodes,omitempty"`
	LocalScore      *LocalScore      `json:"local_score,omitempty"`
}
