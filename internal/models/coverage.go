// Package models defines the core data structures shared by the assessment engine.
// It includes asset, graph, coverage and analysis definitions in plain serializable form.
package models

type CategoryID string

const (
	CategoryWifi               CategoryID = "wifi"
	CategoryDiskEncryption     CategoryID = "diskEncryption"
	CategoryEndpointProtection CategoryID = "endpointProtection"
	CategoryAuthFactors        CategoryID = "authFactors"
	CategoryBackupRecovery     CategoryID = "backupRecovery"
	CategoryMonitoring         CategoryID = "monitoring"
	CategoryNetworkFirewall    CategoryID = "networkFirewall"
)

type ControlCategory struct {
	ID                CategoryID `json:"id" yaml:"id"`
	Label             string     `json:"label" yaml:"label"`
	Keywords          []string   `json:"keywords" yaml:"keywords"`
	RecommendedWeight int        `json:"recommended_weight" yaml:"recommended_weight"`
	Critical          bool       `json:"critical" yaml:"critical"`
}

type CategoryCoverage struct {
	ID                CategoryID `json:"id" yaml:"id"`
	Label             string     `json:"label" yaml:"label"`
	MaxWeight         int        `json:"max_weight" yaml:"max_weight"`
	Normalized        float64    `json:"normalized" yaml:"normalized"`
	MeetsRecommended  bool       `json:"meets_recommended" yaml:"meets_recommended"`
	Critical          bool       `json:"critical" yaml:"critical"`
	RecommendedWeight int        `json:"recommended_weight" yaml:"recommended_weight"`
}

// Missing reports whether no asset contributed to the category.
func (c CategoryCoverage) Missing() bool {
	return c.MaxWeight == 0
}
