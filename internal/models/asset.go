// Package models defines the core data structures shared by the assessment engine.
// It includes asset, graph, coverage and analysis definitions in plain serializable form.
package models

import "strconv"

type NodeType string

const (
	NodeTypePC       NodeType = "pc"
	NodeTypePrinter  NodeType = "printer"
	NodeTypeSwitch   NodeType = "switch"
	NodeTypeRouter   NodeType = "router"
	NodeTypeFirewall NodeType = "firewall"
	NodeTypeWifiAP   NodeType = "wifi_ap"
	NodeTypeUser     NodeType = "user"
)

// NodeTypes lists the known structural types in declaration order.
var NodeTypes = []NodeType{
	NodeTypePC,
	NodeTypePrinter,
	NodeTypeSwitch,
	NodeTypeRouter,
	NodeTypeFirewall,
	NodeTypeWifiAP,
	NodeTypeUser,
}

func (t NodeType) Known() bool {
	for _, known := range NodeTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Asset struct {
	ID                   string          `json:"id" yaml:"id"`
	Type                 NodeType        `json:"type" yaml:"type"`
	Name                 string          `json:"name" yaml:"name"`
	OS                   string          `json:"os,omitempty" yaml:"os,omitempty"`
	Antivirus            string          `json:"antivirus,omitempty" yaml:"antivirus,omitempty"`
	Encryption           []string        `json:"encryption,omitempty" yaml:"encryption,omitempty"`
	VPN                  string          `json:"vpn,omitempty" yaml:"vpn,omitempty"`
	AuthType             string          `json:"auth_type,omitempty" yaml:"auth_type,omitempty"`
	FirewallType         string          `json:"firewall_type,omitempty" yaml:"firewall_type,omitempty"`
	AccessLevel          int             `json:"access_level,omitempty" yaml:"access_level,omitempty" validate:"omitempty,min=1,max=3"`
	Wifi                 *WifiSettings   `json:"wifi,omitempty" yaml:"wifi,omitempty"`
	SecurityPolicy       *SecurityPolicy `json:"security_policy,omitempty" yaml:"security_policy,omitempty"`
	PersonalData         *PersonalData   `json:"personal_data,omitempty" yaml:"personal_data,omitempty" validate:"omitempty"`
	ProfessionalSoftware []string        `json:"professional_software,omitempty" yaml:"professional_software,omitempty"`
	Connections          []string        `json:"connections,omitempty" yaml:"connections,omitempty"`
	Weight               *int            `json:"weight,omitempty" yaml:"weight,omitempty" validate:"omitempty,min=0,max=10"`
}

type WifiSettings struct {
	Password   string `json:"password" yaml:"password"`
	Encryption string `json:"encryption" yaml:"encryption"`
}

type SecurityPolicy struct {
	PasswordHashed  bool   `json:"password_hashed" yaml:"password_hashed"`
	BackupFrequency string `json:"backup_frequency" yaml:"backup_frequency"`
}

type PersonalData struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Count   int  `json:"count" yaml:"count" validate:"min=0"`
}

// AssetList is the envelope accepted by the API and the CLI.
type AssetList struct {
	Assets        []Asset          `json:"assets" yaml:"assets" validate:"dive"`
	FallbackGraph *AttackGraphData `json:"fallback_graph,omitempty" yaml:"fallback_graph,omitempty"`
	ThreatModel   *ThreatModel     `json:"threat_model,omitempty" yaml:"threat_model,omitempty"`
}

// IndexOf returns the position of the first asset with the given id, or -1.
func IndexOf(assets []Asset, id string) int {
	if id == "" {
		return -1
	}
	for i, a := range assets {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// NodeIDs derives the graph node id of every asset in the list. A repeated
// or empty asset id falls back to its position in the list, so every view
// of the same list names an asset identically.
func NodeIDs(assets []Asset) []string {
	ids := make([]string, len(assets))
	used := make(map[string]bool, len(assets))

	for i, a := range assets {
		id := "asset-" + a.ID
		if a.ID == "" {
			id = "asset-" + strconv.Itoa(i)
		}
		if used[id] {
			id = id + "-" + strconv.Itoa(i)
		}
		used[id] = true
		ids[i] = id
	}

	return ids
}
