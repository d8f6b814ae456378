// Package weights resolves free-text technology and control descriptions into
// comparable 0–10 strength weights.
package weights

import (
	"strings"

	"github.com/netposture/core/internal/models"
)

// NodeWeight resolves a technology or asset name to a 0–10 weight. The
// keyword table wins over the structural type default, which wins over the
// neutral weight.
func NodeWeight(name string, nodeType models.NodeType) int {
	if w, ok := nodeWeights.Lookup(name); ok {
		return w
	}

	if w, ok := TypeDefault(nodeType); ok {
		return w
	}

	return NeutralWeight
}

// EdgeWeight resolves a link type such as "VPN" or "Ethernet".
func EdgeWeight(linkType string) int {
	if w, ok := linkWeights.Lookup(linkType); ok {
		return w
	}
	return NeutralWeight
}

// AssetWeight returns the explicit weight of the asset when supplied,
// otherwise the resolved weight of its name and type.
func AssetWeight(asset models.Asset) int {
	if asset.Weight != nil {
		return *asset.Weight
	}
	return NodeWeight(asset.Name, asset.Type)
}

// HasFstekCertification is a bonus signal only, never a requirement.
func HasFstekCertification(name string) bool {
	normalized := Normalize(name)
	if normalized == "" {
		return false
	}

	for _, keyword := range fstekCertified {
		if containsKeyword(normalized, keyword) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether the normalized value contains any of the
// keywords. Keywords are expected in normalized form.
func ContainsAny(value string, keywords []string) bool {
	normalized := Normalize(value)
	if normalized == "" {
		return false
	}

	for _, keyword := range keywords {
		if keyword != "" && containsKeyword(normalized, keyword) {
			return true
		}
	}
	return false
}

func containsKeyword(normalized, keyword string) bool {
	return strings.Contains(normalized, keyword)
}
