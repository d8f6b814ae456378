package parser

import (
	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/weights"
)

type FeatureKind string

const (
	FeatureOS             FeatureKind = "os"
	FeatureAntivirus      FeatureKind = "antivirus"
	FeatureEncryption     FeatureKind = "encryption"
	FeatureWifiEncryption FeatureKind = "wifiEncryption"
	FeatureWifiPassword   FeatureKind = "wifiPassword"
	FeatureVPN            FeatureKind = "vpn"
	FeaturePasswordHash   FeatureKind = "passwordHash"
	FeatureBackup         FeatureKind = "backup"
	FeaturePersonalData   FeatureKind = "personalData"
	FeatureSoftware       FeatureKind = "software"
)

// FeatureKinds is the order in which satellites are emitted for an asset.
var FeatureKinds = []FeatureKind{
	FeatureOS,
	FeatureAntivirus,
	FeatureEncryption,
	FeatureWifiEncryption,
	FeatureWifiPassword,
	FeatureVPN,
	FeaturePasswordHash,
	FeatureBackup,
	FeaturePersonalData,
	FeatureSoftware,
}

// Feature is one satellite node hanging off an asset.
type Feature struct {
	Kind     FeatureKind
	Title    string
	Subtitle string
	Variant  models.Variant
	Weight   int
}

type featureRule func(a models.Asset) []Feature

var featurePolicy = map[FeatureKind]featureRule{
	FeatureOS:             osFeature,
	FeatureAntivirus:      antivirusFeature,
	FeatureEncryption:     encryptionFeatures,
	FeatureWifiEncryption: wifiEncryptionFeature,
	FeatureWifiPassword:   wifiPasswordFeature,
	FeatureVPN:            vpnFeature,
	FeaturePasswordHash:   passwordHashFeature,
	FeatureBackup:         backupFeature,
	FeaturePersonalData:   personalDataFeature,
	FeatureSoftware:       softwareFeatures,
}

const (
	osWeight             = 5
	wifiPasswordSet      = 6
	wifiPasswordMissing  = 2
	openWifiWeight       = 1
	hashedPasswordWeight = 9
	plainPasswordWeight  = 2
	personalDataOff      = 3
	unknownBackupWeight  = 3
)

var backupWeights = map[string]int{
	"none":    2,
	"daily":   8,
	"weekly":  6,
	"monthly": 4,
}

var openWifi = []string{"", "open", "none", "нет"}

// Features returns the satellites of one asset in FeatureKinds order.
// Features whose subtitle would be empty are dropped.
func Features(a models.Asset) []Feature {
	var out []Feature
	for _, kind := range FeatureKinds {
		for _, f := range featurePolicy[kind](a) {
			if f.Subtitle == "" {
				continue
			}
			f.Kind = kind
			out = append(out, f)
		}
	}
	return out
}

func osFeature(a models.Asset) []Feature {
	return []Feature{{Title: "OS", Subtitle: a.OS, Variant: models.VariantInfo, Weight: osWeight}}
}

func antivirusFeature(a models.Asset) []Feature {
	return []Feature{{
		Title:    "Antivirus",
		Subtitle: a.Antivirus,
		Variant:  models.VariantControl,
		Weight:   weights.NodeWeight(a.Antivirus, ""),
	}}
}

func encryptionFeatures(a models.Asset) []Feature {
	out := make([]Feature, 0, len(a.Encryption))
	for _, e := range a.Encryption {
		out = append(out, Feature{
			Title:    "Encryption",
			Subtitle: e,
			Variant:  models.VariantControl,
			Weight:   weights.NodeWeight(e, ""),
		})
	}
	return out
}

func wifiEncryptionFeature(a models.Asset) []Feature {
	if a.Wifi == nil {
		return nil
	}

	normalized := weights.Normalize(a.Wifi.Encryption)
	for _, open := range openWifi {
		if normalized == weights.Normalize(open) {
			return []Feature{{
				Title:    "Wi-Fi encryption",
				Subtitle: "open network",
				Variant:  models.VariantRisk,
				Weight:   openWifiWeight,
			}}
		}
	}

	return []Feature{{
		Title:    "Wi-Fi encryption",
		Subtitle: a.Wifi.Encryption,
		Variant:  models.VariantControl,
		Weight:   weights.NodeWeight(a.Wifi.Encryption, ""),
	}}
}

func wifiPasswordFeature(a models.Asset) []Feature {
	if a.Wifi == nil {
		return nil
	}

	if a.Wifi.Password != "" {
		return []Feature{{Title: "Wi-Fi password", Subtitle: "set", Variant: models.VariantControl, Weight: wifiPasswordSet}}
	}
	return []Feature{{Title: "Wi-Fi password", Subtitle: "not set", Variant: models.VariantRisk, Weight: wifiPasswordMissing}}
}

func vpnFeature(a models.Asset) []Feature {
	return []Feature{{
		Title:    "VPN",
		Subtitle: a.VPN,
		Variant:  models.VariantControl,
		Weight:   weights.EdgeWeight(a.VPN),
	}}
}

func passwordHashFeature(a models.Asset) []Feature {
	if a.SecurityPolicy == nil {
		return nil
	}

	if a.SecurityPolicy.PasswordHashed {
		return []Feature{{Title: "Passwords", Subtitle: "hashed", Variant: models.VariantControl, Weight: hashedPasswordWeight}}
	}
	return []Feature{{Title: "Passwords", Subtitle: "stored in plain text", Variant: models.VariantRisk, Weight: plainPasswordWeight}}
}

// backupFeature treats a policy without a frequency as having no backups.
func backupFeature(a models.Asset) []Feature {
	if a.SecurityPolicy == nil {
		return nil
	}

	frequency := a.SecurityPolicy.BackupFrequency
	if frequency == "" {
		frequency = "none"
	}

	w, ok := backupWeights[weights.Normalize(frequency)]
	if !ok {
		w = unknownBackupWeight
	}

	variant := models.VariantRisk
	if w > weights.NeutralWeight {
		variant = models.VariantControl
	}

	return []Feature{{Title: "Backup", Subtitle: frequency, Variant: variant, Weight: w}}
}

func personalDataFeature(a models.Asset) []Feature {
	if a.PersonalData == nil {
		return nil
	}

	if !a.PersonalData.Enabled {
		return []Feature{{Title: "Personal data", Subtitle: "not processed", Variant: models.VariantInfo, Weight: personalDataOff}}
	}

	w := a.PersonalData.Count / 10
	w = max(3, min(10, w))

	return []Feature{{
		Title:    "Personal data",
		Subtitle: "processed",
		Variant:  models.VariantRisk,
		Weight:   w,
	}}
}

func softwareFeatures(a models.Asset) []Feature {
	out := make([]Feature, 0, len(a.ProfessionalSoftware))
	for _, s := range a.ProfessionalSoftware {
		out = append(out, Feature{
			Title:    "Software",
			Subtitle: s,
			Variant:  models.VariantInfo,
			Weight:   weights.NodeWeight(s, ""),
		})
	}
	return out
}
