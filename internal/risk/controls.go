// Package risk combines asset weights, control signals and category coverage
// into a single resilience score.
package risk

import (
	"github.com/netposture/core/internal/coverage"
	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/weights"
)

type ControlFlag string

const (
	FlagAntivirus      ControlFlag = "antivirus"
	FlagFirewall       ControlFlag = "firewall"
	FlagSIEM           ControlFlag = "siem"
	FlagBackup         ControlFlag = "backup"
	FlagEDR            ControlFlag = "edr"
	FlagTwoFactor      ControlFlag = "two_factor"
	FlagFstekCertified ControlFlag = "fstek_certified"
)

// ControlFlags is the order in which bonuses and penalties are applied.
var ControlFlags = []ControlFlag{
	FlagAntivirus,
	FlagFirewall,
	FlagSIEM,
	FlagBackup,
	FlagEDR,
	FlagTwoFactor,
	FlagFstekCertified,
}

func (f ControlFlag) Known() bool {
	for _, known := range ControlFlags {
		if f == known {
			return true
		}
	}
	return false
}

var (
	edrKeywords       = []string{"edr", "xdr", "crowdstrike", "endpointdetection"}
	twoFactorKeywords = []string{"mfa", "2fa", "otp", "token", "токен", "fido", "smartcard", "смарткарта", "комбинированныеметоды"}
	backupFrequencies = []string{"daily", "weekly", "monthly"}
)

// ControlSet records which controls are present across the whole asset set.
type ControlSet map[ControlFlag]bool

// Present lists the present flags in application order.
func (s ControlSet) Present() []ControlFlag {
	var present []ControlFlag
	for _, flag := range ControlFlags {
		if s[flag] {
			present = append(present, flag)
		}
	}
	return present
}

// DetectControls derives control flags from the asset set. Detection is
// any-based, so the result does not depend on asset order.
func DetectControls(assets []models.Asset) ControlSet {
	set := make(ControlSet, len(ControlFlags))

	endpoint := categoryKeywords(models.CategoryEndpointProtection)
	firewall := categoryKeywords(models.CategoryNetworkFirewall)
	monitoring := categoryKeywords(models.CategoryMonitoring)
	backup := categoryKeywords(models.CategoryBackupRecovery)

	for _, a := range assets {
		texts := assetTexts(a)

		if weights.Normalize(a.Antivirus) != "" || weights.ContainsAny(a.Name, endpoint) {
			set[FlagAntivirus] = true
		}

		if a.Type == models.NodeTypeFirewall || weights.Normalize(a.FirewallType) != "" || weights.ContainsAny(a.Name, firewall) {
			set[FlagFirewall] = true
		}

		if anyTextContains(texts, monitoring) {
			set[FlagSIEM] = true
		}

		if hasScheduledBackup(a) || anyTextContains(texts, backup) {
			set[FlagBackup] = true
		}

		if anyTextContains(texts, edrKeywords) {
			set[FlagEDR] = true
		}

		if weights.ContainsAny(a.AuthType, twoFactorKeywords) || weights.ContainsAny(a.Name, twoFactorKeywords) {
			set[FlagTwoFactor] = true
		}

		for _, text := range texts {
			if weights.HasFstekCertification(text) {
				set[FlagFstekCertified] = true
				break
			}
		}
	}

	return set
}

func categoryKeywords(id models.CategoryID) []string {
	c, ok := coverage.Category(id)
	if !ok {
		return nil
	}
	return c.Keywords
}

// assetTexts collects every free-text field that can name a technology.
func assetTexts(a models.Asset) []string {
	texts := []string{a.Name, a.Antivirus}
	texts = append(texts, a.Encryption...)
	texts = append(texts, a.ProfessionalSoftware...)
	return texts
}

func hasScheduledBackup(a models.Asset) bool {
	if a.SecurityPolicy == nil {
		return false
	}

	freq := weights.Normalize(a.SecurityPolicy.BackupFrequency)
	for _, f := range backupFrequencies {
		if freq == f {
			return true
		}
	}
	return false
}

func anyTextContains(texts []string, keywords []string) bool {
	for _, text := range texts {
		if weights.ContainsAny(text, keywords) {
			return true
		}
	}
	return false
}
