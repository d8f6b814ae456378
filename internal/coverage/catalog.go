// Package coverage classifies assets into the fixed control categories and
// reports how well each category is covered.
package coverage

import (
	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/weights"
)

var catalog = []models.ControlCategory{
	{
		ID:                models.CategoryWifi,
		Label:             "Wi-Fi and wireless protection",
		Keywords:          []string{"wep", "wpa", "wpa2", "wpa3", "wifi"},
		RecommendedWeight: 8,
		Critical:          true,
	},
	{
		ID:    models.CategoryDiskEncryption,
		Label: "Disk and data encryption",
		Keywords: []string{
			"bitlocker", "veracrypt", "filevault", "luks", "vipnet", "cryptopro",
			"secretdisk", "ecryptfs", "apfs", "ntfs", "xfsenc",
		},
		RecommendedWeight: 8,
		Critical:          true,
	},
	{
		ID:    models.CategoryEndpointProtection,
		Label: "Endpoint / EDR protection",
		Keywords: []string{
			"kaspersky", "drweb", "eset", "symantec", "crowdstrike", "microsoftdefender",
			"defender", "mcafee", "avast", "panda", "360", "endpoint", "edr",
		},
		RecommendedWeight: 8,
		Critical:          true,
	},
	{
		ID:    models.CategoryAuthFactors,
		Label: "Authentication factors and MFA",
		Keywords: []string{
			"password", "пароль", "pin", "pinкод", "otp", "token", "faceid", "usb",
			"usbтокен", "fido", "biometrics", "графическийпароль", "fingerprint",
			"отпечатокпальца", "распознаваниелица", "радужкаглаза", "smartcard",
			"смарткарта", "ключбезопасностиfido2", "мобильныйпропуск",
			"биометриявенладони", "голосоваяаутентификация", "mfa", "2fa",
			"комбинированныеметоды",
		},
		RecommendedWeight: 7,
		Critical:          true,
	},
	{
		ID:                models.CategoryBackupRecovery,
		Label:             "Backup and recovery",
		Keywords:          []string{"backup", "veeam", "replica", "snapshot", "recovery"},
		RecommendedWeight: 8,
		Critical:          true,
	},
	{
		ID:                models.CategoryMonitoring,
		Label:             "Monitoring / SIEM / SOC",
		Keywords:          []string{"monitor", "siem", "soc", "xdr", "observ", "securitycenter", "elk"},
		RecommendedWeight: 8,
		Critical:          true,
	},
	{
		ID:    models.CategoryNetworkFirewall,
		Label: "Network firewalls and traffic filtering",
		Keywords: []string{
			"firewall", "packetfilter", "пакетныйфильтр", "statefulinspection", "stateful",
			"proxyfirewall", "proxyфайрволл", "ngfw", "nextgenerationfirewall", "waf",
			"personalfirewall", "персональныйфайрволл",
		},
		RecommendedWeight: 8,
		Critical:          true,
	},
}

func init() {
	for i := range catalog {
		for j, keyword := range catalog[i].Keywords {
			catalog[i].Keywords[j] = weights.Normalize(keyword)
		}
	}
}

// Catalog returns a copy of the category catalog in declaration order.
func Catalog() []models.ControlCategory {
	out := make([]models.ControlCategory, len(catalog))
	for i, c := range catalog {
		c.Keywords = append([]string(nil), c.Keywords...)
		out[i] = c
	}
	return out
}

// Category looks up a catalog entry by id.
func Category(id models.CategoryID) (models.ControlCategory, bool) {
	for _, c := range Catalog() {
		if c.ID == id {
			return c, true
		}
	}
	return models.ControlCategory{}, false
}
