// Package weights resolves free-text technology and control descriptions into
// comparable 0–10 strength weights.
package weights

import "github.com/netposture/core/internal/models"

// NeutralWeight is returned when neither a keyword nor a structural type matches.
const NeutralWeight = 5

type KeywordWeight struct {
	Keyword string `json:"keyword"`
	Weight  int    `json:"weight"`
}

// KeywordTable is scanned in declaration order; the first keyword contained
// in the normalized input wins, so earlier entries shadow later ones.
type KeywordTable []KeywordWeight

func newTable(entries ...KeywordWeight) KeywordTable {
	table := make(KeywordTable, 0, len(entries))
	for _, e := range entries {
		table = append(table, KeywordWeight{Keyword: Normalize(e.Keyword), Weight: e.Weight})
	}
	return table
}

// Lookup normalizes value and resolves it against the table.
func (t KeywordTable) Lookup(value string) (int, bool) {
	normalized := Normalize(value)
	if normalized == "" {
		return 0, false
	}

	for _, e := range t {
		if e.Keyword != "" && containsKeyword(normalized, e.Keyword) {
			return e.Weight, true
		}
	}

	for _, e := range t {
		if e.Keyword == normalized {
			return e.Weight, true
		}
	}

	return 0, false
}

func kw(keyword string, weight int) KeywordWeight {
	return KeywordWeight{Keyword: keyword, Weight: weight}
}

// nodeWeights is the canonical technology table. The Wi-Fi block is declared
// most specific first; every other block keeps its historical order.
var nodeWeights = newTable(
	// Wi-Fi, reordered from the historical wep-first listing because first
	// match wins and "wpa" would otherwise shadow every WPA2/WPA3 entry.
	kw("wpa3enterprise", 10),
	kw("wpa3personal", 9),
	kw("wpa3", 9),
	kw("wpa2enterprise", 8),
	kw("wpa2personal", 6),
	kw("wpa2", 6),
	kw("wpa", 4),
	kw("wep", 2),

	// Disk and data encryption
	kw("bitlocker", 8),
	kw("veracrypt", 9),
	kw("filevault", 8),
	kw("luks", 9),
	kw("vipnet", 10),
	kw("cryptopro", 10),
	kw("secretdisk", 10),
	kw("ecryptfs", 6),
	kw("apfs", 7),
	kw("ntfs", 5),
	kw("xfsenc", 6),

	// Endpoint protection
	kw("kaspersky", 9),
	kw("drweb", 9),
	kw("eset", 8),
	kw("symantec", 8),
	kw("crowdstrike", 9),
	kw("defender", 8),
	kw("mcafee", 8),
	kw("avast", 7),
	kw("panda", 7),
	kw("360totalsecurity", 7),
	kw("edr", 8),

	// Authentication factors
	kw("password", 4),
	kw("пароль", 4),
	kw("pincod", 5),
	kw("pin", 5),
	kw("pinкод", 5),
	kw("графическийпароль", 4),
	kw("otp", 7),
	kw("token", 9),
	kw("usbtoken", 9),
	kw("usbтокен", 9),
	kw("faceid", 8),
	kw("распознаваниелица", 8),
	kw("fingerprint", 7),
	kw("отпечатокпальца", 7),
	kw("iris", 9),
	kw("радужкаглаза", 9),
	kw("smartcard", 8),
	kw("смарткарта", 8),
	kw("fido2", 9),
	kw("ключбезопасностиfido2", 9),
	kw("mobilepass", 6),
	kw("мобильныйпропуск", 6),
	kw("palmvein", 9),
	kw("биометриявенладони", 9),
	kw("voice", 5),
	kw("голосоваяаутентификация", 5),
	kw("biometrics", 8),
	kw("mfa", 10),
	kw("2fa", 10),
	kw("комбинированныеметоды", 10),

	// Backup and monitoring
	kw("backup", 6),
	kw("veeam", 9),
	kw("snapshot", 7),
	kw("replica", 7),
	kw("siem", 8),
	kw("soc", 9),
	kw("monitoring", 6),

	// Firewalls
	kw("packetfilter", 4),
	kw("пакетныйфильтр", 4),
	kw("stateful", 7),
	kw("statefulinspection", 7),
	kw("proxyfirewall", 8),
	kw("proxyфайрволл", 8),
	kw("ngfw", 9),
	kw("nextgenerationfirewall", 9),
	kw("waf", 8),
	kw("personalfirewall", 6),
	kw("персональныйфайрволл", 6),
	kw("firewall", 6),
)

var linkWeights = newTable(
	kw("wifi", 5),
	kw("ethernet", 6),
	kw("internet", 4),
	kw("vpn", 8),
	kw("zerotrust", 9),
	kw("netflow", 6),
	kw("bluetooth", 3),
)

var typeDefaults = map[models.NodeType]int{
	models.NodeTypePC:       6,
	models.NodeTypePrinter:  3,
	models.NodeTypeSwitch:   5,
	models.NodeTypeRouter:   6,
	models.NodeTypeFirewall: 8,
	models.NodeTypeWifiAP:   7,
}

// fstekCertified lists products certified by FSTEK.
var fstekCertified = []string{
	"vipnet",
	"secretdisk",
	"kaspersky",
	"drweb",
}

// NodeTable returns a copy of the canonical technology table.
func NodeTable() KeywordTable {
	return append(KeywordTable(nil), nodeWeights...)
}

// LinkTable returns a copy of the link-type table.
func LinkTable() KeywordTable {
	return append(KeywordTable(nil), linkWeights...)
}

// TypeDefault returns the default weight of a structural type.
func TypeDefault(t models.NodeType) (int, bool) {
	w, ok := typeDefaults[t]
	return w, ok
}
