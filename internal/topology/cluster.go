package topology

import "github.com/netposture/core/internal/models"

type channelLabels map[models.CommunicationLevel]string

var defaultLabels = channelLabels{
	models.LevelPhysical:   "Physical channel",
	models.LevelLinguistic: "Protocol / driver layer",
	models.LevelSemantic:   "Business / data context",
}

type pairKey [2]models.NodeType

func keyOf(a, b models.NodeType) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

var channels = make(map[pairKey][]models.ClusterChannel)

// register stores channels under the unordered pair, so (a,b) and (b,a)
// always resolve to the same entry.
func register(a, b models.NodeType, labels channelLabels) {
	channels[keyOf(a, b)] = makeChannels(labels, nil)
}

func makeChannels(labels channelLabels, weights map[models.CommunicationLevel]int) []models.ClusterChannel {
	out := make([]models.ClusterChannel, 0, len(models.CommunicationLevels))
	for _, level := range models.CommunicationLevels {
		w, ok := weights[level]
		if !ok {
			w = LevelWeight(level)
		}
		out = append(out, models.ClusterChannel{Level: level, Label: labels[level], Weight: w})
	}
	return out
}

func init() {
	register(models.NodeTypeUser, models.NodeTypePC, channelLabels{
		models.LevelPhysical:   "Peripherals / USB / Bluetooth",
		models.LevelLinguistic: "HID drivers / desktop session",
		models.LevelSemantic:   "Human input & UI intent",
	})
	register(models.NodeTypeUser, models.NodeTypeWifiAP, channelLabels{
		models.LevelPhysical:   "Radio (2.4/5/6 GHz)",
		models.LevelLinguistic: "802.11 auth & association",
		models.LevelSemantic:   "App traffic, credentials, MFA",
	})
	register(models.NodeTypePC, models.NodeTypeWifiAP, channelLabels{
		models.LevelPhysical:   "Wi-Fi radio / antennas",
		models.LevelLinguistic: "802.11i / WPA handshake",
		models.LevelSemantic:   "Secure SSID payloads",
	})
	register(models.NodeTypePC, models.NodeTypeRouter, channelLabels{
		models.LevelPhysical:   "Ethernet / uplink medium",
		models.LevelLinguistic: "IP/TCP stack, DHCP/DNS",
		models.LevelSemantic:   "Business application flows",
	})
	register(models.NodeTypePC, models.NodeTypeSwitch, channelLabels{
		models.LevelPhysical:   "Copper/Fiber access link",
		models.LevelLinguistic: "Ethernet frames, VLAN tags",
		models.LevelSemantic:   "Segmentation & NAC context",
	})
	register(models.NodeTypePC, models.NodeTypeFirewall, channelLabels{
		models.LevelPhysical:   "Inline Ethernet / TAP",
		models.LevelLinguistic: "Stateful inspection stream",
		models.LevelSemantic:   "Policy enforcement & logs",
	})
	register(models.NodeTypePC, models.NodeTypePrinter, channelLabels{
		models.LevelPhysical:   "USB / LAN drop",
		models.LevelLinguistic: "IPP / SMB print protocol",
		models.LevelSemantic:   "Document payload & metadata",
	})
	register(models.NodeTypeRouter, models.NodeTypeWifiAP, channelLabels{
		models.LevelPhysical:   "PoE/Fiber uplink",
		models.LevelLinguistic: "CAPWAP / 802.11 control",
		models.LevelSemantic:   "SSID config & NAC policies",
	})
	register(models.NodeTypeRouter, models.NodeTypeSwitch, channelLabels{
		models.LevelPhysical:   "Trunk link",
		models.LevelLinguistic: "Routing / STP / LLDP",
		models.LevelSemantic:   "QoS & segmentation policy",
	})
	register(models.NodeTypeRouter, models.NodeTypeFirewall, channelLabels{
		models.LevelPhysical:   "Inline network path",
		models.LevelLinguistic: "Routing & ACL sync",
		models.LevelSemantic:   "Threat intel / security policy",
	})
	register(models.NodeTypeFirewall, models.NodeTypeSwitch, channelLabels{
		models.LevelPhysical:   "Inline copper/fiber",
		models.LevelLinguistic: "802.1X enforcement channel",
		models.LevelSemantic:   "Access logs & policy context",
	})
	register(models.NodeTypeFirewall, models.NodeTypeWifiAP, channelLabels{
		models.LevelPhysical:   "DMZ / controller uplink",
		models.LevelLinguistic: "CAPWAP security channel",
		models.LevelSemantic:   "Posture, captive portal data",
	})
	register(models.NodeTypeSwitch, models.NodeTypePrinter, channelLabels{
		models.LevelPhysical:   "Ethernet access port",
		models.LevelLinguistic: "L2 frames / LLDP",
		models.LevelSemantic:   "Print queues & monitoring",
	})
	register(models.NodeTypeUser, models.NodeTypePrinter, channelLabels{
		models.LevelPhysical:   "USB / NFC release",
		models.LevelLinguistic: "Print driver protocol",
		models.LevelSemantic:   "Printed document content",
	})
}

// ClusterChannels returns the three channels between two asset types, or the
// generic triple when the pair is not registered. The result is a copy.
func ClusterChannels(from, to models.NodeType) []models.ClusterChannel {
	if registered, ok := channels[keyOf(from, to)]; ok {
		return append([]models.ClusterChannel(nil), registered...)
	}
	return makeChannels(defaultLabels, nil)
}

// RegisteredPairs reports how many type pairs carry specific channels.
func RegisteredPairs() int {
	return len(channels)
}
