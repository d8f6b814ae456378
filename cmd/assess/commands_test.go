package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/netposture/core/internal/models"
)

const inventory = `{
	"assets": [
		{"id": "fw", "type": "firewall", "name": "Cisco NGFW firewall", "connections": ["pc"]},
		{"id": "pc", "type": "pc", "name": "Workstation", "os": "Linux"}
	]
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestReport(t *testing.T) {
	t.Run("json from stdin", func(t *testing.T) {
		out, err := run(t, `{"assets":[{"id":"fw","type":"firewall","name":"Cisco NGFW firewall"}]}`, "report", "-")
		require.NoError(t, err)

		var r report
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Equal(t, 36, r.Score.Value)
		assert.Len(t, r.Coverage, 7)
		assert.Equal(t, 36, r.LocalScore.Value)
	})

	t.Run("yaml output", func(t *testing.T) {
		out, err := run(t, inventory, "report", "-", "--format", "yaml")
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
		assert.Contains(t, decoded, "score")
		assert.Contains(t, decoded, "local_score")
	})

	t.Run("yaml input file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "assets.yaml")
		require.NoError(t, os.WriteFile(path, []byte("assets:\n  - id: fw\n    type: firewall\n    name: Cisco NGFW firewall\n"), 0o600))

		out, err := run(t, "", "report", path)
		require.NoError(t, err)
		assert.Contains(t, out, `"value": 36`)
	})

	t.Run("bad risk config fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "risk.yaml")
		require.NoError(t, os.WriteFile(path, []byte("weights:\n  nodes: 1\n  edges: 1\n"), 0o600))

		_, err := run(t, inventory, "report", "-", "--risk-config", path)
		assert.Error(t, err)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := run(t, inventory, "report", "-", "--format", "xml")
		assert.Error(t, err)
	})
}

func TestGraphCommand(t *testing.T) {
	out, err := run(t, inventory, "graph", "-")
	require.NoError(t, err)

	var graph models.Graph
	require.NoError(t, json.Unmarshal([]byte(out), &graph))
	assert.True(t, graph.HasEdges)
	assert.Equal(t, "asset-fw", graph.Nodes[0].ID)
}

func TestTopologyCommands(t *testing.T) {
	t.Run("inner", func(t *testing.T) {
		out, err := run(t, inventory, "inner", "-", "--asset", "fw")
		require.NoError(t, err)

		var graph models.Graph
		require.NoError(t, json.Unmarshal([]byte(out), &graph))
		assert.Len(t, graph.Edges, 15)
	})

	t.Run("inner unknown asset", func(t *testing.T) {
		_, err := run(t, inventory, "inner", "-", "--asset", "nope")
		assert.Error(t, err)
	})

	t.Run("neighbors", func(t *testing.T) {
		out, err := run(t, inventory, "neighbors", "-", "--asset", "pc")
		require.NoError(t, err)

		var graph models.Graph
		require.NoError(t, json.Unmarshal([]byte(out), &graph))
		assert.Len(t, graph.Nodes, 2)
		assert.Len(t, graph.Edges, 3)
		assert.Equal(t, "Inline Ethernet / TAP", graph.Edges[0].Label)
	})
}

func TestWeightCommand(t *testing.T) {
	t.Run("node name", func(t *testing.T) {
		out, err := run(t, "", "weight", "WPA3-Enterprise Access")
		require.NoError(t, err)

		var r weightResult
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Equal(t, 10, r.Weight)
	})

	t.Run("type fallback", func(t *testing.T) {
		out, err := run(t, "", "weight", "--type", "router")
		require.NoError(t, err)
		assert.Contains(t, out, `"weight": 6`)
	})

	t.Run("link", func(t *testing.T) {
		out, err := run(t, "", "weight", "--link", "VPN")
		require.NoError(t, err)
		assert.Contains(t, out, `"weight": 8`)
	})

	t.Run("requires input", func(t *testing.T) {
		_, err := run(t, "", "weight")
		assert.Error(t, err)
	})
}
