// Package models defines the core data structures shared by the assessment engine.
// It includes asset, graph, coverage and analysis definitions in plain serializable form.
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetUnmarshal(t *testing.T) {
	t.Run("asset with nested settings", func(t *testing.T) {
		jsonData := `{
			"id": "ws-1",
			"type": "pc",
			"name": "Accounting workstation",
			"os": "Windows 11",
			"antivirus": "Kaspersky Endpoint Security",
			"encryption": ["BitLocker"],
			"wifi": {"password": "secret", "encryption": "WPA2-Personal"},
			"security_policy": {"password_hashed": true, "backup_frequency": "daily"},
			"personal_data": {"enabled": true, "count": 250},
			"connections": ["sw-1"]
		}`

		var asset Asset
		err := json.Unmarshal([]byte(jsonData), &asset)

		require.NoError(t, err)
		assert.Equal(t, NodeTypePC, asset.Type)
		require.NotNil(t, asset.Wifi)
		assert.Equal(t, "WPA2-Personal", asset.Wifi.Encryption)
		require.NotNil(t, asset.SecurityPolicy)
		assert.True(t, asset.SecurityPolicy.PasswordHashed)
		require.NotNil(t, asset.PersonalData)
		assert.Equal(t, 250, asset.PersonalData.Count)
		assert.Nil(t, asset.Weight)
	})

	t.Run("explicit weight is kept", func(t *testing.T) {
		var asset Asset
		err := json.Unmarshal([]byte(`{"id": "a", "type": "router", "name": "r", "weight": 0}`), &asset)

		require.NoError(t, err)
		require.NotNil(t, asset.Weight)
		assert.Equal(t, 0, *asset.Weight)
	})
}

func TestNodeTypeKnown(t *testing.T) {
	for _, nt := range NodeTypes {
		assert.True(t, nt.Known(), string(nt))
	}
	assert.False(t, NodeType("server").Known())
	assert.False(t, NodeType("").Known())
}

func TestIndexOf(t *testing.T) {
	assets := []Asset{
		{ID: "a", Name: "first"},
		{ID: "b", Name: "second"},
		{ID: "a", Name: "duplicate"},
	}

	assert.Equal(t, 0, IndexOf(assets, "a"))
	assert.Equal(t, 1, IndexOf(assets, "b"))
	assert.Equal(t, -1, IndexOf(assets, "missing"))
	assert.Equal(t, -1, IndexOf(assets, ""))
}

func TestNodeIDs(t *testing.T) {
	tests := []struct {
		name   string
		assets []Asset
		want   []string
	}{
		{
			name:   "plain ids",
			assets: []Asset{{ID: "pc"}, {ID: "sw"}},
			want:   []string{"asset-pc", "asset-sw"},
		},
		{
			name:   "empty id uses position",
			assets: []Asset{{ID: "pc"}, {}},
			want:   []string{"asset-pc", "asset-1"},
		},
		{
			name:   "duplicates get position suffix",
			assets: []Asset{{ID: "a"}, {ID: "a"}, {ID: "a-1"}},
			want:   []string{"asset-a", "asset-a-1", "asset-a-1-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NodeIDs(tt.assets))
		})
	}
}

func TestCategoryCoverageMissing(t *testing.T) {
	assert.True(t, CategoryCoverage{ID: CategoryWifi}.Missing())
	assert.False(t, CategoryCoverage{ID: CategoryWifi, MaxWeight: 2}.Missing())
}
