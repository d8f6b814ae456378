// Package parser decodes asset inventories and turns them into attack-surface graphs.
// It handles input validation, feature extraction and connection deduplication.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/validation"
)

// ErrEmptyInput is returned when there is nothing to decode.
var ErrEmptyInput = errors.New("empty asset data")

// ParseAssets decodes a JSON asset list and validates field ranges.
func ParseAssets(data []byte) (*models.AssetList, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	var list models.AssetList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assets: %w", err)
	}

	return validated(&list)
}

// ParseAssetsYAML is ParseAssets for YAML input.
func ParseAssetsYAML(data []byte) (*models.AssetList, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	var list models.AssetList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assets: %w", err)
	}

	return validated(&list)
}

func validated(list *models.AssetList) (*models.AssetList, error) {
	if list.Assets == nil {
		list.Assets = []models.Asset{}
	}

	if err := validation.Struct(list); err != nil {
		return nil, fmt.Errorf("invalid assets: %w", err)
	}

	return list, nil
}
