// Package risk combines asset weights, control signals and category coverage
// into a single resilience score.
package risk

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/viper"

	"github.com/netposture/core/internal/validation"
)

// ErrWeightsSum is returned when the score weights do not add up to 1.0.
var ErrWeightsSum = errors.New("score weights must sum to 1.0")

const weightsSumTolerance = 1e-9

type ScoreWeights struct {
	Nodes      float64 `mapstructure:"nodes" json:"nodes" yaml:"nodes" validate:"gte=0,lte=1"`
	Edges      float64 `mapstructure:"edges" json:"edges" yaml:"edges" validate:"gte=0,lte=1"`
	Controls   float64 `mapstructure:"controls" json:"controls" yaml:"controls" validate:"gte=0,lte=1"`
	Categories float64 `mapstructure:"categories" json:"categories" yaml:"categories" validate:"gte=0,lte=1"`
}

func (w ScoreWeights) Sum() float64 {
	return w.Nodes + w.Edges + w.Controls + w.Categories
}

// ControlAdjustments apply when a control flag is present. Penalties here
// model present-but-weak technology; absent controls are handled by
// PenaltyConfig.MissingControls.
type ControlAdjustments struct {
	Bonuses   map[ControlFlag]float64 `mapstructure:"bonuses" json:"bonuses" yaml:"bonuses" validate:"dive,gte=0"`
	Penalties map[ControlFlag]float64 `mapstructure:"penalties" json:"penalties" yaml:"penalties" validate:"dive,gte=0"`
}

type PenaltyConfig struct {
	LowNodeWeightStep       float64                 `mapstructure:"low_node_weight_step" json:"low_node_weight_step" yaml:"low_node_weight_step" validate:"gte=0"`
	LowNodeWeightLimit      float64                 `mapstructure:"low_node_weight_limit" json:"low_node_weight_limit" yaml:"low_node_weight_limit" validate:"gt=0,lte=100"`
	LowNodeWeightThreshold  int                     `mapstructure:"low_node_weight_threshold" json:"low_node_weight_threshold" yaml:"low_node_weight_threshold" validate:"gte=0,lte=10"`
	MissingCriticalCategory float64                 `mapstructure:"missing_critical_category" json:"missing_critical_category" yaml:"missing_critical_category" validate:"gte=0"`
	MissingControls         map[ControlFlag]float64 `mapstructure:"missing_controls" json:"missing_controls" yaml:"missing_controls" validate:"dive,gte=0"`
}

type Config struct {
	Weights            ScoreWeights       `mapstructure:"weights" json:"weights" yaml:"weights"`
	ControlAdjustments ControlAdjustments `mapstructure:"control_adjustments" json:"control_adjustments" yaml:"control_adjustments"`
	Penalties          PenaltyConfig      `mapstructure:"penalties" json:"penalties" yaml:"penalties"`
}

// DefaultConfig returns the built-in scoring configuration.
func DefaultConfig() Config {
	return Config{
		Weights: ScoreWeights{
			Nodes:      0.4,
			Edges:      0.15,
			Controls:   0.2,
			Categories: 0.25,
		},
		ControlAdjustments: ControlAdjustments{
			Bonuses: map[ControlFlag]float64{
				FlagAntivirus:      2,
				FlagFirewall:       2,
				FlagSIEM:           3,
				FlagBackup:         3,
				FlagEDR:            2,
				FlagTwoFactor:      3,
				FlagFstekCertified: 2,
			},
			Penalties: map[ControlFlag]float64{},
		},
		Penalties: PenaltyConfig{
			LowNodeWeightStep:       2,
			LowNodeWeightLimit:      20,
			LowNodeWeightThreshold:  4,
			MissingCriticalCategory: 5,
			MissingControls: map[ControlFlag]float64{
				FlagAntivirus: 4,
				FlagFirewall:  4,
				FlagSIEM:      4,
				FlagBackup:    4,
				FlagEDR:       3,
				FlagTwoFactor: 3,
			},
		},
	}
}

// Validate checks field ranges, control flag names and that the score
// weights sum to 1.0.
func (c Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}

	flagSets := []struct {
		name  string
		flags map[ControlFlag]float64
	}{
		{"control_adjustments.bonuses", c.ControlAdjustments.Bonuses},
		{"control_adjustments.penalties", c.ControlAdjustments.Penalties},
		{"penalties.missing_controls", c.Penalties.MissingControls},
	}
	for _, set := range flagSets {
		for flag := range set.flags {
			if !flag.Known() {
				return fmt.Errorf("%s: unknown control flag %q", set.name, flag)
			}
		}
	}

	if sum := c.Weights.Sum(); math.Abs(sum-1) > weightsSumTolerance {
		return fmt.Errorf("%w: got %.4f", ErrWeightsSum, sum)
	}

	return nil
}

// LoadConfig reads a YAML or JSON scoring configuration and validates it.
// An empty path yields the validated default configuration. Any error here
// is a configuration-load failure and should stop the process.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		return cfg, cfg.Validate()
	}

	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("penalties.low_node_weight_step", defaults.Penalties.LowNodeWeightStep)
	v.SetDefault("penalties.low_node_weight_limit", defaults.Penalties.LowNodeWeightLimit)
	v.SetDefault("penalties.low_node_weight_threshold", defaults.Penalties.LowNodeWeightThreshold)
	v.SetDefault("penalties.missing_critical_category", defaults.Penalties.MissingCriticalCategory)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read risk config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse risk config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid risk config %s: %w", path, err)
	}

	return cfg, nil
}
