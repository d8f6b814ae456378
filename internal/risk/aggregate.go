// Package risk combines asset weights, control signals and category coverage
// into a single resilience score.
package risk

import (
	"fmt"
	"math"
	"sort"

	"github.com/netposture/core/internal/coverage"
	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/weights"
)

const (
	// NeutralScore is reported for an empty asset list.
	NeutralScore = 50

	neutralComponent = 0.5
	neutralControls  = 5.0
)

const (
	StageControls   = "controls"
	StageCategories = "categories"
)

// Components are the four sub-scores, each in [0,1].
type Components struct {
	Nodes      float64 `json:"nodes" yaml:"nodes"`
	Edges      float64 `json:"edges" yaml:"edges"`
	Controls   float64 `json:"controls" yaml:"controls"`
	Categories float64 `json:"categories" yaml:"categories"`
}

// Adjustment is one named step of the bonus/penalty pipeline. Delta is in
// the units of its stage: 0–10 points for controls, 0–100 for categories.
type Adjustment struct {
	Stage string  `json:"stage" yaml:"stage"`
	Name  string  `json:"name" yaml:"name"`
	Delta float64 `json:"delta" yaml:"delta"`
}

type Score struct {
	Value       int           `json:"value" yaml:"value"`
	Rating      Rating        `json:"rating" yaml:"rating"`
	Components  Components    `json:"components" yaml:"components"`
	Controls    []ControlFlag `json:"controls" yaml:"controls"`
	Adjustments []Adjustment  `json:"adjustments" yaml:"adjustments"`
	Findings    []string      `json:"findings" yaml:"findings"`
}

// Baseline is the fixed score of an empty asset list.
func Baseline() Score {
	return Score{
		Value:  NeutralScore,
		Rating: RatingFor(NeutralScore),
		Components: Components{
			Nodes:      neutralComponent,
			Edges:      neutralComponent,
			Controls:   neutralComponent,
			Categories: neutralComponent,
		},
		Controls:    []ControlFlag{},
		Adjustments: []Adjustment{},
		Findings:    []string{},
	}
}

// Aggregate scores the asset set. It is a pure function of its inputs and
// ignores asset order.
func Aggregate(assets []models.Asset, cfg Config) Score {
	return AggregateCoverage(assets, coverage.Evaluate(assets), cfg)
}

// AggregateCoverage is Aggregate with precomputed category coverage.
func AggregateCoverage(assets []models.Asset, results []models.CategoryCoverage, cfg Config) Score {
	if len(assets) == 0 {
		return Baseline()
	}

	p := &pipeline{
		assets:   assets,
		coverage: results,
		cfg:      cfg,
		score: Score{
			Controls:    []ControlFlag{},
			Adjustments: []Adjustment{},
			Findings:    []string{},
		},
	}

	for _, stage := range stages {
		stage(p)
	}

	w := cfg.Weights
	c := p.score.Components
	raw := w.Nodes*c.Nodes + w.Edges*c.Edges + w.Controls*c.Controls + w.Categories*c.Categories

	p.score.Value = int(clamp(math.Round(100*raw), 0, 100))
	p.score.Rating = RatingFor(p.score.Value)

	return p.score
}

type pipeline struct {
	assets   []models.Asset
	coverage []models.CategoryCoverage
	cfg      Config
	score    Score
}

var stages = []func(*pipeline){
	scoreNodes,
	scoreEdges,
	scoreControls,
	scoreCategories,
}

func scoreNodes(p *pipeline) {
	sum := 0
	for _, a := range p.assets {
		sum += weights.AssetWeight(a)
	}
	p.score.Components.Nodes = clamp(float64(sum)/float64(len(p.assets))/10, 0, 1)
}

func scoreEdges(p *pipeline) {
	pairs := ConnectionWeights(p.assets)
	if len(pairs) == 0 {
		p.score.Components.Edges = 0
		return
	}

	sum := 0
	for _, pair := range pairs {
		sum += pair.Weight
	}
	p.score.Components.Edges = clamp(float64(sum)/float64(len(pairs))/10, 0, 1)
}

func scoreControls(p *pipeline) {
	present := DetectControls(p.assets)
	p.score.Controls = present.Present()

	points := neutralControls
	for _, flag := range ControlFlags {
		if present[flag] {
			if bonus := p.cfg.ControlAdjustments.Bonuses[flag]; bonus > 0 {
				points += bonus
				p.adjust(StageControls, "bonus:"+string(flag), bonus)
			}
			if penalty := p.cfg.ControlAdjustments.Penalties[flag]; penalty > 0 {
				points -= penalty
				p.adjust(StageControls, "penalty:"+string(flag), -penalty)
			}
			continue
		}

		if penalty := p.cfg.Penalties.MissingControls[flag]; penalty > 0 {
			points -= penalty
			p.adjust(StageControls, "missing_control:"+string(flag), -penalty)
			p.finding("missing_control:" + string(flag))
		}
	}

	p.score.Components.Controls = clamp(points, 0, 10) / 10
}

func scoreCategories(p *pipeline) {
	points := 100 * coverage.MeanNormalized(p.coverage)

	for _, c := range p.coverage {
		if c.Critical && c.Missing() {
			if penalty := p.cfg.Penalties.MissingCriticalCategory; penalty > 0 {
				points -= penalty
				p.adjust(StageCategories, "missing_category:"+string(c.ID), -penalty)
			}
			p.finding("missing_category:" + string(c.ID))
			continue
		}
		if !c.MeetsRecommended {
			p.finding("below_recommended:" + string(c.ID))
		}
	}

	low := 0
	for _, a := range p.assets {
		if weights.AssetWeight(a) < p.cfg.Penalties.LowNodeWeightThreshold {
			low++
		}
	}

	if low > 0 {
		p.finding(fmt.Sprintf("low_weight_assets:%d", low))
		if blocks := lowWeightBlocks(low, len(p.assets), p.cfg.Penalties.LowNodeWeightLimit); blocks > 0 {
			penalty := float64(blocks) * p.cfg.Penalties.LowNodeWeightStep
			if penalty > 0 {
				points -= penalty
				p.adjust(StageCategories, "low_weight_assets", -penalty)
			}
		}
	}

	p.score.Components.Categories = clamp(points, 0, 100) / 100
}

// lowWeightBlocks counts the complete limit-percent blocks of low-weight assets.
func lowWeightBlocks(low, total int, limitPercent float64) int {
	if total == 0 || limitPercent <= 0 {
		return 0
	}
	share := 100 * float64(low) / float64(total)
	return int(math.Floor(share/limitPercent + 1e-9))
}

func (p *pipeline) adjust(stage, name string, delta float64) {
	p.score.Adjustments = append(p.score.Adjustments, Adjustment{Stage: stage, Name: name, Delta: delta})
}

func (p *pipeline) finding(code string) {
	p.score.Findings = append(p.score.Findings, code)
}

// ConnectionPair is an undirected, deduplicated connection between two
// existing asset ids.
type ConnectionPair struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Weight int    `json:"weight"`
}

// ConnectionWeights resolves the deduplicated connection pairs of the asset
// set, sorted by pair key. A duplicated id takes the highest weight among the
// assets sharing it; dangling ids and self loops are skipped.
func ConnectionWeights(assets []models.Asset) []ConnectionPair {
	byID := make(map[string]int)
	for _, a := range assets {
		if a.ID == "" {
			continue
		}
		w := weights.AssetWeight(a)
		if current, ok := byID[a.ID]; !ok || w > current {
			byID[a.ID] = w
		}
	}

	seen := make(map[[2]string]bool)
	var pairs []ConnectionPair

	for _, a := range assets {
		if a.ID == "" {
			continue
		}
		for _, target := range a.Connections {
			if target == a.ID {
				continue
			}
			if _, ok := byID[target]; !ok {
				continue
			}

			key := [2]string{a.ID, target}
			if key[1] < key[0] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true

			pairs = append(pairs, ConnectionPair{
				A:      key[0],
				B:      key[1],
				Weight: int(math.Round(float64(byID[key[0]]+byID[key[1]]) / 2)),
			})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})

	return pairs
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
