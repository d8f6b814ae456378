package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netposture/core/internal/coverage"
	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/parser"
	"github.com/netposture/core/internal/risk"
	"github.com/netposture/core/internal/topology"
	"github.com/netposture/core/internal/weights"
)

type options struct {
	format     string
	riskConfig string
	assetID    string
}

type report struct {
	Coverage   []models.CategoryCoverage `json:"coverage"`
	Score      risk.Score                `json:"score"`
	LocalScore models.LocalScore         `json:"local_score"`
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "assess",
		Short:         "Assess the security posture of an asset inventory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.format, "format", "f", formatJSON, "Output format: json or yaml")
	root.PersistentFlags().StringVar(&opts.riskConfig, "risk-config", "", "Path to a scoring config file")

	root.AddCommand(
		newReportCmd(opts),
		newGraphCmd(opts),
		newInnerCmd(opts),
		newNeighborsCmd(opts),
		newWeightCmd(opts),
	)

	return root
}

func newReportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "report <assets-file|->",
		Short: "Print category coverage and the resilience score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := risk.LoadConfig(opts.riskConfig)
			if err != nil {
				return fmt.Errorf("failed to load risk config: %w", err)
			}

			list, err := readAssets(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			results := coverage.Evaluate(list.Assets)
			score := risk.AggregateCoverage(list.Assets, results, cfg)

			return write(cmd.OutOrStdout(), opts.format, report{
				Coverage:   results,
				Score:      score,
				LocalScore: score.LocalScore(),
			})
		},
	}
}

func newGraphCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "graph <assets-file|->",
		Short: "Print the attack-surface graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := readAssets(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), opts.format, parser.SelectGraph(list))
		},
	}
}

func newInnerCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inner <assets-file|->",
		Short: "Print the internal decomposition of one asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := readAssets(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			index := models.IndexOf(list.Assets, opts.assetID)
			if index < 0 {
				return fmt.Errorf("asset %q not found", opts.assetID)
			}

			graph, ok := topology.BuildInnerGraph(list.Assets, index)
			if !ok {
				return fmt.Errorf("no decomposition template for type %q", list.Assets[index].Type)
			}
			return write(cmd.OutOrStdout(), opts.format, graph)
		},
	}
	cmd.Flags().StringVar(&opts.assetID, "asset", "", "Asset id")
	_ = cmd.MarkFlagRequired("asset")
	return cmd
}

func newNeighborsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neighbors <assets-file|->",
		Short: "Print an asset with its neighbors and communication channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := readAssets(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), opts.format, topology.BuildNeighborGraph(list.Assets, opts.assetID))
		},
	}
	cmd.Flags().StringVar(&opts.assetID, "asset", "", "Asset id")
	_ = cmd.MarkFlagRequired("asset")
	return cmd
}

type weightResult struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Weight     int    `json:"weight"`
}

func newWeightCmd(opts *options) *cobra.Command {
	var nodeType, link string

	cmd := &cobra.Command{
		Use:   "weight [name]",
		Short: "Resolve the weight of a technology name or link type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if link != "" {
				return write(cmd.OutOrStdout(), opts.format, weightResult{
					Input:      link,
					Normalized: weights.Normalize(link),
					Weight:     weights.EdgeWeight(link),
				})
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			}
			if name == "" && nodeType == "" {
				return fmt.Errorf("a name, --type or --link is required")
			}

			return write(cmd.OutOrStdout(), opts.format, weightResult{
				Input:      name,
				Normalized: weights.Normalize(name),
				Weight:     weights.NodeWeight(name, models.NodeType(nodeType)),
			})
		},
	}

	cmd.Flags().StringVar(&nodeType, "type", "", "Structural asset type used as fallback")
	cmd.Flags().StringVar(&link, "link", "", "Resolve a link type instead of a node name")
	return cmd
}

// readAssets loads an inventory from path, or from stdin when path is "-".
// YAML is detected by file extension.
func readAssets(stdin io.Reader, path string) (*models.AssetList, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read assets: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parser.ParseAssetsYAML(data)
	default:
		return parser.ParseAssets(data)
	}
}
