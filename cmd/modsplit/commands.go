// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/modularity/community"
	"github.com/katalvlaran/modularity/config"
	"github.com/katalvlaran/modularity/graphio"
)

// app carries the resolved configuration from PersistentPreRunE to the
// subcommands. Each command tree owns one.
type app struct {
	cfg        *config.Config
	logger     zerolog.Logger
	configPath string
}

// flagKeys maps command-line flags to config keys. A flag is copied only when
// the user set it, so file and environment values survive otherwise.
var flagKeys = map[string]string{
	"log-level":  "logging.level",
	"input":      "input.format",
	"output":     "output.format",
	"refine":     "algorithm.refine",
	"solver":     "algorithm.solver",
	"max-levels": "algorithm.max_levels",
	"workers":    "algorithm.workers",
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.NewConfig()}

	rootCmd := &cobra.Command{
		Use:   "modsplit",
		Short: "Community detection by recursive modularity bisection",
		Long: `modsplit reads an undirected graph (GML or edge list), splits it
recursively along the leading eigenvector of the modularity matrix and
prints the resulting groups with their modularity Q.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error, disabled")

	rootCmd.AddCommand(newPartitionCmd(a), newDiagnoseCmd(a), newConfigCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		if err := a.cfg.LoadFromFile(a.configPath); err != nil {
			return err
		}
	}
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		switch f.Value.Type() {
		case "bool":
			v, _ := cmd.Flags().GetBool(flag)
			a.cfg.Set(key, v)
		case "int":
			v, _ := cmd.Flags().GetInt(flag)
			a.cfg.Set(key, v)
		default:
			a.cfg.Set(key, f.Value.String())
		}
	}
	a.logger = a.cfg.LoggerTo(cmd.ErrOrStderr()).With().Str("run", uuid.NewString()).Logger()

	return nil
}

// addAlgorithmFlags registers the flags shared by partition and diagnose.
func addAlgorithmFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "input format: auto, gml, edgelist")
	cmd.Flags().Bool("refine", false, "greedy single-node relocation after every split")
	cmd.Flags().String("solver", "", "eigen solver: gonum or jacobi")
	cmd.Flags().Int("max-levels", 0, "stop after n levels (0 = unlimited)")
	cmd.Flags().Int("workers", 1, "modules divided concurrently per level (0 = GOMAXPROCS)")
}

func newPartitionCmd(a *app) *cobra.Command {
	var metricsPath string
	cmd := &cobra.Command{
		Use:   "partition <graph-file>",
		Short: "Split a graph into communities and print Q and the groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, out, err := a.cfg.Formats()
			if err != nil {
				return err
			}
			var m *runMetrics
			if metricsPath != "" {
				m = newRunMetrics()
			}
			started := time.Now()
			res, err := a.partition(cmd.Context(), args[0], m)
			if err != nil {
				return err
			}
			if m != nil {
				m.finish(res, time.Since(started))
				if err := m.writeFile(metricsPath); err != nil {
					return err
				}
			}

			return graphio.WriteResult(cmd.OutOrStdout(), res, out)
		},
	}
	addAlgorithmFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "output format: text, yaml, json")
	cmd.Flags().StringVar(&metricsPath, "metrics-file", "", "write Prometheus textfile metrics for this run")

	return cmd
}

func newDiagnoseCmd(a *app) *cobra.Command {
	var groupsPath string
	cmd := &cobra.Command{
		Use:   "diagnose <graph-file>",
		Short: "Report per-group statistics for a partition",
		Long: `diagnose prints size, internal and boundary edge counts, connected
components and modularity contribution for every group. The groups come from
a text result written by "modsplit partition" (--groups) or, without it, from
a fresh partition of the graph.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, edges, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			g, err := community.NewGraph(nodes, edges)
			if err != nil {
				return err
			}

			var groups [][]string
			if groupsPath != "" {
				fh, err := os.Open(groupsPath)
				if err != nil {
					return fmt.Errorf("diagnose: %w", err)
				}
				defer fh.Close()
				prev, err := graphio.ReadText(fh)
				if err != nil {
					return err
				}
				groups = prev.Groups
			} else {
				opts, err := a.cfg.PartitionOptions(a.logger)
				if err != nil {
					return err
				}
				res, err := community.NewPartitioner(opts...).RunContext(cmd.Context(), g)
				if err != nil {
					return err
				}
				groups = res.Groups
			}

			d, err := community.DiagnoseContext(cmd.Context(), g, groups)
			if err != nil {
				return err
			}
			_, out, err := a.cfg.Formats()
			if err != nil {
				return err
			}

			return graphio.WriteDiagnostics(cmd.OutOrStdout(), d, out)
		},
	}
	addAlgorithmFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "output format: text, yaml, json")
	cmd.Flags().StringVarP(&groupsPath, "groups", "g", "", "text result file to diagnose instead of partitioning")

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return graphio.WriteYAML(cmd.OutOrStdout(), a.cfg.AllSettings())
		},
	}
}

func (a *app) readGraph(path string) ([]string, []community.Edge, error) {
	in, _, err := a.cfg.Formats()
	if err != nil {
		return nil, nil, err
	}
	nodes, edges, err := graphio.ReadFile(path, in)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug().Str("file", path).Int("nodes", len(nodes)).Int("edges", len(edges)).Msg("graph loaded")

	return nodes, edges, nil
}

func (a *app) partition(ctx context.Context, path string, m *runMetrics) (*community.Result, error) {
	nodes, edges, err := a.readGraph(path)
	if err != nil {
		return nil, err
	}
	g, err := community.NewGraph(nodes, edges)
	if err != nil {
		return nil, err
	}
	opts, err := a.cfg.PartitionOptions(a.logger)
	if err != nil {
		return nil, err
	}
	if m != nil {
		opts = append(opts, community.WithProgress(m.observe))
	}

	return community.NewPartitioner(opts...).RunContext(ctx, g)
}
