// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/identity-engine/internal/aggregate"
	"github.com/pdiddy/identity-engine/internal/correlate"
	"github.com/pdiddy/identity-engine/internal/findings"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build the correlation graph over aggregated profiles",
	Long: `Graph aggregates a findings file and builds the pairwise correlation
graph: one identity root node for the search term, one account node per
deduplicated profile, an identity edge per account, and a correlation edge
for every pair that matches a reason channel (username reuse, image match,
bio overlap, shared email/link/domain, cross-reference).`,
	RunE: runGraph,
}

func runGraph(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	identity, _ := cmd.Flags().GetString("identity")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	outPath, _ := cmd.Flags().GetString("out")

	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}

	file, err := findings.Read(input)
	if err != nil {
		return err
	}

	if identity == "" {
		identity = file.Identity
	}
	if identity == "" {
		return fmt.Errorf("no identity label: pass --identity or set identity in the findings file")
	}

	res := aggregate.Aggregate(file.Findings, cfg)
	g := correlate.BuildGraph(res.Profiles, identity, cfg)
	logger.Debug("graph built",
		"nodes", g.Stats.TotalNodes,
		"identity_edges", g.Stats.IdentityEdges,
		"correlation_edges", g.Stats.CorrelationEdges)

	if outPath != "" {
		if err := findings.WriteGraph(outPath, g); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Graph written to", outPath)
	}

	if jsonOutput {
		return correlate.FormatJSON(g, os.Stdout)
	}
	correlate.FormatStats(g, os.Stdout)
	return nil
}

func init() {
	graphCmd.Flags().String("input", "", "findings file to correlate (YAML or JSON)")
	graphCmd.Flags().String("identity", "", "label for the identity root node (default: identity from the findings file)")
	graphCmd.Flags().Bool("json", false, "output the full graph as JSON")
	graphCmd.Flags().String("out", "", "write the graph to a file (format by extension)")
	_ = graphCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(graphCmd)
}
