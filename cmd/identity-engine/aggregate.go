// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/identity-engine/internal/aggregate"
	"github.com/pdiddy/identity-engine/internal/findings"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Deduplicate provider findings into scored account profiles",
	Long: `Aggregate reads a findings file (YAML or JSON), filters provider-health
noise, merges findings that refer to the same account across providers, and
prints one confidence-ranked profile per distinct account, plus breach and
exposure summaries.`,
	RunE: runAggregate,
}

func runAggregate(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
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

	rest, health := aggregate.SplitHealth(file.Findings)
	if len(health) > 0 {
		logger.Warn("provider-health findings excluded from profiles", "count", len(health))
	}
	logger.Debug("loaded findings", "path", input, "total", len(file.Findings), "profile_bearing", len(rest))

	res := aggregate.Aggregate(file.Findings, cfg)

	if outPath != "" {
		rf := findings.ResultsFile{
			Input:    input,
			Identity: file.Identity,
			Config:   cfg,
			Results:  res,
			Summary: findings.Summary{
				TotalFindings:  len(file.Findings),
				ProviderHealth: len(health),
				Timestamp:      time.Now(),
			},
		}
		if err := findings.WriteResults(outPath, rf); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Results written to", outPath)
	}

	if jsonOutput {
		return aggregate.FormatJSON(res, os.Stdout)
	}
	aggregate.FormatTable(res, os.Stdout)
	return nil
}

func init() {
	aggregateCmd.Flags().String("input", "", "findings file to aggregate (YAML or JSON)")
	aggregateCmd.Flags().Bool("json", false, "output results as JSON")
	aggregateCmd.Flags().String("out", "", "write a results file (format by extension)")
	_ = aggregateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(aggregateCmd)
}
