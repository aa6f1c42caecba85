// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/identity-engine/internal/aggregate"
	"github.com/pdiddy/identity-engine/internal/findings"
	"github.com/pdiddy/identity-engine/internal/score"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the per-signal confidence breakdown for each profile",
	Long: `Score aggregates a findings file and prints the five confidence
sub-scores (username, image, completeness, activity, reliability) behind each
profile's total, so the scoring weights can be tuned against real provider
dumps.`,
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")

	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}

	file, err := findings.Read(input)
	if err != nil {
		return err
	}

	res := aggregate.Aggregate(file.Findings, cfg)
	if len(res.Profiles) == 0 {
		fmt.Println("No profiles found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-20s  %-8s  %-5s  %-12s  %-8s  %-11s  %s\n",
		"Platform", "Username", "Username", "Image", "Completeness", "Activity", "Reliability", "Total")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, p := range res.Profiles {
		b := score.Signals(p.NormalizedProfile, cfg.Scoring)
		username := p.Username
		if username == "" {
			username = "-"
		}
		fmt.Fprintf(os.Stdout, "%-16s  %-20s  %-8d  %-5d  %-12d  %-8d  %-11d  %d\n",
			p.Platform, username, b.Username, b.Image, b.Completeness, b.Activity, b.Reliability, b.Total)
	}
	return nil
}

func init() {
	scoreCmd.Flags().String("input", "", "findings file to score (YAML or JSON)")
	_ = scoreCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(scoreCmd)
}
