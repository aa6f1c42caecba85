// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package findings reads provider finding dumps from disk and writes result
// files. It is the CLI's bridge to the pure aggregation core: the loader is
// lenient (missing IDs are filled with UUIDs, malformed timestamps treated
// as absent) and never drops a record.
package findings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/identity-engine/pkg/types"
)

// File is the on-disk representation of a finding dump: the search identity
// plus every provider observation collected for it.
type File struct {
	// Identity is the search term (username/email/phone) the providers
	// were queried with.
	Identity string `json:"identity,omitempty" yaml:"identity,omitempty"`

	Findings []types.RawFinding `json:"findings" yaml:"findings"`
}

// rawRecord is the lenient wire form of one finding. Timestamps arrive as
// strings so a malformed value degrades to absent instead of failing the
// whole file.
type rawRecord struct {
	ID         string           `json:"id" yaml:"id"`
	Provider   string           `json:"provider" yaml:"provider"`
	Kind       string           `json:"kind" yaml:"kind"`
	Evidence   []types.Evidence `json:"evidence" yaml:"evidence"`
	Metadata   map[string]any   `json:"metadata" yaml:"metadata"`
	Confidence any              `json:"confidence" yaml:"confidence"`
	ObservedAt string           `json:"observed_at" yaml:"observed_at"`
}

type rawFile struct {
	Identity string      `json:"identity" yaml:"identity"`
	Findings []rawRecord `json:"findings" yaml:"findings"`
}

// timestampLayouts are tried in order when parsing observation times.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Read loads a finding dump from path. The format is YAML unless the file
// extension is .json. Records missing an ID get a generated UUID so the
// aggregator's best-effort grouping key always exists.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading findings file: %w", err)
	}

	var rf rawFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &rf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	f := &File{Identity: rf.Identity}
	for _, r := range rf.Findings {
		f.Findings = append(f.Findings, r.toFinding())
	}
	return f, nil
}

func (r rawRecord) toFinding() types.RawFinding {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		id = uuid.NewString()
	}
	f := types.RawFinding{
		ID:         id,
		Provider:   r.Provider,
		Kind:       r.Kind,
		Evidence:   r.Evidence,
		Metadata:   r.Metadata,
		Confidence: r.Confidence,
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(r.ObservedAt)); err == nil {
			f.ObservedAt = t
			break
		}
	}
	return f
}

// ResultsFile is the on-disk representation of one aggregation run: the
// input it came from, the effective config, the results, and a summary.
type ResultsFile struct {
	Input    string                  `json:"input" yaml:"input"`
	Identity string                  `json:"identity,omitempty" yaml:"identity,omitempty"`
	Config   types.PipelineConfig    `json:"config" yaml:"config"`
	Results  types.AggregatedResults `json:"results" yaml:"results"`
	Summary  Summary                 `json:"summary" yaml:"summary"`
}

// Summary records run statistics alongside the results.
type Summary struct {
	TotalFindings  int       `json:"total_findings" yaml:"total_findings"`
	ProviderHealth int       `json:"provider_health" yaml:"provider_health"`
	Timestamp      time.Time `json:"timestamp" yaml:"timestamp"`
}

// WriteResults saves an aggregation run to path as YAML, or JSON when the
// extension is .json.
func WriteResults(path string, rf ResultsFile) error {
	return writeByExt(path, rf)
}

// WriteGraph saves a correlation graph to path as YAML, or JSON when the
// extension is .json.
func WriteGraph(path string, g types.CorrelationGraphData) error {
	return writeByExt(path, g)
}

func writeByExt(path string, v any) error {
	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}
