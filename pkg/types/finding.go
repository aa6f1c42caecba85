// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the identity-engine
// pipeline: raw provider findings, normalized and aggregated profiles,
// the correlation graph, and per-stage configuration.
package types

import (
	"strconv"
	"strings"
	"time"
)

// Finding kinds emitted by provider adapters. Presence kinds describe a
// discovered account, breach kinds a credential exposure, and health kinds
// the provider's own operational status. Health findings never become
// profiles.
const (
	KindProfilePresence = "profile_presence"
	KindPresenceHit     = "presence.hit"
	KindBreachRecord    = "breach_record"
	KindExposure        = "exposure"

	KindProviderError        = "provider_error"
	KindProviderDisabled     = "provider.disabled"
	KindProviderEmptyResults = "provider.empty_results"
	KindProviderTimeout      = "provider.timeout"
)

// Evidence is one (key, value) pair a provider attached to a finding.
type Evidence struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// RawFinding is one provider observation for the search identity. Only ID,
// Provider, and Kind are required; everything else is optional and may appear
// under multiple historical key names in Metadata or Evidence. Findings are
// created by provider adapters and are read-only to the pipeline.
type RawFinding struct {
	// ID is the provider-assigned (or loader-assigned) record identifier.
	ID string `json:"id" yaml:"id"`

	// Provider names the adapter that produced this finding (e.g. "maigret").
	Provider string `json:"provider" yaml:"provider"`

	// Kind tags what the finding reports; see the Kind constants.
	Kind string `json:"kind" yaml:"kind"`

	// Evidence is a free-form list of key/value pairs.
	Evidence []Evidence `json:"evidence,omitempty" yaml:"evidence,omitempty"`

	// Metadata is a free-form bag of provider-specific optional fields
	// (bio, avatar, followers, location, website, email, ...).
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Confidence is an optional provider hint: a number or a numeric string.
	Confidence any `json:"confidence,omitempty" yaml:"confidence,omitempty"`

	// ObservedAt is when the provider made the observation.
	ObservedAt time.Time `json:"observed_at,omitempty" yaml:"observed_at,omitempty"`
}

// IsProviderHealth reports whether the finding describes provider status
// (error, disabled, empty results, timeout) rather than a discovered account.
func (f RawFinding) IsProviderHealth() bool {
	switch f.Kind {
	case KindProviderError, KindProviderDisabled, KindProviderEmptyResults, KindProviderTimeout:
		return true
	}
	return false
}

// IsBreach reports whether the finding records a breach entry.
func (f RawFinding) IsBreach() bool {
	return f.Kind == KindBreachRecord || f.Kind == "breach" || f.Kind == "data_breach"
}

// IsExposure reports whether the finding records a non-breach data exposure.
func (f RawFinding) IsExposure() bool {
	return f.Kind == KindExposure || f.Kind == "data_exposure"
}

// EvidenceValue returns the value of the first evidence entry whose key
// matches any of keys (case-insensitive), or "".
func (f RawFinding) EvidenceValue(keys ...string) string {
	for _, e := range f.Evidence {
		for _, k := range keys {
			if strings.EqualFold(e.Key, k) && strings.TrimSpace(e.Value) != "" {
				return strings.TrimSpace(e.Value)
			}
		}
	}
	return ""
}

// MetaString returns the first non-empty string value in Metadata under any
// of keys, or "". Non-string values are ignored.
func (f RawFinding) MetaString(keys ...string) string {
	for _, k := range keys {
		if v, ok := f.Metadata[k]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// MetaInt returns the first numeric value in Metadata under any of keys.
// Numeric strings are accepted; anything else counts as absent.
func (f RawFinding) MetaInt(keys ...string) (int, bool) {
	for _, k := range keys {
		v, ok := f.Metadata[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case int:
			return n, true
		case int64:
			return int(n), true
		case uint64:
			return int(n), true
		case float64:
			return int(n), true
		case string:
			if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				return i, true
			}
		}
	}
	return 0, false
}

// ConfidenceHint returns the provider's confidence hint as a float, if the
// field holds a number or a numeric string.
func (f RawFinding) ConfidenceHint() (float64, bool) {
	switch v := f.Confidence.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if x, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return x, true
		}
	}
	return 0, false
}
