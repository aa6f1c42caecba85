// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate collapses raw provider findings into deduplicated
// account profiles. Findings from different providers that refer to the same
// account (same platform + same username or URL path) merge into one
// AggregatedProfile; provider-health findings are split out first and breach
// entries are summarized separately, so displayed totals always reconcile
// with the input count.
package aggregate

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/identity-engine/internal/extract"
	"github.com/pdiddy/identity-engine/internal/score"
	"github.com/pdiddy/identity-engine/pkg/types"
)

// Options carries caller-supplied state that overrides derived values.
type Options struct {
	// Claims maps identity keys to externally known statuses (e.g. the
	// subject claimed or disowned an account). Unlisted profiles are
	// StatusFound.
	Claims map[string]types.ProfileStatus
}

// SplitHealth separates provider-health findings from the rest. Health
// findings never become profiles; the caller surfaces them through its own
// provider accounting.
func SplitHealth(findings []types.RawFinding) (rest, health []types.RawFinding) {
	for _, f := range findings {
		if f.IsProviderHealth() {
			health = append(health, f)
			continue
		}
		rest = append(rest, f)
	}
	return rest, health
}

// Aggregate runs a full aggregation pass with default options.
func Aggregate(findings []types.RawFinding, cfg types.PipelineConfig) types.AggregatedResults {
	return AggregateWithOptions(findings, cfg, Options{})
}

// AggregateWithOptions filters provider-health noise, normalizes each
// remaining finding, groups by identity key, merges each group into its most
// complete record, re-scores the merged record, and computes summary counts.
// It is total: any syntactically valid finding list (including empty)
// produces a result, and no finding is silently dropped.
func AggregateWithOptions(findings []types.RawFinding, cfg types.PipelineConfig, opts Options) types.AggregatedResults {
	profileFindings, _ := SplitHealth(findings)

	type group struct {
		profile types.NormalizedProfile
		order   int
	}

	groups := make(map[string]*group)
	var keys []string // encounter order
	var exposures []types.ExposureSummary
	exposureIdx := make(map[string]int)
	breaches, plainExposures := 0, 0
	profileBearing := 0

	for _, f := range profileFindings {
		if f.IsBreach() || f.IsExposure() {
			name := breachName(f)
			dedup := strings.ToLower(name)
			if i, ok := exposureIdx[dedup]; ok {
				exposures[i].Providers = appendUnique(exposures[i].Providers, f.Provider)
				continue
			}
			exposureIdx[dedup] = len(exposures)
			kind := types.KindExposure
			if f.IsBreach() {
				kind = types.KindBreachRecord
				breaches++
			} else {
				plainExposures++
			}
			exposures = append(exposures, types.ExposureSummary{
				Name:      name,
				Kind:      kind,
				Providers: appendUnique(nil, f.Provider),
			})
			continue
		}

		profileBearing++
		p := extract.Profile(f)
		key := IdentityKey(p, f.ID)
		if g, ok := groups[key]; ok {
			mergeInto(&g.profile, p)
			continue
		}
		p.ID = key
		groups[key] = &group{profile: p, order: len(keys)}
		keys = append(keys, key)
	}

	profiles := make([]types.AggregatedProfile, 0, len(keys))
	for _, key := range keys {
		merged := groups[key].profile
		merged.Confidence = score.Score(merged, cfg.Scoring)
		status := types.StatusFound
		if s, ok := opts.Claims[key]; ok {
			status = s
		}
		profiles = append(profiles, types.AggregatedProfile{
			NormalizedProfile: merged,
			Status:            status,
		})
	}

	// Descending confidence; ties keep encounter order.
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Confidence > profiles[j].Confidence
	})

	res := types.AggregatedResults{
		Profiles:       profiles,
		Exposures:      exposures,
		TotalBreaches:  breaches,
		TotalExposures: plainExposures,
		Dedup:          types.DedupStats{MergedCount: profileBearing - len(keys)},
	}
	for _, p := range profiles {
		if p.Status == types.StatusFound || p.Status == types.StatusClaimed {
			res.TotalProfiles++
		}
		if p.Confidence >= cfg.Aggregation.HighConfidenceThreshold {
			res.HighConfidence++
		}
		if p.URL != "" {
			res.PublicProfiles++
		}
	}
	return res
}

// IdentityKey returns the merge key for a normalized profile:
// lower(platform) + "::" + lower(username, else URL path, else fallbackID).
// A finding with no extractable platform, username, or URL still gets a
// best-effort key from its raw ID so totals stay reconcilable.
func IdentityKey(p types.NormalizedProfile, fallbackID string) string {
	handle := p.Username
	if handle == "" {
		handle = urlPath(p.URL)
	}
	if handle == "" {
		handle = fallbackID
	}
	return strings.ToLower(p.Platform) + "::" + strings.ToLower(handle)
}

func urlPath(rawURL string) string {
	_, after, ok := strings.Cut(rawURL, "://")
	if ok {
		rawURL = after
	}
	_, path, ok := strings.Cut(rawURL, "/")
	if !ok {
		return ""
	}
	path, _, _ = strings.Cut(path, "?")
	return strings.Trim(path, "/")
}

// mergeInto folds src into dst: sources union in encounter order, first
// non-empty value wins per text field, numeric fields keep the maximum
// across sources.
func mergeInto(dst *types.NormalizedProfile, src types.NormalizedProfile) {
	for _, s := range src.Sources {
		dst.Sources = appendUnique(dst.Sources, s)
	}
	if dst.URL == "" {
		dst.URL = src.URL
	}
	if dst.Username == "" {
		dst.Username = src.Username
	}
	if dst.DisplayName == "" {
		dst.DisplayName = src.DisplayName
	}
	if dst.Bio == "" {
		dst.Bio = src.Bio
	}
	if dst.AvatarURL == "" {
		dst.AvatarURL = src.AvatarURL
	}
	if dst.Location == "" {
		dst.Location = src.Location
	}
	if dst.Website == "" {
		dst.Website = src.Website
	}
	if dst.Email == "" {
		dst.Email = src.Email
	}
	if dst.Joined == "" {
		dst.Joined = src.Joined
	}
	if src.Followers > dst.Followers {
		dst.Followers = src.Followers
	}
	if src.Following > dst.Following {
		dst.Following = src.Following
	}
	if src.Posts > dst.Posts {
		dst.Posts = src.Posts
	}
}

func breachName(f types.RawFinding) string {
	if name := f.MetaString("breach", "name", "source"); name != "" {
		return name
	}
	if name := f.EvidenceValue("breach", "name"); name != "" {
		return name
	}
	return f.Provider
}

func appendUnique(list []string, s string) []string {
	if s == "" {
		return list
	}
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

// FormatTable writes the profiles as a human-readable table to w.
func FormatTable(res types.AggregatedResults, w io.Writer) {
	if len(res.Profiles) == 0 {
		fmt.Fprintln(w, "No profiles found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-16s  %-20s  %-10s  %-5s  %s\n",
		"Rank", "Platform", "Username", "Status", "Score", "Sources")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for i, p := range res.Profiles {
		username := p.Username
		if username == "" {
			username = "-"
		}
		fmt.Fprintf(w, "%-4d  %-16s  %-20s  %-10s  %-5d  %s\n",
			i+1, truncate(p.Platform, 16), truncate(username, 20),
			p.Status, p.Confidence, strings.Join(p.Sources, ","))
	}

	fmt.Fprintf(w, "\n%d profiles (%d high confidence, %d merged duplicates)\n",
		res.TotalProfiles, res.HighConfidence, res.Dedup.MergedCount)
	if res.TotalBreaches > 0 || res.TotalExposures > 0 {
		fmt.Fprintf(w, "%d breaches, %d exposures\n", res.TotalBreaches, res.TotalExposures)
	}
}

// FormatJSON writes the full results as indented JSON to w.
func FormatJSON(res types.AggregatedResults, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
