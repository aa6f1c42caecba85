// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package correlate builds the pairwise correlation graph over aggregated
// profiles. Every account node connects to a synthetic identity root, so the
// graph is connected even with zero correlations; account pairs are then
// checked against independent reason channels (username reuse, image match,
// bio overlap, shared email/link/domain, cross-reference), each producing at
// most one edge per pair. Pairwise comparison is O(n²) in profile count;
// inputs are expected to stay within provider result caps (low hundreds of
// profiles).
package correlate

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/pdiddy/identity-engine/internal/extract"
	"github.com/pdiddy/identity-engine/internal/platform"
	"github.com/pdiddy/identity-engine/pkg/types"
)

// freeHostingDomains are shared hosts that say nothing about common
// ownership; website matches on them never produce shared_domain edges.
var freeHostingDomains = map[string]bool{
	"wordpress.com": true,
	"blogspot.com":  true,
	"github.io":     true,
	"gitlab.io":     true,
	"netlify.app":   true,
	"vercel.app":    true,
	"wixsite.com":   true,
	"weebly.com":    true,
	"carrd.co":      true,
	"linktr.ee":     true,
	"bit.ly":        true,
}

// BuildGraph assembles the correlation graph for the given profiles,
// anchored at an identity root labeled identityLabel. Only found/claimed
// profiles become nodes. The function never fails: a profile with no
// comparable fields simply contributes no correlation edges, and an empty
// profile list yields a single-node graph.
func BuildGraph(profiles []types.AggregatedProfile, identityLabel string, cfg types.PipelineConfig) types.CorrelationGraphData {
	root := types.GraphNode{
		ID:         types.IdentityRootID,
		Type:       types.NodeIdentity,
		Label:      identityLabel,
		Confidence: 100,
	}

	nodes := []types.GraphNode{root}
	var edges []types.GraphEdge
	var accounts []types.AggregatedProfile

	for _, p := range profiles {
		if p.Status != types.StatusFound && p.Status != types.StatusClaimed {
			continue
		}
		accounts = append(accounts, p)
		nodes = append(nodes, accountNode(p, cfg.Aggregation.BioSnippetLength))
		edges = append(edges, identityEdge(p))
	}

	for i := 0; i < len(accounts); i++ {
		for j := i + 1; j < len(accounts); j++ {
			edges = append(edges, correlatePair(accounts[i], accounts[j], cfg.Correlation)...)
		}
	}

	g := types.CorrelationGraphData{Nodes: nodes, Edges: edges}
	g.Stats = buildStats(g)
	return g
}

func accountNode(p types.AggregatedProfile, snippetLen int) types.GraphNode {
	label := p.DisplayName
	if label == "" {
		label = p.Username
	}
	if label == "" {
		label = p.Platform
	}
	return types.GraphNode{
		ID:         p.ID,
		Type:       types.NodeAccount,
		Label:      label,
		Platform:   p.Platform,
		Category:   platform.Categorize(p.Platform),
		Confidence: p.Confidence,
		AvatarURL:  p.AvatarURL,
		Username:   p.Username,
		BioSnippet: extract.Truncate(p.Bio, snippetLen),
	}
}

func identityEdge(p types.AggregatedProfile) types.GraphEdge {
	confidence := float64(p.Confidence) / 100
	return types.GraphEdge{
		ID:         "identity--" + p.ID,
		Source:     types.IdentityRootID,
		Target:     p.ID,
		Reason:     types.ReasonIdentitySearch,
		Confidence: confidence,
		Weight:     weightFor(confidence),
	}
}

// correlatePair evaluates every reason channel for one unordered account
// pair. Channels are independent: a pair may carry several edges with
// different reasons, but at most one edge per reason. Endpoints are
// canonicalized by node ID so the edge set does not depend on input order.
func correlatePair(a, b types.AggregatedProfile, cfg types.CorrelationConfig) []types.GraphEdge {
	var edges []types.GraphEdge
	add := func(reason types.EdgeReason, confidence float64, detail string) {
		lo, hi := a.ID, b.ID
		if lo > hi {
			lo, hi = hi, lo
		}
		edges = append(edges, types.GraphEdge{
			ID:         fmt.Sprintf("%s--%s--%s", reason, lo, hi),
			Source:     lo,
			Target:     hi,
			Reason:     reason,
			Confidence: confidence,
			Weight:     weightFor(confidence),
			Detail:     detail,
		})
	}

	// Username channel: exact match beats near match.
	if a.Username != "" && b.Username != "" {
		switch {
		case strings.EqualFold(a.Username, b.Username):
			add(types.ReasonSameUsername, cfg.SameUsernameConfidence,
				fmt.Sprintf("username %q reused on %s and %s", a.Username, a.Platform, b.Platform))
		case len(a.Username) >= cfg.MinUsernameLength && len(b.Username) >= cfg.MinUsernameLength:
			if ratio := LevenshteinRatio(a.Username, b.Username); ratio >= cfg.SimilarUsernameRatio {
				add(types.ReasonSimilarUsername, cfg.SimilarUsernameConfidence,
					fmt.Sprintf("usernames %q and %q are %d%% similar", a.Username, b.Username, int(ratio*100)))
			}
		}
	}

	if a.AvatarURL != "" && a.AvatarURL == b.AvatarURL {
		add(types.ReasonSameImage, cfg.SameImageConfidence, "identical profile image URL")
	}

	if len([]rune(a.Bio)) >= cfg.MinBioLength && len([]rune(b.Bio)) >= cfg.MinBioLength {
		if overlap := TokenOverlap(a.Bio, b.Bio); overlap >= cfg.BioOverlapThreshold {
			add(types.ReasonSimilarBio, cfg.SimilarBioConfidence,
				fmt.Sprintf("weak signal: bios share %d%% of significant words", int(overlap*100)))
		}
	}

	if a.Email != "" && strings.EqualFold(a.Email, b.Email) {
		add(types.ReasonSharedEmail, cfg.SharedEmailConfidence, "same contact email")
	}

	// Website channel: exact link equality beats bare domain equality, and
	// shared free-hosting domains prove nothing.
	if a.Website != "" && b.Website != "" {
		da, db := registrableDomain(a.Website), registrableDomain(b.Website)
		switch {
		case normalizeLink(a.Website) == normalizeLink(b.Website):
			add(types.ReasonSharedLink, cfg.SharedLinkConfidence, "same website URL")
		case da != "" && da == db && !freeHostingDomains[da]:
			add(types.ReasonSharedDomain, cfg.SharedDomainConfidence,
				fmt.Sprintf("websites share domain %s", da))
		}
	}

	if crossReferences(a, b) || crossReferences(b, a) {
		add(types.ReasonCrossReference, cfg.CrossReferenceConfidence,
			"one profile mentions the other's username or platform")
	}

	return edges
}

// crossReferences reports whether a's bio text mentions b's username or
// platform.
func crossReferences(a, b types.AggregatedProfile) bool {
	text := strings.ToLower(a.Bio)
	if text == "" {
		return false
	}
	if len(b.Username) > 3 && strings.Contains(text, strings.ToLower(b.Username)) {
		return true
	}
	plat := strings.ToLower(b.Platform)
	if len(plat) > 3 && plat != "unknown" && strings.Contains(text, plat) {
		return true
	}
	return false
}

// weightFor derives a rendering thickness hint from an edge confidence.
func weightFor(confidence float64) float64 {
	return math.Round((1+4*confidence)*100) / 100
}

// normalizeLink strips scheme, "www.", and trailing slash for URL equality.
func normalizeLink(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if _, after, ok := strings.Cut(s, "://"); ok {
		s = after
	}
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimSuffix(s, "/")
}

// registrableDomain returns the last two hostname labels ("user.github.io"
// -> "github.io"), or "" when the URL does not parse.
func registrableDomain(raw string) string {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	labels := strings.Split(strings.ToLower(u.Hostname()), ".")
	if len(labels) < 2 {
		return ""
	}
	return strings.Join(labels[len(labels)-2:], ".")
}

func buildStats(g types.CorrelationGraphData) types.GraphStats {
	stats := types.GraphStats{
		TotalNodes: len(g.Nodes),
		TotalEdges: len(g.Edges),
		ByReason:   make(map[types.EdgeReason]int),
		ByCategory: make(map[types.Category]int),
	}
	for _, e := range g.Edges {
		stats.ByReason[e.Reason]++
		if e.Reason == types.ReasonIdentitySearch {
			stats.IdentityEdges++
		} else {
			stats.CorrelationEdges++
		}
	}
	for _, n := range g.Nodes {
		if n.Type == types.NodeAccount {
			stats.ByCategory[n.Category]++
		}
	}
	return stats
}

// FormatStats writes a human-readable stats block and edge list to w.
func FormatStats(g types.CorrelationGraphData, w io.Writer) {
	fmt.Fprintf(w, "%d nodes, %d edges (%d identity, %d correlation)\n",
		g.Stats.TotalNodes, g.Stats.TotalEdges, g.Stats.IdentityEdges, g.Stats.CorrelationEdges)

	reasons := make([]string, 0, len(g.Stats.ByReason))
	for r := range g.Stats.ByReason {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		fmt.Fprintf(w, "  %-18s %d\n", r, g.Stats.ByReason[types.EdgeReason(r)])
	}

	for _, e := range g.Edges {
		if e.Reason == types.ReasonIdentitySearch {
			continue
		}
		fmt.Fprintf(w, "%-18s %-30s %-30s %.2f  %s\n",
			e.Reason, e.Source, e.Target, e.Confidence, e.Detail)
	}
}

// FormatJSON writes the full graph as indented JSON to w.
func FormatJSON(g types.CorrelationGraphData, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}
