// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract normalizes raw provider findings into canonical profiles.
// Providers populate different optional fields under different historical key
// names; each field here is resolved through an ordered chain of tagged
// sources, stopping at the first usable value. The chains are the
// compatibility contract with legacy provider encodings.
package extract

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/pdiddy/identity-engine/pkg/types"
)

// unknownPlatform is the last-resort platform value.
const unknownPlatform = "Unknown"

// genericPlaceholders are provider boilerplate substrings; bio text
// containing any of them (case-insensitive) is treated as absent.
var genericPlaceholders = []string{
	"unknown platform",
	"profile found on",
	"no bio available",
	"no description",
	"account detected",
}

// source is one step of a field-resolution chain: a tag naming where the
// value comes from and a function that probes for it.
type source struct {
	name string
	fn   func(f types.RawFinding) string
}

// resolve walks the chain and returns the first usable value, or "".
func resolve(f types.RawFinding, chain []source, usable func(string) bool) string {
	for _, s := range chain {
		if v := s.fn(f); v != "" && usable(v) {
			return v
		}
	}
	return ""
}

func anyValue(string) bool { return true }

// URL resolves the profile URL: explicit metadata url field, then alternate
// metadata key names, then evidence entries.
func URL(f types.RawFinding) string {
	chain := []source{
		{"metadata.url", func(f types.RawFinding) string { return f.MetaString("url") }},
		{"metadata.alternate", func(f types.RawFinding) string { return f.MetaString("profile_url", "link", "uri") }},
		{"evidence.url", func(f types.RawFinding) string { return f.EvidenceValue("url", "profile_url") }},
	}
	raw := resolve(f, chain, anyValue)
	if raw == "" {
		return ""
	}
	if _, ok := parseURL(raw); !ok {
		return ""
	}
	return raw
}

// Platform resolves the canonical platform name: explicit site/platform
// field (rejecting the literal "Unknown"), evidence entries, the hostname of
// the resolved URL, the provider name, and finally "Unknown". The result is
// never empty.
func Platform(f types.RawFinding) string {
	chain := []source{
		{"metadata.site", func(f types.RawFinding) string { return f.MetaString("site", "platform") }},
		{"evidence.site", func(f types.RawFinding) string { return f.EvidenceValue("site", "platform") }},
		{"url.host", func(f types.RawFinding) string { return hostPlatform(URL(f)) }},
		{"provider", func(f types.RawFinding) string { return f.MetaString("provider") }},
	}
	notUnknown := func(v string) bool { return !strings.EqualFold(v, unknownPlatform) }
	if p := resolve(f, chain, notUnknown); p != "" {
		return p
	}
	return unknownPlatform
}

// Username resolves the account handle: metadata under its historical key
// names, then the first non-empty path segment of the profile URL.
func Username(f types.RawFinding) string {
	chain := []source{
		{"metadata.username", func(f types.RawFinding) string { return f.MetaString("username", "handle", "screen_name") }},
		{"url.path", func(f types.RawFinding) string { return firstPathSegment(URL(f)) }},
	}
	return resolve(f, chain, anyValue)
}

// Bio resolves the bio text, rejecting known generic provider placeholders.
// The full string is returned; callers truncate for compact display.
func Bio(f types.RawFinding) string {
	chain := []source{
		{"metadata.bio", func(f types.RawFinding) string { return f.MetaString("bio", "about", "summary", "description") }},
	}
	return resolve(f, chain, func(v string) bool { return !IsGenericText(v) })
}

// Avatar resolves the profile-image URL.
func Avatar(f types.RawFinding) string {
	chain := []source{
		{"metadata.avatar", func(f types.RawFinding) string {
			return f.MetaString("avatar", "avatar_url", "image", "profile_image", "picture")
		}},
		{"evidence.avatar", func(f types.RawFinding) string { return f.EvidenceValue("avatar", "image") }},
	}
	return resolve(f, chain, anyValue)
}

// Profile runs every extractor over one finding and returns the normalized
// result. It never fails: malformed values are treated as absent and
// Platform falls back to "Unknown".
func Profile(f types.RawFinding) types.NormalizedProfile {
	p := types.NormalizedProfile{
		ID:          f.ID,
		Platform:    Platform(f),
		URL:         URL(f),
		Username:    Username(f),
		DisplayName: f.MetaString("name", "display_name", "full_name"),
		Bio:         Bio(f),
		AvatarURL:   Avatar(f),
		Location:    location(f),
		Website:     f.MetaString("website", "site_url", "homepage", "blog"),
		Email:       f.MetaString("email"),
		Joined:      f.MetaString("joined", "joined_date", "created_at", "member_since"),
	}
	if n, ok := f.MetaInt("followers", "follower_count", "subscribers"); ok {
		p.Followers = n
	}
	if n, ok := f.MetaInt("following", "following_count", "friends"); ok {
		p.Following = n
	}
	if n, ok := f.MetaInt("posts", "post_count", "tweets", "tweet_count"); ok {
		p.Posts = n
	}
	if f.Provider != "" {
		p.Sources = []string{f.Provider}
	}
	return p
}

func location(f types.RawFinding) string {
	loc := f.MetaString("location", "loc", "geo", "city")
	if strings.EqualFold(loc, unknownPlatform) {
		return ""
	}
	return loc
}

// IsGenericText reports whether s is provider boilerplate rather than a real
// bio.
func IsGenericText(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range genericPlaceholders {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// Truncate shortens s to at most n runes for compact display, appending an
// ellipsis when it cuts. n <= 3 returns s unchanged.
func Truncate(s string, n int) string {
	if n <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimRightFunc(string(runes[:n-3]), unicode.IsSpace) + "..."
}

// parseURL parses raw as an http(s) URL, tolerating a missing scheme.
// Malformed URLs report ok=false and are treated as absent by callers.
func parseURL(raw string) (*url.URL, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}
	return u, true
}

// hostPlatform infers a platform name from a URL's hostname: strip "www.",
// take the label before the first dot, capitalize.
func hostPlatform(rawURL string) string {
	u, ok := parseURL(rawURL)
	if !ok {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// firstPathSegment returns the first non-empty path segment of rawURL,
// stripped of a leading "@".
func firstPathSegment(rawURL string) string {
	u, ok := parseURL(rawURL)
	if !ok {
		return ""
	}
	for _, seg := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		seg = strings.TrimPrefix(strings.TrimSpace(seg), "@")
		if seg != "" {
			return seg
		}
	}
	return ""
}
