package extract

import (
	"reflect"
	"testing"

	"github.com/pdiddy/identity-engine/pkg/types"
)

func finding(meta map[string]any, evidence ...types.Evidence) types.RawFinding {
	return types.RawFinding{
		ID:       "f-1",
		Provider: "maigret",
		Kind:     types.KindProfilePresence,
		Metadata: meta,
		Evidence: evidence,
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		finding types.RawFinding
		want    string
	}{
		{
			"metadata url",
			finding(map[string]any{"url": "https://github.com/alice"}),
			"https://github.com/alice",
		},
		{
			"alternate key profile_url",
			finding(map[string]any{"profile_url": "https://reddit.com/u/alice"}),
			"https://reddit.com/u/alice",
		},
		{
			"evidence fallback",
			finding(nil, types.Evidence{Key: "url", Value: "https://x.com/alice"}),
			"https://x.com/alice",
		},
		{
			"metadata wins over evidence",
			finding(map[string]any{"url": "https://github.com/alice"},
				types.Evidence{Key: "url", Value: "https://x.com/alice"}),
			"https://github.com/alice",
		},
		{
			"scheme-less accepted",
			finding(map[string]any{"url": "github.com/alice"}),
			"github.com/alice",
		},
		{
			"malformed rejected",
			finding(map[string]any{"url": "not a url at all"}),
			"",
		},
		{
			"non-http scheme rejected",
			finding(map[string]any{"url": "ftp://example.com/alice"}),
			"",
		},
		{"absent", finding(nil), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URL(tt.finding); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlatform(t *testing.T) {
	tests := []struct {
		name    string
		finding types.RawFinding
		want    string
	}{
		{"explicit site", finding(map[string]any{"site": "GitHub"}), "GitHub"},
		{"platform key", finding(map[string]any{"platform": "Reddit"}), "Reddit"},
		{
			"literal Unknown skipped for url host",
			finding(map[string]any{"site": "Unknown", "url": "https://www.github.com/alice"}),
			"Github",
		},
		{
			"host inference",
			finding(map[string]any{"url": "https://mastodon.social/@alice"}),
			"Mastodon",
		},
		{
			"provider name as last resort",
			finding(map[string]any{"provider": "sherlock"}),
			"sherlock",
		},
		{"nothing extractable", finding(nil), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Platform(tt.finding); got != tt.want {
				t.Errorf("Platform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlatformNeverEmpty(t *testing.T) {
	if got := Platform(types.RawFinding{}); got == "" {
		t.Error("Platform() on an empty finding must not be empty")
	}
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name    string
		finding types.RawFinding
		want    string
	}{
		{"metadata username", finding(map[string]any{"username": "alice123"}), "alice123"},
		{"handle key", finding(map[string]any{"handle": "alice123"}), "alice123"},
		{"screen_name key", finding(map[string]any{"screen_name": "alice123"}), "alice123"},
		{
			"url path segment",
			finding(map[string]any{"url": "https://github.com/alice123"}),
			"alice123",
		},
		{
			"at-prefix stripped",
			finding(map[string]any{"url": "https://mastodon.social/@alice123"}),
			"alice123",
		},
		{"absent", finding(nil), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Username(tt.finding); got != tt.want {
				t.Errorf("Username() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBio(t *testing.T) {
	tests := []struct {
		name    string
		finding types.RawFinding
		want    string
	}{
		{
			"real bio",
			finding(map[string]any{"bio": "Software engineer in Berlin"}),
			"Software engineer in Berlin",
		},
		{
			"about key",
			finding(map[string]any{"about": "Backend developer"}),
			"Backend developer",
		},
		{
			"generic placeholder rejected",
			finding(map[string]any{"bio": "Profile found on GitHub"}),
			"",
		},
		{
			"placeholder rejection is case-insensitive",
			finding(map[string]any{"bio": "NO BIO AVAILABLE"}),
			"",
		},
		{
			"placeholder skipped for later key",
			finding(map[string]any{"bio": "Account detected", "description": "Real bio text"}),
			"Real bio text",
		},
		{"absent", finding(nil), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bio(tt.finding); got != tt.want {
				t.Errorf("Bio() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProfile(t *testing.T) {
	f := types.RawFinding{
		ID:       "maigret-42",
		Provider: "maigret",
		Kind:     types.KindProfilePresence,
		Metadata: map[string]any{
			"site":      "GitHub",
			"url":       "https://github.com/alice123",
			"username":  "alice123",
			"name":      "Alice",
			"bio":       "Software engineer in Berlin, loves hiking",
			"avatar":    "https://avatars.example.com/alice.png",
			"location":  "Berlin",
			"website":   "https://alice.dev",
			"email":     "alice@example.com",
			"followers": 120,
			"posts":     "37",
			"joined":    "2019-04-01",
		},
	}

	p := Profile(f)

	want := types.NormalizedProfile{
		ID:          "maigret-42",
		Platform:    "GitHub",
		URL:         "https://github.com/alice123",
		Username:    "alice123",
		DisplayName: "Alice",
		Bio:         "Software engineer in Berlin, loves hiking",
		AvatarURL:   "https://avatars.example.com/alice.png",
		Location:    "Berlin",
		Website:     "https://alice.dev",
		Email:       "alice@example.com",
		Followers:   120,
		Posts:       37,
		Joined:      "2019-04-01",
		Sources:     []string{"maigret"},
	}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("Profile() = %+v, want %+v", p, want)
	}
}

func TestProfileUnknownLocationDropped(t *testing.T) {
	p := Profile(finding(map[string]any{"location": "Unknown"}))
	if p.Location != "" {
		t.Errorf("location %q, want empty for the literal Unknown", p.Location)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{"short unchanged", "hello", 10, "hello"},
		{"exact unchanged", "hello", 5, "hello"},
		{"cut with ellipsis", "hello world", 8, "hello..."},
		{"trailing space trimmed before ellipsis", "hello there", 9, "hello..."},
		{"tiny n unchanged", "hello", 3, "hello"},
		{"multibyte safe", "héllo wörld", 8, "héllo..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.n); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
			}
		})
	}
}

func TestIsGenericText(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"Profile found on GitHub", true},
		{"unknown platform", true},
		{"Software engineer", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsGenericText(tt.s); got != tt.want {
			t.Errorf("IsGenericText(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
