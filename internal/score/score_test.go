package score

import (
	"testing"

	"github.com/pdiddy/identity-engine/pkg/types"
)

func defaultWeights() types.ScoringConfig {
	return types.DefaultConfig().Scoring
}

func richProfile() types.NormalizedProfile {
	return types.NormalizedProfile{
		Platform:  "GitHub",
		Username:  "alice123",
		AvatarURL: "https://avatars.example.com/alice.png",
		Bio:       "Software engineer in Berlin, loves hiking",
		Location:  "Berlin",
		Website:   "https://alice.dev",
		Followers: 120,
		Posts:     37,
		Joined:    "2019-04-01",
	}
}

func TestScoreEmptyProfile(t *testing.T) {
	// All signals at their floor, default platform reliability:
	// 30*0.25 + 20*0.20 + 30*0.20 + 30*0.15 + 50*0.20 = 32.
	got := Score(types.NormalizedProfile{}, defaultWeights())
	if got != 32 {
		t.Errorf("Score(empty) = %d, want 32", got)
	}
}

func TestScoreRichProfile(t *testing.T) {
	// 85*0.25 + 80*0.20 + 90*0.20 + 100*0.15 + 90*0.20 = 88.25 -> 88.
	got := Score(richProfile(), defaultWeights())
	if got != 88 {
		t.Errorf("Score(rich) = %d, want 88", got)
	}
}

func TestScoreBounds(t *testing.T) {
	profiles := []types.NormalizedProfile{
		{},
		richProfile(),
		{Platform: "LinkedIn", Username: "a"},
		{Platform: "Unknown", Bio: "x", Location: "y", Website: "z", Followers: 1, Posts: 1, Joined: "2020"},
	}
	for i, p := range profiles {
		got := Score(p, defaultWeights())
		if got < 0 || got > 100 {
			t.Errorf("profile %d: score %d out of [0, 100]", i, got)
		}
	}
}

// Adding a previously-absent signal must never decrease the score.
func TestScoreMonotonicity(t *testing.T) {
	cfg := defaultWeights()
	base := types.NormalizedProfile{Platform: "Reddit", Username: "alice123"}

	improvements := []struct {
		name  string
		apply func(p *types.NormalizedProfile)
	}{
		{"avatar", func(p *types.NormalizedProfile) { p.AvatarURL = "https://img.example.com/a.png" }},
		{"bio", func(p *types.NormalizedProfile) { p.Bio = "Software engineer" }},
		{"location", func(p *types.NormalizedProfile) { p.Location = "Berlin" }},
		{"website", func(p *types.NormalizedProfile) { p.Website = "https://alice.dev" }},
		{"followers", func(p *types.NormalizedProfile) { p.Followers = 10 }},
		{"joined", func(p *types.NormalizedProfile) { p.Joined = "2020-01-01" }},
		{"posts", func(p *types.NormalizedProfile) { p.Posts = 3 }},
	}

	before := Score(base, cfg)
	for _, imp := range improvements {
		t.Run(imp.name, func(t *testing.T) {
			p := base
			imp.apply(&p)
			after := Score(p, cfg)
			if after < before {
				t.Errorf("adding %s dropped score %d -> %d", imp.name, before, after)
			}
		})
	}
}

func TestUsernameSignal(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     int
	}{
		{"long username is strong", "alice123", usernameStrong},
		{"short username is weak", "abc", usernameWeak},
		{"missing", "", usernameMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Signals(types.NormalizedProfile{Username: tt.username}, defaultWeights())
			if b.Username != tt.want {
				t.Errorf("username sub-score = %d, want %d", b.Username, tt.want)
			}
		})
	}
}

func TestCompletenessCapped(t *testing.T) {
	p := types.NormalizedProfile{Bio: "x", Location: "Berlin", Website: "https://alice.dev"}
	b := Signals(p, defaultWeights())
	if b.Completeness != completenessCap {
		t.Errorf("completeness = %d, want cap %d", b.Completeness, completenessCap)
	}
}

func TestCompletenessIgnoresUnknownLocation(t *testing.T) {
	with := Signals(types.NormalizedProfile{Location: "Berlin"}, defaultWeights())
	unknown := Signals(types.NormalizedProfile{Location: "Unknown"}, defaultWeights())
	if with.Completeness <= unknown.Completeness {
		t.Errorf("Unknown location counted: %d vs %d", unknown.Completeness, with.Completeness)
	}
}

func TestActivitySignal(t *testing.T) {
	tests := []struct {
		name    string
		profile types.NormalizedProfile
		want    int
	}{
		{"no indicators", types.NormalizedProfile{}, activityBase},
		{"one indicator", types.NormalizedProfile{Followers: 5}, activityFloor + activityStep},
		{
			"all indicators",
			types.NormalizedProfile{Followers: 5, Posts: 2, Joined: "2020"},
			activityFloor + 3*activityStep,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Signals(tt.profile, defaultWeights())
			if b.Activity != tt.want {
				t.Errorf("activity = %d, want %d", b.Activity, tt.want)
			}
		})
	}
}
