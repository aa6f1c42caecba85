// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score computes the 0-100 confidence score for a normalized
// profile. Five signals are each computed on a 0-100 sub-scale and combined
// by the configured weights. The function is pure and monotonic: improving
// any individual signal never lowers the total.
package score

import (
	"math"

	"github.com/pdiddy/identity-engine/internal/platform"
	"github.com/pdiddy/identity-engine/pkg/types"
)

// Sub-scale values for the username signal.
const (
	usernameStrong  = 85 // extracted, length > 3
	usernameWeak    = 60 // extracted, short
	usernameMissing = 30
)

// Sub-scale values for the image signal.
const (
	imagePresent = 80
	imageAbsent  = 20
)

// Completeness: base plus a step per present field, capped.
const (
	completenessBase = 30
	completenessStep = 25
	completenessCap  = 90
)

// Activity: base when no indicators are present, otherwise a floor plus a
// step per indicator.
const (
	activityBase  = 30
	activityFloor = 40
	activityStep  = 20
)

// Breakdown exposes the per-signal sub-scores behind a total, for tuning the
// weights against real provider dumps.
type Breakdown struct {
	Username     int `json:"username" yaml:"username"`
	Image        int `json:"image" yaml:"image"`
	Completeness int `json:"completeness" yaml:"completeness"`
	Activity     int `json:"activity" yaml:"activity"`
	Reliability  int `json:"reliability" yaml:"reliability"`
	Total        int `json:"total" yaml:"total"`
}

// Score returns the weighted confidence score for p, rounded to the nearest
// integer in [0, 100].
func Score(p types.NormalizedProfile, cfg types.ScoringConfig) int {
	return Signals(p, cfg).Total
}

// Signals computes every sub-score and the weighted total.
func Signals(p types.NormalizedProfile, cfg types.ScoringConfig) Breakdown {
	b := Breakdown{
		Username:     usernameSignal(p),
		Image:        imageSignal(p),
		Completeness: completenessSignal(p),
		Activity:     activitySignal(p),
		Reliability:  platform.Reliability(p.Platform),
	}

	total := float64(b.Username)*cfg.UsernameWeight +
		float64(b.Image)*cfg.ImageWeight +
		float64(b.Completeness)*cfg.CompletenessWeight +
		float64(b.Activity)*cfg.ActivityWeight +
		float64(b.Reliability)*cfg.ReliabilityWeight

	b.Total = int(math.Round(math.Min(100, math.Max(0, total))))
	return b
}

func usernameSignal(p types.NormalizedProfile) int {
	switch {
	case len(p.Username) > 3:
		return usernameStrong
	case p.Username != "":
		return usernameWeak
	default:
		return usernameMissing
	}
}

func imageSignal(p types.NormalizedProfile) int {
	if p.AvatarURL != "" {
		return imagePresent
	}
	return imageAbsent
}

func completenessSignal(p types.NormalizedProfile) int {
	present := 0
	if p.Bio != "" {
		present++
	}
	if p.Location != "" && p.Location != "Unknown" {
		present++
	}
	if p.Website != "" {
		present++
	}
	s := completenessBase + completenessStep*present
	if s > completenessCap {
		return completenessCap
	}
	return s
}

func activitySignal(p types.NormalizedProfile) int {
	indicators := 0
	if p.Followers > 0 {
		indicators++
	}
	if p.Joined != "" {
		indicators++
	}
	if p.Posts > 0 {
		indicators++
	}
	if indicators == 0 {
		return activityBase
	}
	return activityFloor + activityStep*indicators
}
