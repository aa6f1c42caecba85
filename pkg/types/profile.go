// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProfileStatus describes whether an aggregated profile represents a
// discovered account, one the subject has claimed, or a ruled-out hit.
type ProfileStatus string

const (
	StatusFound    ProfileStatus = "found"
	StatusClaimed  ProfileStatus = "claimed"
	StatusNotFound ProfileStatus = "not_found"
)

// NormalizedProfile is one finding reduced to a canonical shape by the
// extractors. Platform is never empty ("Unknown" is the last-resort
// fallback). Profiles are constructed fresh on every aggregation pass and
// treated as immutable values afterward.
type NormalizedProfile struct {
	// ID identifies the profile. For aggregated profiles this is the
	// identity key ("platform::username"); before merging it is the raw
	// finding ID.
	ID string `json:"id" yaml:"id"`

	// Platform is the canonical platform name (e.g. "GitHub").
	Platform string `json:"platform" yaml:"platform"`

	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
	Username    string `json:"username,omitempty" yaml:"username,omitempty"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`

	// Bio is the full bio text; generic provider placeholders are filtered
	// out at extraction time. Callers truncate for compact display.
	Bio string `json:"bio,omitempty" yaml:"bio,omitempty"`

	AvatarURL string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	Location  string `json:"location,omitempty" yaml:"location,omitempty"`
	Website   string `json:"website,omitempty" yaml:"website,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`

	Followers int    `json:"followers,omitempty" yaml:"followers,omitempty"`
	Following int    `json:"following,omitempty" yaml:"following,omitempty"`
	Posts     int    `json:"posts,omitempty" yaml:"posts,omitempty"`
	Joined    string `json:"joined,omitempty" yaml:"joined,omitempty"`

	// Sources lists the providers that reported this profile, in encounter
	// order, without duplicates.
	Sources []string `json:"sources" yaml:"sources"`

	// Confidence is the 0-100 score computed by the scorer on the merged,
	// most-complete record.
	Confidence int `json:"confidence" yaml:"confidence"`
}

// AggregatedProfile is one deduplicated real-world account, merged from all
// findings that share its identity key.
type AggregatedProfile struct {
	NormalizedProfile `yaml:",inline"`

	Status ProfileStatus `json:"status" yaml:"status"`
}

// ExposureSummary is one breach or exposure entry, deduplicated by name.
type ExposureSummary struct {
	Name      string   `json:"name" yaml:"name"`
	Kind      string   `json:"kind" yaml:"kind"`
	Providers []string `json:"providers" yaml:"providers"`
}

// DedupStats records how many raw findings collapsed into fewer profiles.
type DedupStats struct {
	// MergedCount is (profile-bearing finding count) - (group count).
	MergedCount int `json:"merged_count" yaml:"merged_count"`
}

// AggregatedResults is the complete output of one aggregation pass. It is
// derived data: recomputed whenever the finding list changes, never
// persisted by the pipeline.
type AggregatedResults struct {
	TotalProfiles  int `json:"total_profiles" yaml:"total_profiles"`
	HighConfidence int `json:"high_confidence" yaml:"high_confidence"`
	PublicProfiles int `json:"public_profiles" yaml:"public_profiles"`
	TotalBreaches  int `json:"total_breaches" yaml:"total_breaches"`
	TotalExposures int `json:"total_exposures" yaml:"total_exposures"`

	Profiles  []AggregatedProfile `json:"profiles" yaml:"profiles"`
	Exposures []ExposureSummary   `json:"exposures,omitempty" yaml:"exposures,omitempty"`

	Dedup DedupStats `json:"deduplication" yaml:"deduplication"`
}
