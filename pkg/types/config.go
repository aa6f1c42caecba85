// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScoringConfig holds the signal weights for the confidence scorer. The
// weights are policy constants, tunable independently of the algorithm;
// they should sum to 1.0.
type ScoringConfig struct {
	// UsernameWeight weighs username match strength (default 0.25).
	UsernameWeight float64 `json:"username_weight" yaml:"username_weight" mapstructure:"username_weight"`

	// ImageWeight weighs profile-image presence (default 0.20).
	ImageWeight float64 `json:"image_weight" yaml:"image_weight" mapstructure:"image_weight"`

	// CompletenessWeight weighs profile completeness (default 0.20).
	CompletenessWeight float64 `json:"completeness_weight" yaml:"completeness_weight" mapstructure:"completeness_weight"`

	// ActivityWeight weighs activity indicators (default 0.15).
	ActivityWeight float64 `json:"activity_weight" yaml:"activity_weight" mapstructure:"activity_weight"`

	// ReliabilityWeight weighs platform reliability (default 0.20).
	ReliabilityWeight float64 `json:"reliability_weight" yaml:"reliability_weight" mapstructure:"reliability_weight"`
}

// CorrelationConfig holds the per-reason edge confidences and the similarity
// thresholds the graph builder applies to account pairs.
type CorrelationConfig struct {
	SameUsernameConfidence    float64 `json:"same_username_confidence" yaml:"same_username_confidence" mapstructure:"same_username_confidence"`
	SimilarUsernameConfidence float64 `json:"similar_username_confidence" yaml:"similar_username_confidence" mapstructure:"similar_username_confidence"`

	// SimilarUsernameRatio is the minimum Levenshtein ratio for a
	// similar_username edge (default 0.8).
	SimilarUsernameRatio float64 `json:"similar_username_ratio" yaml:"similar_username_ratio" mapstructure:"similar_username_ratio"`

	// MinUsernameLength is the minimum username length considered for the
	// similar_username channel (default 5).
	MinUsernameLength int `json:"min_username_length" yaml:"min_username_length" mapstructure:"min_username_length"`

	SameImageConfidence  float64 `json:"same_image_confidence" yaml:"same_image_confidence" mapstructure:"same_image_confidence"`
	SimilarBioConfidence float64 `json:"similar_bio_confidence" yaml:"similar_bio_confidence" mapstructure:"similar_bio_confidence"`

	// BioOverlapThreshold is the minimum significant-word overlap
	// coefficient for a similar_bio edge (default 0.5).
	BioOverlapThreshold float64 `json:"bio_overlap_threshold" yaml:"bio_overlap_threshold" mapstructure:"bio_overlap_threshold"`

	// MinBioLength is the minimum bio length (runes) considered for the
	// similar_bio channel (default 20).
	MinBioLength int `json:"min_bio_length" yaml:"min_bio_length" mapstructure:"min_bio_length"`

	SharedEmailConfidence    float64 `json:"shared_email_confidence" yaml:"shared_email_confidence" mapstructure:"shared_email_confidence"`
	SharedLinkConfidence     float64 `json:"shared_link_confidence" yaml:"shared_link_confidence" mapstructure:"shared_link_confidence"`
	SharedDomainConfidence   float64 `json:"shared_domain_confidence" yaml:"shared_domain_confidence" mapstructure:"shared_domain_confidence"`
	CrossReferenceConfidence float64 `json:"cross_reference_confidence" yaml:"cross_reference_confidence" mapstructure:"cross_reference_confidence"`
}

// AggregationConfig holds settings for the aggregation stage.
type AggregationConfig struct {
	// HighConfidenceThreshold is the minimum score counted as a
	// high-confidence profile (default 75).
	HighConfidenceThreshold int `json:"high_confidence_threshold" yaml:"high_confidence_threshold" mapstructure:"high_confidence_threshold"`

	// BioSnippetLength is the display truncation length for bio snippets on
	// graph nodes (default 80). The full bio stays on the profile.
	BioSnippetLength int `json:"bio_snippet_length" yaml:"bio_snippet_length" mapstructure:"bio_snippet_length"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Scoring     ScoringConfig     `json:"scoring" yaml:"scoring" mapstructure:"scoring"`
	Correlation CorrelationConfig `json:"correlation" yaml:"correlation" mapstructure:"correlation"`
	Aggregation AggregationConfig `json:"aggregation" yaml:"aggregation" mapstructure:"aggregation"`
}

// DefaultConfig returns the documented default policy constants.
func DefaultConfig() PipelineConfig {
	return PipelineConfig{
		Scoring: ScoringConfig{
			UsernameWeight:     0.25,
			ImageWeight:        0.20,
			CompletenessWeight: 0.20,
			ActivityWeight:     0.15,
			ReliabilityWeight:  0.20,
		},
		Correlation: CorrelationConfig{
			SameUsernameConfidence:    0.90,
			SimilarUsernameConfidence: 0.60,
			SimilarUsernameRatio:      0.80,
			MinUsernameLength:         5,
			SameImageConfidence:       0.85,
			SimilarBioConfidence:      0.40,
			BioOverlapThreshold:       0.50,
			MinBioLength:              20,
			SharedEmailConfidence:     0.95,
			SharedLinkConfidence:      0.60,
			SharedDomainConfidence:    0.50,
			CrossReferenceConfidence:  0.45,
		},
		Aggregation: AggregationConfig{
			HighConfidenceThreshold: 75,
			BioSnippetLength:        80,
		},
	}
}
