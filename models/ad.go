package models

import (
	"encoding/json"
	"time"
)

// ============================================================================
// AD FORMATS
// ============================================================================

// Ad format identifiers. AdFormats is the fixed enumeration order used by
// the ad-type scorer; it doubles as the tie-break order when totals are
// equal.
const (
	AdFormatSocialPost  = "social_post"
	AdFormatStory       = "story"
	AdFormatVideoScript = "video_script"
	AdFormatCarousel    = "carousel"
	AdFormatEmail       = "email"
	AdFormatSMS         = "sms"
)

var AdFormats = []string{
	AdFormatSocialPost,
	AdFormatStory,
	AdFormatVideoScript,
	AdFormatCarousel,
	AdFormatEmail,
	AdFormatSMS,
}

// IsValidAdFormat reports whether s names a known ad format.
func IsValidAdFormat(s string) bool {
	for _, f := range AdFormats {
		if f == s {
			return true
		}
	}
	return false
}

// ============================================================================
// AD-TYPE ANALYSIS
// ============================================================================

// AdTypeRecommendation is the output of the ad-type scorer: the winning
// format, up to 3 runner-up formats, and human-readable reasoning.
type AdTypeRecommendation struct {
	RecommendedType  string   `json:"recommended_type"`
	ConfidenceScore  float64  `json:"confidence_score"` // 0-1
	Reasoning        string   `json:"reasoning"`
	AlternativeTypes []string `json:"alternative_types"`
}

// MarketAnalysis aggregates the platform and ad-type recommendations for a
// product into the context the content synthesizer consumes.
type MarketAnalysis struct {
	RecommendedAdType        string   `json:"recommended_ad_type"`
	RecommendedPlatform      string   `json:"recommended_platform"`
	TargetDemographic        string   `json:"target_demographic"`
	KeySellingPoints         []string `json:"key_selling_points"`
	SuggestedTone            string   `json:"suggested_tone"`
	CompetitionLevel         string   `json:"competition_level"` // low, medium, high
	EstimatedEngagementScore float64  `json:"estimated_engagement_score"`
	AdTypeConfidence         float64  `json:"ad_type_confidence"`
	AdTypeReasoning          string   `json:"ad_type_reasoning"`
	AlternativeAdTypes       []string `json:"alternative_ad_types"`
}

// ============================================================================
// GENERATED AD COPY
// ============================================================================

// GeneratedAdCopy is a persisted ad. Rows are immutable: regenerating an ad
// for a product inserts a new record.
type GeneratedAdCopy struct {
	ID                   string          `json:"id"`
	ProductID            string          `json:"product_id"`
	VariationName        string          `json:"variation_name"`
	Headline             string          `json:"headline"`
	BodyText             string          `json:"body_text"`
	CTA                  string          `json:"cta"`
	AdType               string          `json:"ad_type"`
	PlatformSpecificData json.RawMessage `json:"platform_specific_data,omitempty"`
	PerformanceScore     float64         `json:"performance_score"`
	CreatedAt            time.Time       `json:"created_at"`
}

type GenerateAdRequest struct {
	AdType             string `json:"ad_type"`
	CustomInstructions string `json:"custom_instructions"`
}

type AdGenerationResult struct {
	AdCopy         GeneratedAdCopy `json:"ad_copy"`
	MarketAnalysis MarketAnalysis  `json:"market_analysis"`
}
