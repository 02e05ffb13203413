package models

import "time"

// ============================================================================
// AFFILIATE PLATFORMS
// ============================================================================

// Platform identifiers. ScoredPlatforms is the fixed discovery order and
// doubles as the tie-break order when audience match scores are equal.
// Facebook is a valid platform for manually created links but is not part
// of the discovery path.
const (
	PlatformTikTok    = "tiktok"
	PlatformInstagram = "instagram"
	PlatformAmazon    = "amazon"
	PlatformYouTube   = "youtube"
	PlatformPinterest = "pinterest"
	PlatformFacebook  = "facebook"
)

var ScoredPlatforms = []string{
	PlatformTikTok,
	PlatformInstagram,
	PlatformAmazon,
	PlatformYouTube,
	PlatformPinterest,
}

// IsValidPlatform reports whether s names a known platform.
func IsValidPlatform(s string) bool {
	switch s {
	case PlatformTikTok, PlatformInstagram, PlatformAmazon,
		PlatformYouTube, PlatformPinterest, PlatformFacebook:
		return true
	}
	return false
}

// ============================================================================
// DISCOVERY RESULT
// ============================================================================

// PlatformRecommendation is one scored affiliate program option for a
// product. ConfidenceScore is always 0.85 + 0.15*AudienceMatchScore.
type PlatformRecommendation struct {
	ProgramName          string  `json:"program_name"`
	Platform             string  `json:"platform"`
	CommissionRate       float64 `json:"commission_rate"`
	CookieDuration       int     `json:"cookie_duration"` // days
	AffiliateURL         string  `json:"affiliate_url"`
	IsOfficial           bool    `json:"is_official"`
	ConfidenceScore      float64 `json:"confidence_score"`
	AudienceMatchScore   float64 `json:"audience_match_score"`
	RecommendationReason string  `json:"recommendation_reason"`
}

// ============================================================================
// AFFILIATE LINK RECORDS
// ============================================================================

type AffiliateLink struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Platform       string    `json:"platform"`
	ProgramName    string    `json:"program_name"`
	CommissionRate float64   `json:"commission_rate"`
	CookieDuration int       `json:"cookie_duration"`
	TrackingURL    string    `json:"tracking_url"`
	DestinationURL string    `json:"destination_url"`
	Status         string    `json:"status"` // 'active', 'expired', 'invalid'
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateAffiliateLinkRequest struct {
	ProductID      string  `json:"product_id" binding:"required"`
	ProductName    string  `json:"product_name" binding:"required"`
	Platform       string  `json:"platform" binding:"required"`
	ProgramName    string  `json:"program_name" binding:"required"`
	CommissionRate float64 `json:"commission_rate"`
	CookieDuration int     `json:"cookie_duration"`
	TrackingURL    string  `json:"tracking_url" binding:"required"`
	DestinationURL string  `json:"destination_url" binding:"required"`
}

type GenerateLinkRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type GenerateLinkForPlatformRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Platform  string `json:"platform" binding:"required"`
}
