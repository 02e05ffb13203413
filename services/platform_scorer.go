package services

import (
	"fmt"
	"sort"
	"strings"

	"affilai-api/models"
)

// ============================================================================
// PLATFORM SCORER
// Deterministic stand-in for AI affiliate program discovery. Scores each
// platform with a weighted composite of audience age alignment, category
// fit, trending fit and price fit, all driven by hand-authored lookup
// tables. An LLM-backed scorer can replace this service behind the same
// DiscoverPlatforms contract.
// ============================================================================

// Composite weights: 50% age, 25% category, 15% trending, 10% price.
const (
	weightAgeAlignment = 0.50
	weightCategoryFit  = 0.25
	weightTrendingFit  = 0.15
	weightPriceFit     = 0.10

	// Platforms below this composite score are not recommended at all.
	discoveryScoreFloor = 0.3

	// Discovery returns at most this many platforms.
	maxDiscoveredPlatforms = 5
)

type PlatformDiscoveryService struct{}

func NewPlatformDiscoveryService() *PlatformDiscoveryService {
	return &PlatformDiscoveryService{}
}

// ============================================================================
// SCORE TABLES
// Hand-tuned decision tables, not learned weights. Values are pinned by the
// regression tests; adjust bands only together with the tests.
// ============================================================================

// ageBand scores an average audience age falling inside [lo, hi].
// Bands are evaluated in order; the first hit wins.
type ageBand struct {
	lo, hi int
	score  float64
}

var platformAgeBands = map[string][]ageBand{
	models.PlatformTikTok: {
		{18, 30, 1.0}, // ideal
		{0, 34, 0.8},
		{0, 39, 0.5},
	},
	models.PlatformInstagram: {
		{22, 40, 1.0}, // ideal
		{18, 45, 0.8},
		{0, 49, 0.6},
	},
	models.PlatformYouTube: {
		{25, 55, 1.0}, // ideal, broad
		{18, 200, 0.7},
	},
	models.PlatformPinterest: {
		{30, 50, 1.0}, // ideal
		{25, 55, 0.8},
	},
	// Amazon has universal appeal: a flat high baseline.
	models.PlatformAmazon: {
		{0, 200, 0.9},
	},
}

var platformAgeDefault = map[string]float64{
	models.PlatformTikTok:    0.2,
	models.PlatformInstagram: 0.3,
	models.PlatformYouTube:   0.4,
	models.PlatformPinterest: 0.4,
	models.PlatformAmazon:    0.9,
}

// trendBand scores a 0-100 trending value of at least min. Bands are
// ordered by descending min; the first hit wins.
type trendBand struct {
	min   int
	score float64
}

var platformTrendBands = map[string][]trendBand{
	// TikTok needs genuinely viral products.
	models.PlatformTikTok: {
		{85, 1.0},
		{75, 0.8},
		{65, 0.5},
	},
	models.PlatformInstagram: {
		{70, 1.0},
		{60, 0.8},
	},
	models.PlatformYouTube: {
		{60, 1.0},
	},
	models.PlatformPinterest: {
		{60, 1.0},
	},
	// Amazon is nearly trending-independent.
	models.PlatformAmazon: {
		{0, 0.9},
	},
}

var platformTrendDefault = map[string]float64{
	models.PlatformTikTok:    0.3,
	models.PlatformInstagram: 0.6,
	models.PlatformYouTube:   0.8,
	models.PlatformPinterest: 0.8,
	models.PlatformAmazon:    0.9,
}

var platformCategoryFit = map[string]map[string]float64{
	models.PlatformTikTok: {
		"Beauty & Skincare":          1.0,
		"Fashion & Apparel":          1.0,
		"Health & Wellness":          0.9,
		"Fitness & Recovery":         0.9,
		"Wearable Health Technology": 0.8,
		"Consumer Electronics":       0.7,
	},
	models.PlatformInstagram: {
		"Beauty & Skincare":  1.0,
		"Fashion & Apparel":  1.0,
		"Home & Kitchen":     0.9,
		"Health & Wellness":  0.9,
		"Fitness & Recovery": 0.8,
	},
	models.PlatformYouTube: {
		"Consumer Electronics":       1.0,
		"Wearable Health Technology": 1.0,
		"Fitness & Recovery":         0.9,
		"Health & Wellness":          0.9,
		"Home & Kitchen":             0.8,
	},
	models.PlatformPinterest: {
		"Home & Kitchen":    1.0,
		"Fashion & Apparel": 1.0,
		"Beauty & Skincare": 0.9,
		"Health & Wellness": 0.8,
	},
	models.PlatformAmazon: {}, // universal, see default
}

var platformCategoryDefault = map[string]float64{
	models.PlatformTikTok:    0.5,
	models.PlatformInstagram: 0.6,
	models.PlatformYouTube:   0.7,
	models.PlatformPinterest: 0.6,
	models.PlatformAmazon:    1.0,
}

var platformPriceFit = map[string]map[PriceTier]float64{
	models.PlatformTikTok: {
		PriceTierLow: 1.0, PriceTierMedium: 1.0, PriceTierHigh: 0.6, PriceTierPremium: 0.3,
	},
	models.PlatformInstagram: {
		PriceTierLow: 1.0, PriceTierMedium: 1.0, PriceTierHigh: 1.0, PriceTierPremium: 0.7,
	},
	models.PlatformYouTube: {
		PriceTierLow: 0.7, PriceTierMedium: 1.0, PriceTierHigh: 1.0, PriceTierPremium: 1.0,
	},
	models.PlatformPinterest: {
		PriceTierLow: 1.0, PriceTierMedium: 1.0, PriceTierHigh: 0.8, PriceTierPremium: 0.5,
	},
	models.PlatformAmazon: {
		PriceTierLow: 1.0, PriceTierMedium: 1.0, PriceTierHigh: 1.0, PriceTierPremium: 1.0,
	},
}

// Amazon Associates commission varies by category; the other programs use
// a flat program rate.
var amazonCommissionByCategory = map[string]float64{
	"Beauty & Skincare":    0.10,
	"Health & Wellness":    0.10,
	"Fashion & Apparel":    0.08,
	"Home & Kitchen":       0.08,
	"Consumer Electronics": 0.04,
}

const amazonDefaultCommission = 0.05

// ============================================================================
// DISCOVERY
// ============================================================================

// DiscoverPlatforms scores every platform on the discovery path for the
// given product metrics and returns the ones clearing the score floor,
// sorted by audience match score (descending, enumeration order on ties),
// truncated to the top 5. An empty result is a valid outcome.
func (s *PlatformDiscoveryService) DiscoverPlatforms(
	productName string,
	category string,
	trendingScore int,
	targetAudience string,
	priceRange string,
) []models.PlatformRecommendation {
	ageRange := ExtractAgeRange(targetAudience)
	priceTier := ParsePriceTier(priceRange)

	recommendations := []models.PlatformRecommendation{}

	for _, platform := range models.ScoredPlatforms {
		score := s.scorePlatform(platform, category, trendingScore, ageRange, priceTier)
		if score > discoveryScoreFloor {
			recommendations = append(recommendations,
				buildRecommendation(productName, category, platform, score, ageRange))
		}
	}

	// Stable sort keeps the enumeration order for equal scores, so repeated
	// calls with the same snapshot are byte-identical.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].AudienceMatchScore > recommendations[j].AudienceMatchScore
	})

	if len(recommendations) > maxDiscoveredPlatforms {
		recommendations = recommendations[:maxDiscoveredPlatforms]
	}

	return recommendations
}

func (s *PlatformDiscoveryService) scorePlatform(
	platform string,
	category string,
	trendingScore int,
	ageRange AgeRange,
	priceTier PriceTier,
) float64 {
	ageScore := scoreAgeAlignment(platform, ageRange)
	categoryScore := scoreCategoryFit(platform, category)
	trendingFit := scoreTrendingFit(platform, trendingScore)
	priceScore := platformPriceFit[platform][priceTier]

	return ageScore*weightAgeAlignment +
		categoryScore*weightCategoryFit +
		trendingFit*weightTrendingFit +
		priceScore*weightPriceFit
}

func scoreAgeAlignment(platform string, ageRange AgeRange) float64 {
	avg := ageRange.Avg()
	for _, band := range platformAgeBands[platform] {
		if avg >= band.lo && avg <= band.hi {
			return band.score
		}
	}
	return platformAgeDefault[platform]
}

func scoreCategoryFit(platform string, category string) float64 {
	if score, ok := platformCategoryFit[platform][category]; ok {
		return score
	}
	return platformCategoryDefault[platform]
}

func scoreTrendingFit(platform string, trendingScore int) float64 {
	for _, band := range platformTrendBands[platform] {
		if trendingScore >= band.min {
			return band.score
		}
	}
	return platformTrendDefault[platform]
}

// ============================================================================
// RECOMMENDATION ASSEMBLY
// ============================================================================

func buildRecommendation(
	productName string,
	category string,
	platform string,
	audienceMatchScore float64,
	ageRange AgeRange,
) models.PlatformRecommendation {
	slug := strings.ReplaceAll(strings.ToLower(productName), " ", "-")

	var (
		commissionRate float64
		cookieDuration int
		programName    string
		affiliateURL   string
	)

	switch platform {
	case models.PlatformTikTok:
		commissionRate = 0.12
		cookieDuration = 14
		programName = "TikTok Shop Creator Program"
		affiliateURL = "https://affiliate.tiktok.com/" + slug
	case models.PlatformInstagram:
		commissionRate = 0.15
		cookieDuration = 30
		programName = "Instagram Shopping - " + productName
		affiliateURL = "https://business.instagram.com/shopping/" + slug
	case models.PlatformYouTube:
		commissionRate = 0.10
		cookieDuration = 30
		programName = "YouTube Shopping Affiliate"
		affiliateURL = "https://shopping.youtube.com/products/" + slug
	case models.PlatformPinterest:
		commissionRate = 0.13
		cookieDuration = 30
		programName = "Pinterest Buyable Pins"
		affiliateURL = "https://business.pinterest.com/buyable/" + slug
	case models.PlatformAmazon:
		commissionRate = amazonDefaultCommission
		if rate, ok := amazonCommissionByCategory[category]; ok {
			commissionRate = rate
		}
		cookieDuration = 24
		programName = "Amazon Associates"
		affiliateURL = "https://affiliate-program.amazon.com"
	default:
		commissionRate = 0.05
		cookieDuration = 30
		programName = "Generic Affiliate"
		affiliateURL = "https://example.com"
	}

	return models.PlatformRecommendation{
		ProgramName:          programName,
		Platform:             platform,
		CommissionRate:       commissionRate,
		CookieDuration:       cookieDuration,
		AffiliateURL:         affiliateURL,
		IsOfficial:           false,
		ConfidenceScore:      0.85 + audienceMatchScore*0.15, // always in [0.85, 1.0]
		AudienceMatchScore:   audienceMatchScore,
		RecommendationReason: recommendationReason(platform, ageRange, category),
	}
}

func recommendationReason(platform string, ageRange AgeRange, category string) string {
	switch platform {
	case models.PlatformTikTok:
		return fmt.Sprintf("Strong match for ages %d-%d, %s performs well on TikTok", ageRange.Min, ageRange.Max, category)
	case models.PlatformInstagram:
		return fmt.Sprintf("Ideal for ages %d-%d, visual platform for %s", ageRange.Min, ageRange.Max, category)
	case models.PlatformYouTube:
		return fmt.Sprintf("Great for ages %d-%d, detailed reviews boost %s sales", ageRange.Min, ageRange.Max, category)
	case models.PlatformPinterest:
		return fmt.Sprintf("Perfect for ages %d-%d, discovery-driven for %s", ageRange.Min, ageRange.Max, category)
	case models.PlatformAmazon:
		return fmt.Sprintf("Universal platform for ages %d-%d, broad %s reach", ageRange.Min, ageRange.Max, category)
	default:
		return fmt.Sprintf("Good match for ages %d-%d", ageRange.Min, ageRange.Max)
	}
}
