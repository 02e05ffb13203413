package services

import (
	"strings"

	"affilai-api/models"
)

// ============================================================================
// MARKET ANALYZER SERVICE
// Orchestrates the platform and ad-type scorers against one product
// snapshot and assembles the full recommendation context the content
// synthesizer consumes.
// ============================================================================

// Used when no platform clears the discovery floor.
const defaultRecommendedPlatform = models.PlatformInstagram

type MarketAnalyzerService struct {
	Discovery *PlatformDiscoveryService
	AdTypes   *AdTypeAnalyzerService
}

func NewMarketAnalyzerService() *MarketAnalyzerService {
	return &MarketAnalyzerService{
		Discovery: NewPlatformDiscoveryService(),
		AdTypes:   NewAdTypeAnalyzerService(),
	}
}

// AnalyzeMarket runs both scorers over the product and combines their
// outputs. Pure: repeated calls with the same snapshot yield identical
// results.
func (s *MarketAnalyzerService) AnalyzeMarket(product *models.Product) models.MarketAnalysis {
	programs := s.Discovery.DiscoverPlatforms(
		product.Name,
		product.Category,
		product.TrendingScore,
		product.TargetAudience,
		product.PriceRange,
	)

	recommendedPlatform := defaultRecommendedPlatform
	platformMatch := 0.5 // neutral when nothing cleared the discovery floor
	if len(programs) > 0 {
		recommendedPlatform = programs[0].Platform
		platformMatch = programs[0].AudienceMatchScore
	}

	adType := s.AdTypes.Analyze(product)

	baseEngagement := float64(product.TrendingScore) / 100.0
	engagement := baseEngagement*0.6 + platformMatch*0.4
	if engagement > 1.0 {
		engagement = 1.0
	}

	return models.MarketAnalysis{
		RecommendedAdType:        adType.RecommendedType,
		RecommendedPlatform:      recommendedPlatform,
		TargetDemographic:        product.TargetAudience,
		KeySellingPoints:         KeySellingPoints(product.Category, product.Name),
		SuggestedTone:            SuggestedTone(product.TargetAudience),
		CompetitionLevel:         competitionLevel(product.Category),
		EstimatedEngagementScore: engagement,
		AdTypeConfidence:         adType.ConfidenceScore,
		AdTypeReasoning:          adType.Reasoning,
		AlternativeAdTypes:       adType.AlternativeTypes,
	}
}

// ============================================================================
// SELLING POINTS
// ============================================================================

var categorySellingPoints = map[string][]string{
	"Beauty & Skincare": {
		"Clinically proven results",
		"Natural, clean ingredients",
		"Visible improvement in weeks",
		"{name} loved by thousands",
	},
	"Health & Wellness": {
		"Science-backed formula",
		"Supports overall wellbeing",
		"Easy to incorporate daily",
		"Trusted by health experts",
	},
	"Fitness & Recovery": {
		"Accelerate your recovery",
		"Professional-grade quality",
		"Used by athletes worldwide",
		"See results faster",
	},
	"Consumer Electronics": {
		"Cutting-edge technology",
		"Seamless integration",
		"Track your progress",
		"Premium build quality",
	},
	"Wearable Health Technology": {
		"Cutting-edge technology",
		"Seamless integration",
		"Track your progress",
		"Premium build quality",
	},
	"Fashion & Apparel": {
		"Trendsetting style",
		"Premium materials",
		"Versatile for any occasion",
		"Limited availability",
	},
	"Home & Kitchen": {
		"Transform your space",
		"Built to last",
		"Saves time and effort",
		"Top-rated by customers",
	},
}

var genericSellingPoints = []string{
	"Premium quality",
	"Exceptional value",
	"Customer favorite",
	"Discover why {name} is trending",
}

// KeySellingPoints returns the four selling points for a category, with
// the product name interpolated where the table calls for it.
func KeySellingPoints(category, productName string) []string {
	source, ok := categorySellingPoints[category]
	if !ok {
		source = genericSellingPoints
	}

	points := make([]string, len(source))
	for i, p := range source {
		points[i] = strings.ReplaceAll(p, "{name}", productName)
	}
	return points
}

// ============================================================================
// TONE & COMPETITION
// ============================================================================

// SuggestedTone derives the copywriting tone from the audience text.
func SuggestedTone(targetAudience string) string {
	switch {
	case strings.Contains(targetAudience, "18-25") || strings.Contains(targetAudience, "18-30"):
		return "casual and trendy"
	case strings.Contains(targetAudience, "45") || strings.Contains(targetAudience, "50"):
		return "professional and trustworthy"
	default:
		return "friendly and engaging"
	}
}

var categoryCompetition = map[string]string{
	"Beauty & Skincare":          "high",
	"Fashion & Apparel":          "high",
	"Consumer Electronics":       "medium",
	"Wearable Health Technology": "medium",
	"Health & Wellness":          "medium",
	"Fitness & Recovery":         "medium",
}

func competitionLevel(category string) string {
	if level, ok := categoryCompetition[category]; ok {
		return level
	}
	return "low"
}
