package services

import (
	"testing"

	"affilai-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeMarketCombinesScorers(t *testing.T) {
	svc := NewMarketAnalyzerService()

	product := &models.Product{
		Name:           "Glow Serum",
		Category:       "Beauty & Skincare",
		TargetAudience: "Age 18-24",
		TrendingScore:  75,
		PriceRange:     "$30-$40",
	}

	analysis := svc.AnalyzeMarket(product)

	// Best discovered platform leads the analysis.
	assert.Equal(t, models.PlatformTikTok, analysis.RecommendedPlatform)
	assert.Equal(t, "Age 18-24", analysis.TargetDemographic)
	assert.Equal(t, "high", analysis.CompetitionLevel)

	// engagement = 0.6*trending/100 + 0.4*best match, capped at 1
	assert.InDelta(t, 0.6*0.75+0.4*0.97, analysis.EstimatedEngagementScore, 1e-9)

	require.Len(t, analysis.KeySellingPoints, 4)
	assert.Contains(t, analysis.KeySellingPoints, "Glow Serum loved by thousands")

	assert.NotEmpty(t, analysis.RecommendedAdType)
	assert.NotEmpty(t, analysis.AdTypeReasoning)
	assert.Greater(t, analysis.AdTypeConfidence, 0.0)
}

func TestAnalyzeMarketDeterministic(t *testing.T) {
	svc := NewMarketAnalyzerService()

	product := &models.Product{
		Name:           "Smart Fitness Ring",
		Category:       "Consumer Electronics",
		TargetAudience: "Age 30-45",
		TrendingScore:  60,
		PriceRange:     "$250-$350",
	}

	assert.Equal(t, svc.AnalyzeMarket(product), svc.AnalyzeMarket(product))
}

func TestKeySellingPoints(t *testing.T) {
	points := KeySellingPoints("Home & Kitchen", "Cold Brew Maker")
	assert.Equal(t, []string{
		"Transform your space",
		"Built to last",
		"Saves time and effort",
		"Top-rated by customers",
	}, points)

	// Unknown category falls back to the generic list with the name
	// interpolated.
	generic := KeySellingPoints("Outdoor Decor", "Garden Gnome")
	require.Len(t, generic, 4)
	assert.Equal(t, "Discover why Garden Gnome is trending", generic[3])
}

func TestSuggestedTone(t *testing.T) {
	tests := []struct {
		audience string
		tone     string
	}{
		{"Age 18-25", "casual and trendy"},
		{"young adults 18-30", "casual and trendy"},
		{"Age 45-60", "professional and trustworthy"},
		{"professionals around 50", "professional and trustworthy"},
		{"Age 30-40", "friendly and engaging"},
		{"", "friendly and engaging"},
	}

	for _, tt := range tests {
		t.Run(tt.audience, func(t *testing.T) {
			assert.Equal(t, tt.tone, SuggestedTone(tt.audience))
		})
	}
}

func TestCompetitionLevel(t *testing.T) {
	assert.Equal(t, "high", competitionLevel("Beauty & Skincare"))
	assert.Equal(t, "high", competitionLevel("Fashion & Apparel"))
	assert.Equal(t, "medium", competitionLevel("Consumer Electronics"))
	assert.Equal(t, "medium", competitionLevel("Health & Wellness"))
	assert.Equal(t, "low", competitionLevel("Outdoor Decor"))
}

func TestAnalyzeMarketEngagementCapped(t *testing.T) {
	svc := NewMarketAnalyzerService()

	product := &models.Product{
		Name:           "Viral Serum",
		Category:       "Beauty & Skincare",
		TargetAudience: "Age 18-24",
		TrendingScore:  100,
		PriceRange:     "$20",
	}

	analysis := svc.AnalyzeMarket(product)
	assert.LessOrEqual(t, analysis.EstimatedEngagementScore, 1.0)
}
