package services

import (
	"testing"

	"affilai-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeElectronicsMillennialAudience(t *testing.T) {
	svc := NewAdTypeAnalyzerService()

	product := &models.Product{
		Name:           "Smart Fitness Ring",
		Category:       "Consumer Electronics",
		TargetAudience: "Age 30-45",
		TrendingScore:  60,
	}

	rec := svc.Analyze(product)

	assert.Equal(t, models.AdFormatVideoScript, rec.RecommendedType)
	assert.InDelta(t, 0.85, rec.ConfidenceScore, 1e-9)
	require.Len(t, rec.AlternativeTypes, 3)
	assert.NotContains(t, rec.AlternativeTypes, models.AdFormatVideoScript)
}

func TestAnalyzeBeautyGenZAudience(t *testing.T) {
	svc := NewAdTypeAnalyzerService()

	product := &models.Product{
		Name:           "Glow Serum",
		Category:       "Beauty & Skincare",
		TargetAudience: "Gen Z 18-24",
		TrendingScore:  75,
	}

	rec := svc.Analyze(product)

	assert.Equal(t, models.AdFormatStory, rec.RecommendedType)
	assert.InDelta(t, 0.925, rec.ConfidenceScore, 1e-9)
	assert.Contains(t, rec.Reasoning, "story")
}

func TestAnalyzeWellnessBoomerAudience(t *testing.T) {
	svc := NewAdTypeAnalyzerService()

	product := &models.Product{
		Name:           "Collagen Peptide Powder",
		Category:       "Health & Wellness",
		TargetAudience: "55-70 Boomers",
		TrendingScore:  40,
	}

	rec := svc.Analyze(product)

	assert.Equal(t, models.AdFormatEmail, rec.RecommendedType)
	assert.InDelta(t, 0.8575, rec.ConfidenceScore, 1e-9)

	// Low trending gates in the trust-building clause.
	assert.Contains(t, rec.Reasoning, "trust-building")
	assert.Contains(t, rec.Reasoning, "Boomer")
}

func TestAnalyzeEmptyAudienceScoresNeutral(t *testing.T) {
	svc := NewAdTypeAnalyzerService()

	product := &models.Product{
		Name:          "Mystery Box",
		Category:      "Consumer Electronics",
		TrendingScore: 60,
	}

	rec := svc.Analyze(product)

	// With a flat 0.5 audience score for every format, category fit decides:
	// electronics still favors video scripts.
	assert.Equal(t, models.AdFormatVideoScript, rec.RecommendedType)
	assert.InDelta(t, 0.71, rec.ConfidenceScore, 1e-9)
}

func TestAnalyzeDefaultReasoningSentence(t *testing.T) {
	svc := NewAdTypeAnalyzerService()

	// Nothing clears a reasoning threshold: unknown category, no audience,
	// mid trending, no platform listings.
	product := &models.Product{
		Name:          "Garden Gnome",
		Category:      "Outdoor Decor",
		TrendingScore: 55,
	}

	rec := svc.Analyze(product)

	assert.Regexp(t, `^The [a-z ]+ format is the best fit for Garden Gnome with \d+% confidence\.$`, rec.Reasoning)
}

func TestAnalyzePlatformPresenceBoostsFormats(t *testing.T) {
	svc := NewAdTypeAnalyzerService()

	withYouTube := &models.Product{
		Name:           "Smart Fitness Ring",
		Category:       "Consumer Electronics",
		TargetAudience: "Age 30-45",
		TrendingScore:  60,
		YouTubeVideoID: "dQw4w9WgXcQ",
	}
	without := &models.Product{
		Name:           "Smart Fitness Ring",
		Category:       "Consumer Electronics",
		TargetAudience: "Age 30-45",
		TrendingScore:  60,
	}

	boosted := svc.Analyze(withYouTube)
	baseline := svc.Analyze(without)

	assert.Equal(t, models.AdFormatVideoScript, boosted.RecommendedType)
	assert.Greater(t, boosted.ConfidenceScore, baseline.ConfidenceScore)
	assert.Contains(t, boosted.Reasoning, "youtube")
}

func TestAnalyzeAlternativesAreDistinctKnownFormats(t *testing.T) {
	svc := NewAdTypeAnalyzerService()

	rec := svc.Analyze(&models.Product{
		Name:           "Glow Serum",
		Category:       "Beauty & Skincare",
		TargetAudience: "Gen Z 18-24",
		TrendingScore:  75,
	})

	seen := map[string]bool{rec.RecommendedType: true}
	for _, alt := range rec.AlternativeTypes {
		assert.True(t, models.IsValidAdFormat(alt))
		assert.False(t, seen[alt], "alternative %s repeated", alt)
		seen[alt] = true
	}
}

func TestAudienceGeneration(t *testing.T) {
	tests := []struct {
		input    string
		expected generation
	}{
		{"Gen Z 18-24", generationGenZ},
		{"millennial moms", generationMillennial},
		{"Gen X professionals", generationGenX},
		{"55-70 Boomers", generationBoomer},
		{"Age 20-24", generationGenZ},
		{"Age 30-45", generationMillennial},
		{"Age 45-55", generationGenX},
		{"Age 60-75", generationBoomer},
		// Keyword beats the numeric range.
		{"Boomers aged 20-25", generationBoomer},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, audienceGeneration(tt.input))
		})
	}
}
