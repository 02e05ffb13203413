package services

import (
	"fmt"
	"sort"
	"strings"

	"affilai-api/models"
)

// ============================================================================
// AD-TYPE SCORER
// Ranks all six ad formats for a product with a weighted composite of
// category fit, audience generation fit, trending fit and platform
// presence. Like the platform scorer this is a deterministic stand-in for
// a model-backed analyzer behind the same Analyze contract.
// ============================================================================

// Composite weights: 30% category, 35% audience, 20% trending, 15% platform.
const (
	weightAdCategory = 0.30
	weightAdAudience = 0.35
	weightAdTrending = 0.20
	weightAdPlatform = 0.15

	maxAlternativeTypes = 3

	// No audience text at all scores flat neutral for every format.
	neutralAudienceScore = 0.5
)

type AdTypeAnalyzerService struct{}

func NewAdTypeAnalyzerService() *AdTypeAnalyzerService {
	return &AdTypeAnalyzerService{}
}

// ============================================================================
// GENERATIONS
// ============================================================================

type generation int

const (
	generationGenZ       generation = iota // 18-25
	generationMillennial                   // 26-40
	generationGenX                         // 41-55
	generationBoomer                       // >55
)

func (g generation) String() string {
	switch g {
	case generationGenZ:
		return "Gen Z"
	case generationMillennial:
		return "Millennial"
	case generationGenX:
		return "Gen X"
	default:
		return "Boomer"
	}
}

// audienceGeneration collapses the audience text into a generational band.
// Explicit generation keywords win over the numeric age range.
// generationKeywords is ordered to mirror the generation constants.
func audienceGeneration(targetAudience string) generation {
	lower := strings.ToLower(targetAudience)
	for i, gen := range generationKeywords {
		for _, kw := range gen.keywords {
			if strings.Contains(lower, kw) {
				return generation(i)
			}
		}
	}

	avg := ExtractAgeRange(targetAudience).Avg()
	switch {
	case avg <= 25:
		return generationGenZ
	case avg <= 40:
		return generationMillennial
	case avg <= 55:
		return generationGenX
	default:
		return generationBoomer
	}
}

// ============================================================================
// SCORE TABLES
// Hand-tuned decision tables; the pinned scenarios in the tests depend on
// the exact values, so change bands only together with the tests.
// ============================================================================

// categoryBand scores a category whose lower-cased text contains any of
// the keywords. Bands are evaluated in order; the first hit wins.
type categoryBand struct {
	keywords []string
	score    float64
}

var formatCategoryBands = map[string][]categoryBand{
	models.AdFormatSocialPost: {
		{[]string{"fashion", "beauty"}, 0.9},
		{[]string{"home", "kitchen"}, 0.8},
		{[]string{"health", "wellness"}, 0.7},
	},
	models.AdFormatStory: {
		{[]string{"beauty", "fashion"}, 1.0},
		{[]string{"fitness", "lifestyle"}, 0.8},
		{[]string{"health"}, 0.7},
	},
	models.AdFormatVideoScript: {
		{[]string{"electronics", "tech", "wearable", "gadget"}, 1.0},
		{[]string{"fitness", "health"}, 0.8},
		{[]string{"home", "kitchen"}, 0.6},
	},
	models.AdFormatCarousel: {
		{[]string{"fashion", "home", "kitchen"}, 1.0},
		{[]string{"beauty"}, 0.9},
		{[]string{"electronics"}, 0.7},
	},
	models.AdFormatEmail: {
		{[]string{"health", "wellness"}, 0.9},
		{[]string{"electronics", "tech"}, 0.8},
		{[]string{"home"}, 0.7},
	},
	models.AdFormatSMS: {
		{[]string{"fashion", "beauty"}, 0.7},
		{[]string{"food", "beverage"}, 0.6},
	},
}

var formatCategoryDefault = map[string]float64{
	models.AdFormatSocialPost:  0.6,
	models.AdFormatStory:       0.5,
	models.AdFormatVideoScript: 0.4,
	models.AdFormatCarousel:    0.5,
	models.AdFormatEmail:       0.6,
	models.AdFormatSMS:         0.5,
}

// Per-format, per-generation audience fit. Stories live on Gen Z feeds;
// email flips the other way, performing best with older audiences.
var formatAudienceScores = map[string]map[generation]float64{
	models.AdFormatSocialPost: {
		generationGenZ: 0.8, generationMillennial: 0.9, generationGenX: 0.7, generationBoomer: 0.5,
	},
	models.AdFormatStory: {
		generationGenZ: 1.0, generationMillennial: 0.75, generationGenX: 0.4, generationBoomer: 0.2,
	},
	models.AdFormatVideoScript: {
		generationGenZ: 0.85, generationMillennial: 0.9, generationGenX: 0.75, generationBoomer: 0.5,
	},
	models.AdFormatCarousel: {
		generationGenZ: 0.7, generationMillennial: 0.85, generationGenX: 0.8, generationBoomer: 0.6,
	},
	models.AdFormatEmail: {
		generationGenZ: 0.3, generationMillennial: 0.6, generationGenX: 0.85, generationBoomer: 0.95,
	},
	models.AdFormatSMS: {
		generationGenZ: 0.6, generationMillennial: 0.7, generationGenX: 0.6, generationBoomer: 0.4,
	},
}

// scoreBand scores a 0-100 trending value falling inside [lo, hi].
// Bands are evaluated in order; the first hit wins.
type scoreBand struct {
	lo, hi int
	score  float64
}

// Email is intentionally inverted: low-trending products lean on the
// trust-building channel rather than the viral ones.
var formatTrendingBands = map[string][]scoreBand{
	models.AdFormatSocialPost: {
		{80, 200, 1.0},
		{60, 79, 0.8},
		{40, 59, 0.6},
	},
	models.AdFormatStory: {
		{75, 200, 1.0},
		{60, 74, 0.85},
		{45, 59, 0.6},
	},
	models.AdFormatVideoScript: {
		{70, 200, 0.95},
		{50, 69, 0.8},
		{35, 49, 0.65},
	},
	models.AdFormatCarousel: {
		{70, 200, 0.9},
		{50, 69, 0.75},
	},
	models.AdFormatEmail: {
		{0, 40, 0.9},
		{41, 60, 0.75},
		{61, 80, 0.6},
	},
	models.AdFormatSMS: {
		{85, 200, 0.9},
		{60, 84, 0.7},
	},
}

var formatTrendingDefault = map[string]float64{
	models.AdFormatSocialPost:  0.4,
	models.AdFormatStory:       0.4,
	models.AdFormatVideoScript: 0.5,
	models.AdFormatCarousel:    0.6,
	models.AdFormatEmail:       0.5,
	models.AdFormatSMS:         0.55,
}

// ============================================================================
// SUB-SCORES
// ============================================================================

func scoreFormatCategory(format, category string) float64 {
	lower := strings.ToLower(category)
	for _, band := range formatCategoryBands[format] {
		for _, kw := range band.keywords {
			if strings.Contains(lower, kw) {
				return band.score
			}
		}
	}
	return formatCategoryDefault[format]
}

func scoreFormatAudience(format, targetAudience string) float64 {
	if strings.TrimSpace(targetAudience) == "" {
		return neutralAudienceScore
	}
	return formatAudienceScores[format][audienceGeneration(targetAudience)]
}

func scoreFormatTrending(format string, trendingScore int) float64 {
	for _, band := range formatTrendingBands[format] {
		if trendingScore >= band.lo && trendingScore <= band.hi {
			return band.score
		}
	}
	return formatTrendingDefault[format]
}

// scoreFormatPlatform scores how well the format matches the platforms the
// product is already listed on. Only presence of the identifier matters.
func scoreFormatPlatform(format string, product *models.Product) float64 {
	platforms := product.PlatformIDs()

	switch format {
	case models.AdFormatSocialPost:
		// Cross-posting pays off once the product is widely listed.
		if len(platforms) >= 3 {
			return 0.95
		}
		if len(platforms) >= 1 {
			return 0.75
		}
	case models.AdFormatStory:
		if product.TikTokProductID != "" {
			return 0.95
		}
		if product.InstagramProductID != "" {
			return 0.85
		}
	case models.AdFormatVideoScript:
		if product.YouTubeVideoID != "" {
			return 0.95
		}
		if product.TikTokProductID != "" {
			return 0.85
		}
	case models.AdFormatCarousel:
		if product.InstagramProductID != "" {
			return 0.9
		}
		if product.PinterestPinID != "" {
			return 0.85
		}
	case models.AdFormatEmail:
		if product.AmazonASIN != "" {
			return 0.75
		}
		if len(platforms) >= 1 {
			return 0.6
		}
	case models.AdFormatSMS:
		if len(platforms) >= 1 {
			return 0.6
		}
	}
	return 0.5
}

// ============================================================================
// ANALYSIS
// ============================================================================

type formatScore struct {
	format   string
	category float64
	audience float64
	trending float64
	platform float64
	total    float64
}

// Analyze ranks every ad format for the product and returns the winner,
// up to 3 alternatives, and threshold-gated reasoning. Deterministic for a
// given product snapshot.
func (s *AdTypeAnalyzerService) Analyze(product *models.Product) models.AdTypeRecommendation {
	scores := s.scoreFormats(product)

	winner := scores[0]
	confidence := clamp01(winner.total)

	alternatives := make([]string, 0, maxAlternativeTypes)
	for _, fs := range scores[1:] {
		if len(alternatives) == maxAlternativeTypes {
			break
		}
		alternatives = append(alternatives, fs.format)
	}

	return models.AdTypeRecommendation{
		RecommendedType:  winner.format,
		ConfidenceScore:  confidence,
		Reasoning:        buildReasoning(product, winner, confidence),
		AlternativeTypes: alternatives,
	}
}

func (s *AdTypeAnalyzerService) scoreFormats(product *models.Product) []formatScore {
	scores := make([]formatScore, 0, len(models.AdFormats))

	for _, format := range models.AdFormats {
		fs := formatScore{
			format:   format,
			category: scoreFormatCategory(format, product.Category),
			audience: scoreFormatAudience(format, product.TargetAudience),
			trending: scoreFormatTrending(format, product.TrendingScore),
			platform: scoreFormatPlatform(format, product),
		}
		fs.total = fs.category*weightAdCategory +
			fs.audience*weightAdAudience +
			fs.trending*weightAdTrending +
			fs.platform*weightAdPlatform
		scores = append(scores, fs)
	}

	// Stable sort keeps the format enumeration order for equal totals.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].total > scores[j].total
	})

	return scores
}

// ============================================================================
// REASONING
// ============================================================================

func formatDisplayName(format string) string {
	return strings.ReplaceAll(format, "_", " ")
}

// buildReasoning assembles human-readable clauses, each gated by its own
// threshold, joined with ". " and a trailing period. When nothing clears a
// threshold a single default sentence is emitted instead.
func buildReasoning(product *models.Product, winner formatScore, confidence float64) string {
	var clauses []string
	display := formatDisplayName(winner.format)

	if winner.category >= 0.8 {
		clauses = append(clauses, fmt.Sprintf(
			"The %s format is a proven performer for %s products",
			display, strings.ToLower(product.Category)))
	}

	if strings.TrimSpace(product.TargetAudience) != "" && winner.audience >= 0.8 {
		gen := audienceGeneration(product.TargetAudience)
		clauses = append(clauses, fmt.Sprintf(
			"Your %s audience responds strongly to %s content",
			gen.String(), display))
	}

	trending := product.TrendingScore
	if trending >= 80 && winner.trending >= 0.9 {
		clauses = append(clauses, fmt.Sprintf(
			"With a trending score of %d this product is primed for viral %s distribution",
			trending, display))
	} else if trending < 50 && winner.trending >= 0.7 {
		clauses = append(clauses, fmt.Sprintf(
			"A lower trending score of %d favors the trust-building %s channel",
			trending, display))
	}

	if platforms := product.PlatformIDs(); winner.platform >= 0.85 && len(platforms) > 0 {
		clauses = append(clauses, fmt.Sprintf(
			"Existing listings on %s give %s ads a ready distribution path",
			strings.Join(platforms, ", "), display))
	}

	if len(clauses) == 0 {
		return fmt.Sprintf("The %s format is the best fit for %s with %d%% confidence.",
			display, product.Name, int(confidence*100))
	}

	return strings.Join(clauses, ". ") + "."
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
