package services

import (
	"regexp"
	"strconv"
	"strings"
)

// ============================================================================
// DEMOGRAPHIC & PRICE ATTRIBUTE PARSER
// Extracts structured signals from the free-text product attributes. Both
// parsers are total: unparseable input falls back to documented defaults,
// never an error.
// ============================================================================

// AgeRange is the parsed audience age window.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Avg returns the midpoint age (integer division, matching the scorer
// tables which are keyed on whole years).
func (r AgeRange) Avg() int {
	return (r.Min + r.Max) / 2
}

// PriceTier is the coarse price bucket derived from the price-range text.
type PriceTier int

const (
	PriceTierLow     PriceTier = iota // < $50
	PriceTierMedium                   // $50-$150
	PriceTierHigh                     // $150-$500
	PriceTierPremium                  // > $500
)

func (t PriceTier) String() string {
	switch t {
	case PriceTierLow:
		return "low"
	case PriceTierHigh:
		return "high"
	case PriceTierPremium:
		return "premium"
	default:
		return "medium"
	}
}

var (
	// Matches "18-35", "Age 18-35", "Ages 30–50, female" (en-dash allowed)
	ageRangePattern = regexp.MustCompile(`(?i)(?:ages?\s*)?(\d+)\s*[-–]\s*(\d+)`)

	// First run of digits, optionally preceded by a dollar sign
	pricePattern = regexp.MustCompile(`\$?(\d+)`)
)

// generationKeywords maps audience keywords to age windows. Checked in
// order after the numeric pattern fails.
var generationKeywords = []struct {
	keywords []string
	age      AgeRange
}{
	{[]string{"gen z", "genz", "zoomer"}, AgeRange{18, 25}},
	{[]string{"millennial"}, AgeRange{26, 40}},
	{[]string{"gen x", "genx"}, AgeRange{41, 55}},
	{[]string{"boomer", "senior"}, AgeRange{56, 70}},
}

// defaultAgeRange is used when the audience text carries no age signal.
var defaultAgeRange = AgeRange{25, 45}

// ExtractAgeRange parses a target-audience string like "Age 18-35" or
// "Gen Z shoppers" into an age window. Numeric ranges win over generation
// keywords; anything else falls back to 25-45.
func ExtractAgeRange(targetAudience string) AgeRange {
	if m := ageRangePattern.FindStringSubmatch(targetAudience); m != nil {
		minAge, err1 := strconv.Atoi(m[1])
		maxAge, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			return AgeRange{minAge, maxAge}
		}
	}

	lower := strings.ToLower(targetAudience)
	for _, gen := range generationKeywords {
		for _, kw := range gen.keywords {
			if strings.Contains(lower, kw) {
				return gen.age
			}
		}
	}

	return defaultAgeRange
}

// ParsePriceTier buckets a price-range string like "$30-$40" or "$300-400"
// by its first dollar amount. No digits at all means Medium.
func ParsePriceTier(priceRange string) PriceTier {
	m := pricePattern.FindStringSubmatch(priceRange)
	if m == nil {
		return PriceTierMedium
	}

	price, err := strconv.Atoi(m[1])
	if err != nil {
		return PriceTierMedium
	}

	switch {
	case price < 50:
		return PriceTierLow
	case price < 150:
		return PriceTierMedium
	case price < 500:
		return PriceTierHigh
	default:
		return PriceTierPremium
	}
}
