package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAgeRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected AgeRange
	}{
		{"plain numeric range", "Age 18-24", AgeRange{18, 24}},
		{"bare numeric range", "30-45", AgeRange{30, 45}},
		{"en-dash with extras", "Ages 30–50, female", AgeRange{30, 50}},
		{"gen z keyword", "Gen Z shoppers", AgeRange{18, 25}},
		{"genz no space", "GenZ TikTok users", AgeRange{18, 25}},
		{"zoomer keyword", "zoomers who love skincare", AgeRange{18, 25}},
		{"millennial keyword", "Millennial professionals", AgeRange{26, 40}},
		{"gen x keyword", "Gen X parents", AgeRange{41, 55}},
		{"boomer keyword", "Boomers interested in wellness", AgeRange{56, 70}},
		{"senior keyword", "seniors at home", AgeRange{56, 70}},
		{"numeric wins over keyword", "Gen Z ages 20-22", AgeRange{20, 22}},
		{"empty input defaults", "", AgeRange{25, 45}},
		{"no signal defaults", "people who like coffee", AgeRange{25, 45}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractAgeRange(tt.input))
		})
	}
}

func TestAgeRangeAvg(t *testing.T) {
	assert.Equal(t, 21, AgeRange{18, 24}.Avg())
	assert.Equal(t, 37, AgeRange{30, 45}.Avg())
	assert.Equal(t, 35, AgeRange{25, 45}.Avg())
}

func TestParsePriceTier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected PriceTier
	}{
		{"low tier", "$30-$40", PriceTierLow},
		{"medium tier", "$50-$100", PriceTierMedium},
		{"high tier", "$300-400", PriceTierHigh},
		{"premium tier", "$600+", PriceTierPremium},
		{"no dollar sign", "45 dollars", PriceTierLow},
		{"boundary low", "$49", PriceTierLow},
		{"boundary medium", "$50", PriceTierMedium},
		{"boundary high", "$150", PriceTierHigh},
		{"boundary premium", "$500", PriceTierPremium},
		{"empty defaults to medium", "", PriceTierMedium},
		{"no digits defaults to medium", "affordable", PriceTierMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePriceTier(tt.input))
		})
	}
}

func TestPriceTierString(t *testing.T) {
	assert.Equal(t, "low", PriceTierLow.String())
	assert.Equal(t, "medium", PriceTierMedium.String())
	assert.Equal(t, "high", PriceTierHigh.String())
	assert.Equal(t, "premium", PriceTierPremium.String())
}
