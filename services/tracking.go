package services

import (
	"fmt"
	"strings"
	"time"
)

// ============================================================================
// TRACKING URL BUILDER
// Stamps a destination URL with platform-specific UTM parameters and a
// process-local tracking identifier. The only time dependency in the core,
// injected so everything else stays deterministic under test.
// ============================================================================

type TrackingService struct {
	now func() time.Time
}

func NewTrackingService() *TrackingService {
	return &TrackingService{now: time.Now}
}

// NewTrackingServiceWithClock lets tests pin the tracking identifier.
func NewTrackingServiceWithClock(now func() time.Time) *TrackingService {
	return &TrackingService{now: now}
}

// GenerateTrackingURL appends campaign attribution to the destination URL.
// Amazon ignores the destination entirely and always emits the Associates
// URL with the affilai-20 tag. Parameters are attached by plain
// concatenation, matching what the affiliate dashboards expect.
func (s *TrackingService) GenerateTrackingURL(platform, programName, productName, destinationURL string) string {
	trackingID := s.trackingID()
	campaign := strings.ReplaceAll(strings.ToLower(productName), " ", "_")

	switch platform {
	case "tiktok":
		return fmt.Sprintf("%s?utm_source=tiktok&utm_medium=affiliate&utm_campaign=%s&ref=%s",
			destinationURL, campaign, trackingID)
	case "instagram":
		return fmt.Sprintf("%s?utm_source=instagram&utm_medium=shopping&utm_campaign=%s&ref=%s",
			destinationURL, campaign, trackingID)
	case "amazon":
		return fmt.Sprintf("https://www.amazon.com/dp/XXXXX?tag=affilai-20&linkCode=as2&ref=%s",
			trackingID)
	case "youtube":
		return fmt.Sprintf("%s?utm_source=youtube&utm_medium=affiliate&utm_campaign=%s&ref=%s",
			destinationURL, campaign, trackingID)
	case "pinterest":
		return fmt.Sprintf("%s?utm_source=pinterest&utm_medium=pin&utm_campaign=%s&ref=%s",
			destinationURL, campaign, trackingID)
	default:
		return fmt.Sprintf("%s?ref=%s&utm_campaign=%s", destinationURL, trackingID, campaign)
	}
}

func (s *TrackingService) trackingID() string {
	return fmt.Sprintf("afl_%d", s.now().UnixMilli())
}
