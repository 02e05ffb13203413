package services

import (
	"fmt"
	"strings"

	"affilai-api/models"
)

// ============================================================================
// COPYWRITER SERVICE
// Pure string templating: one fixed template family per ad format plus a
// generic fallback. Interpolates the product, the market analysis context
// and optional custom instructions. The custom-instruction slot differs per
// format (inline for social posts, a [NOTE] line for video scripts, a
// postscript for email) and is kept exactly as the formats expect it.
// ============================================================================

type CopywriterService struct{}

func NewCopywriterService() *CopywriterService {
	return &CopywriterService{}
}

// GenerateAdContent renders headline, body and call-to-action for the
// requested ad format.
func (s *CopywriterService) GenerateAdContent(
	product *models.Product,
	adType string,
	analysis *models.MarketAnalysis,
	customInstructions string,
) (headline, body, cta string) {
	name := product.Name
	category := product.Category
	description := product.Description

	points := analysis.KeySellingPoints

	switch adType {
	case models.AdFormatSocialPost:
		headline = fmt.Sprintf("Transform your routine with %s", name)
		filler := customInstructions
		if filler == "" {
			filler = firstPoint(points)
		}
		body = fmt.Sprintf("Discover why everyone is talking about %s. %s %s #trending #musthave",
			name, description, filler)
		cta = "Shop Now"

	case models.AdFormatStory:
		headline = fmt.Sprintf("POV: You just discovered %s", name)
		body = fmt.Sprintf("The %s that's breaking the internet. Swipe up before it sells out! %s",
			strings.ToLower(category), customInstructions)
		cta = "Swipe Up"

	case models.AdFormatVideoScript:
		headline = fmt.Sprintf("STOP scrolling! You need to see this %s", strings.ToLower(category))
		note := ""
		if customInstructions != "" {
			note = fmt.Sprintf("\n\n[NOTE] %s", customInstructions)
		}
		body = fmt.Sprintf("[HOOK] Wait, you don't know about %s yet?\n\n"+
			"[PROBLEM] Struggling with your %s?\n\n"+
			"[SOLUTION] %s is the game-changer you've been waiting for.\n\n"+
			"[BENEFITS]\n%s\n\n"+
			"[CTA] Link in bio - but hurry, it's selling fast!%s",
			name, strings.ToLower(category), name, bulletList(points, 3, "- "), note)
		cta = "Link in Bio"

	case models.AdFormatCarousel:
		headline = fmt.Sprintf("5 Reasons %s is a Must-Have", name)
		body = fmt.Sprintf("Slide 1: Meet your new favorite %s\n"+
			"Slide 2: %s\n"+
			"Slide 3: %s\n"+
			"Slide 4: %s\n"+
			"Slide 5: Ready to transform your routine?\n\n%s",
			strings.ToLower(category), pointAt(points, 0), pointAt(points, 1), pointAt(points, 2),
			customInstructions)
		cta = "Save for Later"

	case models.AdFormatEmail:
		postscript := ""
		if customInstructions != "" {
			postscript = fmt.Sprintf("\n\nP.S. %s", customInstructions)
		}
		headline = fmt.Sprintf("You're going to love %s - Here's why", name)
		body = fmt.Sprintf("Hi there,\n\n"+
			"We noticed you've been looking for the perfect %s. Well, search no more!\n\n"+
			"Introducing %s - %s\n\n"+
			"What makes it special:\n%s\n\n"+
			"Don't miss out on this opportunity to upgrade your routine.\n\n"+
			"Best,\nThe Team%s",
			strings.ToLower(category), name, description, bulletList(points, len(points), "  - "), postscript)
		cta = "Shop Now"

	case models.AdFormatSMS:
		suffix := ""
		if customInstructions != "" {
			suffix = " " + customInstructions
		}
		headline = name
		body = fmt.Sprintf("Hey! %s is finally back in stock. %s Get yours: [LINK]%s",
			name, firstPoint(points), suffix)
		cta = "Reply STOP to unsubscribe"

	default:
		headline = fmt.Sprintf("Discover %s", name)
		body = fmt.Sprintf("%s - %s", name, description)
		cta = "Learn More"
	}

	return headline, body, cta
}

func firstPoint(points []string) string {
	return pointAt(points, 0)
}

func pointAt(points []string, i int) string {
	if i < len(points) {
		return points[i]
	}
	return ""
}

func bulletList(points []string, max int, prefix string) string {
	if max > len(points) {
		max = len(points)
	}
	lines := make([]string, 0, max)
	for _, p := range points[:max] {
		lines = append(lines, prefix+p)
	}
	return strings.Join(lines, "\n")
}
