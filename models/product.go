package models

import "time"

// ============================================================================
// PRODUCT MODEL
// ============================================================================

// Product is a catalog entry tracked for affiliate promotion. Free-text
// fields (price range, target audience) are parsed downstream by the
// discovery services; empty means "not provided".
type Product struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Description    string `json:"description,omitempty"`
	PriceRange     string `json:"price_range,omitempty"`     // e.g. "$50-$100"
	TargetAudience string `json:"target_audience,omitempty"` // e.g. "Age 25-45"
	TrendingScore  int    `json:"trending_score"`            // 0-100
	Notes          string `json:"notes,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`

	// Platform identifiers. Only presence matters to the ad-type scorer.
	AmazonASIN         string `json:"amazon_asin,omitempty"`
	TikTokProductID    string `json:"tiktok_product_id,omitempty"`
	InstagramProductID string `json:"instagram_product_id,omitempty"`
	YouTubeVideoID     string `json:"youtube_video_id,omitempty"`
	PinterestPinID     string `json:"pinterest_pin_id,omitempty"`
	ProductURL         string `json:"product_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlatformIDs returns the platforms this product is already listed on,
// in discovery enumeration order.
func (p *Product) PlatformIDs() []string {
	var platforms []string
	if p.TikTokProductID != "" {
		platforms = append(platforms, "tiktok")
	}
	if p.InstagramProductID != "" {
		platforms = append(platforms, "instagram")
	}
	if p.AmazonASIN != "" {
		platforms = append(platforms, "amazon")
	}
	if p.YouTubeVideoID != "" {
		platforms = append(platforms, "youtube")
	}
	if p.PinterestPinID != "" {
		platforms = append(platforms, "pinterest")
	}
	return platforms
}

type CreateProductRequest struct {
	Name           string `json:"name" binding:"required"`
	Category       string `json:"category" binding:"required"`
	Description    string `json:"description"`
	PriceRange     string `json:"price_range"`
	TargetAudience string `json:"target_audience"`
	TrendingScore  *int   `json:"trending_score"`
	Notes          string `json:"notes"`
	ImageURL       string `json:"image_url"`

	AmazonASIN         string `json:"amazon_asin"`
	TikTokProductID    string `json:"tiktok_product_id"`
	InstagramProductID string `json:"instagram_product_id"`
	YouTubeVideoID     string `json:"youtube_video_id"`
	PinterestPinID     string `json:"pinterest_pin_id"`
	ProductURL         string `json:"product_url"`
}

type UpdateProductRequest struct {
	Name           *string `json:"name"`
	Category       *string `json:"category"`
	Description    *string `json:"description"`
	PriceRange     *string `json:"price_range"`
	TargetAudience *string `json:"target_audience"`
	TrendingScore  *int    `json:"trending_score"`
	Notes          *string `json:"notes"`
	ImageURL       *string `json:"image_url"`

	AmazonASIN         *string `json:"amazon_asin"`
	TikTokProductID    *string `json:"tiktok_product_id"`
	InstagramProductID *string `json:"instagram_product_id"`
	YouTubeVideoID     *string `json:"youtube_video_id"`
	PinterestPinID     *string `json:"pinterest_pin_id"`
	ProductURL         *string `json:"product_url"`
}
