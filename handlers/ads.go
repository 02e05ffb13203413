package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"affilai-api/models"
	"affilai-api/services"

	"github.com/gin-gonic/gin"
)

// AdHandler runs the recommendation pipeline and persists the synthesized
// ad copy. Analysis endpoints are read-only; generation inserts an
// immutable ad_copies row per call.
type AdHandler struct {
	DB       *sql.DB
	Analyzer *services.MarketAnalyzerService
	Writer   *services.CopywriterService
	Feed     *FeedHandler
}

func NewAdHandler(db *sql.DB, feed *FeedHandler) *AdHandler {
	return &AdHandler{
		DB:       db,
		Analyzer: services.NewMarketAnalyzerService(),
		Writer:   services.NewCopywriterService(),
		Feed:     feed,
	}
}

// GetPlatforms returns the scored affiliate program options for a product.
func (h *AdHandler) GetPlatforms(c *gin.Context) {
	product, err := fetchProduct(h.DB, c.Param("id"))
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	programs := h.Analyzer.Discovery.DiscoverPlatforms(
		product.Name,
		product.Category,
		product.TrendingScore,
		product.TargetAudience,
		product.PriceRange,
	)

	c.JSON(http.StatusOK, programs)
}

// GetAnalysis returns the full market analysis for a product.
func (h *AdHandler) GetAnalysis(c *gin.Context) {
	product, err := fetchProduct(h.DB, c.Param("id"))
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	analysis := h.Analyzer.AnalyzeMarket(&product)
	c.JSON(http.StatusOK, analysis)
}

// GenerateAd synthesizes and persists ad copy for a product. The ad format
// defaults to the analyzer's recommendation when the request omits it.
func (h *AdHandler) GenerateAd(c *gin.Context) {
	productID := c.Param("id")

	var req models.GenerateAdRequest
	// An empty body is fine: everything defaults to the analyzer's pick.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.AdType != "" && !models.IsValidAdFormat(req.AdType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown ad type: %s", req.AdType)})
		return
	}

	product, err := fetchProduct(h.DB, productID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	analysis := h.Analyzer.AnalyzeMarket(&product)

	adType := req.AdType
	if adType == "" {
		adType = analysis.RecommendedAdType
	}

	headline, body, cta := h.Writer.GenerateAdContent(&product, adType, &analysis, req.CustomInstructions)

	platformData, err := json.Marshal(analysis)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode analysis"})
		return
	}

	variationName := fmt.Sprintf("AI Generated - %s", strings.ReplaceAll(adType, "_", " "))

	adCopy := models.GeneratedAdCopy{
		ProductID:            productID,
		VariationName:        variationName,
		Headline:             headline,
		BodyText:             body,
		CTA:                  cta,
		AdType:               adType,
		PlatformSpecificData: platformData,
		PerformanceScore:     analysis.EstimatedEngagementScore,
	}

	err = h.DB.QueryRow(`
		INSERT INTO ad_copies (product_id, variation_name, headline, body_text, cta, ad_type, platform_specific_data, performance_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, adCopy.ProductID, adCopy.VariationName, adCopy.Headline, adCopy.BodyText,
		adCopy.CTA, adCopy.AdType, adCopy.PlatformSpecificData, adCopy.PerformanceScore,
	).Scan(&adCopy.ID, &adCopy.CreatedAt)

	if err != nil {
		log.Printf("[Ads] Error saving ad copy for product %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save ad copy"})
		return
	}

	log.Printf("[Ads] ✨ Generated %s ad for %s", adType, product.Name)
	if h.Feed != nil {
		h.Feed.BroadcastEvent("ad_generated", productID, adType)
	}

	c.JSON(http.StatusCreated, models.AdGenerationResult{
		AdCopy:         adCopy,
		MarketAnalysis: analysis,
	})
}

// GetAds lists the generated ad copies for a product, newest first.
func (h *AdHandler) GetAds(c *gin.Context) {
	productID := c.Param("id")

	rows, err := h.DB.Query(`
		SELECT id, product_id, variation_name, headline, body_text, cta, ad_type,
		       COALESCE(platform_specific_data, 'null'), performance_score, created_at
		FROM ad_copies
		WHERE product_id = $1
		ORDER BY created_at DESC
	`, productID)
	if err != nil {
		log.Printf("[Ads] Error listing ads for product %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ads"})
		return
	}
	defer rows.Close()

	ads := []models.GeneratedAdCopy{}
	for rows.Next() {
		var ad models.GeneratedAdCopy
		var data []byte
		err := rows.Scan(&ad.ID, &ad.ProductID, &ad.VariationName, &ad.Headline, &ad.BodyText,
			&ad.CTA, &ad.AdType, &data, &ad.PerformanceScore, &ad.CreatedAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan ad"})
			return
		}
		ad.PlatformSpecificData = json.RawMessage(data)
		ads = append(ads, ad)
	}

	c.JSON(http.StatusOK, ads)
}
