package handlers

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"

	"affilai-api/models"
	"affilai-api/services"

	"github.com/gin-gonic/gin"
)

// LinkHandler generates and manages trackable affiliate links. Generation
// re-runs platform discovery each time so the link always reflects the
// product's current attributes.
type LinkHandler struct {
	DB        *sql.DB
	Discovery *services.PlatformDiscoveryService
	Tracking  *services.TrackingService
	Feed      *FeedHandler
}

func NewLinkHandler(db *sql.DB, feed *FeedHandler) *LinkHandler {
	return &LinkHandler{
		DB:        db,
		Discovery: services.NewPlatformDiscoveryService(),
		Tracking:  services.NewTrackingService(),
		Feed:      feed,
	}
}

const linkColumns = `
	id, product_id, product_name, platform, program_name, commission_rate,
	cookie_duration, tracking_url, destination_url, status, created_at, updated_at
`

func scanLink(row interface{ Scan(...interface{}) error }) (models.AffiliateLink, error) {
	var l models.AffiliateLink
	err := row.Scan(
		&l.ID, &l.ProductID, &l.ProductName, &l.Platform, &l.ProgramName, &l.CommissionRate,
		&l.CookieDuration, &l.TrackingURL, &l.DestinationURL, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (h *LinkHandler) discoverForProduct(p *models.Product) []models.PlatformRecommendation {
	return h.Discovery.DiscoverPlatforms(p.Name, p.Category, p.TrendingScore, p.TargetAudience, p.PriceRange)
}

func (h *LinkHandler) insertLink(link *models.AffiliateLink) error {
	return h.DB.QueryRow(`
		INSERT INTO affiliate_links (product_id, product_name, platform, program_name,
			commission_rate, cookie_duration, tracking_url, destination_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'active')
		RETURNING id, status, created_at, updated_at
	`, link.ProductID, link.ProductName, link.Platform, link.ProgramName,
		link.CommissionRate, link.CookieDuration, link.TrackingURL, link.DestinationURL,
	).Scan(&link.ID, &link.Status, &link.CreatedAt, &link.UpdatedAt)
}

func (h *LinkHandler) linkFromProgram(product *models.Product, program *models.PlatformRecommendation) models.AffiliateLink {
	trackingURL := h.Tracking.GenerateTrackingURL(
		program.Platform, program.ProgramName, product.Name, program.AffiliateURL)

	return models.AffiliateLink{
		ProductID:      product.ID,
		ProductName:    product.Name,
		Platform:       program.Platform,
		ProgramName:    program.ProgramName,
		CommissionRate: program.CommissionRate,
		CookieDuration: program.CookieDuration,
		TrackingURL:    trackingURL,
		DestinationURL: program.AffiliateURL,
	}
}

// ============================================================================
// LISTING
// ============================================================================

func (h *LinkHandler) GetLinks(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT ` + linkColumns + `
		FROM affiliate_links
		ORDER BY created_at DESC
	`)
	if err != nil {
		log.Printf("[Links] Error listing links: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch links"})
		return
	}
	defer rows.Close()

	links := []models.AffiliateLink{}
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan link"})
			return
		}
		links = append(links, l)
	}

	c.JSON(http.StatusOK, links)
}

func (h *LinkHandler) GetLinksByProduct(c *gin.Context) {
	productID := c.Param("id")

	rows, err := h.DB.Query(`
		SELECT `+linkColumns+`
		FROM affiliate_links
		WHERE product_id = $1
		ORDER BY created_at DESC
	`, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch links"})
		return
	}
	defer rows.Close()

	links := []models.AffiliateLink{}
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan link"})
			return
		}
		links = append(links, l)
	}

	c.JSON(http.StatusOK, links)
}

// ============================================================================
// GENERATION
// ============================================================================

// GenerateLink creates a link for the best discovered platform.
func (h *LinkHandler) GenerateLink(c *gin.Context) {
	var req models.GenerateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := fetchProduct(h.DB, req.ProductID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	programs := h.discoverForProduct(&product)
	if len(programs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No affiliate programs found for this product"})
		return
	}

	// Discovery output is sorted; programs[0] is the best match.
	link := h.linkFromProgram(&product, &programs[0])
	if err := h.insertLink(&link); err != nil {
		log.Printf("[Links] Error saving link for product %s: %v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save link"})
		return
	}

	log.Printf("[Links] 🔗 Generated %s link for %s", link.Platform, product.Name)
	if h.Feed != nil {
		h.Feed.BroadcastEvent("link_generated", product.ID, link.Platform)
	}

	c.JSON(http.StatusCreated, link)
}

// GenerateLinkForPlatform creates a link for an explicitly chosen platform,
// provided that platform cleared discovery for this product.
func (h *LinkHandler) GenerateLinkForPlatform(c *gin.Context) {
	var req models.GenerateLinkForPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := fetchProduct(h.DB, req.ProductID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	programs := h.discoverForProduct(&product)

	requested := strings.ToLower(req.Platform)
	var selected *models.PlatformRecommendation
	for i := range programs {
		if programs[i].Platform == requested {
			selected = &programs[i]
			break
		}
	}
	if selected == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Platform %s not available for this product", req.Platform),
		})
		return
	}

	link := h.linkFromProgram(&product, selected)
	if err := h.insertLink(&link); err != nil {
		log.Printf("[Links] Error saving link for product %s: %v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save link"})
		return
	}

	log.Printf("[Links] 🔗 Generated %s link for %s", link.Platform, product.Name)
	if h.Feed != nil {
		h.Feed.BroadcastEvent("link_generated", product.ID, link.Platform)
	}

	c.JSON(http.StatusCreated, link)
}

// GenerateAllLinks creates a link for every product that doesn't have one
// yet. Per-product failures are logged and skipped, not fatal.
func (h *LinkHandler) GenerateAllLinks(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT ` + productColumns + `
		FROM products
		ORDER BY trending_score DESC, name ASC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			rows.Close()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product"})
			return
		}
		products = append(products, p)
	}
	rows.Close()

	generated := []models.AffiliateLink{}
	for i := range products {
		product := &products[i]

		var exists bool
		err := h.DB.QueryRow(
			"SELECT EXISTS(SELECT 1 FROM affiliate_links WHERE product_id = $1)",
			product.ID,
		).Scan(&exists)
		if err != nil {
			log.Printf("[Links] ⚠️ Failed to check links for product %s: %v", product.ID, err)
			continue
		}
		if exists {
			continue
		}

		programs := h.discoverForProduct(product)
		if len(programs) == 0 {
			log.Printf("[Links] ⚠️ No affiliate programs found for product %s", product.Name)
			continue
		}

		link := h.linkFromProgram(product, &programs[0])
		if err := h.insertLink(&link); err != nil {
			log.Printf("[Links] ⚠️ Failed to generate link for product %s: %v", product.ID, err)
			continue
		}

		if h.Feed != nil {
			h.Feed.BroadcastEvent("link_generated", product.ID, link.Platform)
		}
		generated = append(generated, link)
	}

	log.Printf("[Links] ✅ Bulk generation created %d links", len(generated))
	c.JSON(http.StatusOK, generated)
}

// ============================================================================
// MANUAL CREATE / REFRESH / DELETE
// ============================================================================

func (h *LinkHandler) CreateLink(c *gin.Context) {
	var req models.CreateAffiliateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidPlatform(strings.ToLower(req.Platform)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown platform: %s", req.Platform)})
		return
	}

	link := models.AffiliateLink{
		ProductID:      req.ProductID,
		ProductName:    req.ProductName,
		Platform:       strings.ToLower(req.Platform),
		ProgramName:    req.ProgramName,
		CommissionRate: req.CommissionRate,
		CookieDuration: req.CookieDuration,
		TrackingURL:    req.TrackingURL,
		DestinationURL: req.DestinationURL,
	}

	if err := h.insertLink(&link); err != nil {
		log.Printf("[Links] Error creating link: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link"})
		return
	}

	c.JSON(http.StatusCreated, link)
}

// RefreshLink re-runs discovery for the link's product and rewrites the
// row in place with the current best platform.
func (h *LinkHandler) RefreshLink(c *gin.Context) {
	linkID := c.Param("id")

	var productID string
	err := h.DB.QueryRow(
		"SELECT product_id FROM affiliate_links WHERE id = $1", linkID,
	).Scan(&productID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch link"})
		return
	}

	product, err := fetchProduct(h.DB, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	programs := h.discoverForProduct(&product)
	if len(programs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No affiliate programs found for this product"})
		return
	}

	best := &programs[0]
	trackingURL := h.Tracking.GenerateTrackingURL(best.Platform, best.ProgramName, product.Name, best.AffiliateURL)

	row := h.DB.QueryRow(`
		UPDATE affiliate_links
		SET platform = $1, program_name = $2, commission_rate = $3, cookie_duration = $4,
		    tracking_url = $5, destination_url = $6, status = 'active', updated_at = NOW()
		WHERE id = $7
		RETURNING `+linkColumns+`
	`, best.Platform, best.ProgramName, best.CommissionRate, best.CookieDuration,
		trackingURL, best.AffiliateURL, linkID)

	link, err := scanLink(row)
	if err != nil {
		log.Printf("[Links] Error refreshing link %s: %v", linkID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh link"})
		return
	}

	log.Printf("[Links] ♻️ Refreshed link %s -> %s", linkID, link.Platform)
	if h.Feed != nil {
		h.Feed.BroadcastEvent("link_refreshed", product.ID, link.Platform)
	}

	c.JSON(http.StatusOK, link)
}

func (h *LinkHandler) DeleteLink(c *gin.Context) {
	linkID := c.Param("id")

	result, err := h.DB.Exec("DELETE FROM affiliate_links WHERE id = $1", linkID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete link"})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link deleted successfully"})
}
