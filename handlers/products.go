package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"affilai-api/models"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	DB *sql.DB
}

const productColumns = `
	id, name, category, description, price_range, target_audience,
	trending_score, notes, image_url,
	amazon_asin, tiktok_product_id, instagram_product_id,
	youtube_video_id, pinterest_pin_id, product_url,
	created_at, updated_at
`

func scanProduct(row interface{ Scan(...interface{}) error }) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Description, &p.PriceRange, &p.TargetAudience,
		&p.TrendingScore, &p.Notes, &p.ImageURL,
		&p.AmazonASIN, &p.TikTokProductID, &p.InstagramProductID,
		&p.YouTubeVideoID, &p.PinterestPinID, &p.ProductURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func fetchProduct(db *sql.DB, productID string) (models.Product, error) {
	row := db.QueryRow(`
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, productID)
	return scanProduct(row)
}

// ============================================================================
// CRUD
// ============================================================================

func (h *ProductHandler) GetProducts(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT ` + productColumns + `
		FROM products
		ORDER BY trending_score DESC, name ASC
	`)
	if err != nil {
		log.Printf("[Products] Error listing products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product"})
			return
		}
		products = append(products, p)
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query 'q' is required"})
		return
	}

	pattern := "%" + query + "%"
	rows, err := h.DB.Query(`
		SELECT `+productColumns+`
		FROM products
		WHERE name ILIKE $1 OR category ILIKE $1 OR description ILIKE $1
		ORDER BY trending_score DESC, name ASC
	`, pattern)
	if err != nil {
		log.Printf("[Products] Error searching products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product"})
			return
		}
		products = append(products, p)
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	row := h.DB.QueryRow(`
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, productID)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trendingScore := 50
	if req.TrendingScore != nil {
		trendingScore = *req.TrendingScore
	}

	row := h.DB.QueryRow(`
		INSERT INTO products (
			name, category, description, price_range, target_audience,
			trending_score, notes, image_url,
			amazon_asin, tiktok_product_id, instagram_product_id,
			youtube_video_id, pinterest_pin_id, product_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+productColumns+`
	`, req.Name, req.Category, req.Description, req.PriceRange, req.TargetAudience,
		trendingScore, req.Notes, req.ImageURL,
		req.AmazonASIN, req.TikTokProductID, req.InstagramProductID,
		req.YouTubeVideoID, req.PinterestPinID, req.ProductURL)

	p, err := scanProduct(row)
	if err != nil {
		log.Printf("[Products] Error creating product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	log.Printf("[Products] ✅ Created product %s (%s)", p.Name, p.ID)
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := h.DB.QueryRow(`
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, productID)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&p.Name, req.Name)
	applyString(&p.Category, req.Category)
	applyString(&p.Description, req.Description)
	applyString(&p.PriceRange, req.PriceRange)
	applyString(&p.TargetAudience, req.TargetAudience)
	applyString(&p.Notes, req.Notes)
	applyString(&p.ImageURL, req.ImageURL)
	applyString(&p.AmazonASIN, req.AmazonASIN)
	applyString(&p.TikTokProductID, req.TikTokProductID)
	applyString(&p.InstagramProductID, req.InstagramProductID)
	applyString(&p.YouTubeVideoID, req.YouTubeVideoID)
	applyString(&p.PinterestPinID, req.PinterestPinID)
	applyString(&p.ProductURL, req.ProductURL)
	if req.TrendingScore != nil {
		p.TrendingScore = *req.TrendingScore
	}

	row = h.DB.QueryRow(`
		UPDATE products
		SET name = $1, category = $2, description = $3, price_range = $4,
		    target_audience = $5, trending_score = $6, notes = $7, image_url = $8,
		    amazon_asin = $9, tiktok_product_id = $10, instagram_product_id = $11,
		    youtube_video_id = $12, pinterest_pin_id = $13, product_url = $14,
		    updated_at = NOW()
		WHERE id = $15
		RETURNING `+productColumns+`
	`, p.Name, p.Category, p.Description, p.PriceRange,
		p.TargetAudience, p.TrendingScore, p.Notes, p.ImageURL,
		p.AmazonASIN, p.TikTokProductID, p.InstagramProductID,
		p.YouTubeVideoID, p.PinterestPinID, p.ProductURL, productID)

	updated, err := scanProduct(row)
	if err != nil {
		log.Printf("[Products] Error updating product %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	result, err := h.DB.Exec(`DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	log.Printf("[Products] 🗑️ Deleted product %s", productID)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
