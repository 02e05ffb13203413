package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func InitDB() (*sql.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			totp_secret VARCHAR(255),
			totp_enabled BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID REFERENCES users(id) ON DELETE CASCADE,
			refresh_token VARCHAR(500) UNIQUE NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			description TEXT DEFAULT '',
			price_range VARCHAR(100) DEFAULT '',
			target_audience VARCHAR(255) DEFAULT '',
			trending_score INTEGER DEFAULT 50,
			notes TEXT DEFAULT '',
			image_url TEXT DEFAULT '',
			amazon_asin VARCHAR(20) DEFAULT '',
			tiktok_product_id VARCHAR(100) DEFAULT '',
			instagram_product_id VARCHAR(100) DEFAULT '',
			youtube_video_id VARCHAR(100) DEFAULT '',
			pinterest_pin_id VARCHAR(100) DEFAULT '',
			product_url TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS ad_copies (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			product_id UUID REFERENCES products(id) ON DELETE CASCADE,
			variation_name VARCHAR(255) NOT NULL,
			headline TEXT NOT NULL,
			body_text TEXT NOT NULL,
			cta VARCHAR(255) NOT NULL,
			ad_type VARCHAR(50) NOT NULL,
			platform_specific_data JSONB,
			performance_score DOUBLE PRECISION DEFAULT 0,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS affiliate_links (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			product_id UUID REFERENCES products(id) ON DELETE CASCADE,
			product_name VARCHAR(255) NOT NULL,
			platform VARCHAR(50) NOT NULL,
			program_name VARCHAR(255) NOT NULL,
			commission_rate DOUBLE PRECISION DEFAULT 0,
			cookie_duration INTEGER DEFAULT 0,
			tracking_url TEXT NOT NULL,
			destination_url TEXT NOT NULL,
			status VARCHAR(20) DEFAULT 'active',
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS affiliate_credentials (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			platform VARCHAR(50) UNIQUE NOT NULL,
			affiliate_id VARCHAR(255) DEFAULT '',
			shop_id VARCHAR(255) DEFAULT '',
			account_name VARCHAR(255) DEFAULT '',
			api_key TEXT DEFAULT '',
			api_secret TEXT DEFAULT '',
			active BOOLEAN DEFAULT TRUE,
			verified BOOLEAN DEFAULT FALSE,
			notes TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
		`CREATE INDEX IF NOT EXISTS idx_products_trending ON products(trending_score DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_ad_copies_product_id ON ad_copies(product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_affiliate_links_product_id ON affiliate_links(product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_affiliate_links_platform ON affiliate_links(platform)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}

// SeedProducts inserts a starter catalog of trending products when the
// table is empty, so a fresh install has something to analyze.
func SeedProducts(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := []struct {
		name, category, description, priceRange, targetAudience string
		trendingScore                                           int
	}{
		{"LED Face Mask Pro", "Beauty & Skincare", "At-home red light therapy mask with 7 treatment modes", "$80-$120", "Women 25-45 interested in skincare", 88},
		{"Smart Fitness Ring", "Consumer Electronics", "Sleep and activity tracker in a titanium ring", "$250-$350", "Health-conscious adults 30-45", 82},
		{"Collagen Peptide Powder", "Health & Wellness", "Unflavored grass-fed collagen for skin and joints", "$25-$40", "Adults 35-55", 74},
		{"Oversized Knit Cardigan", "Fashion", "Chunky oversized cardigan in six colorways", "$45-$65", "Gen Z and millennial women", 79},
		{"Cold Brew Coffee Maker", "Home & Kitchen", "1.5L slow-drip cold brew system with steel filter", "$30-$50", "Coffee lovers 25-40", 68},
		{"Resistance Band Set", "Fitness", "Five-band set with door anchor and travel bag", "$20-$35", "Home gym beginners 20-50", 71},
	}

	for _, s := range seeds {
		_, err := db.Exec(`
			INSERT INTO products (name, category, description, price_range, target_audience, trending_score)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, s.name, s.category, s.description, s.priceRange, s.targetAudience, s.trendingScore)
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", s.name, err)
		}
	}

	return nil
}
