package models

import "time"

// ============================================================================
// AFFILIATE CREDENTIALS
// ============================================================================

// AffiliateCredential stores the account details for one platform's
// affiliate program. APIKey and APISecret are encrypted at rest and never
// serialized back to clients.
type AffiliateCredential struct {
	ID          string    `json:"id"`
	Platform    string    `json:"platform"`
	AffiliateID string    `json:"affiliate_id,omitempty"`
	ShopID      string    `json:"shop_id,omitempty"`
	AccountName string    `json:"account_name,omitempty"`
	APIKey      string    `json:"-"`
	APISecret   string    `json:"-"`
	HasAPIKey   bool      `json:"has_api_key"`
	Active      bool      `json:"active"`
	Verified    bool      `json:"verified"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SaveCredentialRequest struct {
	Platform    string `json:"platform" binding:"required"`
	AffiliateID string `json:"affiliate_id"`
	ShopID      string `json:"shop_id"`
	AccountName string `json:"account_name"`
	APIKey      string `json:"api_key"`
	APISecret   string `json:"api_secret"`
	Notes       string `json:"notes"`
}
