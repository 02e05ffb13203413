package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"affilai-api/models"
	"affilai-api/utils"

	"github.com/gin-gonic/gin"
)

// CredentialHandler manages the per-platform affiliate account vault.
// API keys and secrets are encrypted before they touch the database and
// never serialized back to clients; responses only carry has_api_key.
type CredentialHandler struct {
	DB *sql.DB
}

const credentialColumns = `
	id, platform, affiliate_id, shop_id, account_name, api_key, api_secret,
	active, verified, notes, created_at, updated_at
`

func scanCredential(row interface{ Scan(...interface{}) error }) (models.AffiliateCredential, error) {
	var cred models.AffiliateCredential
	err := row.Scan(
		&cred.ID, &cred.Platform, &cred.AffiliateID, &cred.ShopID, &cred.AccountName,
		&cred.APIKey, &cred.APISecret, &cred.Active, &cred.Verified, &cred.Notes,
		&cred.CreatedAt, &cred.UpdatedAt,
	)
	if err != nil {
		return cred, err
	}

	cred.HasAPIKey = cred.APIKey != ""
	cred.APIKey = ""
	cred.APISecret = ""
	return cred, nil
}

func (h *CredentialHandler) GetCredentials(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT ` + credentialColumns + `
		FROM affiliate_credentials
		ORDER BY platform ASC
	`)
	if err != nil {
		utils.SafeError("[Credentials] Error listing credentials: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch credentials"})
		return
	}
	defer rows.Close()

	credentials := []models.AffiliateCredential{}
	for rows.Next() {
		cred, err := scanCredential(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan credential"})
			return
		}
		credentials = append(credentials, cred)
	}

	c.JSON(http.StatusOK, credentials)
}

func (h *CredentialHandler) GetCredential(c *gin.Context) {
	platform := strings.ToLower(c.Param("platform"))

	row := h.DB.QueryRow(`
		SELECT `+credentialColumns+`
		FROM affiliate_credentials
		WHERE platform = $1
	`, platform)

	cred, err := scanCredential(row)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "No credentials for this platform"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch credential"})
		return
	}

	c.JSON(http.StatusOK, cred)
}

// SaveCredential creates or updates the credential row for a platform.
func (h *CredentialHandler) SaveCredential(c *gin.Context) {
	var req models.SaveCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	platform := strings.ToLower(req.Platform)
	if !models.IsValidPlatform(platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown platform: %s", req.Platform)})
		return
	}

	encryptedKey, err := utils.EncryptSecret(req.APIKey)
	if err != nil {
		utils.SafeError("[Credentials] Encryption error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encrypt credentials"})
		return
	}

	encryptedSecret, err := utils.EncryptSecret(req.APISecret)
	if err != nil {
		utils.SafeError("[Credentials] Encryption error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encrypt credentials"})
		return
	}

	row := h.DB.QueryRow(`
		INSERT INTO affiliate_credentials (platform, affiliate_id, shop_id, account_name, api_key, api_secret, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (platform) DO UPDATE
		SET affiliate_id = EXCLUDED.affiliate_id,
		    shop_id = EXCLUDED.shop_id,
		    account_name = EXCLUDED.account_name,
		    api_key = EXCLUDED.api_key,
		    api_secret = EXCLUDED.api_secret,
		    notes = EXCLUDED.notes,
		    updated_at = NOW()
		RETURNING `+credentialColumns+`
	`, platform, req.AffiliateID, req.ShopID, req.AccountName, encryptedKey, encryptedSecret, req.Notes)

	cred, err := scanCredential(row)
	if err != nil {
		utils.SafeError("[Credentials] Error saving credential: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save credential"})
		return
	}

	utils.LogCredentialAction("SAVE", platform, req.AccountName)
	c.JSON(http.StatusOK, cred)
}

func (h *CredentialHandler) DeleteCredential(c *gin.Context) {
	platform := strings.ToLower(c.Param("platform"))

	result, err := h.DB.Exec("DELETE FROM affiliate_credentials WHERE platform = $1", platform)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete credential"})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No credentials for this platform"})
		return
	}

	utils.LogCredentialAction("DELETE", platform, "")
	c.JSON(http.StatusOK, gin.H{"message": "Credential deleted successfully"})
}
