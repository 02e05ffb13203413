package handlers

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"affilai-api/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var credentialTestColumns = []string{
	"id", "platform", "affiliate_id", "shop_id", "account_name", "api_key", "api_secret",
	"active", "verified", "notes", "created_at", "updated_at",
}

func TestSaveCredentialEncryptsAndNeverEchoesSecrets(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	db, mock := setupMockDB(t)
	h := &CredentialHandler{DB: db}

	now := time.Now()
	rows := sqlmock.NewRows(credentialTestColumns).
		AddRow([]driver.Value{
			"c1", "tiktok", "aff-1", "", "My Shop", "ZW5jcnlwdGVk", "ZW5jcnlwdGVk",
			true, false, "", now, now,
		}...)

	mock.ExpectQuery(`INSERT INTO affiliate_credentials`).WillReturnRows(rows)

	router := gin.New()
	router.PUT("/credentials", h.SaveCredential)

	body, _ := json.Marshal(models.SaveCredentialRequest{
		Platform:    "TikTok",
		AffiliateID: "aff-1",
		AccountName: "My Shop",
		APIKey:      "sk_live_secret_key",
		APISecret:   "sk_live_secret_secret",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/credentials", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cred models.AffiliateCredential
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cred))
	assert.Equal(t, "tiktok", cred.Platform)
	assert.True(t, cred.HasAPIKey)

	// Neither the plaintext nor the stored ciphertext leaves the server.
	assert.NotContains(t, w.Body.String(), "sk_live_secret_key")
	assert.NotContains(t, w.Body.String(), "ZW5jcnlwdGVk")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCredentialRejectsUnknownPlatform(t *testing.T) {
	db, _ := setupMockDB(t)
	h := &CredentialHandler{DB: db}

	router := gin.New()
	router.PUT("/credentials", h.SaveCredential)

	body, _ := json.Marshal(models.SaveCredentialRequest{Platform: "myspace"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/credentials", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCredentialNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	h := &CredentialHandler{DB: db}

	mock.ExpectQuery(`SELECT(.+)FROM affiliate_credentials`).
		WithArgs("amazon").
		WillReturnRows(sqlmock.NewRows(credentialTestColumns))

	router := gin.New()
	router.GET("/credentials/:platform", h.GetCredential)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/credentials/amazon", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
