package routes

import (
	"database/sql"

	"affilai-api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/signup", authHandler.Signup)
	rg.POST("/auth/login", authHandler.Login)
}

// SetupUserRoutes sets up protected account routes (2FA management).
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/user/2fa/setup", authHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", authHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", authHandler.DisableTOTP)
}

// SetupProductRoutes sets up protected product catalog and analysis routes.
func SetupProductRoutes(rg *gin.RouterGroup, db *sql.DB, feed *handlers.FeedHandler) {
	productHandler := &handlers.ProductHandler{DB: db}
	adHandler := handlers.NewAdHandler(db, feed)
	linkHandler := handlers.NewLinkHandler(db, feed)

	rg.GET("/products", productHandler.GetProducts)
	rg.GET("/products/search", productHandler.SearchProducts)
	rg.POST("/products", productHandler.CreateProduct)
	rg.GET("/products/:id", productHandler.GetProduct)
	rg.PUT("/products/:id", productHandler.UpdateProduct)
	rg.DELETE("/products/:id", productHandler.DeleteProduct)

	// Recommendation pipeline
	rg.GET("/products/:id/platforms", adHandler.GetPlatforms)
	rg.GET("/products/:id/analysis", adHandler.GetAnalysis)
	rg.POST("/products/:id/ads", adHandler.GenerateAd)
	rg.GET("/products/:id/ads", adHandler.GetAds)
	rg.GET("/products/:id/links", linkHandler.GetLinksByProduct)
}

// SetupLinkRoutes sets up protected affiliate link routes.
func SetupLinkRoutes(rg *gin.RouterGroup, db *sql.DB, feed *handlers.FeedHandler) {
	linkHandler := handlers.NewLinkHandler(db, feed)

	rg.GET("/links", linkHandler.GetLinks)
	rg.POST("/links", linkHandler.CreateLink)
	rg.POST("/links/generate", linkHandler.GenerateLink)
	rg.POST("/links/generate-for-platform", linkHandler.GenerateLinkForPlatform)
	rg.POST("/links/generate-all", linkHandler.GenerateAllLinks)
	rg.POST("/links/:id/refresh", linkHandler.RefreshLink)
	rg.DELETE("/links/:id", linkHandler.DeleteLink)
}

// SetupCredentialRoutes sets up protected credential vault routes.
func SetupCredentialRoutes(rg *gin.RouterGroup, db *sql.DB) {
	credentialHandler := &handlers.CredentialHandler{DB: db}

	rg.GET("/credentials", credentialHandler.GetCredentials)
	rg.GET("/credentials/:platform", credentialHandler.GetCredential)
	rg.PUT("/credentials", credentialHandler.SaveCredential)
	rg.DELETE("/credentials/:platform", credentialHandler.DeleteCredential)
}
