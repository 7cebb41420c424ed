package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sitedock/sitedock/config"
	"github.com/sitedock/sitedock/middleware"
	"github.com/sitedock/sitedock/repositories"
	"github.com/sitedock/sitedock/services"
	"gorm.io/gorm"
)

// RegisterRoutes wires services to the API surface and registers all
// routes under the given group.
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB) {
	sessions := repositories.NewSessionRepository(db)
	tokens := services.NewTokenService(config.GetEnv("JWT_SECRET", ""), sessions)

	siteService := services.NewSiteService(db)
	authController := NewAuthController(services.NewAuthService(db, tokens))
	setupController := NewSetupController(services.NewSetupService(db, siteService))
	siteController := NewSiteController(siteService)
	certificateController := NewCertificateController(services.NewCertificateService(db, siteService))
	configVarController := NewConfigVarController(services.NewConfigVarService(db, siteService))
	deploymentController := NewDeploymentController(services.NewDeploymentService(db, siteService))
	shareController := NewShareController(services.NewShareService(db, siteService))

	authRequired := middleware.AuthMiddleware(tokens)

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/signup", authController.Signup)
		authGroup.POST("/logout", authController.Logout)
		authGroup.GET("/me", authRequired, authController.GetCurrentUser)
	}

	// First-run endpoints
	setupGroup := router.Group("/setup")
	{
		setupGroup.GET("/check-first-time", setupController.CheckFirstTime)
		setupGroup.POST("/create-initial-site", authRequired, setupController.CreateInitialSite)
	}

	// Site endpoints - protected by AuthMiddleware
	siteGroup := router.Group("/sites")
	siteGroup.Use(authRequired)
	{
		siteGroup.GET("", siteController.ListSites)
		siteGroup.POST("", siteController.CreateSite)
		siteGroup.GET("/shared", siteController.ListSharedSites)
		siteGroup.GET("/:siteId", siteController.GetSite)
		siteGroup.PATCH("/:siteId", siteController.UpdateSite)
		siteGroup.DELETE("/:siteId", siteController.DeleteSite)

		siteGroup.GET("/:siteId/certificates", certificateController.ListCertificates)
		siteGroup.POST("/:siteId/certificates", certificateController.CreateCertificate)
		siteGroup.DELETE("/:siteId/certificates/:certId", certificateController.DeleteCertificate)

		siteGroup.GET("/:siteId/config-vars", configVarController.ListConfigVars)
		siteGroup.POST("/:siteId/config-vars", configVarController.UpsertConfigVar)
		siteGroup.DELETE("/:siteId/config-vars", configVarController.DeleteConfigVar)

		siteGroup.GET("/:siteId/deployments", deploymentController.ListDeployments)
		siteGroup.POST("/:siteId/deployments", deploymentController.TriggerDeployment)
		siteGroup.PATCH("/:siteId/deployments/:deploymentId/status", deploymentController.UpdateDeploymentStatus)

		siteGroup.POST("/:siteId/share", shareController.ShareSite)
	}
}
